package filebrowser

// Surface is the per-frame drawing context the dialog renders against.
// The dialog itself is headless: it never talks to a renderer or reads
// input devices directly. Whatever immediate-mode toolkit hosts the
// dialog provides a Surface for the current frame, and all widget calls
// go through it.
//
// The backend/imgui package implements Surface on top of Dear ImGui.
// Tests drive the dialog with a scripted in-memory Surface.
//
// Widget methods follow immediate-mode conventions: they draw the
// control for this frame and report interaction results directly.
type Surface interface {
	// Window frames the whole dialog under a title. The returned
	// closure invokes the dialog body inside the window.
	Window(title string) func(func())

	// Region groups controls into a named sub-area of the window
	// (path strip, entry list, control bar). Height is in surface
	// units; 0 means content-sized and a negative value reserves
	// that much space from the bottom of the window.
	Region(id string, height float32) func(func())

	// Button draws a push button and reports whether it was
	// activated this frame.
	Button(label string) bool

	// Text draws a read-only label.
	Text(text string)

	// Checkbox draws a toggle bound to checked and reports whether
	// it changed this frame.
	Checkbox(label string, checked *bool) bool

	// SameLine keeps the next control on the current line.
	SameLine()

	// Hovered reports whether the most recently drawn control is
	// under the pointer.
	Hovered() bool

	// Tooltip shows a tooltip at the pointer position. Call it only
	// when Hovered reports true.
	Tooltip(text string)
}
