package filebrowser

import "github.com/charmbracelet/log"

// Option configures a Dialog at construction time. Configuration is
// immutable afterwards: there is deliberately no way to retitle or
// switch modes on a dialog that has already rendered a frame.
type Option func(*Dialog)

// WithTitle sets the dialog window title.
func WithTitle(title string) Option {
	return func(d *Dialog) { d.title = title }
}

// WithAcceptText sets the label of the accept ("Open") control.
func WithAcceptText(text string) Option {
	return func(d *Dialog) { d.acceptText = text }
}

// WithCancelText sets the label of the cancel control.
func WithCancelText(text string) Option {
	return func(d *Dialog) { d.cancelText = text }
}

// DirectoriesOnly restricts the dialog to browsing directories: no
// file controls are ever drawn.
func DirectoriesOnly() Option {
	return func(d *Dialog) { d.dirsOnly = true }
}

// ForSave puts the dialog in Save mode: selecting a file fills the
// filename buffer instead of committing a selection, and the control
// bar shows the buffer. Overrides DirectoriesOnly.
func ForSave() Option {
	return func(d *Dialog) {
		d.mode = ModeSave
		d.dirsOnly = false
	}
}

// WithStartDir sets the directory the dialog starts browsing in. The
// default is the process working directory at construction time. If
// dir is not a readable directory the dialog falls back to the default
// and records the failure (see Dialog.LastError).
func WithStartDir(dir string) Option {
	return func(d *Dialog) { d.startDir = dir }
}

// WithLogger sets the logger used for the failure side channel. The
// default is log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(d *Dialog) { d.logger = logger }
}
