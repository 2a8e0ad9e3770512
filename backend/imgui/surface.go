// Package imgui adapts the file browser Surface to Dear ImGui using
// the cimgui-go bindings.
package imgui

import (
	im "github.com/AllenDang/cimgui-go/imgui"

	"github.com/go-theft-auto/filebrowser"
)

// Surface renders dialog controls through Dear ImGui. Create one per
// dialog and pass it to Dialog.Render each frame, inside the host's
// ImGui frame.
type Surface struct {
	windowW float32
	windowH float32
	seq     int32
}

var _ filebrowser.Surface = (*Surface)(nil)

// New creates a Surface. The dialog window opens at 600x400 the first
// time it is shown; the user can resize it afterwards.
func New() *Surface {
	return &Surface{windowW: 600, windowH: 400}
}

// Window implements filebrowser.Surface.
func (s *Surface) Window(title string) func(func()) {
	return func(body func()) {
		s.seq = 0
		im.SetNextWindowSizeV(im.NewVec2(s.windowW, s.windowH), im.CondFirstUseEver)
		if im.BeginV(title, nil, im.WindowFlagsNone) {
			body()
		}
		im.End()
	}
}

// Region implements filebrowser.Surface. Fixed-height regions get a
// border; the content-sized control bar does not, matching the
// dialog's visual grouping.
func (s *Surface) Region(id string, height float32) func(func()) {
	return func(body func()) {
		flags := im.ChildFlagsBorders
		if height == 0 {
			flags = im.ChildFlagsNone
		}
		if im.BeginChildStrV(id, im.NewVec2(0, height), flags, im.WindowFlagsNone) {
			body()
		}
		im.EndChild()
	}
}

// Button implements filebrowser.Surface. Dialog labels repeat across
// frames and may collide (breadcrumb components, same-named entries),
// so every control gets a per-frame ID pushed around it.
func (s *Surface) Button(label string) bool {
	s.seq++
	im.PushIDInt(s.seq)
	defer im.PopID()
	return im.Button(label)
}

// Text implements filebrowser.Surface.
func (s *Surface) Text(text string) { im.Text(text) }

// Checkbox implements filebrowser.Surface.
func (s *Surface) Checkbox(label string, checked *bool) bool {
	s.seq++
	im.PushIDInt(s.seq)
	defer im.PopID()
	return im.Checkbox(label, checked)
}

// SameLine implements filebrowser.Surface.
func (s *Surface) SameLine() { im.SameLine() }

// Hovered implements filebrowser.Surface.
func (s *Surface) Hovered() bool { return im.IsItemHovered() }

// Tooltip implements filebrowser.Surface.
func (s *Surface) Tooltip(text string) {
	im.SetTooltip(text)
}
