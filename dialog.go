package filebrowser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Mode selects what the dialog is used for.
type Mode int

const (
	// ModeOpen selects an existing file.
	ModeOpen Mode = iota
	// ModeSave names a new or existing file for writing.
	ModeSave
)

// Region heights passed to Surface.Region. The entry list takes all
// space not reserved for the path strip and control bar.
const (
	pathStripHeight  float32 = 32
	entryListHeight  float32 = -32
	controlBarHeight float32 = 0
)

// Dialog is an embedded file/directory browser for immediate-mode
// GUIs. Create one with New, then call Render once per frame until it
// reports a selection (or Dismissed becomes true).
//
// The browsing cursor is dialog-local state: navigation never touches
// the process working directory, so several dialogs can coexist and
// browse independently.
type Dialog struct {
	// Configuration, fixed after New.
	title      string
	acceptText string
	cancelText string
	mode       Mode
	dirsOnly   bool
	startDir   string
	logger     *log.Logger

	// Session state.
	dir        string
	filename   string
	showHidden bool
	dismissed  bool
	lastErr    *Error
}

// New creates a dialog in Open mode with "Open"/"Cancel" labels,
// hidden files hidden, browsing the process working directory.
func New(opts ...Option) *Dialog {
	d := &Dialog{
		title:      "Open File",
		acceptText: "Open",
		cancelText: "Cancel",
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.startDir != "" {
		if err := checkDir(d.startDir); err != nil {
			d.fail(KindChangeDir, d.startDir, err)
		} else {
			d.dir = filepath.Clean(d.startDir)
		}
	}
	if d.dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			d.fail(KindChangeDir, ".", err)
			wd = string(filepath.Separator)
		}
		d.dir = wd
	}
	return d
}

// Render draws the dialog for the current frame and reports the file
// the user selected, if any. A false result means "no selection yet,
// keep calling". The dialog does not close itself on selection; the
// host stops calling Render once it has a result.
//
// Every frame re-reads the current directory, so external filesystem
// changes are visible on the next frame. Filesystem failures never
// abort the frame: they are logged, recorded for LastError, and the
// dialog keeps rendering with unchanged navigation state.
func (d *Dialog) Render(ui Surface) (string, bool) {
	d.lastErr = nil
	var selected string

	ui.Window(d.title)(func() {
		ui.Region("path", pathStripHeight)(func() {
			d.renderPathStrip(ui)
		})
		ui.Region("entries", entryListHeight)(func() {
			selected = d.renderEntries(ui)
		})
		ui.Region("controls", controlBarHeight)(func() {
			d.renderControls(ui)
		})
	})

	return selected, selected != ""
}

// renderPathStrip draws one button per component of the current
// directory; activating one navigates to that ancestor.
func (d *Dialog) renderPathStrip(ui Surface) {
	ui.Text("Path:")
	for _, ancestor := range ancestorChain(d.dir) {
		ui.SameLine()
		if ui.Button(filepath.Base(ancestor)) {
			d.navigateTo(ancestor)
		}
		if ui.Hovered() {
			ui.Tooltip("Directory: " + ancestor)
		}
	}
}

// renderEntries lists the current directory and draws one control per
// entry. Returns the selected file path, or "" if none was chosen
// this frame.
func (d *Dialog) renderEntries(ui Surface) string {
	entries, err := ReadEntries(d.dir, d.showHidden)
	if err != nil {
		d.fail(KindListDir, d.dir, err)
		ui.Text("Cannot read " + d.dir)
		return ""
	}

	var selected string
	for _, e := range entries {
		if e.IsDir {
			if ui.Button("[dir]  " + e.Name) {
				d.navigateTo(e.Path)
			}
			continue
		}
		if d.dirsOnly {
			continue
		}
		if ui.Button("[file] " + e.Name) {
			if d.mode == ModeSave {
				d.filename = e.Name
			} else {
				selected = e.Path
			}
		}
	}
	return selected
}

func (d *Dialog) renderControls(ui Surface) {
	if d.mode == ModeSave {
		ui.Text("Filename: " + d.filename)
		ui.SameLine()
	}
	if ui.Button("Back") {
		d.navigateUp()
	}
	ui.SameLine()
	// The accept control is drawn but does not finalize a Save-mode
	// selection; see SaveSupported.
	ui.Button(d.acceptText)
	ui.SameLine()
	if ui.Button(d.cancelText) {
		d.dismissed = true
	}
	ui.SameLine()
	ui.Checkbox("Hidden Files", &d.showHidden)
}

// navigateTo moves the browsing cursor to dir. On failure the cursor
// is left unchanged and the error is recorded.
func (d *Dialog) navigateTo(dir string) {
	if err := checkDir(dir); err != nil {
		d.fail(KindChangeDir, dir, err)
		return
	}
	d.dir = dir
}

// navigateUp moves to the parent directory, or does nothing at the
// filesystem root.
func (d *Dialog) navigateUp() {
	parent := filepath.Dir(d.dir)
	if parent == d.dir {
		return
	}
	d.navigateTo(parent)
}

// checkDir verifies that dir exists and is a readable directory.
func checkDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", dir)
	}
	return nil
}

func (d *Dialog) fail(kind ErrorKind, path string, err error) {
	d.lastErr = &Error{Kind: kind, Path: path, Err: err}
	d.logger.Error("file browser: "+kind.String()+" failed", "path", path, "err", err)
}

// CurrentDir returns the directory the dialog is browsing.
func (d *Dialog) CurrentDir() string { return d.dir }

// Filename returns the Save-mode filename buffer. In Open mode it is
// always empty.
func (d *Dialog) Filename() string { return d.filename }

// Mode returns the dialog mode.
func (d *Dialog) Mode() Mode { return d.mode }

// Dismissed reports whether the user activated the cancel control.
// The dialog keeps rendering; acting on dismissal is up to the host.
func (d *Dialog) Dismissed() bool { return d.dismissed }

// LastError returns the failure recorded during the most recent frame
// (or during construction, before the first frame), or nil if there
// was none. It lets the host tell an empty directory apart from an
// unreadable one.
func (d *Dialog) LastError() *Error { return d.lastErr }

// SaveSupported reports whether the accept control commits a Save-mode
// selection. It currently returns false: in Save mode the dialog only
// maintains the filename buffer, and committing is left to the host.
func (d *Dialog) SaveSupported() bool { return false }
