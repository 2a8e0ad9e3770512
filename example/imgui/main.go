// Example demonstrates the file browser dialog inside a Dear ImGui
// window using the cimgui-go SDL backend.
//
//	go run ./example/imgui/         # needs SDL2 and OpenGL at runtime
//
// The dialog renders every frame until a file is picked or the cancel
// control is activated; the selected path is logged and the dialog
// stops rendering.
package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	im "github.com/AllenDang/cimgui-go/imgui"
	_ "github.com/AllenDang/cimgui-go/impl/opengl3"
	"github.com/charmbracelet/log"

	"github.com/go-theft-auto/filebrowser"
	imguisurface "github.com/go-theft-auto/filebrowser/backend/imgui"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "filebrowser example"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
})

func init() {
	// The SDL backend must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		startDir = flag.String("dir", "", "directory to start browsing in")
		dirsOnly = flag.Bool("dirs", false, "browse directories only")
		save     = flag.Bool("save", false, "open the dialog in Save mode")
	)
	flag.Parse()

	opts := []filebrowser.Option{filebrowser.WithLogger(logger)}
	if *startDir != "" {
		opts = append(opts, filebrowser.WithStartDir(*startDir))
	}
	if *dirsOnly {
		opts = append(opts, filebrowser.DirectoriesOnly())
	}
	if *save {
		opts = append(opts, filebrowser.ForSave(), filebrowser.WithTitle("Save File"))
	}

	dlg := filebrowser.New(opts...)
	surface := imguisurface.New()

	im.CreateContext()
	bk, err := backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		logger.Fatal("create SDL backend", "err", err)
	}
	bk.CreateWindow(windowTitle, windowWidth, windowHeight)
	bk.SetBgColor(im.NewVec4(0.08, 0.08, 0.10, 1.0))

	open := true
	bk.Run(func() {
		if !open {
			return
		}
		if path, ok := dlg.Render(surface); ok {
			logger.Info("selected", "path", path)
			open = false
		}
		if dlg.Dismissed() {
			logger.Info("dialog dismissed")
			open = false
		}
	})
}
