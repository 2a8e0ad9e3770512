// Example demonstrates the terminal front-end: the same browsing
// semantics as the dialog, as a full-screen bubbletea program. The
// selected path is printed on exit.
//
//	go run ./example/tui/ [-dir path] [-dirs]
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/filebrowser/tui"
)

func main() {
	var (
		startDir = flag.String("dir", "", "directory to start browsing in")
		dirsOnly = flag.Bool("dirs", false, "browse directories only")
	)
	flag.Parse()

	opts := []tui.Option{tui.WithTitle("Open File")}
	if *startDir != "" {
		opts = append(opts, tui.WithStartDir(*startDir))
	}
	if *dirsOnly {
		opts = append(opts, tui.DirectoriesOnly())
	}

	p := tea.NewProgram(tui.New(opts...), tea.WithAltScreen())
	res, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if m, ok := res.(tui.Model); ok {
		if path, chosen := m.Selection(); chosen {
			fmt.Println(path)
		}
	}
}
