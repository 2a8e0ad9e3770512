// Package tui is a terminal front-end for the file browser core. It
// presents the same browsing semantics as the immediate-mode dialog
// (directories-first listing, hidden-file toggle, ancestor
// navigation) as a bubbletea model.
package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/go-theft-auto/filebrowser"
)

// Option configures a Model at construction time.
type Option func(*Model)

// WithTitle sets the title line.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// WithStartDir sets the directory the browser starts in. The default
// is the process working directory.
func WithStartDir(dir string) Option {
	return func(m *Model) { m.dir = filepath.Clean(dir) }
}

// DirectoriesOnly restricts browsing to directories. Use the select
// key to pick the highlighted directory.
func DirectoriesOnly() Option {
	return func(m *Model) { m.dirsOnly = true }
}

// ShowHiddenFiles starts with hidden files visible.
func ShowHiddenFiles() Option {
	return func(m *Model) { m.showHidden = true }
}

// Model is the bubbletea model for the terminal file browser.
type Model struct {
	title      string
	dirsOnly   bool
	showHidden bool

	dir     string
	entries []filebrowser.Entry
	visible []filebrowser.Entry
	cursor  int
	err     error

	filter    textinput.Model
	filtering bool

	selected string
	quitting bool

	width  int
	height int
}

// New creates a terminal file browser model.
func New(opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.CharLimit = 64
	ti.Width = 32

	m := Model{title: "Open File", filter: ti}
	for _, opt := range opts {
		opt(&m)
	}
	if m.dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = string(filepath.Separator)
		}
		m.dir = wd
	}
	m.reload()
	return m
}

// Selection returns the chosen path once the program has finished.
func (m Model) Selection() (string, bool) {
	return m.selected, m.selected != ""
}

// CurrentDir returns the directory the browser is in.
func (m Model) CurrentDir() string { return m.dir }

// Err returns the last listing failure, or nil.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "enter", "l":
		e, ok := m.current()
		if !ok {
			break
		}
		if e.IsDir {
			m.descend(e.Path)
			break
		}
		m.selected = e.Path
		m.quitting = true
		return m, tea.Quit

	case "s":
		// Explicit select, needed to pick a directory itself rather
		// than descend into it.
		e, ok := m.current()
		if !ok {
			break
		}
		if e.IsDir && !m.dirsOnly {
			break
		}
		m.selected = e.Path
		m.quitting = true
		return m, tea.Quit

	case "backspace", "h":
		parent := filepath.Dir(m.dir)
		if parent != m.dir {
			m.descend(parent)
		}

	case ".":
		m.showHidden = !m.showHidden
		m.reload()

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) current() (filebrowser.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return filebrowser.Entry{}, false
	}
	return m.visible[m.cursor], true
}

func (m *Model) descend(dir string) {
	m.dir = dir
	m.filter.SetValue("")
	m.reload()
}

// reload re-reads the current directory and reapplies the filter.
func (m *Model) reload() {
	entries, err := filebrowser.ReadEntries(m.dir, m.showHidden)
	m.err = err
	if err != nil {
		entries = nil
	}
	if m.dirsOnly {
		dirs := entries[:0]
		for _, e := range entries {
			if e.IsDir {
				dirs = append(dirs, e)
			}
		}
		entries = dirs
	}
	m.entries = entries
	m.applyFilter()
}

// applyFilter narrows the visible set by fuzzy-matching entry names,
// keeping match-rank order.
func (m *Model) applyFilter() {
	q := strings.TrimSpace(m.filter.Value())
	if q == "" {
		m.visible = m.entries
	} else {
		matches := fuzzy.FindFrom(q, entrySource(m.entries))
		visible := make([]filebrowser.Entry, 0, len(matches))
		for _, mt := range matches {
			visible = append(visible, m.entries[mt.Index])
		}
		m.visible = visible
	}

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// entrySource adapts entries to fuzzy.Source.
type entrySource []filebrowser.Entry

func (s entrySource) Len() int { return len(s) }

func (s entrySource) String(i int) string { return s[i].Name }
