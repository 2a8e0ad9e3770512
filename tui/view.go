package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#3AC4BA"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dirStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8942E1"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFAB78"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// chrome rows around the entry list: title, path, spacer, spacer, help.
const viewOverhead = 5

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(pathStyle.Render(m.dir))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("cannot read directory: "+m.err.Error()) + "\n")
	}

	start, end := m.listWindow()
	for i := start; i < end; i++ {
		e := m.visible[i]

		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		label := e.Name
		if e.IsDir {
			label = dirStyle.Render("[dir]  " + label)
		} else {
			label = "[file] " + label
		}
		b.WriteString(cursor + label + "\n")
	}
	if len(m.visible) == 0 && m.err == nil {
		b.WriteString(pathStyle.Render("(empty)") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

// listWindow returns the visible slice bounds, keeping the cursor in
// view when the terminal is shorter than the listing.
func (m Model) listWindow() (int, int) {
	max := m.height - viewOverhead
	if m.filtering || m.filter.Value() != "" {
		max -= 2
	}
	if max <= 0 {
		max = 20
	}
	if len(m.visible) <= max {
		return 0, len(m.visible)
	}

	start := m.cursor - max/2
	if start < 0 {
		start = 0
	}
	if start+max > len(m.visible) {
		start = len(m.visible) - max
	}
	return start, start + max
}

func (m Model) helpLine() string {
	parts := []string{
		"enter open",
		"backspace up",
		". hidden",
		"/ filter",
		"q quit",
	}
	if m.dirsOnly {
		parts = append([]string{"s select dir"}, parts...)
	}
	return strings.Join(parts, "  |  ")
}
