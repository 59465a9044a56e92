// Package tui implements the interactive theme browser.
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hueshift/hueshift/internal/convert"
	"github.com/hueshift/hueshift/internal/preview"
	"github.com/hueshift/hueshift/internal/qss"
	"github.com/hueshift/hueshift/internal/theme"
)

// Run launches the theme browser over a theme collection.
func Run(themes map[string]theme.TerminalTheme) error {
	program := tea.NewProgram(newModel(themes), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type viewID int

const (
	viewSwatches viewID = iota
	viewPalette
	viewStylesheet
)

const stylesheetPreviewLines = 30

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
)

type model struct {
	names  []string
	themes map[string]theme.TerminalTheme
	index  int
	view   viewID
	width  int
	height int
}

func newModel(themes map[string]theme.TerminalTheme) model {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return model{names: names, themes: themes}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.index > 0 {
				m.index--
			}
		case "down", "j":
			if m.index < len(m.names)-1 {
				m.index++
			}
		case "tab", "v":
			m.view = nextView(m.view)
		case "1":
			m.view = viewSwatches
		case "2":
			m.view = viewPalette
		case "3":
			m.view = viewStylesheet
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	if len(m.names) == 0 {
		return "No themes in the library.\n\nPress q to quit.\n"
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(m.listLines(), "\n"),
		"    ",
		m.detailView(),
	)

	footer := mutedStyle.Render("up/down select | 1 swatches | 2 palette | 3 stylesheet | q quit")
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", titleStyle.Render("hueshift themes"), body, footer)
}

func (m model) listLines() []string {
	lines := make([]string, 0, len(m.names))
	for i, name := range m.names {
		if i == m.index {
			lines = append(lines, selectedStyle.Render(name))
		} else {
			lines = append(lines, name)
		}
	}
	return lines
}

func (m model) detailView() string {
	current := m.themes[m.names[m.index]]

	switch m.view {
	case viewPalette:
		return preview.Palette(convert.TerminalToPalette(current))
	case viewStylesheet:
		sheet := qss.Generate(convert.TerminalToPalette(current))
		lines := strings.Split(sheet, "\n")
		if len(lines) > stylesheetPreviewLines {
			lines = append(lines[:stylesheetPreviewLines], mutedStyle.Render("..."))
		}
		return strings.Join(lines, "\n")
	default:
		return preview.TerminalTheme(current)
	}
}

func nextView(current viewID) viewID {
	switch current {
	case viewSwatches:
		return viewPalette
	case viewPalette:
		return viewStylesheet
	default:
		return viewSwatches
	}
}
