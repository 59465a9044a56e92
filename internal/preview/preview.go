// Package preview renders themes as terminal swatch grids.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hueshift/hueshift/internal/color"
	"github.com/hueshift/hueshift/internal/theme"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Width(14)
)

// TerminalTheme renders a labeled swatch per theme field, grouped the way
// the scheme is organized: base colors, ANSI colors, bright variants.
func TerminalTheme(t theme.TerminalTheme) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Name))
	b.WriteString("\n\n")

	groups := []struct {
		title  string
		fields []string
	}{
		{"Base", []string{"background", "foreground", "cursor", "selection"}},
		{"ANSI", []string{"black", "red", "green", "yellow", "blue", "purple", "cyan", "white"}},
		{"Bright", []string{"brightBlack", "brightRed", "brightGreen", "brightYellow", "brightBlue", "brightPurple", "brightCyan", "brightWhite"}},
	}

	for i, group := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(group.title))
		b.WriteString("\n")
		for _, field := range group.fields {
			v, _ := t.Color(field)
			b.WriteString(swatchRow(field, v))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Palette renders a labeled swatch per palette role.
func Palette(p theme.Palette) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Palette"))
	b.WriteString("\n\n")
	for _, field := range theme.PaletteFields {
		v, _ := p.Color(field)
		b.WriteString(swatchRow(field, v))
		b.WriteString("\n")
	}
	return b.String()
}

// swatchRow renders one "label  #RRGGBB " line with the hex printed on
// its own color, using the contrast rule for legible text.
func swatchRow(label string, v color.Value) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(string(v))).
		Foreground(lipgloss.Color(string(v.ContrastText()))).
		Padding(0, 1).
		Render(string(v))
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), swatch)
}
