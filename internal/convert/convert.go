// Package convert maps between the 20-color terminal scheme and the
// 8-role widget palette.
//
// The two vocabularies do not line up, so both directions commit to a
// fixed mapping. Terminal-to-palette drops the twelve ANSI slots that
// have no role; palette-to-terminal synthesizes them back from the accent
// color, so the conversion is lossy but total and deterministic.
package convert

import (
	"github.com/hueshift/hueshift/internal/theme"
)

// ANSI hue anchors for synthesized accent colors, in degrees.
const (
	hueRed    = 0
	hueYellow = 60
	hueGreen  = 120
	huePurple = 300
)

// TerminalToPalette maps a terminal scheme onto the palette roles:
// blue becomes the primary accent and the selection color, cyan becomes
// secondary, and brightBlack covers the three neutral roles (border,
// hover, disabled). Every input field is normalized first.
func TerminalToPalette(t theme.TerminalTheme) theme.Palette {
	n := theme.TerminalFromMap(t.ToMap())
	return theme.Palette{
		Background: n.Background,
		Foreground: n.Foreground,
		Primary:    n.Blue,
		Secondary:  n.Cyan,
		Border:     n.BrightBlack,
		Hover:      n.BrightBlack,
		Selected:   n.Blue,
		Disabled:   n.BrightBlack,
	}
}

// PaletteToTerminal builds a full terminal scheme from a palette. The
// eight roles fill their counterparts from TerminalToPalette; the twelve
// remaining ANSI fields are synthesized: red, yellow, green and purple
// rotate the primary accent to fixed hue anchors, black and white derive
// from background and foreground, and bright variants are a fixed
// lightening of their base color. Every field is set.
func PaletteToTerminal(p theme.Palette, name string) theme.TerminalTheme {
	p = p.Normalized()

	red := p.Primary.WithHue(hueRed)
	green := p.Primary.WithHue(hueGreen)
	yellow := p.Primary.WithHue(hueYellow)
	purple := p.Primary.WithHue(huePurple)

	return theme.TerminalTheme{
		Name:         name,
		Background:   p.Background,
		Foreground:   p.Foreground,
		Cursor:       p.Foreground,
		Selection:    p.Selected,
		Black:        p.Background.Darken(0.2),
		Red:          red,
		Green:        green,
		Yellow:       yellow,
		Blue:         p.Primary,
		Purple:       purple,
		Cyan:         p.Secondary,
		White:        p.Foreground,
		BrightBlack:  p.Border,
		BrightRed:    red.Lighten(0.15),
		BrightGreen:  green.Lighten(0.15),
		BrightYellow: yellow.Lighten(0.15),
		BrightBlue:   p.Primary.Lighten(0.15),
		BrightPurple: purple.Lighten(0.15),
		BrightCyan:   p.Secondary.Lighten(0.15),
		BrightWhite:  p.Foreground.Lighten(0.15),
	}
}
