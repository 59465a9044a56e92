// Package theme defines the theme representations handled by hueshift: the
// 20-color terminal scheme, the 8-role widget palette, and the open-ended
// widget style map.
package theme

import (
	"fmt"

	"github.com/hueshift/hueshift/internal/color"
)

// TerminalFields lists the terminal color fields in canonical order.
// Validation and map round-trips iterate in this order.
var TerminalFields = []string{
	"background",
	"foreground",
	"cursor",
	"selection",
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"purple",
	"cyan",
	"white",
	"brightBlack",
	"brightRed",
	"brightGreen",
	"brightYellow",
	"brightBlue",
	"brightPurple",
	"brightCyan",
	"brightWhite",
}

// TerminalTheme is a named terminal color scheme: four base colors, the
// eight ANSI colors and their bright variants.
type TerminalTheme struct {
	Name         string      `json:"name"`
	Background   color.Value `json:"background"`
	Foreground   color.Value `json:"foreground"`
	Cursor       color.Value `json:"cursor"`
	Selection    color.Value `json:"selection"`
	Black        color.Value `json:"black"`
	Red          color.Value `json:"red"`
	Green        color.Value `json:"green"`
	Yellow       color.Value `json:"yellow"`
	Blue         color.Value `json:"blue"`
	Purple       color.Value `json:"purple"`
	Cyan         color.Value `json:"cyan"`
	White        color.Value `json:"white"`
	BrightBlack  color.Value `json:"brightBlack"`
	BrightRed    color.Value `json:"brightRed"`
	BrightGreen  color.Value `json:"brightGreen"`
	BrightYellow color.Value `json:"brightYellow"`
	BrightBlue   color.Value `json:"brightBlue"`
	BrightPurple color.Value `json:"brightPurple"`
	BrightCyan   color.Value `json:"brightCyan"`
	BrightWhite  color.Value `json:"brightWhite"`
}

// TerminalFromMap builds a theme from a string map, normalizing every
// color field. Missing or malformed entries become the color fallback.
// The optional "name" key sets the theme name.
func TerminalFromMap(data map[string]string) TerminalTheme {
	var t TerminalTheme
	t.Name = data["name"]
	for _, field := range TerminalFields {
		t.SetColor(field, data[field])
	}
	return t
}

// ToMap returns the theme as a string map keyed by field name, with the
// name under "name". The inverse of TerminalFromMap.
func (t TerminalTheme) ToMap() map[string]string {
	out := make(map[string]string, len(TerminalFields)+1)
	out["name"] = t.Name
	for _, field := range TerminalFields {
		v, _ := t.Color(field)
		out[field] = string(v)
	}
	return out
}

// Color returns the value of the named field.
func (t *TerminalTheme) Color(field string) (color.Value, bool) {
	p := t.fieldPtr(field)
	if p == nil {
		return "", false
	}
	return *p, true
}

// SetColor normalizes raw and stores it in the named field. It reports
// whether the field exists; the stored value is always canonical.
func (t *TerminalTheme) SetColor(field, raw string) bool {
	p := t.fieldPtr(field)
	if p == nil {
		return false
	}
	*p = color.Normalize(raw)
	return true
}

// Validate checks every color field against the strict #RRGGBB format and
// returns a ValidationError for the first field that fails, nil otherwise.
func (t TerminalTheme) Validate() error {
	for _, field := range TerminalFields {
		v, _ := t.Color(field)
		if !color.IsValidHex(string(v)) {
			return &ValidationError{Field: field, Value: string(v)}
		}
	}
	return nil
}

func (t *TerminalTheme) fieldPtr(field string) *color.Value {
	switch field {
	case "background":
		return &t.Background
	case "foreground":
		return &t.Foreground
	case "cursor":
		return &t.Cursor
	case "selection":
		return &t.Selection
	case "black":
		return &t.Black
	case "red":
		return &t.Red
	case "green":
		return &t.Green
	case "yellow":
		return &t.Yellow
	case "blue":
		return &t.Blue
	case "purple":
		return &t.Purple
	case "cyan":
		return &t.Cyan
	case "white":
		return &t.White
	case "brightBlack":
		return &t.BrightBlack
	case "brightRed":
		return &t.BrightRed
	case "brightGreen":
		return &t.BrightGreen
	case "brightYellow":
		return &t.BrightYellow
	case "brightBlue":
		return &t.BrightBlue
	case "brightPurple":
		return &t.BrightPurple
	case "brightCyan":
		return &t.BrightCyan
	case "brightWhite":
		return &t.BrightWhite
	}
	return nil
}

// ValidationError reports the first theme field that failed the strict
// hex color check.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid color for %q: %s (expected #RRGGBB)", e.Field, e.Value)
}
