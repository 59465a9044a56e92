// Package color normalizes and inspects theme color values.
//
// The canonical representation is an uppercase 6-digit hex string with a
// leading '#'. Normalization is total: anything unrecognized collapses to
// Fallback instead of producing an error, which keeps the generation and
// extraction pipelines free of failure paths. Validation is a separate,
// strict check for callers that want to reject bad input.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Value is a canonical color: uppercase #RRGGBB.
type Value string

// Fallback is the canonical value for unrecognized input.
const Fallback = Value("#000000")

var (
	strictHexRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	shortHexRe  = regexp.MustCompile(`^#[0-9A-F]{3}$`)
	longHexRe   = regexp.MustCompile(`^#[0-9A-F]{6}$`)
	alphaHexRe  = regexp.MustCompile(`^#[0-9A-F]{8}$`)
	rgbFuncRe   = regexp.MustCompile(`^RGB\(\s*(\d+)\s*[,\s]\s*(\d+)\s*[,\s]\s*(\d+)\s*\)$`)
	grayShadeRe = regexp.MustCompile(`^(?:gray|grey)(\d{1,3})$`)
)

// namedColors maps the supported CSS color keywords to canonical values.
// transparent and none have no hex equivalent and collapse to Fallback.
var namedColors = map[string]Value{
	"transparent": Fallback,
	"none":        Fallback,
	"black":       "#000000",
	"white":       "#FFFFFF",
	"red":         "#FF0000",
	"green":       "#008000",
	"blue":        "#0000FF",
	"yellow":      "#FFFF00",
	"cyan":        "#00FFFF",
	"magenta":     "#FF00FF",
	"gray":        "#808080",
	"grey":        "#808080",
	"darkgray":    "#A9A9A9",
	"darkgrey":    "#A9A9A9",
	"lightgray":   "#D3D3D3",
	"lightgrey":   "#D3D3D3",
}

// namedColorOrder fixes iteration order for substring searches. Longer
// names come first so "darkgray" is not shadowed by "gray".
var namedColorOrder = []string{
	"transparent",
	"lightgray", "lightgrey",
	"darkgray", "darkgrey",
	"magenta",
	"yellow",
	"black", "white", "green",
	"gray", "grey",
	"cyan", "blue", "none",
	"red",
}

// Normalize converts a color in any supported notation to canonical form.
// Notations are tried in a fixed order: #RGB shorthand, #RRGGBB, #RRGGBBAA
// (alpha truncated), rgb(r,g,b), named colors, then gray shades. Anything
// else becomes Fallback. Normalize never fails.
func Normalize(input string) Value {
	s := strings.ToUpper(strings.TrimSpace(input))

	switch {
	case shortHexRe.MatchString(s):
		r, g, b := s[1], s[2], s[3]
		return Value(fmt.Sprintf("#%c%c%c%c%c%c", r, r, g, g, b, b))
	case longHexRe.MatchString(s):
		return Value(s)
	case alphaHexRe.MatchString(s):
		return Value(s[:7])
	}

	if m := rgbFuncRe.FindStringSubmatch(s); m != nil {
		return Value(fmt.Sprintf("#%02X%02X%02X",
			clampChannel(m[1]), clampChannel(m[2]), clampChannel(m[3])))
	}

	lower := strings.ToLower(s)
	if v, ok := namedColors[lower]; ok {
		return v
	}
	if m := grayShadeRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n <= 100 {
			c := (n*255 + 50) / 100
			return Value(fmt.Sprintf("#%02X%02X%02X", c, c, c))
		}
	}

	return Fallback
}

// Lookup resolves a named color keyword. The match is case-insensitive
// and includes Tk-style gray shades (gray0..gray100).
func Lookup(name string) (Value, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if v, ok := namedColors[lower]; ok {
		return v, true
	}
	if m := grayShadeRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n <= 100 {
			c := (n*255 + 50) / 100
			return Value(fmt.Sprintf("#%02X%02X%02X", c, c, c)), true
		}
	}
	return "", false
}

// Names returns the supported color keywords in a fixed search order.
func Names() []string {
	out := make([]string, len(namedColorOrder))
	copy(out, namedColorOrder)
	return out
}

// IsValidHex reports whether s is a strict #RRGGBB color. Unlike
// Normalize it accepts nothing else; use it to gate saves and edits.
func IsValidHex(s string) bool {
	return strictHexRe.MatchString(s)
}

// RGB returns the 8-bit channels. Non-canonical values are normalized
// first, so the result is always defined.
func (v Value) RGB() (r, g, b uint8) {
	s := string(v)
	if !IsValidHex(s) {
		s = string(Normalize(s))
	}
	pr, _ := strconv.ParseUint(s[1:3], 16, 8)
	pg, _ := strconv.ParseUint(s[3:5], 16, 8)
	pb, _ := strconv.ParseUint(s[5:7], 16, 8)
	return uint8(pr), uint8(pg), uint8(pb)
}

// HSL returns hue (0..360), saturation (0..100) and lightness (0..100).
// Achromatic colors report hue 0 and saturation 0.
func (v Value) HSL() (h, s, l int) {
	hf, sf, lf := v.colorful().Hsl()
	return int(hf + 0.5), int(sf*100 + 0.5), int(lf*100 + 0.5)
}

// Luminance returns the ITU-R BT.709 relative luminance in 0..1.
func (v Value) Luminance() float64 {
	r, g, b := v.RGB()
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
}

// ContrastText returns black or white, whichever reads better on v.
func (v Value) ContrastText() Value {
	if v.Luminance() > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}

// Lighten raises lightness by amount (0..1), clamped to white.
func (v Value) Lighten(amount float64) Value {
	h, s, l := v.colorful().Hsl()
	return fromHsl(h, s, l+amount)
}

// Darken lowers lightness by amount (0..1), clamped to black.
func (v Value) Darken(amount float64) Value {
	h, s, l := v.colorful().Hsl()
	return fromHsl(h, s, l-amount)
}

// WithHue replaces the hue while keeping saturation and lightness.
func (v Value) WithHue(degrees float64) Value {
	_, s, l := v.colorful().Hsl()
	return fromHsl(degrees, s, l)
}

func (v Value) colorful() colorful.Color {
	r, g, b := v.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromHsl(h, s, l float64) Value {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return Normalize(colorful.Hsl(h, s, l).Clamped().Hex())
}

func clampChannel(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n > 255 {
		return 255
	}
	return n
}
