package theme

import "github.com/hueshift/hueshift/internal/color"

// PaletteFields lists the palette roles in canonical order.
var PaletteFields = []string{
	"background",
	"foreground",
	"primary",
	"secondary",
	"border",
	"hover",
	"selected",
	"disabled",
}

// Palette is the 8-role abstract color set a stylesheet is synthesized
// from. Roles, not widgets: primary is the accent used for buttons,
// progress chunks and scrollbar handles; hover and selected style the
// matching interaction states.
type Palette struct {
	Background color.Value `json:"background"`
	Foreground color.Value `json:"foreground"`
	Primary    color.Value `json:"primary"`
	Secondary  color.Value `json:"secondary"`
	Border     color.Value `json:"border"`
	Hover      color.Value `json:"hover"`
	Selected   color.Value `json:"selected"`
	Disabled   color.Value `json:"disabled"`
}

// DefaultPalette returns the baseline light palette.
func DefaultPalette() Palette {
	return Palette{
		Background: "#FFFFFF",
		Foreground: "#000000",
		Primary:    "#0078D4",
		Secondary:  "#6C757D",
		Border:     "#CCCCCC",
		Hover:      "#E5E5E5",
		Selected:   "#0078D4",
		Disabled:   "#999999",
	}
}

// PaletteFromMap builds a palette from a string map, normalizing every
// present entry. Missing keys keep their default.
func PaletteFromMap(data map[string]string) Palette {
	p := DefaultPalette()
	for _, field := range PaletteFields {
		if raw, ok := data[field]; ok {
			p.SetColor(field, raw)
		}
	}
	return p
}

// ToMap returns the palette as a string map keyed by role name.
func (p Palette) ToMap() map[string]string {
	out := make(map[string]string, len(PaletteFields))
	for _, field := range PaletteFields {
		v, _ := p.Color(field)
		out[field] = string(v)
	}
	return out
}

// Color returns the value of the named role.
func (p *Palette) Color(field string) (color.Value, bool) {
	ptr := p.fieldPtr(field)
	if ptr == nil {
		return "", false
	}
	return *ptr, true
}

// SetColor normalizes raw and stores it in the named role.
func (p *Palette) SetColor(field, raw string) bool {
	ptr := p.fieldPtr(field)
	if ptr == nil {
		return false
	}
	*ptr = color.Normalize(raw)
	return true
}

// Validate checks every role against the strict #RRGGBB format and
// returns a ValidationError for the first role that fails, nil otherwise.
func (p Palette) Validate() error {
	for _, field := range PaletteFields {
		v, _ := p.Color(field)
		if !color.IsValidHex(string(v)) {
			return &ValidationError{Field: field, Value: string(v)}
		}
	}
	return nil
}

// Normalized returns a copy with every role passed through color
// normalization, so downstream consumers can rely on canonical values.
func (p Palette) Normalized() Palette {
	out := p
	for _, field := range PaletteFields {
		v, _ := p.Color(field)
		out.SetColor(field, string(v))
	}
	return out
}

func (p *Palette) fieldPtr(field string) *color.Value {
	switch field {
	case "background":
		return &p.Background
	case "foreground":
		return &p.Foreground
	case "primary":
		return &p.Primary
	case "secondary":
		return &p.Secondary
	case "border":
		return &p.Border
	case "hover":
		return &p.Hover
	case "selected":
		return &p.Selected
	case "disabled":
		return &p.Disabled
	}
	return nil
}
