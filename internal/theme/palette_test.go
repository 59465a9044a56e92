package theme

import (
	"errors"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	expected := map[string]string{
		"background": "#FFFFFF",
		"foreground": "#000000",
		"primary":    "#0078D4",
		"secondary":  "#6C757D",
		"border":     "#CCCCCC",
		"hover":      "#E5E5E5",
		"selected":   "#0078D4",
		"disabled":   "#999999",
	}

	got := p.ToMap()
	for field, want := range expected {
		if got[field] != want {
			t.Errorf("default %s = %q, want %q", field, got[field], want)
		}
	}

	if err := p.Validate(); err != nil {
		t.Errorf("default palette invalid: %v", err)
	}
}

func TestPaletteFromMap(t *testing.T) {
	p := PaletteFromMap(map[string]string{
		"background": "#282828",
		"primary":    "rgb(69, 133, 136)",
	})

	if p.Background != "#282828" {
		t.Errorf("Background = %q, want #282828", p.Background)
	}
	if p.Primary != "#458588" {
		t.Errorf("Primary = %q, want #458588", p.Primary)
	}
	// Absent roles keep their defaults
	if p.Foreground != "#000000" {
		t.Errorf("Foreground = %q, want default #000000", p.Foreground)
	}
	if p.Disabled != "#999999" {
		t.Errorf("Disabled = %q, want default #999999", p.Disabled)
	}
}

func TestPaletteValidate(t *testing.T) {
	p := DefaultPalette()
	p.Hover = "nope"

	err := p.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() returned %T, want *ValidationError", err)
	}
	if verr.Field != "hover" {
		t.Errorf("ValidationError.Field = %q, want hover", verr.Field)
	}
}

func TestPaletteNormalized(t *testing.T) {
	p := Palette{
		Background: "#abc",
		Primary:    "garbage",
	}
	n := p.Normalized()

	if n.Background != "#AABBCC" {
		t.Errorf("Background = %q, want #AABBCC", n.Background)
	}
	if n.Primary != "#000000" {
		t.Errorf("Primary = %q, want #000000", n.Primary)
	}
	if err := n.Validate(); err != nil {
		t.Errorf("normalized palette invalid: %v", err)
	}
}
