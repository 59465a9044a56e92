package color

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected Value
	}{
		// Full hex, already canonical or lowercased
		{"#FF00AA", "#FF00AA"},
		{"#ff00aa", "#FF00AA"},
		{"  #abcdef  ", "#ABCDEF"},
		// Shorthand doubles each nibble
		{"#abc", "#AABBCC"},
		{"#F0A", "#FF00AA"},
		// Alpha suffix is truncated
		{"#FF00AA80", "#FF00AA"},
		{"#ff00aaff", "#FF00AA"},
		// rgb() with comma or space separators
		{"rgb(255, 0, 170)", "#FF00AA"},
		{"rgb(255,0,170)", "#FF00AA"},
		{"rgb(0 128 255)", "#0080FF"},
		{"rgb(999, 0, 0)", "#FF0000"},
		// Named colors
		{"black", "#000000"},
		{"WHITE", "#FFFFFF"},
		{"red", "#FF0000"},
		{"green", "#008000"},
		{"blue", "#0000FF"},
		{"yellow", "#FFFF00"},
		{"cyan", "#00FFFF"},
		{"magenta", "#FF00FF"},
		{"gray", "#808080"},
		{"grey", "#808080"},
		{"darkgray", "#A9A9A9"},
		{"lightgrey", "#D3D3D3"},
		{"transparent", "#000000"},
		{"none", "#000000"},
		// Tk-style gray shades
		{"gray0", "#000000"},
		{"gray100", "#FFFFFF"},
		{"gray50", "#808080"},
		{"gray92", "#EBEBEB"},
		// Malformed input falls back to black
		{"not a color", "#000000"},
		{"", "#000000"},
		{"#12", "#000000"},
		{"#12345", "#000000"},
		{"rgb(1,2)", "#000000"},
		{"gray999", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"#FF00AA", "#abc", "rgb(1,2,3)", "garbage", "", "white"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(string(once))
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
		if !IsValidHex(string(once)) {
			t.Errorf("Normalize(%q) = %q is not a strict hex color", input, once)
		}
	}
}

func TestIsValidHex(t *testing.T) {
	valid := []string{"#000000", "#FFFFFF", "#ff00aa", "#AbCdEf"}
	for _, s := range valid {
		if !IsValidHex(s) {
			t.Errorf("IsValidHex(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "#FFF", "#FF00AA80", "FF00AA", "#GG0000", "rgb(0,0,0)"}
	for _, s := range invalid {
		if IsValidHex(s) {
			t.Errorf("IsValidHex(%q) = true, want false", s)
		}
	}
}

func TestRGB(t *testing.T) {
	r, g, b := Value("#FF8000").RGB()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("RGB() = (%d, %d, %d), want (255, 128, 0)", r, g, b)
	}

	// Junk values resolve through normalization
	r, g, b = Value("bogus").RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("RGB() of junk = (%d, %d, %d), want (0, 0, 0)", r, g, b)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		value   Value
		h, s, l int
	}{
		{"#FF0000", 0, 100, 50},
		{"#00FF00", 120, 100, 50},
		{"#0000FF", 240, 100, 50},
		{"#FFFF00", 60, 100, 50},
		{"#FFFFFF", 0, 0, 100},
		{"#000000", 0, 0, 0},
		{"#808080", 0, 0, 50},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			h, s, l := tt.value.HSL()
			if h != tt.h || s != tt.s || l != tt.l {
				t.Errorf("HSL() = (%d, %d, %d), want (%d, %d, %d)", h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestContrastText(t *testing.T) {
	if got := Value("#000000").ContrastText(); got != "#FFFFFF" {
		t.Errorf("ContrastText on black = %q, want #FFFFFF", got)
	}
	if got := Value("#FFFFFF").ContrastText(); got != "#000000" {
		t.Errorf("ContrastText on white = %q, want #000000", got)
	}
	// Saturated yellow is bright despite mid-range channels
	if got := Value("#FFFF00").ContrastText(); got != "#000000" {
		t.Errorf("ContrastText on yellow = %q, want #000000", got)
	}
}

func TestLuminance(t *testing.T) {
	if got := Value("#FFFFFF").Luminance(); got < 0.999 {
		t.Errorf("Luminance(#FFFFFF) = %f, want 1.0", got)
	}
	if got := Value("#000000").Luminance(); got > 0.001 {
		t.Errorf("Luminance(#000000) = %f, want 0.0", got)
	}
}

func TestLightenDarken(t *testing.T) {
	base := Value("#808080")

	if got := base.Lighten(1.0); got != "#FFFFFF" {
		t.Errorf("Lighten(1.0) = %q, want #FFFFFF", got)
	}
	if got := base.Darken(1.0); got != "#000000" {
		t.Errorf("Darken(1.0) = %q, want #000000", got)
	}

	lighter := base.Lighten(0.2)
	if lighter.Luminance() <= base.Luminance() {
		t.Errorf("Lighten(0.2) did not increase luminance: %q -> %q", base, lighter)
	}
	darker := base.Darken(0.2)
	if darker.Luminance() >= base.Luminance() {
		t.Errorf("Darken(0.2) did not decrease luminance: %q -> %q", base, darker)
	}
}

func TestWithHue(t *testing.T) {
	red := Value("#FF0000")

	green := red.WithHue(120)
	if h, s, l := green.HSL(); h != 120 || s != 100 || l != 50 {
		t.Errorf("WithHue(120) = %q with HSL (%d, %d, %d), want (120, 100, 50)", green, h, s, l)
	}

	// Gray has no hue to rotate
	gray := Value("#808080").WithHue(240)
	if gray != "#808080" {
		t.Errorf("WithHue on gray = %q, want #808080", gray)
	}
}

func TestLookup(t *testing.T) {
	if v, ok := Lookup("White"); !ok || v != "#FFFFFF" {
		t.Errorf("Lookup(White) = %q, %v", v, ok)
	}
	if v, ok := Lookup("gray14"); !ok || v != "#242424" {
		t.Errorf("Lookup(gray14) = %q, %v", v, ok)
	}
	if _, ok := Lookup("mauve"); ok {
		t.Error("Lookup(mauve) should not resolve")
	}
}
