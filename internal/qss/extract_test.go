package qss

import (
	"testing"

	"github.com/hueshift/hueshift/internal/theme"
)

func TestExtractEmptyInput(t *testing.T) {
	for _, text := range []string{"", "QWidget { font-size: 10pt; }", "no colors here"} {
		if got := Extract(text); got != theme.DefaultPalette() {
			t.Errorf("Extract(%q) = %+v, want default palette", text, got)
		}
	}
}

func TestExtractGenerateRoundTrip(t *testing.T) {
	// All-distinct values so a wrong assignment cannot pass by accident.
	p := theme.Palette{
		Background: "#111111",
		Foreground: "#222222",
		Primary:    "#333333",
		Secondary:  "#444444",
		Border:     "#555555",
		Hover:      "#666666",
		Selected:   "#777777",
		Disabled:   "#888888",
	}

	got := Extract(Generate(p))

	for _, field := range []string{"background", "foreground", "primary", "hover", "selected", "border"} {
		want, _ := p.Color(field)
		have, _ := got.Color(field)
		if have != want {
			t.Errorf("round trip %s = %q, want %q", field, have, want)
		}
	}

	// secondary and disabled have no extraction rule and stay at defaults
	defaults := theme.DefaultPalette()
	if got.Secondary != defaults.Secondary {
		t.Errorf("secondary = %q, want default %q", got.Secondary, defaults.Secondary)
	}
	if got.Disabled != defaults.Disabled {
		t.Errorf("disabled = %q, want default %q", got.Disabled, defaults.Disabled)
	}
}

func TestExtractPartialInput(t *testing.T) {
	text := `QWidget {
    background-color: #282828;
    color: #EBDBB2;
}`
	got := Extract(text)

	if got.Background != "#282828" {
		t.Errorf("background = %q, want #282828", got.Background)
	}
	if got.Foreground != "#EBDBB2" {
		t.Errorf("foreground = %q, want #EBDBB2", got.Foreground)
	}
	// Unmatched roles keep their defaults
	defaults := theme.DefaultPalette()
	if got.Primary != defaults.Primary {
		t.Errorf("primary = %q, want default %q", got.Primary, defaults.Primary)
	}
	if got.Hover != defaults.Hover {
		t.Errorf("hover = %q, want default %q", got.Hover, defaults.Hover)
	}
}

func TestExtractLastMatchWins(t *testing.T) {
	text := `QWidget {
    background-color: #111111;
}

QWidget {
    background-color: #999999;
}`
	if got := Extract(text); got.Background != "#999999" {
		t.Errorf("background = %q, want last match #999999", got.Background)
	}
}

func TestExtractLowercaseHexNormalized(t *testing.T) {
	text := `QWidget { background-color: #abcdef; color: #fedcba; }`
	got := Extract(text)
	if got.Background != "#ABCDEF" {
		t.Errorf("background = %q, want #ABCDEF", got.Background)
	}
	if got.Foreground != "#FEDCBA" {
		t.Errorf("foreground = %q, want #FEDCBA", got.Foreground)
	}
}

func TestExtractCompactBlocks(t *testing.T) {
	text := `QWidget{background-color:#101010;color:#E0E0E0}
QPushButton{background-color:#458588}
QListWidget::item:selected{background-color:#504945}
QPushButton:hover{background-color:#3C3836}
QLabel{border:1px solid #928374}`

	got := Extract(text)
	if got.Background != "#101010" {
		t.Errorf("background = %q, want #101010", got.Background)
	}
	if got.Foreground != "#E0E0E0" {
		t.Errorf("foreground = %q, want #E0E0E0", got.Foreground)
	}
	if got.Primary != "#458588" {
		t.Errorf("primary = %q, want #458588", got.Primary)
	}
	if got.Selected != "#504945" {
		t.Errorf("selected = %q, want #504945", got.Selected)
	}
	if got.Hover != "#3C3836" {
		t.Errorf("hover = %q, want #3C3836", got.Hover)
	}
	if got.Border != "#928374" {
		t.Errorf("border = %q, want #928374", got.Border)
	}
}

func TestExtractAlternateBackgroundIgnored(t *testing.T) {
	// alternate-background-color must not be mistaken for the base
	// background of a block.
	text := `QWidget {
    background-color: #111111;
    alternate-background-color: #EEEEEE;
    color: #DDDDDD;
}`
	got := Extract(text)
	if got.Background != "#111111" {
		t.Errorf("background = %q, want #111111", got.Background)
	}
	if got.Foreground != "#DDDDDD" {
		t.Errorf("foreground = %q, want #DDDDDD", got.Foreground)
	}
}

func TestExtractMalformedInputNoPanic(t *testing.T) {
	inputs := []string{
		"QWidget { background-color: #123",
		"}{}{}{#aabbcc",
		"QPushButton QWidget { color }",
		"background-color: #FF0000;", // no selector at all
	}
	for _, text := range inputs {
		got := Extract(text) // must not panic
		if err := got.Validate(); err != nil {
			t.Errorf("Extract(%q) produced invalid palette: %v", text, err)
		}
	}
}
