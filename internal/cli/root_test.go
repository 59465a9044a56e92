package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hueshift/hueshift/internal/color"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadPaletteFileNormalizes(t *testing.T) {
	path := writeFile(t, "palette.json", `{"background": "#fff", "primary": "rgb(0, 120, 212)"}`)

	p, err := readPaletteFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Background != "#FFFFFF" {
		t.Errorf("background = %s, want #FFFFFF", p.Background)
	}
	if p.Primary != "#0078D4" {
		t.Errorf("primary = %s, want #0078D4", p.Primary)
	}
	// Keys the file omits keep their defaults.
	if p.Border != "#CCCCCC" {
		t.Errorf("border = %s, want default #CCCCCC", p.Border)
	}
}

func TestReadPaletteFileErrors(t *testing.T) {
	if _, err := readPaletteFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeFile(t, "bad.json", "not json")
	if _, err := readPaletteFile(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestReadTerminalThemeFileNameFallback(t *testing.T) {
	path := writeFile(t, "gruvbox-dark.json", `{"background": "#282828"}`)

	theme, err := readTerminalThemeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if theme.Name != "gruvbox-dark" {
		t.Errorf("name = %q, want file stem", theme.Name)
	}
	if theme.Background != "#282828" {
		t.Errorf("background = %s, want #282828", theme.Background)
	}
	if theme.Foreground != color.Fallback {
		t.Errorf("foreground = %s, want fallback", theme.Foreground)
	}
}

func TestReadTerminalThemeFileExplicitName(t *testing.T) {
	path := writeFile(t, "t.json", `{"name": "Gruvbox Dark", "background": "#282828"}`)

	theme, err := readTerminalThemeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if theme.Name != "Gruvbox Dark" {
		t.Errorf("name = %q, want Gruvbox Dark", theme.Name)
	}
}
