package qss

import (
	"strings"

	"github.com/hueshift/hueshift/internal/declaration"
	"github.com/hueshift/hueshift/internal/theme"
)

// RenderWidgetTheme serializes widget overrides as stylesheet text.
// Selectors keep their insertion order and each block is reparsed so the
// output uses one canonical "key: value;" form regardless of how the
// block was written.
func RenderWidgetTheme(w *theme.WidgetTheme) string {
	if w == nil || w.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for _, selector := range w.Selectors() {
		block, _ := w.Get(selector)
		props := declaration.Parse(block)
		if props.Len() == 0 {
			continue
		}

		b.WriteString(selector)
		b.WriteString(" {\n")
		for _, key := range props.Keys() {
			value, _ := props.Get(key)
			b.WriteString("    ")
			b.WriteString(key)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString(";\n")
		}
		b.WriteString("}\n\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// GenerateWithOverrides builds the palette stylesheet and appends widget
// overrides after it, so the overrides win under Qt's cascade rules.
func GenerateWithOverrides(p theme.Palette, w *theme.WidgetTheme) string {
	base := Generate(p)
	overrides := RenderWidgetTheme(w)
	if overrides == "" {
		return base
	}
	return base + "\n" + overrides
}
