package theme

import (
	"encoding/json"
	"sort"
)

// WidgetTheme maps widget selectors to free-form declaration blocks.
// Selector keys are opaque: nothing restricts them to the known selector
// catalog, so new widget types can be styled without code changes.
// Insertion order is preserved.
type WidgetTheme struct {
	Name string

	selectors []string
	styles    map[string]string
}

// NewWidgetTheme returns an empty widget theme.
func NewWidgetTheme(name string) *WidgetTheme {
	return &WidgetTheme{
		Name:   name,
		styles: make(map[string]string),
	}
}

// WidgetThemeFromMap builds a widget theme from a plain map. Selectors are
// ordered lexically since the map carries no order of its own.
func WidgetThemeFromMap(name string, styles map[string]string) *WidgetTheme {
	w := NewWidgetTheme(name)
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.Set(k, styles[k])
	}
	return w
}

// Set stores the declaration block for a selector, appending the selector
// if it is new and overwriting in place if it already exists.
func (w *WidgetTheme) Set(selector, block string) {
	if _, ok := w.styles[selector]; !ok {
		w.selectors = append(w.selectors, selector)
	}
	w.styles[selector] = block
}

// Get returns the declaration block for a selector.
func (w *WidgetTheme) Get(selector string) (string, bool) {
	block, ok := w.styles[selector]
	return block, ok
}

// Remove deletes a selector and reports whether it was present.
func (w *WidgetTheme) Remove(selector string) bool {
	if _, ok := w.styles[selector]; !ok {
		return false
	}
	delete(w.styles, selector)
	for i, s := range w.selectors {
		if s == selector {
			w.selectors = append(w.selectors[:i], w.selectors[i+1:]...)
			break
		}
	}
	return true
}

// Selectors returns the selector keys in insertion order.
func (w *WidgetTheme) Selectors() []string {
	out := make([]string, len(w.selectors))
	copy(out, w.selectors)
	return out
}

// Len returns the number of styled selectors.
func (w *WidgetTheme) Len() int {
	return len(w.selectors)
}

// Clone returns a deep copy under a new name. Edits to the copy never
// touch the original.
func (w *WidgetTheme) Clone(name string) *WidgetTheme {
	out := NewWidgetTheme(name)
	for _, selector := range w.selectors {
		out.Set(selector, w.styles[selector])
	}
	return out
}

// ToMap returns the styles as a plain map.
func (w *WidgetTheme) ToMap() map[string]string {
	out := make(map[string]string, len(w.styles))
	for k, v := range w.styles {
		out[k] = v
	}
	return out
}

type widgetThemeJSON struct {
	Name   string            `json:"name"`
	Styles map[string]string `json:"styles"`
}

// MarshalJSON encodes the theme as {"name": ..., "styles": {...}}.
func (w *WidgetTheme) MarshalJSON() ([]byte, error) {
	return json.Marshal(widgetThemeJSON{Name: w.Name, Styles: w.ToMap()})
}

// UnmarshalJSON decodes the JSON object form. Selector order is lexical,
// as JSON objects carry none.
func (w *WidgetTheme) UnmarshalJSON(data []byte) error {
	var raw widgetThemeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = *WidgetThemeFromMap(raw.Name, raw.Styles)
	return nil
}
