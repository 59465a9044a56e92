// Package declaration parses and serializes "key: value;" style
// declaration blocks, the free-text fragments a widget theme associates
// with each selector.
package declaration

import (
	"regexp"
	"strings"

	"github.com/hueshift/hueshift/internal/color"
)

// Properties is an ordered set of declaration properties. Insertion order
// is preserved; setting an existing key updates the value in place.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties returns an empty property set.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Parse splits a declaration block into an ordered property set.
// Segments are separated by ';'; each segment splits on its first ':'.
// Segments without a ':' are dropped, duplicate keys keep their first
// position with the last value. Parse never fails; garbage yields an
// empty set.
func Parse(text string) *Properties {
	props := NewProperties()
	for _, segment := range strings.Split(text, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, value, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		props.Set(key, strings.TrimSpace(value))
	}
	return props
}

// Serialize joins the properties as "key: value" pairs separated by "; ",
// with no trailing semicolon. Serializing a parsed block is semantically
// equivalent to the input; parsing a serialized set returns an equal set.
func (p *Properties) Serialize() string {
	parts := make([]string, 0, len(p.keys))
	for _, key := range p.keys {
		parts = append(parts, key+": "+p.values[key])
	}
	return strings.Join(parts, "; ")
}

// Set stores a property, appending the key if new.
func (p *Properties) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for a key.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Remove deletes a key and reports whether it was present.
func (p *Properties) Remove(key string) bool {
	if _, ok := p.values[key]; !ok {
		return false
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the property names in order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.keys)
}

// Equal reports whether two property sets hold the same keys in the same
// order with the same values.
func (p *Properties) Equal(other *Properties) bool {
	if p.Len() != other.Len() {
		return false
	}
	for i, key := range p.keys {
		if other.keys[i] != key {
			return false
		}
		if p.values[key] != other.values[key] {
			return false
		}
	}
	return true
}

var hexTokenRe = regexp.MustCompile(`#[0-9A-Fa-f]{6}\b|#[0-9A-Fa-f]{3}\b`)

// ExtractColorToken pulls a color out of a property value that may be a
// bare color or a compound like "5px solid #D5A200". The first hex token
// wins; otherwise named-color substrings are tried. It reports false when
// the value carries no recognizable color, which lets editors show a
// color picker only for color-shaped values.
func ExtractColorToken(value string) (color.Value, bool) {
	if token := hexTokenRe.FindString(value); token != "" {
		return color.Normalize(token), true
	}

	lower := strings.ToLower(value)
	for _, name := range color.Names() {
		if strings.Contains(lower, name) {
			v, _ := color.Lookup(name)
			return v, true
		}
	}

	return "", false
}
