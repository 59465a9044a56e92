package qss

import (
	"regexp"

	"github.com/hueshift/hueshift/internal/theme"
)

// anyHexRe detects whether the text contains any color worth extracting.
var anyHexRe = regexp.MustCompile(`#[0-9A-Fa-f]{6}\b`)

// extractionRules are block-scoped property lookups applied in a fixed
// order. Each rule is independent: no match leaves the role at its
// default, multiple matches keep the last one found in the document.
// The [\s{;] boundary keeps "background-color" from matching inside
// "alternate-background-color" and "color" inside "background-color".
//
// secondary and disabled have no rule: the generated sheet gives neither
// role a recoverable slot, so extraction leaves them at their defaults.
var extractionRules = []struct {
	field string
	re    *regexp.Regexp
}{
	{"background", regexp.MustCompile(`QWidget\s*\{[^}]*[\s{;]background-color:\s*(#[0-9A-Fa-f]{6})`)},
	{"foreground", regexp.MustCompile(`QWidget\s*\{[^}]*[\s{;]color:\s*(#[0-9A-Fa-f]{6})`)},
	{"primary", regexp.MustCompile(`QPushButton\s*\{[^}]*[\s{;]background-color:\s*(#[0-9A-Fa-f]{6})`)},
	{"hover", regexp.MustCompile(`:hover[^{]*\{[^}]*[\s{;]background-color:\s*(#[0-9A-Fa-f]{6})`)},
	{"selected", regexp.MustCompile(`::item:selected[^{]*\{[^}]*[\s{;]background-color:\s*(#[0-9A-Fa-f]{6})`)},
	{"border", regexp.MustCompile(`border[^:;{}]*:[^;{}]*(#[0-9A-Fa-f]{6})`)},
}

// Extract recovers a palette from arbitrary stylesheet text. The process
// is heuristic and lossy: human-edited sheets rarely carry a clean role
// structure, so each rule fishes for one conventional pattern and misses
// silently. Extract never fails; text with no hex colors at
// all yields the default palette unchanged.
func Extract(text string) theme.Palette {
	p := theme.DefaultPalette()
	if !anyHexRe.MatchString(text) {
		return p
	}

	for _, rule := range extractionRules {
		matches := rule.re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		p.SetColor(rule.field, matches[len(matches)-1][1])
	}

	return p
}
