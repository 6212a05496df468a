// Package normalize strips structural noise from raw play text by running
// an ordered pipeline of named transformation rules.
package normalize

import (
	"strings"

	"github.com/bardlab/playscore/internal/rule"
	"github.com/bardlab/playscore/internal/rules/collapselines"
	"github.com/bardlab/playscore/internal/rules/stripspeakers"
	"github.com/bardlab/playscore/internal/rules/stripstructure"
)

// Pipeline applies rules in order and trims the result. Rule order
// matters: structural removal runs before speaker stripping, which runs
// before line-break collapsing, so that collapsing does not merge lines
// the earlier rules were meant to see.
type Pipeline struct {
	Rules []rule.Rule
}

// Default returns a pipeline with the standard rules in standard order.
func Default() *Pipeline {
	return &Pipeline{
		Rules: []rule.Rule{
			&stripstructure.Rule{},
			&stripspeakers.Rule{Indent: 2},
			&collapselines.Rule{Separator: "\n"},
		},
	}
}

// Normalize applies every rule in order, then trims leading and trailing
// whitespace. It never fails; input with nothing to remove comes back
// trimmed but otherwise unchanged.
func (p *Pipeline) Normalize(text string) string {
	for _, r := range p.Rules {
		text = r.Apply(text)
	}
	return strings.TrimSpace(text)
}
