// Package stripstructure removes structural noise from raw play text:
// act and scene headers, bracketed stage directions, and line numbers.
package stripstructure

import (
	"regexp"

	"github.com/bardlab/playscore/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// structural matches, case-insensitively: act headers ("ACT IV."), scene
// headers ("Scene II." and bare "SCENE."), bracketed stage directions
// (shortest match, never across a newline), and standalone line numbers
// followed by a period.
var structural = regexp.MustCompile(
	`(?i)(ACT [IVX]+\.|Scene [IVX]+\.|\[.*?\]|\d+\.|SCENE\.)`,
)

// Rule removes act/scene headers, stage directions, and line numbers.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "PS001" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "strip-structure" }

// Apply implements rule.Rule.
func (r *Rule) Apply(text string) string {
	return structural.ReplaceAllString(text, "")
}
