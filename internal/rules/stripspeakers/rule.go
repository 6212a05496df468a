// Package stripspeakers removes speaker-name prefixes from play text,
// keeping only the spoken lines. A speaker prefix is an indented run of
// letters followed by a period at the start of a line ("  HAMLET.").
package stripspeakers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bardlab/playscore/internal/rule"
)

func init() {
	rule.Register(&Rule{Indent: 2})
}

// Rule removes speaker-name prefixes. Indent is the exact number of
// leading spaces a speaker line carries (default: 2).
type Rule struct {
	Indent int

	pattern *regexp.Regexp
	indent  int
}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "PS002" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "strip-speakers" }

// effectiveIndent returns the configured indent, defaulting to 2.
func (r *Rule) effectiveIndent() int {
	if r.Indent <= 0 {
		return 2
	}
	return r.Indent
}

// speakerPattern compiles (and caches) the prefix pattern for the
// effective indent.
func (r *Rule) speakerPattern() *regexp.Regexp {
	indent := r.effectiveIndent()
	if r.pattern == nil || r.indent != indent {
		r.pattern = regexp.MustCompile(
			`(?m)^` + strings.Repeat(" ", indent) + `[A-Za-z]+\.`,
		)
		r.indent = indent
	}
	return r.pattern
}

// Apply implements rule.Rule.
func (r *Rule) Apply(text string) string {
	return r.speakerPattern().ReplaceAllString(text, "")
}

// ApplySettings implements rule.Configurable.
func (r *Rule) ApplySettings(settings map[string]any) error {
	for k, v := range settings {
		switch k {
		case "indent":
			n, ok := toInt(v)
			if !ok {
				return fmt.Errorf("strip-speakers: indent must be an integer, got %T", v)
			}
			if n < 1 {
				return fmt.Errorf("strip-speakers: indent must be at least 1, got %d", n)
			}
			r.Indent = n
		default:
			return fmt.Errorf("strip-speakers: unknown setting %q", k)
		}
	}
	return nil
}

// DefaultSettings implements rule.Configurable.
func (r *Rule) DefaultSettings() map[string]any {
	return map[string]any{
		"indent": 2,
	}
}

// toInt converts a value to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}

var _ rule.Configurable = (*Rule)(nil)
