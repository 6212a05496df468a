// Package collapselines collapses runs of carriage-return and line-feed
// characters into a single line separator.
package collapselines

import (
	"fmt"
	"regexp"

	"github.com/bardlab/playscore/internal/rule"
)

func init() {
	rule.Register(&Rule{Separator: "\n"})
}

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Rule collapses any run of CR/LF characters into Separator
// (default: "\n").
type Rule struct {
	Separator string
}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "PS003" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "collapse-linebreaks" }

// separator returns the effective separator.
func (r *Rule) separator() string {
	if r.Separator == "" {
		return "\n"
	}
	return r.Separator
}

// Apply implements rule.Rule.
func (r *Rule) Apply(text string) string {
	return lineBreaks.ReplaceAllString(text, r.separator())
}

// ApplySettings implements rule.Configurable.
func (r *Rule) ApplySettings(settings map[string]any) error {
	for k, v := range settings {
		switch k {
		case "separator":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("collapse-linebreaks: separator must be a string, got %T", v)
			}
			if s == "" {
				return fmt.Errorf("collapse-linebreaks: separator must not be empty")
			}
			r.Separator = s
		default:
			return fmt.Errorf("collapse-linebreaks: unknown setting %q", k)
		}
	}
	return nil
}

// DefaultSettings implements rule.Configurable.
func (r *Rule) DefaultSettings() map[string]any {
	return map[string]any{
		"separator": "\n",
	}
}

var _ rule.Configurable = (*Rule)(nil)
