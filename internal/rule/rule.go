package rule

// Rule is a single named text transformation applied during normalization.
// Apply must be pure: no side effects, same output for the same input.
type Rule interface {
	ID() string
	Name() string
	Apply(text string) string
}

// Configurable is implemented by rules that have user-tunable settings.
type Configurable interface {
	ApplySettings(settings map[string]any) error
	DefaultSettings() map[string]any
}
