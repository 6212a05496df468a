package rule

var registry []Rule

// Register adds a rule to the global registry. Registration order is the
// order rules are applied in, so rule packages must be imported in
// pipeline order.
func Register(r Rule) {
	registry = append(registry, r)
}

// All returns a copy of all registered rules in registration order.
func All() []Rule {
	result := make([]Rule, len(registry))
	copy(result, registry)
	return result
}

// ByName returns the registered rule with the given name, or nil.
func ByName(name string) Rule {
	for _, r := range registry {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Reset clears the registry. Used for testing.
func Reset() {
	registry = nil
}
