package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	// Rules maps normalization rule names to their configuration.
	Rules map[string]RuleCfg `yaml:"rules"`
	// Ignore lists glob patterns for document titles to skip.
	Ignore []string `yaml:"ignore"`
	// Format selects the report output format: "text" or "json".
	Format string `yaml:"format"`
}

// RuleCfg is a YAML union: can be bool (enable/disable) or map[string]any
// (settings).
type RuleCfg struct {
	Enabled  bool
	Settings map[string]any
}

// UnmarshalYAML implements custom YAML unmarshalling for RuleCfg.
// It handles three forms:
//   - false -> Enabled=false, Settings=nil
//   - true  -> Enabled=true,  Settings=nil
//   - {key: val, ...} -> Enabled=true, Settings={key: val, ...}
func (r *RuleCfg) UnmarshalYAML(value *yaml.Node) error {
	// Try bool first
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			r.Enabled = b
			r.Settings = nil
			return nil
		}
	}

	// Try map
	if value.Kind == yaml.MappingNode {
		var m map[string]any
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid rule config: %w", err)
		}
		r.Enabled = true
		r.Settings = m
		return nil
	}

	return fmt.Errorf("rule config must be a bool or a mapping, got %v", value.Kind)
}

// MarshalYAML implements YAML marshalling for RuleCfg, emitting the same
// union forms UnmarshalYAML accepts.
func (r RuleCfg) MarshalYAML() (any, error) {
	if len(r.Settings) > 0 {
		return r.Settings, nil
	}
	return r.Enabled, nil
}

// ValidFormats lists the supported report output formats.
var ValidFormats = []string{"text", "json"}

// ValidateFormat checks that format names a supported output format.
// An empty format is valid and means "text".
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (supported: text, json)", format)
}
