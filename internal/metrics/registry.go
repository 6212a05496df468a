package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bardlab/playscore/internal/analyze"
	"github.com/bardlab/playscore/internal/playtext"
)

var registry = []Definition{
	{
		ID:           "MET001",
		Name:         "grade-level",
		Description:  "Flesch-Kincaid grade level of the normalized text.",
		Kind:         KindFloat,
		Precision:    2,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			score, err := analyze.GradeLevel(doc.Stats())
			if err != nil {
				// No words means no defined grade, not a failed run.
				return UnavailableValue(), nil
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "MET002",
		Name:         "ari",
		Description:  "Automated Readability Index of the normalized text.",
		Kind:         KindFloat,
		Precision:    2,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			stats := doc.Stats()
			if stats.Words == 0 {
				return UnavailableValue(), nil
			}
			characters := playtext.CountCharacters(doc.Normalized())
			score := 4.71*float64(characters)/float64(stats.Words) +
				0.5*float64(stats.Words)/float64(stats.Sentences) -
				21.43
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "MET003",
		Name:         "words",
		Description:  "Word count of the normalized text.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.Stats().Words)), nil
		},
	},
	{
		ID:           "MET004",
		Name:         "sentences",
		Description:  "Sentence count of the normalized text (floored to 1).",
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.Stats().Sentences)), nil
		},
	},
	{
		ID:           "MET005",
		Name:         "syllables",
		Description:  "Estimated syllable count of the normalized text.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.Stats().Syllables)), nil
		},
	},
	{
		ID:           "MET006",
		Name:         "words-per-sentence",
		Description:  "Average sentence length in words.",
		Kind:         KindFloat,
		Precision:    1,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			stats := doc.Stats()
			if stats.Words == 0 {
				return UnavailableValue(), nil
			}
			return AvailableValue(float64(stats.Words) / float64(stats.Sentences)), nil
		},
	},
	{
		ID:           "MET007",
		Name:         "syllables-per-word",
		Description:  "Average estimated syllables per word.",
		Kind:         KindFloat,
		Precision:    2,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			stats := doc.Stats()
			if stats.Words == 0 {
				return UnavailableValue(), nil
			}
			return AvailableValue(float64(stats.Syllables) / float64(stats.Words)), nil
		},
	},
	{
		ID:           "MET008",
		Name:         "bytes",
		Description:  "Raw document size in bytes.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.ByteCount())), nil
		},
	},
	{
		ID:           "MET009",
		Name:         "lines",
		Description:  "Raw document line count.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.LineCount())), nil
		},
	},
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Defaults returns the default-selected metrics.
func Defaults() []Definition {
	all := All()
	out := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs. Empty names returns
// the default metrics.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	return strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q)
}

func unknownMetricErr(name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	defs := All()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
