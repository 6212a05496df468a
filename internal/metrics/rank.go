package metrics

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/bardlab/playscore/internal/corpus"
	"github.com/bardlab/playscore/internal/normalize"
)

// Row holds computed metric values for a single play.
type Row struct {
	Title   string
	Metrics map[string]Value
}

// Collect computes all selected metrics for each document in the corpus
// map, in sorted-title order.
func Collect(docs map[string]string, pipeline *normalize.Pipeline, defs []Definition) ([]Row, error) {
	rows := make([]Row, 0, len(docs))
	for _, title := range corpus.Titles(docs) {
		doc := NewDocument(title, docs[title], pipeline)
		values := make(map[string]Value, len(defs))
		for _, def := range defs {
			v, err := def.Compute(doc)
			if err != nil {
				return nil, fmt.Errorf("computing %q for %q: %w", def.Name, title, err)
			}
			values[def.Name] = v
		}

		rows = append(rows, Row{
			Title:   title,
			Metrics: values,
		})
	}
	return rows, nil
}

// SortRows sorts rows deterministically by a metric and title tiebreaker.
func SortRows(rows []Row, by Definition, order Order) {
	sort.Slice(rows, func(i, j int) bool {
		a := rows[i].Metrics[by.Name]
		b := rows[j].Metrics[by.Name]

		// Available values sort before unavailable values.
		if a.Available != b.Available {
			return a.Available
		}

		if a.Available && b.Available {
			diff := a.Number - b.Number
			if math.Abs(diff) > 1e-9 {
				if order == OrderAsc {
					return diff < 0
				}
				return diff > 0
			}
		}

		// Stable deterministic tie-break.
		return rows[i].Title < rows[j].Title
	})
}

// LimitRows returns at most top rows (if top > 0).
func LimitRows(rows []Row, top int) []Row {
	if top <= 0 || top >= len(rows) {
		return rows
	}
	return rows[:top]
}

// FormatValue renders a metric value for text output.
func FormatValue(def Definition, value Value) string {
	v := JSONValue(def, value)
	if v == nil {
		return "-"
	}

	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return fmt.Sprintf("%.*f", def.Precision, n)
	default:
		return "-"
	}
}

// JSONValue converts a metric value into a JSON-safe scalar.
// Unavailable values return nil.
func JSONValue(def Definition, value Value) any {
	if !value.Available {
		return nil
	}

	switch def.Kind {
	case KindInteger:
		return int64(math.Round(value.Number))
	case KindFloat:
		if def.Precision < 0 {
			return value.Number
		}
		scale := math.Pow10(def.Precision)
		return math.Round(value.Number*scale) / scale
	default:
		return value.Number
	}
}
