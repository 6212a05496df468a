package output

import (
	"encoding/json"
	"io"

	"github.com/bardlab/playscore/internal/engine"
)

// JSONFormatter outputs scored results as a JSON array.
type JSONFormatter struct{}

type jsonResult struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
	Line  string  `json:"line"`
}

// Format writes results as a pretty-printed JSON array.
// An empty slice of results produces [].
func (f *JSONFormatter) Format(w io.Writer, results []engine.ScoredResult) error {
	items := make([]jsonResult, 0, len(results))
	for _, r := range results {
		items = append(items, jsonResult{
			Title: r.Title,
			Score: r.Score,
			Line:  r.Line,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
