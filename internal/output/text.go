package output

import (
	"fmt"
	"io"

	"github.com/bardlab/playscore/internal/engine"
)

// TextFormatter outputs one ranked result line per document.
// When Color is true, the leading score is printed in cyan.
type TextFormatter struct {
	Color bool
}

// Format writes each result's display line in the order given.
func (f *TextFormatter) Format(w io.Writer, results []engine.ScoredResult) error {
	for _, r := range results {
		var err error
		if f.Color {
			_, err = fmt.Fprintf(w, "\033[36m%.2f\033[0m (%s\n",
				r.Score, afterScore(r.Line))
		} else {
			_, err = fmt.Fprintln(w, r.Line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// afterScore returns the part of a display line following "<score> (".
func afterScore(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '(' {
			return line[i+1:]
		}
	}
	return line
}
