package output

import (
	"io"

	"github.com/bardlab/playscore/internal/engine"
)

// Formatter defines the interface for rendering scored results.
type Formatter interface {
	Format(w io.Writer, results []engine.ScoredResult) error
}
