package metrics

import (
	"github.com/bardlab/playscore/internal/analyze"
	"github.com/bardlab/playscore/internal/normalize"
)

// Document is the shared metric input for a single play. Normalized text
// and statistics are computed lazily and cached so every metric sees the
// same values without reanalyzing the whole play.
type Document struct {
	Title  string
	Source string

	pipeline *normalize.Pipeline

	normalized      string
	normalizedReady bool

	stats      analyze.Statistics
	statsReady bool
}

// NewDocument constructs a Document wrapper for metric computation.
// A nil pipeline means the default normalization rules.
func NewDocument(title string, source string, pipeline *normalize.Pipeline) *Document {
	if pipeline == nil {
		pipeline = normalize.Default()
	}
	return &Document{
		Title:    title,
		Source:   source,
		pipeline: pipeline,
	}
}

// ByteCount returns the raw document size in bytes.
func (d *Document) ByteCount() int {
	return len(d.Source)
}

// LineCount returns the raw document line count.
func (d *Document) LineCount() int {
	if len(d.Source) == 0 {
		return 0
	}
	lines := 0
	for _, r := range d.Source {
		if r == '\n' {
			lines++
		}
	}
	if d.Source[len(d.Source)-1] != '\n' {
		lines++
	}
	return lines
}

// Normalized returns the document text after the normalization rules.
func (d *Document) Normalized() string {
	if !d.normalizedReady {
		d.normalized = d.pipeline.Normalize(d.Source)
		d.normalizedReady = true
	}
	return d.normalized
}

// Stats returns the text statistics of the normalized document.
func (d *Document) Stats() analyze.Statistics {
	if !d.statsReady {
		d.stats = analyze.Analyze(d.Normalized())
		d.statsReady = true
	}
	return d.stats
}
