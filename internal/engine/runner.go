// Package engine drives the scoring pipeline over a corpus of documents.
package engine

import (
	"fmt"
	"sort"

	"github.com/gobwas/glob"

	"github.com/bardlab/playscore/internal/analyze"
	"github.com/bardlab/playscore/internal/config"
	"github.com/bardlab/playscore/internal/corpus"
	"github.com/bardlab/playscore/internal/log"
	"github.com/bardlab/playscore/internal/normalize"
	"github.com/bardlab/playscore/internal/report"
	"github.com/bardlab/playscore/internal/rule"
)

// Runner drives the scoring pipeline: for each document it normalizes the
// raw text through the configured rules, computes text statistics, applies
// the grade-level formula, and formats the result. Documents are processed
// sequentially in sorted-title order.
type Runner struct {
	Config *config.Config
	Rules  []rule.Rule
	Log    *log.Logger
}

// ScoredResult is one scored document.
type ScoredResult struct {
	Title string
	Score float64
	Line  string
}

// Result holds the output of a scoring run. Results and Lines are ranked
// in descending order of the formatted line. Errors holds per-document
// failures; a failed document never aborts the rest of the batch.
type Result struct {
	Results []ScoredResult
	Lines   []string
	Errors  []error
}

// Run scores every document in the corpus map and returns the ranked
// results.
func (r *Runner) Run(docs map[string]string) *Result {
	res := &Result{}
	pipeline := &normalize.Pipeline{Rules: r.Rules}

	for _, title := range corpus.Titles(docs) {
		if r.isIgnored(title) {
			r.Log.Printf("skipping %q (ignored)", title)
			continue
		}

		normalized := pipeline.Normalize(docs[title])
		stats := analyze.Analyze(normalized)

		score, err := analyze.GradeLevel(stats)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("scoring %q: %w", title, err))
			continue
		}

		r.Log.Printf("%s: %d words, %d sentences, %d syllables, grade %.2f",
			title, stats.Words, stats.Sentences, stats.Syllables, score)

		res.Results = append(res.Results, ScoredResult{
			Title: title,
			Score: score,
			Line:  report.Format(title, score),
		})
	}

	// Rank by the formatted line, descending, matching the report order.
	sort.Slice(res.Results, func(i, j int) bool {
		return res.Results[i].Line > res.Results[j].Line
	})
	lines := make([]string, len(res.Results))
	for i, sr := range res.Results {
		lines[i] = sr.Line
	}
	res.Lines = report.Rank(lines)

	return res
}

// isIgnored returns true if the title matches any of the configured
// ignore patterns.
func (r *Runner) isIgnored(title string) bool {
	if r.Config == nil {
		return false
	}
	for _, pattern := range r.Config.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(title) {
			return true
		}
	}
	return false
}

// BuildRules assembles the rule pipeline in canonical order, honoring
// the config: disabled rules are dropped and settings are applied to
// rules that support them. Fresh rule instances are used so settings
// never leak between runs.
func BuildRules(cfg *config.Config) ([]rule.Rule, error) {
	var rules []rule.Rule
	for _, r := range normalize.Default().Rules {
		rc, configured := cfg.Rules[r.Name()]
		if configured && !rc.Enabled {
			continue
		}
		if configured && len(rc.Settings) > 0 {
			c, ok := r.(rule.Configurable)
			if !ok {
				return nil, fmt.Errorf("rule %q does not accept settings", r.Name())
			}
			if err := c.ApplySettings(rc.Settings); err != nil {
				return nil, err
			}
		}
		rules = append(rules, r)
	}
	return rules, nil
}
