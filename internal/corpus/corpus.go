// Package corpus loads a directory of play texts into a title-to-text
// mapping consumed by the scoring pipeline. The mapping is an explicit
// value owned by the caller; nothing here is cached process-wide.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls how corpus loading behaves.
type Options struct {
	// Dir is the directory to walk. Defaults to "plays" if empty.
	Dir string

	// Patterns is the list of glob patterns files must match, relative
	// to Dir. Defaults to ["**/*.txt"] if empty.
	Patterns []string
}

// DefaultDir is the corpus directory used when none is configured.
const DefaultDir = "plays"

// Load walks opts.Dir and returns a map from document title to raw
// document text. The title is the file's base name without extension.
// Two files with the same title (in different subdirectories, or with
// different extensions) are an error rather than a silent overwrite.
func Load(opts Options) (map[string]string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}

	patterns := validatePatterns(opts.Patterns)
	if len(patterns) == 0 {
		patterns = []string{"**/*.txt"}
	}

	docs := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !matchesAny(patterns, rel) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}

		title := Title(path)
		if _, exists := docs[title]; exists {
			return fmt.Errorf("duplicate title %q at %q", title, path)
		}
		docs[title] = string(data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading corpus from %q: %w", dir, err)
	}

	return docs, nil
}

// Title derives a document title from a file path: the base name with
// its extension removed.
func Title(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Titles returns the map's titles in sorted order, for deterministic
// iteration.
func Titles(docs map[string]string) []string {
	titles := make([]string, 0, len(docs))
	for title := range docs {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// validatePatterns returns patterns that are syntactically valid.
func validatePatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// matchesAny returns true if rel matches any of the patterns.
func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		matched, err := doublestar.Match(p, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}
