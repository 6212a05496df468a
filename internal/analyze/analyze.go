// Package analyze computes text statistics and the Flesch-Kincaid grade
// level over normalized prose.
package analyze

import (
	"errors"

	"github.com/bardlab/playscore/internal/playtext"
)

// ErrNoWords is returned by GradeLevel when the input has zero words.
// A score cannot be computed for an empty document and no default is
// invented; callers decide whether to skip the document or abort.
var ErrNoWords = errors.New("document contains no words")

// Statistics holds the aggregate counts a readability formula needs.
type Statistics struct {
	Words     int
	Sentences int
	Syllables int
}

// Analyze segments normalized text into words and sentences and sums
// syllable estimates. A sentence count of zero (no terminal punctuation)
// is floored to one so downstream ratios stay defined; this is a
// deliberate approximation, not an error.
func Analyze(text string) Statistics {
	words := playtext.Words(text)

	syllables := 0
	for _, word := range words {
		syllables += playtext.CountSyllables(word)
	}

	sentences := playtext.CountSentences(text)
	if sentences == 0 {
		sentences = 1
	}

	return Statistics{
		Words:     len(words),
		Sentences: sentences,
		Syllables: syllables,
	}
}

// GradeLevel applies the Flesch-Kincaid Grade Level formula:
//
//	0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
//
// The result is not clamped; degenerate inputs can score negative or
// arbitrarily high. Zero words returns ErrNoWords.
func GradeLevel(stats Statistics) (float64, error) {
	if stats.Words == 0 {
		return 0, ErrNoWords
	}

	words := float64(stats.Words)
	sentences := float64(stats.Sentences)
	syllables := float64(stats.Syllables)

	return 0.39*words/sentences + 11.8*syllables/words - 15.59, nil
}
