// Package playtext provides word, sentence, and syllable counting over
// plain prose text. All functions are pure and operate on text that has
// already been stripped of structural markup.
package playtext

import (
	"strings"
	"unicode"
)

// isWordRune reports whether r belongs to the interior of a word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// containsLetter reports whether s has at least one letter.
func containsLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}

// Words splits text on whitespace, trims surrounding punctuation from each
// token, and returns the tokens that contain at least one letter. Tokens
// that are pure punctuation or pure digits are dropped.
func Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !isWordRune(r)
		})
		if word == "" || !containsLetter(word) {
			continue
		}
		words = append(words, word)
	}
	return words
}

// CountWords returns the number of words in text per the Words rules.
func CountWords(text string) int {
	return len(Words(text))
}

// isTerminator reports whether r ends a sentence.
func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// CountSentences counts sentence boundaries in text. A boundary is a run of
// one or more terminal punctuation marks (".", "!", "?"); consecutive marks
// such as "?!" count as a single boundary. Text with no terminal punctuation
// has zero boundaries; callers that need a divisor apply their own floor.
func CountSentences(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		if isTerminator(r) {
			if !inRun {
				count++
				inRun = true
			}
			continue
		}
		inRun = false
	}
	return count
}

// CountCharacters counts letters and digits in text, ignoring whitespace
// and punctuation. Used by the Automated Readability Index metric.
func CountCharacters(text string) int {
	count := 0
	for _, r := range text {
		if isWordRune(r) {
			count++
		}
	}
	return count
}
