package playtext

import "strings"

// isVowel reports whether r is an English vowel for syllable purposes.
// "y" counts as a vowel.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// CountSyllables estimates the syllable count of a single word using the
// standard vowel-run heuristic: each contiguous run of vowels counts as one
// syllable, a trailing silent "e" is discounted unless the word ends in
// "le", and any non-empty word has at least one syllable. The estimate is
// case-insensitive. Empty input returns 0.
func CountSyllables(word string) int {
	w := strings.ToLower(word)
	if w == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent trailing "e": "cake" is one syllable, but "little" keeps the
	// "le" syllable and "the" keeps its only one.
	if count > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		count--
	}

	if count == 0 {
		return 1
	}
	return count
}
