// Package report renders scored documents as display lines and orders
// them for presentation.
package report

import (
	"fmt"
	"math"
	"sort"
)

// Ordinal returns n with its English ordinal suffix ("1st", "2nd",
// "3rd", "4th"). Numbers ending in 11, 12, or 13 take "th". Negative
// numbers keep their sign and use the suffix of their magnitude.
func Ordinal(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	suffix := "th"
	if abs%100 < 11 || abs%100 > 13 {
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Format renders one scored document as a display line:
//
//	12.34 (12th grade) is the score for Hamlet
//
// The ordinal is taken from the integer part of the score as displayed,
// so a score rendered "9.80" reads "9th" and one rendered "10.00" reads
// "10th".
func Format(title string, score float64) string {
	rounded := math.Round(score*100) / 100
	return fmt.Sprintf("%.2f (%s grade) is the score for %s",
		score, Ordinal(int(rounded)), title)
}

// Rank sorts formatted lines in descending lexicographic order, in
// place, and returns them. The sort is over the display strings, not
// the underlying scores, so a one-digit "9.x" line orders before a
// two-digit "10.x" line even though 10 > 9 numerically; this quirk is
// kept for compatibility with the reference output.
func Rank(lines []string) []string {
	sort.Sort(sort.Reverse(sort.StringSlice(lines)))
	return lines
}
