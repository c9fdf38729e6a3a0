// Package render holds the rendering rules shared by both output
// backends, so the spreadsheet and word-processor outputs stay visually
// consistent for shared fields.
package render

import (
	"strings"
	"unicode/utf8"
)

// WrapBudget is the approximate per-line character budget of the two
// address lines.
const WrapBudget = 40

// WrapTwoLines distributes whitespace-separated words into exactly two
// lines with a greedy fill: a word joins the current line while the
// running length including the separating space stays within budget; the
// first overflowing word starts the next line. A single word too long for
// an empty line is placed anyway. Words beyond what fits in two lines are
// dropped.
func WrapTwoLines(s string) (string, string) {
	words := strings.Fields(s)
	var lines [2]string
	li := 0
	for _, w := range words {
		if lines[li] == "" {
			lines[li] = w
			continue
		}
		if utf8.RuneCountInString(lines[li])+1+utf8.RuneCountInString(w) <= WrapBudget {
			lines[li] += " " + w
			continue
		}
		li++
		if li > 1 {
			break
		}
		lines[li] = w
	}
	return lines[0], lines[1]
}
