package render

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Label derives the caption of a labeled line from a template override.
// The override is used up to and including its first colon; a colon-less
// override is used verbatim only when it contains no letters at all.
// Anything else falls back to the fixed default.
func Label(override, fallback string) string {
	if i := strings.Index(override, ":"); i >= 0 {
		return override[:i+1]
	}
	if override != "" && !containsLetter(override) {
		return override
	}
	return fallback
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// FormatPrice renders a price as a plain number: no decimals for whole
// values, two decimals otherwise.
func FormatPrice(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(0)
	}
	return d.StringFixed(2)
}

// PriceValue renders the value cell of the price row: the price followed
// by " =".
func PriceValue(d decimal.Decimal) string {
	return FormatPrice(d) + " ="
}

// SplitIndent separates leading ASCII spaces from the displayed text.
func SplitIndent(s string) (int, string) {
	rest := strings.TrimLeft(s, " ")
	return len(s) - len(rest), rest
}
