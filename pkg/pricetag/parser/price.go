package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice leniently parses a price cell. Any characters outside
// [0-9.,] are stripped first, so currency symbols, spaces, and
// non-breaking spaces are tolerated; commas normalize to decimal points.
// "1 200,50 ₽" parses to 1200.50.
func ParsePrice(s string) (decimal.Decimal, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteByte('.')
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero, false
	}

	// "1.200.50" style thousand separators: everything but the last dot
	// is a grouping artifact.
	if strings.Count(cleaned, ".") > 1 {
		last := strings.LastIndex(cleaned, ".")
		cleaned = strings.ReplaceAll(cleaned[:last], ".", "") + cleaned[last:]
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseQuantity parses a quantity cell as a positive integer. Whole
// floats like "3.0" are accepted; anything else yields (0, false).
func ParseQuantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n > 0 {
			return n, true
		}
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || f <= 0 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
