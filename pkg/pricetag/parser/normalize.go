// Package parser resolves workbook columns and extracts product records.
package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// NormalizeHeader prepares a header cell for vocabulary matching: repairs
// encoding artifacts, trims, strips wrapping quotes, collapses internal
// whitespace, and lower-cases the result.
func NormalizeHeader(s string) string {
	s = RepairEncoding(s)
	s = strings.TrimSpace(s)
	s = stripQuotes(s)
	s = collapseSpaces(s)
	return strings.ToLower(s)
}

// stripQuotes removes one layer of wrapping quote characters.
func stripQuotes(s string) string {
	const quotes = `"'«»“”`
	trimmed := strings.TrimFunc(s, func(r rune) bool {
		return strings.ContainsRune(quotes, r)
	})
	return strings.TrimSpace(trimmed)
}

// collapseSpaces replaces every internal whitespace run with one space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RepairEncoding attempts a best-effort re-decode of mojibake text. Two
// common corruptions are tried: UTF-8 bytes mis-decoded as cp1252, and
// cp1251 bytes mis-decoded as cp1252. A repair is accepted only when it
// produces Cyrillic text; otherwise the input is returned unchanged.
func RepairEncoding(s string) string {
	if s == "" || hasCyrillic(s) || !hasMojibakeArtifacts(s) {
		return s
	}

	// Recover the original byte stream by encoding the mis-decoded runes
	// back to their single-byte form.
	raw, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return s
	}

	// Case 1: the raw bytes were UTF-8 all along.
	if utf8.ValidString(raw) && hasCyrillic(raw) {
		return raw
	}

	// Case 2: the raw bytes were cp1251. A real cp1251 word maps almost
	// entirely into Cyrillic; a stray accented Latin word does not.
	if fixed, err := charmap.Windows1251.NewDecoder().String(raw); err == nil && mostlyCyrillic(fixed) {
		return fixed
	}

	return s
}

// mostlyCyrillic reports whether more than half of the letters are
// Cyrillic.
func mostlyCyrillic(s string) bool {
	letters, cyr := 0, 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.Is(unicode.Cyrillic, r) {
				cyr++
			}
		}
	}
	return letters > 0 && cyr*2 > letters
}

func hasCyrillic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}

// hasMojibakeArtifacts reports whether the text looks like a mis-decoded
// single-byte stream: replacement runes, or Latin-1 supplement runes that
// do not occur in clean inventory headers.
func hasMojibakeArtifacts(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError {
			return true
		}
		if r >= 0x80 && r <= 0xFF {
			return true
		}
	}
	return false
}
