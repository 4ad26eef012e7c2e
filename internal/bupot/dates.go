package bupot

import (
	"strings"
	"unicode"
)

// NormalizeDate converts an 8-character ddmmyyyy digit string into
// YYYY-MM-DD by fixed slicing. There is no digit or calendar validation:
// malformed input propagates as malformed output. Input shorter than 8
// characters yields a truncated date instead of panicking.
func NormalizeDate(ddmmyyyy string) string {
	return clip(ddmmyyyy, 4, 8) + "-" + clip(ddmmyyyy, 2, 4) + "-" + clip(ddmmyyyy, 0, 2)
}

// clip slices s[from:to] with both bounds clamped to len(s).
func clip(s string, from, to int) string {
	if from > len(s) {
		from = len(s)
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// SplitDocDate splits a line ending in a concatenated, space-free date into
// its document-name prefix and a normalized date. It scans from the end of
// the line leftward, skipping spaces and collecting the first 8 non-space
// characters as the date digits; everything to the left of where collection
// stopped is the document name. A line with fewer than 8 trailing non-space
// characters produces an empty name and a truncated date, never an error.
func SplitDocDate(line string) (name, isoDate string) {
	digits := make([]byte, 0, 8)
	i := len(line) - 1
	for ; i >= 0 && len(digits) < 8; i-- {
		if line[i] == ' ' {
			continue
		}
		digits = append(digits, line[i])
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	return line[:i+1], NormalizeDate(string(digits))
}

// splitTrailingDate cuts a line into everything but its last 8 characters and
// a normalized date built from those 8. Lines shorter than 8 characters keep
// an empty name and normalize what is there.
func splitTrailingDate(line string) (name, isoDate string) {
	cut := len(line) - 8
	if cut < 0 {
		cut = 0
	}
	return line[:cut], NormalizeDate(line[cut:])
}

// stripSpace removes every whitespace character from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// allDigits reports whether s is non-empty and contains only ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
