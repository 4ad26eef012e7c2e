package bupot

import "strings"

// dash marks a permutation slot that emits a literal '-' instead of reading
// from the input.
const dash = -1

// digitPermutation reorders a scrambled digit run back into reading order.
// Output position i is filled with the input character at index p[i]; a dash
// entry inserts a literal separator. The index lists are empirical: layout B
// renders its narrow rotated columns (taxpayer ID, two date fields) with the
// characters out of visual order, and these tables are the reverse-engineered
// corrections. They have no semantic derivation.
type digitPermutation []int

// Decode applies the permutation to s. If s is too short for any index the
// result is the empty string; a partially descrambled value would be garbage
// either way.
func (p digitPermutation) Decode(s string) string {
	var b strings.Builder
	b.Grow(len(p))
	for _, idx := range p {
		if idx == dash {
			b.WriteByte('-')
			continue
		}
		if idx < 0 || idx >= len(s) {
			return ""
		}
		b.WriteByte(s[idx])
	}
	return b.String()
}

var (
	// npwpOrderB descrambles the 15-digit taxpayer ID column of layout B.
	npwpOrderB = digitPermutation{7, 11, 14, 9, 3, 5, 12, 13, 1, 6, 2, 10, 0, 8, 4}

	// docDateOrderB descrambles the 8-character document reference date of
	// layout B into dash-separated form.
	docDateOrderB = digitPermutation{1, 2, 7, 5, dash, 3, 4, dash, 0, 6}

	// signDateOrderB descrambles the 8-character certificate date of layout B.
	signDateOrderB = digitPermutation{1, 7, 2, 4, dash, 0, 6, dash, 5, 3}
)
