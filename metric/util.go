package metric

import (
	"iter"
	"math"
	"unicode/utf8"
)

// Reorder returns the pair with the shorter string first.
// Ties keep the original order.
func Reorder(s1, s2 string) (string, string) {
	if utf8.RuneCountInString(s1) <= utf8.RuneCountInString(s2) {
		return s1, s2
	}

	return s2, s1
}

func reorderRunes(r1, r2 []rune) ([]rune, []rune) {
	if len(r1) <= len(r2) {
		return r1, r2
	}

	return r2, r1
}

// CommonPrefix returns the number of leading runes s1 and s2 share.
func CommonPrefix(s1, s2 string) int {
	return commonPrefix([]rune(s1), []rune(s2))
}

func commonPrefix(r1, r2 []rune) int {
	n := min(len(r1), len(r2))
	for i := range n {
		if r1[i] != r2[i] {
			return i
		}
	}

	return n
}

// QGrams yields every window of q runes in s, in order.
// Strings shorter than q yield nothing.
func QGrams(s string, q int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if q <= 0 {
			return
		}

		runes := []rune(s)
		for i := 0; i+q <= len(runes); i++ {
			if !yield(string(runes[i : i+q])) {
				return
			}
		}
	}
}

// Slice returns runes start through end of s, 1-indexed and inclusive.
// Out of range bounds are clamped.
func Slice(s string, start, end int) string {
	runes := []rune(s)
	start = max(start, 1)
	end = min(end, len(runes))

	if start > end {
		return ""
	}

	return string(runes[start-1 : end])
}

// editBound converts a fractional maxDist into an edit-count cutoff.
// A negative result means no cutoff.
func editBound(maxDist float64) int {
	switch {
	case math.IsNaN(maxDist), maxDist > math.MaxInt32:
		return -1
	case maxDist < 0:
		return 0
	}

	return int(math.Ceil(maxDist))
}

func boolDistance(equal bool) float64 {
	if equal {
		return 0
	}

	return 1
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}

func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
