package common

import (
	"cmp"
	"slices"
)

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// SortedUnique sorts s in place and drops repeated elements.
func SortedUnique[S ~[]E, E cmp.Ordered](s S) S {
	slices.Sort(s)

	return slices.Compact(s)
}

// Intersect returns the elements of a that are also in b, in the order of a.
// Both slices must be sorted and free of duplicates.
func Intersect[S ~[]E, E cmp.Ordered](a, b S) S {
	var out S

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp.Compare(a[i], b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
