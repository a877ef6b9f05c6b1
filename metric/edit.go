package metric

// editDistancer is implemented by metrics whose raw output is an edit count.
// A negative maxDist disables the cutoff; otherwise a result above maxDist
// may be reported as maxDist+1.
type editDistancer interface {
	editDistance(r1, r2 []rune, maxDist int) int
}

type hamming struct{}

// Hamming counts the positions at which two strings differ, plus the
// difference in their lengths.
func Hamming() Metric { return hamming{} }

func (hamming) Kind() KindEnum   { return KindHamming }
func (hamming) Normalized() bool { return false }
func (hamming) String() string   { return KindHamming.String() }

func (h hamming) distance(s1, s2 string, maxDist float64) float64 {
	return float64(h.editDistance([]rune(s1), []rune(s2), editBound(maxDist)))
}

func (hamming) editDistance(r1, r2 []rune, maxDist int) int {
	r1, r2 = reorderRunes(r1, r2)

	current := len(r2) - len(r1)
	if maxDist >= 0 && current > maxDist {
		return maxDist + 1
	}

	for i, ch := range r1 {
		if ch == r2[i] {
			continue
		}

		current++
		if maxDist >= 0 && current > maxDist {
			return maxDist + 1
		}
	}

	return current
}

type levenshtein struct{}

// Levenshtein is the minimum number of single-rune insertions, deletions or
// substitutions required to transform one string into the other.
func Levenshtein() Metric { return levenshtein{} }

func (levenshtein) Kind() KindEnum   { return KindLevenshtein }
func (levenshtein) Normalized() bool { return false }
func (levenshtein) String() string   { return KindLevenshtein.String() }

func (l levenshtein) distance(s1, s2 string, maxDist float64) float64 {
	return float64(l.editDistance([]rune(s1), []rune(s2), editBound(maxDist)))
}

// editDistance keeps two rows instead of the full matrix and stops as soon as
// the minimum of a row exceeds maxDist.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func (levenshtein) editDistance(a, b []rune, maxDist int) int {
	a, b = reorderRunes(a, b)

	if maxDist >= 0 && len(b)-len(a) > maxDist {
		return maxDist + 1
	}

	// A common prefix never changes the distance
	k := commonPrefix(a, b)
	a, b = a[k:], b[k:]

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		rowMin := j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)

			rowMin = min(rowMin, curr[i])
		}

		if maxDist >= 0 && rowMin > maxDist {
			return maxDist + 1
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

type optimalStringAlignment struct{}

// OptimalStringAlignment is the restricted Damerau-Levenshtein distance:
// adjacent transpositions count as one edit, but no substring is edited twice.
func OptimalStringAlignment() Metric { return optimalStringAlignment{} }

func (optimalStringAlignment) Kind() KindEnum   { return KindOptimalStringAlignment }
func (optimalStringAlignment) Normalized() bool { return false }
func (optimalStringAlignment) String() string   { return KindOptimalStringAlignment.String() }

func (o optimalStringAlignment) distance(s1, s2 string, maxDist float64) float64 {
	return float64(o.editDistance([]rune(s1), []rune(s2), editBound(maxDist)))
}

func (optimalStringAlignment) editDistance(a, b []rune, maxDist int) int {
	a, b = reorderRunes(a, b)

	if maxDist >= 0 && len(b)-len(a) > maxDist {
		return maxDist + 1
	}

	k := commonPrefix(a, b)
	a, b = a[k:], b[k:]

	if len(a) == 0 {
		return len(b)
	}

	// Transpositions look two rows back
	prev2 := make([]int, len(a)+1)
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	prevMin := 0

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		rowMin := j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				curr[i] = min(curr[i], prev2[i-2]+1)
			}

			rowMin = min(rowMin, curr[i])
		}

		// Later rows only build on the last two
		if maxDist >= 0 && rowMin > maxDist && prevMin > maxDist {
			return maxDist + 1
		}

		prevMin = rowMin
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[len(a)]
}

type damerauLevenshtein struct{}

// DamerauLevenshtein is the unrestricted Damerau-Levenshtein distance, where
// transposed runes may be separated by further edits.
func DamerauLevenshtein() Metric { return damerauLevenshtein{} }

func (damerauLevenshtein) Kind() KindEnum   { return KindDamerauLevenshtein }
func (damerauLevenshtein) Normalized() bool { return false }
func (damerauLevenshtein) String() string   { return KindDamerauLevenshtein.String() }

func (d damerauLevenshtein) distance(s1, s2 string, maxDist float64) float64 {
	return float64(d.editDistance([]rune(s1), []rune(s2), editBound(maxDist)))
}

// editDistance follows Lowrance-Wagner. Only the length gap is used for
// pruning: transpositions can reach arbitrarily far back.
func (damerauLevenshtein) editDistance(a, b []rune, maxDist int) int {
	a, b = reorderRunes(a, b)

	if maxDist >= 0 && len(b)-len(a) > maxDist {
		return maxDist + 1
	}

	k := commonPrefix(a, b)
	a, b = a[k:], b[k:]

	if len(a) == 0 {
		return len(b)
	}

	n1, n2 := len(a), len(b)
	inf := n1 + n2

	d := make([][]int, n1+2)
	for i := range d {
		d[i] = make([]int, n2+2)
	}

	d[0][0] = inf
	for i := 0; i <= n1; i++ {
		d[i+1][0] = inf
		d[i+1][1] = i
	}

	for j := 0; j <= n2; j++ {
		d[0][j+1] = inf
		d[1][j+1] = j
	}

	// last row in which each rune of a was seen
	lastRow := make(map[rune]int)

	for i := 1; i <= n1; i++ {
		lastCol := 0

		for j := 1; j <= n2; j++ {
			i1 := lastRow[b[j-1]]
			j1 := lastCol

			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
				lastCol = j
			}

			d[i+1][j+1] = min(
				d[i][j]+cost,
				d[i+1][j]+1,
				d[i][j+1]+1,
				d[i1][j1]+(i-i1-1)+1+(j-j1-1),
			)
		}

		lastRow[a[i-1]] = i
	}

	return d[n1+1][n2+1]
}
