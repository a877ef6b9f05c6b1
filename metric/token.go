package metric

import (
	"slices"
	"strings"

	"strdist/internal/common"
)

type tokenSort struct {
	inner Metric
}

// TokenSort compares the strings after sorting their whitespace-separated
// words.
func TokenSort(inner Metric) Metric {
	return tokenSort{inner: Normalize(inner)}
}

func (tokenSort) Kind() KindEnum   { return KindTokenSort }
func (tokenSort) Normalized() bool { return true }
func (t tokenSort) unwrap() Metric { return t.inner }
func (t tokenSort) String() string { return "TokenSort(" + t.inner.String() + ")" }

func (t tokenSort) distance(s1, s2 string, maxDist float64) float64 {
	return t.inner.distance(sortWords(s1), sortWords(s2), maxDist)
}

func sortWords(s string) string {
	words := strings.Fields(s)
	slices.Sort(words)

	return strings.Join(words, " ")
}

type tokenSet struct {
	inner Metric
}

// TokenSet splits both strings into sorted sets of unique words and returns
// the minimum distance among the shared words against each full set, and
// between the two full sets.
func TokenSet(inner Metric) Metric {
	return tokenSet{inner: Normalize(inner)}
}

func (tokenSet) Kind() KindEnum   { return KindTokenSet }
func (tokenSet) Normalized() bool { return true }
func (t tokenSet) unwrap() Metric { return t.inner }
func (t tokenSet) String() string { return "TokenSet(" + t.inner.String() + ")" }

func (t tokenSet) distance(s1, s2 string, maxDist float64) float64 {
	v1 := common.SortedUnique(strings.Fields(s1))
	v2 := common.SortedUnique(strings.Fields(s2))
	v0 := common.Intersect(v1, v2)

	set1 := strings.Join(v1, " ")
	set2 := strings.Join(v2, " ")

	if common.IsEmpty(v0) {
		return t.inner.distance(set1, set2, maxDist)
	}

	shared := strings.Join(v0, " ")

	// Each comparison can only lower the result, so it bounds the next one
	score01 := t.inner.distance(shared, set1, maxDist)
	maxDist = min(maxDist, score01)

	score02 := t.inner.distance(shared, set2, maxDist)
	maxDist = min(maxDist, score02)

	score12 := t.inner.distance(set1, set2, maxDist)

	return min(score01, score02, score12)
}
