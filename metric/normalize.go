package metric

type normalizer struct {
	inner Metric
}

// Normalize returns a metric whose results lie in [0, 1].
//
// Edit counts are divided by the longer length, raw q-gram counts by the
// total number of q-grams. Strings shorter than q fall back to an equality
// check. Metrics that are already normalized modifiers, Jaro and
// RatcliffObershelp are returned as is.
func Normalize(m Metric) Metric {
	switch m.(type) {
	case normalizer:
		return m
	case editDistancer, qgramDistancer:
		return normalizer{inner: m}
	}

	return m
}

func (normalizer) Kind() KindEnum   { return KindNormalize }
func (normalizer) Normalized() bool { return true }
func (n normalizer) unwrap() Metric { return n.inner }
func (n normalizer) String() string { return "Normalize(" + n.inner.String() + ")" }

func (n normalizer) distance(s1, s2 string, maxDist float64) float64 {
	maxDist = min(maxDist, 1)

	switch inner := n.inner.(type) {
	case editDistancer:
		return normalizeEdit(inner, s1, s2, maxDist)
	case qgramDistancer:
		return n.normalizeQGram(inner.qgramSize(), s1, s2, maxDist)
	}

	return n.inner.distance(s1, s2, maxDist)
}

func normalizeEdit(inner editDistancer, s1, s2 string, maxDist float64) float64 {
	r1, r2 := reorderRunes([]rune(s1), []rune(s2))

	// Two empty strings are reported as fully dissimilar
	len2 := len(r2)
	if len2 == 0 {
		return 1.0
	}

	cutoff := editBound(float64(len2) * maxDist)

	out := float64(inner.editDistance(r1, r2, cutoff)) / float64(len2)
	if out > maxDist {
		return 1.0
	}

	return out
}

func (n normalizer) normalizeQGram(q int, s1, s2 string, maxDist float64) float64 {
	s1, s2 = Reorder(s1, s2)
	len1, len2 := runeCount(s1), runeCount(s2)

	// No q-grams to compare
	if len1 < q {
		return boolDistance(s1 == s2)
	}

	d := n.inner.distance(s1, s2, maxDist)
	if n.inner.Kind() == KindQGram {
		return d / float64(len1+len2-2*q+2)
	}

	return d
}
