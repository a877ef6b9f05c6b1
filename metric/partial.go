package metric

type partial struct {
	inner Metric
}

// Partial scores the best alignment of the shorter string against the
// substrings of the longer string that have the same length.
//
// With RatcliffObershelp only the windows anchored on the matching blocks of
// the two strings are scored.
func Partial(inner Metric) Metric {
	return partial{inner: Normalize(inner)}
}

func (partial) Kind() KindEnum   { return KindPartial }
func (partial) Normalized() bool { return true }
func (p partial) unwrap() Metric { return p.inner }
func (p partial) String() string { return "Partial(" + p.inner.String() + ")" }

func (p partial) distance(s1, s2 string, maxDist float64) float64 {
	s1, s2 = Reorder(s1, s2)
	r1, r2 := []rune(s1), []rune(s2)
	len1, len2 := len(r1), len(r2)

	if len1 == len2 {
		return p.inner.distance(s1, s2, maxDist)
	}

	// The empty string is a substring of anything
	if len1 == 0 {
		return 0
	}

	if p.inner.Kind() == KindRatcliffObershelp {
		return p.anchoredDistance(r1, r2, maxDist)
	}

	out := 1.0

	for start := 0; start+len1 <= len2; start++ {
		curr := p.inner.distance(s1, string(r2[start:start+len1]), maxDist)
		out = min(out, curr)
		maxDist = min(out, maxDist)
	}

	return out
}

// anchoredDistance scores one window per matching block, aligned so that the
// block sits at the same offset in the window as in the shorter string.
func (p partial) anchoredDistance(r1, r2 []rune, maxDist float64) float64 {
	s1 := string(r1)
	len1, len2 := len(r1), len(r2)
	out := 1.0

	for _, b := range matchingBlocks(r1, r2, 0, 0, nil) {
		start := b.Start2 - b.Start1

		switch {
		case start < 0:
			start = 0
		case start+len1 > len2:
			start = len2 - len1
		}

		out = min(out, p.inner.distance(s1, string(r2[start:start+len1]), maxDist))
	}

	return out
}
