package metric

// Penalty weights applied by TokenMax to the scores of its sub-heuristics.
const (
	unbaseScale      = 0.95
	partialScale     = 0.9
	widePartialScale = 0.6
	partialRatio     = 1.5
	widePartialRatio = 8
)

type tokenMax struct {
	inner       Metric
	partial     Metric
	partialSort Metric
	partialSet  Metric
	tokenSort   Metric
	tokenSet    Metric
}

// TokenMax returns the minimum of the inner distance and the penalised
// distances of TokenSort and TokenSet. When one string is at least 1.5 times
// longer than the other, Partial and the token modifiers over Partial are used
// instead, with a stronger penalty beyond an 8 times difference.
func TokenMax(inner Metric) Metric {
	inner = Normalize(inner)
	p := Partial(inner)

	return tokenMax{
		inner:       inner,
		partial:     p,
		partialSort: TokenSort(p),
		partialSet:  TokenSet(p),
		tokenSort:   TokenSort(inner),
		tokenSet:    TokenSet(inner),
	}
}

func (tokenMax) Kind() KindEnum   { return KindTokenMax }
func (tokenMax) Normalized() bool { return true }
func (t tokenMax) unwrap() Metric { return t.inner }
func (t tokenMax) String() string { return "TokenMax(" + t.inner.String() + ")" }

func (t tokenMax) distance(s1, s2 string, maxDist float64) float64 {
	s1, s2 = Reorder(s1, s2)
	len1, len2 := float64(runeCount(s1)), float64(runeCount(s2))

	score := t.inner.distance(s1, s2, maxDist)

	if len2 < partialRatio*len1 {
		scoreSort := rescaled(t.tokenSort, s1, s2, maxDist, unbaseScale)
		maxDist = min(maxDist, scoreSort)

		scoreSet := rescaled(t.tokenSet, s1, s2, maxDist, unbaseScale)

		return min(score, scoreSort, scoreSet)
	}

	scale := partialScale
	if len2 > widePartialRatio*len1 {
		scale = widePartialScale
	}

	scorePartial := rescaled(t.partial, s1, s2, maxDist, scale)
	maxDist = min(maxDist, scorePartial)

	scoreSort := rescaled(t.partialSort, s1, s2, maxDist, unbaseScale*scale)
	maxDist = min(maxDist, scoreSort)

	scoreSet := rescaled(t.partialSet, s1, s2, maxDist, unbaseScale*scale)

	return min(score, scorePartial, scoreSort, scoreSet)
}

// rescaled evaluates m and maps its result through d -> 1 - f*(1-d).
// The bound is mapped through the inverse, so a sub-score pruned at the inner
// bound maps to a score at or above maxDist.
func rescaled(m Metric, s1, s2 string, maxDist, f float64) float64 {
	bound := 1 - (1-maxDist)/f

	return 1 - f*(1-m.distance(s1, s2, bound))
}
