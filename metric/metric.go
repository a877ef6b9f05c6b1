package metric

import (
	"fmt"
	"math"
)

// Unbounded disables pruning when passed as maxDist.
var Unbounded = math.Inf(1)

// Metric is a distance between two strings. 0 means identical.
//
// The set of implementations is closed: values are built with the
// constructors of this package and composed through the modifiers.
type Metric interface {
	fmt.Stringer

	// Kind reports which variant the metric is.
	Kind() KindEnum
	// Normalized reports whether results always lie in [0, 1].
	Normalized() bool

	distance(s1, s2 string, maxDist float64) float64
}

// wrapper is implemented by every modifier.
type wrapper interface {
	unwrap() Metric
}

// Inner returns the metric wrapped by a modifier, or nil for base metrics.
func Inner(m Metric) Metric {
	if w, ok := m.(wrapper); ok {
		return w.unwrap()
	}

	return nil
}

// Describe renders the composition of m, e.g. "TokenMax(Normalize(Levenshtein))".
func Describe(m Metric) string {
	if m == nil {
		return "<nil>"
	}

	return m.String()
}

// Evaluate returns the distance between s1 and s2 without pruning.
// Normalized metrics are evaluated with maxDist 1.
func Evaluate(m Metric, s1, s2 string) float64 {
	maxDist := Unbounded
	if m.Normalized() {
		maxDist = 1.0
	}

	return m.distance(s1, s2, maxDist)
}

// EvaluateWithin returns the distance between s1 and s2. When the distance
// exceeds maxDist the result is only guaranteed to be >= maxDist.
// Edit-count metrics read maxDist as a number of edits.
func EvaluateWithin(m Metric, s1, s2 string, maxDist float64) float64 {
	return m.distance(s1, s2, maxDist)
}

// EvaluateNullable is EvaluateWithin for optional inputs.
// A nil operand yields a missing result (ok is false).
func EvaluateNullable(m Metric, s1, s2 *string, maxDist float64) (float64, bool) {
	if s1 == nil || s2 == nil {
		return 0, false
	}

	return m.distance(*s1, *s2, maxDist), true
}

const scoreTolerance = 1e-9

// Compare returns the similarity 1 - Normalize(m)(s1, s2), in [0, 1].
func Compare(s1, s2 string, m Metric) float64 {
	return 1 - Normalize(m).distance(s1, s2, 1.0)
}

// CompareWithin is Compare with a pruning threshold. Similarities below
// minScore are reported as 0.
func CompareWithin(s1, s2 string, m Metric, minScore float64) float64 {
	// 1-minScore rounds down for thresholds like 0.8
	score := 1 - Normalize(m).distance(s1, s2, 1-minScore+scoreTolerance)
	if score < minScore {
		return 0
	}

	return score
}

// CompareNullable is Compare for optional inputs.
func CompareNullable(s1, s2 *string, m Metric) (float64, bool) {
	if s1 == nil || s2 == nil {
		return 0, false
	}

	return Compare(*s1, *s2, m), true
}
