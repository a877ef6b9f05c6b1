package metric

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// qgramDistancer is implemented by metrics built on q-gram profiles.
type qgramDistancer interface {
	qgramSize() int
}

// profile counts the q-grams of a string.
type profile map[string]int

func newProfile(s string, q int) profile {
	p := make(profile)
	for g := range QGrams(s, q) {
		p[g]++
	}

	return p
}

type qgramBase struct {
	kind KindEnum
	q    int
}

func (b qgramBase) Kind() KindEnum   { return b.kind }
func (b qgramBase) Normalized() bool { return b.kind != KindQGram }
func (b qgramBase) qgramSize() int   { return b.q }

func (b qgramBase) String() string {
	return b.kind.String() + "(" + strconv.Itoa(b.q) + ")"
}

func (b qgramBase) distance(s1, s2 string, _ float64) float64 {
	p1, p2 := newProfile(s1, b.q), newProfile(s2, b.q)

	switch b.kind {
	case KindQGram:
		return qgramCount(p1, p2)
	case KindCosine:
		return cosine(p1, p2, s1 == s2)
	}

	shared := 0
	for g := range p1 {
		if _, ok := p2[g]; ok {
			shared++
		}
	}

	n1, n2 := float64(len(p1)), float64(len(p2))
	if n1 == 0 || n2 == 0 {
		return boolDistance(s1 == s2)
	}

	fs := float64(shared)

	switch b.kind {
	case KindJaccard:
		return 1 - fs/(n1+n2-fs)
	case KindOverlap:
		return 1 - fs/min(n1, n2)
	default:
		return 1 - 2*fs/(n1+n2)
	}
}

func qgramCount(p1, p2 profile) float64 {
	total := 0

	for g, c1 := range p1 {
		c2 := p2[g]
		total += max(c1-c2, c2-c1)
	}

	for g, c2 := range p2 {
		if _, ok := p1[g]; !ok {
			total += c2
		}
	}

	return float64(total)
}

func cosine(p1, p2 profile, equal bool) float64 {
	dot, norm1, norm2 := 0, 0, 0

	for g, c1 := range p1 {
		norm1 += c1 * c1
		dot += c1 * p2[g]
	}

	for _, c2 := range p2 {
		norm2 += c2 * c2
	}

	if norm1 == 0 || norm2 == 0 {
		return boolDistance(equal)
	}

	// sqrt of the product stays exact for identical profiles
	return max(0, 1-float64(dot)/math.Sqrt(float64(norm1)*float64(norm2)))
}

func newQGram(kind KindEnum, q int) (Metric, error) {
	if q < 1 {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidConfiguration, "%s: q-gram size %d", kind, q),
			"q must be at least 1",
		)
	}

	return qgramBase{kind: kind, q: q}, nil
}

// QGram is the sum of absolute differences between the q-gram counts of two
// strings. It is unbounded.
func QGram(q int) (Metric, error) { return newQGram(KindQGram, q) }

// Cosine is one minus the cosine similarity of the q-gram count vectors.
func Cosine(q int) (Metric, error) { return newQGram(KindCosine, q) }

// Jaccard is one minus |A∩B| / |A∪B| over the distinct q-grams.
func Jaccard(q int) (Metric, error) { return newQGram(KindJaccard, q) }

// Overlap is one minus |A∩B| / min(|A|, |B|) over the distinct q-grams.
func Overlap(q int) (Metric, error) { return newQGram(KindOverlap, q) }

// SorensenDice is one minus 2|A∩B| / (|A|+|B|) over the distinct q-grams.
func SorensenDice(q int) (Metric, error) { return newQGram(KindSorensenDice, q) }
