package metric

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"strdist/utils"
)

// Default Winkler boost parameters.
const (
	DefaultPrefixScale     = 0.1
	DefaultBoostThreshold  = 0.7
	DefaultMaxPrefixLength = 4
)

type winkler struct {
	inner     Metric
	p         float64
	threshold float64
	maxLength int
}

// WinklerOption overrides a Winkler boost parameter.
type WinklerOption func(*winkler)

// WithPrefixScale sets the boost applied per shared prefix rune.
func WithPrefixScale(p float64) WinklerOption {
	return func(w *winkler) { w.p = p }
}

// WithBoostThreshold sets the similarity above which the boost applies.
func WithBoostThreshold(threshold float64) WinklerOption {
	return func(w *winkler) { w.threshold = threshold }
}

// WithMaxPrefixLength caps the number of prefix runes that count.
func WithMaxPrefixLength(n int) WinklerOption {
	return func(w *winkler) { w.maxLength = n }
}

// Winkler reduces the distance of strings that share a prefix:
// when the normalized distance d is at most 1-threshold, it becomes
// d - min(prefix, maxLength)*p*d.
//
// It fails with ErrInvalidConfiguration unless p*maxLength <= 1.
func Winkler(inner Metric, opts ...WinklerOption) (Metric, error) {
	w := winkler{
		inner:     Normalize(inner),
		p:         DefaultPrefixScale,
		threshold: DefaultBoostThreshold,
		maxLength: DefaultMaxPrefixLength,
	}

	for _, opt := range opts {
		opt(&w)
	}

	if err := w.validate(); err != nil {
		return nil, err
	}

	return w, nil
}

// MustWinkler is like Winkler but panics on an invalid configuration.
func MustWinkler(inner Metric, opts ...WinklerOption) Metric {
	m, err := Winkler(inner, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

func (w winkler) validate() error {
	switch {
	case w.p < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "winkler: negative prefix scale %v", w.p)
	case w.maxLength < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "winkler: negative max prefix length %d", w.maxLength)
	case !utils.IsInRange(0, w.threshold, 1):
		return errors.Wrapf(ErrInvalidConfiguration, "winkler: threshold %v outside [0, 1]", w.threshold)
	case w.p*float64(w.maxLength) > 1:
		return errors.WithHintf(
			errors.Wrapf(ErrInvalidConfiguration, "winkler: p*maxlength = %v", w.p*float64(w.maxLength)),
			"p must not exceed 1/%d", w.maxLength,
		)
	}

	return nil
}

func (winkler) Kind() KindEnum   { return KindWinkler }
func (winkler) Normalized() bool { return true }
func (w winkler) unwrap() Metric { return w.inner }

func (w winkler) String() string {
	if w.p == DefaultPrefixScale && w.threshold == DefaultBoostThreshold && w.maxLength == DefaultMaxPrefixLength {
		return "Winkler(" + w.inner.String() + ")"
	}

	return fmt.Sprintf("Winkler(%s, p=%v, threshold=%v, maxlength=%d)", w.inner, w.p, w.threshold, w.maxLength)
}

// distance ignores maxDist: the boost decision needs the exact score.
func (w winkler) distance(s1, s2 string, _ float64) float64 {
	score := w.inner.distance(s1, s2, 1.0)

	if score <= 1-w.threshold {
		l := CommonPrefix(s1, s2)
		score -= float64(min(l, w.maxLength)) * w.p * score
	}

	return score
}
