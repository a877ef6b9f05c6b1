package config

import (
	"strings"

	"github.com/cockroachdb/errors"

	"strdist/metric"
)

var baseConstructors = map[metric.KindEnum]func() metric.Metric{
	metric.KindHamming:                metric.Hamming,
	metric.KindLevenshtein:            metric.Levenshtein,
	metric.KindOptimalStringAlignment: metric.OptimalStringAlignment,
	metric.KindDamerauLevenshtein:     metric.DamerauLevenshtein,
	metric.KindJaro:                   metric.Jaro,
	metric.KindRatcliffObershelp:      metric.RatcliffObershelp,
}

var qgramConstructors = map[metric.KindEnum]func(int) (metric.Metric, error){
	metric.KindQGram:        metric.QGram,
	metric.KindCosine:       metric.Cosine,
	metric.KindJaccard:      metric.Jaccard,
	metric.KindOverlap:      metric.Overlap,
	metric.KindSorensenDice: metric.SorensenDice,
}

var modifierConstructors = map[metric.KindEnum]func(metric.Metric) metric.Metric{
	metric.KindNormalize: metric.Normalize,
	metric.KindPartial:   metric.Partial,
	metric.KindTokenSort: metric.TokenSort,
	metric.KindTokenSet:  metric.TokenSet,
	metric.KindTokenMax:  metric.TokenMax,
}

// Build constructs the metric a descriptor describes. The descriptor is not
// modified; defaults are applied to a copy.
func Build(d *Descriptor) (metric.Metric, error) {
	if d == nil {
		return nil, errors.Wrap(ErrMissingInner, "nil descriptor")
	}

	d = d.clone()
	applyDefaults(d)

	return build(d)
}

// BuildExpr parses a short form expression and builds it.
func BuildExpr(expr string) (metric.Metric, error) {
	d, err := ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	return Build(d)
}

func build(d *Descriptor) (metric.Metric, error) {
	kind, ok := lookupKind(d.Metric)
	if !ok {
		err := errors.Wrapf(ErrUnknownMetric, "%q", d.Metric)
		if name, found := suggestName(d.Metric); found {
			return nil, errors.WithHintf(err, "did you mean %q?", name)
		}

		return nil, errors.WithHintf(err, "known metrics: %s", strings.Join(Names(), ", "))
	}

	if !kind.IsModifier() {
		if d.Inner != nil {
			return nil, errors.Wrapf(metric.ErrInvalidConfiguration, "%s takes no inner metric", d.Metric)
		}

		if ctor, ok := qgramConstructors[kind]; ok {
			return ctor(d.Q)
		}

		return baseConstructors[kind](), nil
	}

	if d.Inner == nil {
		return nil, errors.Wrapf(ErrMissingInner, "%s", d.Metric)
	}

	inner, err := build(d.Inner)
	if err != nil {
		return nil, errors.Wrapf(err, "inner of %s", d.Metric)
	}

	if kind == metric.KindWinkler {
		return metric.Winkler(inner, winklerOptions(d)...)
	}

	return modifierConstructors[kind](inner), nil
}

func winklerOptions(d *Descriptor) []metric.WinklerOption {
	var opts []metric.WinklerOption

	if d.P != nil {
		opts = append(opts, metric.WithPrefixScale(*d.P))
	}

	if d.Threshold != nil {
		opts = append(opts, metric.WithBoostThreshold(*d.Threshold))
	}

	if d.MaxLength != nil {
		opts = append(opts, metric.WithMaxPrefixLength(*d.MaxLength))
	}

	return opts
}
