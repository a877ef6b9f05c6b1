package config

import (
	"fmt"

	"strdist/internal/diagnostic"
	"strdist/metric"
	"strdist/utils"
)

// Validate checks a descriptor with defaults applied and reports every
// problem found, down the whole inner chain. Parameters a metric does not
// use are reported as warnings.
func Validate(d *Descriptor) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if d == nil {
		res.AddError(diagnostic.CodeMissingInner, "descriptor is nil", "")

		return res
	}

	path := "metric"
	for ; d != nil; d, path = d.Inner, path+".inner" {
		validateOne(res, path, d)
	}

	return res
}

func validateOne(res *diagnostic.Diagnostics, path string, d *Descriptor) {
	if d.Metric == JaroWinklerName {
		// only reached when an inner metric was given
		res.AddError(diagnostic.CodeUnexpectedInner, "jarowinkler takes no inner metric", path, "use winkler(...) instead")

		return
	}

	kind, ok := lookupKind(d.Metric)
	if !ok {
		var suggestions []string
		if name, found := suggestName(d.Metric); found {
			suggestions = append(suggestions, fmt.Sprintf("did you mean %q?", name))
		}

		res.AddError(diagnostic.CodeUnknownMetric, fmt.Sprintf("unknown metric %q", d.Metric), path, suggestions...)

		return
	}

	switch {
	case kind.IsModifier() && d.Inner == nil:
		res.AddError(diagnostic.CodeMissingInner, fmt.Sprintf("%s needs an inner metric", d.Metric), path)
	case !kind.IsModifier() && d.Inner != nil:
		res.AddError(diagnostic.CodeUnexpectedInner, fmt.Sprintf("%s takes no inner metric", d.Metric), path)
	}

	if kind.IsQGram() {
		if d.Q < 1 {
			res.AddError(diagnostic.CodeInvalidParameter, fmt.Sprintf("q must be at least 1, got %d", d.Q), path)
		}
	} else if d.Q != 0 {
		res.AddWarning(diagnostic.CodeIgnoredParameter, fmt.Sprintf("q is ignored by %s", d.Metric), path)
	}

	if kind == metric.KindWinkler {
		validateWinkler(res, path, d)
	} else if d.P != nil || d.Threshold != nil || d.MaxLength != nil {
		res.AddWarning(diagnostic.CodeIgnoredParameter, fmt.Sprintf("winkler parameters are ignored by %s", d.Metric), path)
	}
}

func validateWinkler(res *diagnostic.Diagnostics, path string, d *Descriptor) {
	if d.P != nil && *d.P < 0 {
		res.AddError(diagnostic.CodeInvalidParameter, fmt.Sprintf("p must not be negative, got %v", *d.P), path)
	}

	if d.Threshold != nil && !utils.IsInRange(0, *d.Threshold, 1) {
		res.AddError(diagnostic.CodeInvalidParameter, fmt.Sprintf("threshold must be in [0, 1], got %v", *d.Threshold), path)
	}

	if d.MaxLength != nil && *d.MaxLength < 0 {
		res.AddError(diagnostic.CodeInvalidParameter, fmt.Sprintf("maxlength must not be negative, got %d", *d.MaxLength), path)
	}

	if d.P != nil && d.MaxLength != nil && *d.P*float64(*d.MaxLength) > 1 {
		res.AddError(
			diagnostic.CodeInvalidParameter,
			fmt.Sprintf("p*maxlength must not exceed 1, got %v*%d", *d.P, *d.MaxLength),
			path,
			fmt.Sprintf("p must not exceed %v", 1/float64(*d.MaxLength)),
		)
	}
}
