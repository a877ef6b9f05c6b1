// Package config turns metric descriptors into metric.Metric values and
// loads the CLI settings.
//
// A descriptor is written in YAML, either as a mapping:
//
//	metric: tokenmax
//	inner:
//	  metric: winkler
//	  p: 0.15
//	  inner: jaro
//
// or in the short textual form accepted everywhere a descriptor is expected:
//
//	tokenmax(winkler(jaro))
//	partial(cosine:3)
//
// The short form carries the metric name, an optional q-gram size after a
// colon and an optional inner descriptor in parentheses. Winkler parameters
// need the mapping form.
package config
