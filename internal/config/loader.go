package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"strdist/metric"
)

// DefaultQ is the q-gram size used when a descriptor sets none.
const DefaultQ = 2

// LoadFile loads and parses a YAML descriptor file from the given path.
func LoadFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptor file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into a Descriptor with defaults applied.
func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor

	err := yaml.Unmarshal(data, &d)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse descriptor YAML")
	}

	// Apply defaults and normalize
	applyDefaults(&d)

	return &d, nil
}

// Marshal serializes a Descriptor to YAML.
func Marshal(d *Descriptor) ([]byte, error) {
	return yaml.Marshal(d)
}

// WriteFile writes a Descriptor to the given path.
func WriteFile(d *Descriptor, path string) error {
	data, err := Marshal(d)
	if err != nil {
		return errors.Wrap(err, "failed to marshal descriptor")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write descriptor file %s", path)
	}

	return nil
}

// applyDefaults canonicalizes names and fills in default values for
// optional fields, down the whole inner chain.
func applyDefaults(d *Descriptor) {
	for ; d != nil; d = d.Inner {
		d.Metric = canonicalName(d.Metric)

		if d.Metric == JaroWinklerName && d.Inner == nil {
			d.Metric = canonicalName(metric.KindWinkler.String())
			d.Inner = &Descriptor{Metric: canonicalName(metric.KindJaro.String())}
		}

		kind, ok := lookupKind(d.Metric)
		if !ok {
			continue
		}

		switch {
		case kind.IsQGram() && d.Q == 0:
			d.Q = DefaultQ
		case kind == metric.KindWinkler:
			if d.P == nil {
				p := metric.DefaultPrefixScale
				d.P = &p
			}

			if d.Threshold == nil {
				threshold := metric.DefaultBoostThreshold
				d.Threshold = &threshold
			}

			if d.MaxLength == nil {
				maxLength := metric.DefaultMaxPrefixLength
				d.MaxLength = &maxLength
			}
		}
	}
}
