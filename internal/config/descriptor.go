package config

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Descriptor describes a metric composition.
type Descriptor struct {
	// Metric is the metric or modifier name, see Names.
	Metric string `yaml:"metric"`
	// Inner is the wrapped metric of a modifier.
	Inner *Descriptor `yaml:"inner,omitempty"`
	// Q is the q-gram size of the q-gram family.
	Q int `yaml:"q,omitempty"`
	// P is the Winkler prefix scale.
	P *float64 `yaml:"p,omitempty"`
	// Threshold is the Winkler boost threshold.
	Threshold *float64 `yaml:"threshold,omitempty"`
	// MaxLength is the Winkler prefix length cap.
	MaxLength *int `yaml:"maxlength,omitempty"`
}

// rawDescriptor has Descriptor's fields without its YAML methods.
type rawDescriptor Descriptor

// UnmarshalYAML implements custom YAML unmarshaling for Descriptor.
// Accepts either a short form expression or a mapping.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var expr string

		err := node.Decode(&expr)
		if err != nil {
			return err
		}

		parsed, err := ParseExpr(expr)
		if err != nil {
			return errors.Wrapf(err, "line %d", node.Line)
		}

		*d = *parsed

		return nil

	case yaml.MappingNode:
		var raw rawDescriptor

		err := node.Decode(&raw)
		if err != nil {
			return err
		}

		*d = Descriptor(raw)

		return nil

	default:
		return errors.Newf("line %d: expected metric expression or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Descriptor.
// Outputs the short form when it can express the descriptor.
func (d Descriptor) MarshalYAML() (any, error) {
	if expr, ok := d.shortForm(); ok {
		return expr, nil
	}

	return rawDescriptor(d), nil
}

// String returns the short form, or the YAML flow mapping when Winkler
// parameters are set.
func (d Descriptor) String() string {
	if expr, ok := d.shortForm(); ok {
		return expr
	}

	var sb strings.Builder

	sb.WriteString("{metric: " + d.Metric)

	if d.P != nil {
		sb.WriteString(", p: " + strconv.FormatFloat(*d.P, 'g', -1, 64))
	}

	if d.Threshold != nil {
		sb.WriteString(", threshold: " + strconv.FormatFloat(*d.Threshold, 'g', -1, 64))
	}

	if d.MaxLength != nil {
		sb.WriteString(", maxlength: " + strconv.Itoa(*d.MaxLength))
	}

	if d.Inner != nil {
		sb.WriteString(", inner: " + d.Inner.String())
	}

	sb.WriteString("}")

	return sb.String()
}

func (d Descriptor) shortForm() (string, bool) {
	if d.P != nil || d.Threshold != nil || d.MaxLength != nil {
		return "", false
	}

	expr := d.Metric
	if d.Q != 0 {
		expr += ":" + strconv.Itoa(d.Q)
	}

	if d.Inner != nil {
		inner, ok := d.Inner.shortForm()
		if !ok {
			return "", false
		}

		expr += "(" + inner + ")"
	}

	return expr, true
}

// clone returns a deep copy of d.
func (d *Descriptor) clone() *Descriptor {
	if d == nil {
		return nil
	}

	c := *d
	c.Inner = d.Inner.clone()

	if d.P != nil {
		p := *d.P
		c.P = &p
	}

	if d.Threshold != nil {
		threshold := *d.Threshold
		c.Threshold = &threshold
	}

	if d.MaxLength != nil {
		maxLength := *d.MaxLength
		c.MaxLength = &maxLength
	}

	return &c
}
