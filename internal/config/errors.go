package config

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownMetric is returned for metric names no constructor answers to.
	ErrUnknownMetric = errors.New("unknown metric")
	// ErrMissingInner is returned for a modifier without an inner metric.
	ErrMissingInner = errors.New("modifier needs an inner metric")
	// ErrSyntax is returned for malformed short form expressions.
	ErrSyntax = errors.New("invalid metric expression")
)
