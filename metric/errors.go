package metric

import "github.com/cockroachdb/errors"

// ErrInvalidConfiguration is returned when a metric is built with parameters
// it cannot honour.
var ErrInvalidConfiguration = errors.New("invalid metric configuration")
