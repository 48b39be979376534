package domain

import "errors"

// ErrNoData marks a source response that was well-formed but carried no
// usable observation for the queried company and month. Callers record
// the observation as absent rather than failing the run.
var ErrNoData = errors.New("source returned no usable data")
