package seq

import "errors"

var (
	// ErrNotCompact indicates an operation that requires finite support
	// (NonZeroRange, Moment, summation-based Z-transform, Collect) was
	// invoked on a sequence without one.
	ErrNotCompact = errors.New("seq: sequence is not compact")
)
