package combine

import "errors"

var (
	// ErrNilSequence indicates a nil operand was passed to a combinator
	// constructor.
	ErrNilSequence = errors.New("combine: nil sequence operand")

	// ErrBadFactor indicates a non-positive resampling factor M.
	ErrBadFactor = errors.New("combine: resampling factor must be positive")

	// ErrUndefinedConvolution indicates a convolution read with neither
	// operand compact: the defining sum has infinitely many non-zero terms
	// and is ill-defined.
	ErrUndefinedConvolution = errors.New("combine: convolution of two non-compact sequences is undefined")
)
