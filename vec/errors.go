package vec

import "errors"

var (
	// ErrOutOfRange indicates an index outside [First, Last].
	// At and Set MUST return this, not panic.
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrEmptyVector indicates a constructor received no values.
	ErrEmptyVector = errors.New("vec: vector must hold at least one value")

	// ErrBadRange indicates a requested index range with last < first.
	ErrBadRange = errors.New("vec: last index precedes first index")

	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("vec: nil vector")
)
