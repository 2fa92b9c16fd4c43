package extend

import "errors"

var (
	// ErrIndexNotWritable indicates a Set at an index that does not map
	// into the backing vector's range for the variant at hand. Only
	// Periodic maps out-of-range writes; the other variants accept
	// in-range targets alone.
	ErrIndexNotWritable = errors.New("extend: index not writable")

	// ErrBadSymmetryTag indicates a symmetry kind or parity outside the
	// declared enum values.
	ErrBadSymmetryTag = errors.New("extend: invalid symmetry kind or parity")

	// ErrFoldDiverged indicates the symmetric folding loop failed to reach
	// the backing range. This only occurs for the degenerate single-sample
	// vector with half-point kinds on both ends, whose reflections
	// oscillate without ever landing in range.
	ErrFoldDiverged = errors.New("extend: symmetric fold does not reach the backing range")
)
