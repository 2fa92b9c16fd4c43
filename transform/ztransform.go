package transform

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Z is an immutable binding of a sequence to its Z-transform
// S(z) = Σ s[k]·z^(-k).
type Z[T vec.Scalar] struct {
	s seq.Sequence[T]
}

// NewZ binds s for repeated Z-transform evaluation.
// Complexity: O(1).
func NewZ[T vec.Scalar](s seq.Sequence[T]) Z[T] {
	return Z[T]{s: s}
}

// Sequence returns the bound sequence.
func (t Z[T]) Sequence() seq.Sequence[T] { return t.s }

// Eval evaluates the transform at z. The result type is complex128
// regardless of the sequence's element type, so real sequences accept
// complex arguments.
// Complexity: that of the bound sequence's ZTransform.
func (t Z[T]) Eval(z complex128) (complex128, error) {
	return t.s.ZTransform(z)
}
