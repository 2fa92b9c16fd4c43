package transform

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Fourier is an immutable binding of a sequence to its discrete-time
// Fourier transform S(ω) = Σ s[k]·e^(-iωk), the Z-transform evaluated on
// the unit circle.
type Fourier[T vec.Scalar] struct {
	s seq.Sequence[T]
}

// NewFourier binds s for repeated Fourier-transform evaluation.
// Complexity: O(1).
func NewFourier[T vec.Scalar](s seq.Sequence[T]) Fourier[T] {
	return Fourier[T]{s: s}
}

// Sequence returns the bound sequence.
func (t Fourier[T]) Sequence() seq.Sequence[T] { return t.s }

// Eval evaluates the transform at angular frequency omega. The result is
// 2π-periodic in omega.
// Complexity: that of the bound sequence's ZTransform.
func (t Fourier[T]) Eval(omega float64) (complex128, error) {
	return seq.FourierTransform(t.s, omega)
}
