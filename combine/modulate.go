package combine

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Modulated is the lazy sign-alternation combinator:
// Modulated(f)[n] == (-1)^n · f[n]. Modulation shifts the spectrum by π
// (lowpass ↔ highpass in the wavelet setting).
type Modulated[T vec.Scalar] struct {
	inner seq.Sequence[T]
}

// Modulate builds the sign-alternated view of s. Modulating a Modulated
// unwraps it ((-1)^n twice is the identity), so chains never stack.
// Returns ErrNilSequence when s is nil.
// Complexity: O(1).
func Modulate[T vec.Scalar](s seq.Sequence[T]) (seq.Sequence[T], error) {
	if s == nil {
		return nil, ErrNilSequence
	}
	if m, ok := s.(*Modulated[T]); ok {
		return m.inner, nil
	}

	return &Modulated[T]{inner: s}, nil
}

// Inner returns the wrapped sequence.
func (m *Modulated[T]) Inner() seq.Sequence[T] { return m.inner }

// At returns (-1)^n · f[n]. Odd n flips the sign, also for negative n.
func (m *Modulated[T]) At(n int) (T, error) {
	x, err := m.inner.At(n)
	if err != nil {
		var zero T

		return zero, err
	}
	if n%2 != 0 {
		return -x, nil
	}

	return x, nil
}

// IsCompact delegates to the operand: sign flips preserve zeros.
func (m *Modulated[T]) IsCompact() bool { return m.inner.IsCompact() }

// NonZeroRange is the operand's range unchanged.
func (m *Modulated[T]) NonZeroRange() (int, int, error) { return m.inner.NonZeroRange() }

// Reverse stacks a reversal layer.
func (m *Modulated[T]) Reverse() seq.Sequence[T] { return reverseOf[T](m) }

// Conj returns the lazy elementwise conjugate view.
func (m *Modulated[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](m) }

// ZTransform uses the modulation closed form: F(-z).
func (m *Modulated[T]) ZTransform(z complex128) (complex128, error) {
	return m.inner.ZTransform(-z)
}
