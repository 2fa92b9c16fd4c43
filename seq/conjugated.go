package seq

import (
	"math/cmplx"

	"github.com/katalvlaran/seqext/vec"
)

// Conjugated is the lazy elementwise-conjugate view of a wrapped sequence:
// Conjugated(f)[k] == conj(f[k]). It owns no storage; compactness and
// support delegate to the wrapped sequence unchanged.
type Conjugated[T vec.Scalar] struct {
	inner Sequence[T]
}

// Conjugate wraps s in a Conjugated view. Conjugating a Conjugated
// unwraps it (conj ∘ conj = id), so chains never stack.
// Complexity: O(1).
func Conjugate[T vec.Scalar](s Sequence[T]) Sequence[T] {
	if c, ok := s.(*Conjugated[T]); ok {
		return c.inner
	}

	return &Conjugated[T]{inner: s}
}

// Inner returns the wrapped sequence.
func (c *Conjugated[T]) Inner() Sequence[T] { return c.inner }

// At returns conj(f[k]).
func (c *Conjugated[T]) At(k int) (T, error) {
	x, err := c.inner.At(k)
	if err != nil {
		var zero T

		return zero, err
	}

	return vec.Conj(x), nil
}

// IsCompact delegates to the wrapped sequence (conjugation preserves zeros).
func (c *Conjugated[T]) IsCompact() bool { return c.inner.IsCompact() }

// NonZeroRange delegates to the wrapped sequence.
func (c *Conjugated[T]) NonZeroRange() (int, int, error) { return c.inner.NonZeroRange() }

// Reverse returns the conjugate of the reversed wrapped sequence
// (the two views commute).
func (c *Conjugated[T]) Reverse() Sequence[T] { return Conjugate(c.inner.Reverse()) }

// Conj unwraps back to the original sequence.
func (c *Conjugated[T]) Conj() Sequence[T] { return c.inner }

// ZTransform uses the conjugation identity
// Σ conj(f[k])·z^(-k) == conj(F(conj(z))), which inherits any closed form
// the wrapped sequence provides.
func (c *Conjugated[T]) ZTransform(z complex128) (complex128, error) {
	inner, err := c.inner.ZTransform(cmplx.Conj(z))
	if err != nil {
		return 0, err
	}

	return cmplx.Conj(inner), nil
}
