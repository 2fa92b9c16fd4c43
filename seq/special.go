package seq

import "github.com/katalvlaran/seqext/vec"

// Zero is the everywhere-zero sequence. It is compact with the trivial
// support [0, 0] so that summation-based operations (moments, Collect,
// convolution) accept it without special-casing, and its Z-transform is
// the closed-form constant 0.
type Zero[T vec.Scalar] struct{}

// NewZero returns the zero sequence over the scalar type T.
func NewZero[T vec.Scalar]() Zero[T] { return Zero[T]{} }

// At returns 0 for every index k.
func (Zero[T]) At(int) (T, error) {
	var zero T

	return zero, nil
}

// IsCompact reports true: the zero sequence vanishes outside any range.
func (Zero[T]) IsCompact() bool { return true }

// NonZeroRange returns the trivial support [0, 0].
func (Zero[T]) NonZeroRange() (int, int, error) { return 0, 0, nil }

// Reverse returns the sequence itself (0 is symmetric).
func (z Zero[T]) Reverse() Sequence[T] { return z }

// Conj returns the sequence itself (0 is real).
func (z Zero[T]) Conj() Sequence[T] { return z }

// ZTransform returns the closed form 0 for every argument.
func (Zero[T]) ZTransform(complex128) (complex128, error) { return 0, nil }

// Dirac is the unit-impulse sequence: 1 at index 0, 0 everywhere else.
// It is the identity element of convolution and its Z-transform is the
// closed-form constant 1.
type Dirac[T vec.Scalar] struct{}

// NewDirac returns the unit-impulse sequence over the scalar type T.
func NewDirac[T vec.Scalar]() Dirac[T] { return Dirac[T]{} }

// At returns 1 at index 0 and 0 elsewhere.
func (Dirac[T]) At(k int) (T, error) {
	var zero T
	if k == 0 {
		return vec.FromFloat[T](1), nil
	}

	return zero, nil
}

// IsCompact reports true: the impulse is supported on [0, 0] alone.
func (Dirac[T]) IsCompact() bool { return true }

// NonZeroRange returns the support [0, 0].
func (Dirac[T]) NonZeroRange() (int, int, error) { return 0, 0, nil }

// Reverse returns the sequence itself (the impulse sits at the origin).
func (d Dirac[T]) Reverse() Sequence[T] { return d }

// Conj returns the sequence itself (1 is real).
func (d Dirac[T]) Conj() Sequence[T] { return d }

// ZTransform returns the closed form 1 for every argument.
func (Dirac[T]) ZTransform(complex128) (complex128, error) { return 1, nil }
