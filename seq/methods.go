package seq

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/seqext/vec"
)

// Transpose returns the index-reversed sequence: Transpose(s)[k] == s[-k].
// It is an alias for s.Reverse, named for the linear-algebra reading of a
// sequence as a bi-infinite (row) vector.
// Complexity: O(1) construction.
func Transpose[T vec.Scalar](s Sequence[T]) Sequence[T] {
	return s.Reverse()
}

// Adjoint returns the conjugate transpose: Adjoint(s)[k] == conj(s[-k]).
// For float64 elements it coincides with Transpose.
// Complexity: O(1) construction.
func Adjoint[T vec.Scalar](s Sequence[T]) Sequence[T] {
	return s.Reverse().Conj()
}

// Moment computes the j-th discrete moment Σ s[k]·k^j over the sequence's
// non-zero range. The zeroth moment is the plain sum of the support.
// Returns ErrNotCompact when s has no finite support to sum over.
// Complexity: O(hi-lo+1) evaluations of At.
func Moment[T vec.Scalar](s Sequence[T], j int) (T, error) {
	var sum T
	lo, hi, err := s.NonZeroRange()
	if err != nil {
		return sum, err
	}
	var x T
	for k := lo; k <= hi; k++ {
		if x, err = s.At(k); err != nil {
			return sum, err
		}
		sum += x * vec.FromFloat[T](math.Pow(float64(k), float64(j)))
	}

	return sum, nil
}

// SumZTransform evaluates S(z) = Σ s[k]·z^(-k) by brute summation over the
// sequence's non-zero range. Variants without a closed-form Z-transform
// delegate here; combinators with one (shift, reversal, resampling,
// modulation, convolution) must NOT, for both correctness and speed.
// Returns ErrNotCompact when s has no finite support.
// Complexity: O(hi-lo+1) evaluations of At, one cmplx.Pow per term.
func SumZTransform[T vec.Scalar](s Sequence[T], z complex128) (complex128, error) {
	lo, hi, err := s.NonZeroRange()
	if err != nil {
		return 0, err
	}
	var (
		sum complex128
		x   T
	)
	for k := lo; k <= hi; k++ {
		if x, err = s.At(k); err != nil {
			return 0, err
		}
		sum += vec.Complex128(x) * cmplx.Pow(z, complex(float64(-k), 0))
	}

	return sum, nil
}

// FourierTransform evaluates the discrete-time Fourier transform of s at
// angular frequency omega: the Z-transform on the unit circle, z = e^(iω).
// The result is 2π-periodic in omega.
// Complexity: that of s.ZTransform.
func FourierTransform[T vec.Scalar](s Sequence[T], omega float64) (complex128, error) {
	return s.ZTransform(cmplx.Exp(complex(0, omega)))
}
