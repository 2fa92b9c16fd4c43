package combine

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Downsampled is the lazy decimation combinator:
// Downsampled(f, M)[n] == f[M·n]. Only every M-th element of the operand
// survives; downsampling is lossy.
type Downsampled[T vec.Scalar] struct {
	inner  seq.Sequence[T]
	factor int
}

// DefaultFactor is the resampling factor used by the dyadic (wavelet)
// convention when no explicit M is given at the call site.
const DefaultFactor = 2

// Downsample builds the decimation of s by factor m. Downsampling an
// already downsampled sequence merges multiplicatively into one layer.
// A factor of 1 returns the operand unchanged.
// Returns ErrNilSequence when s is nil, ErrBadFactor when m < 1.
// Complexity: O(1).
func Downsample[T vec.Scalar](s seq.Sequence[T], m int) (seq.Sequence[T], error) {
	if s == nil {
		return nil, ErrNilSequence
	}
	if m < 1 {
		return nil, ErrBadFactor
	}
	if d, ok := s.(*Downsampled[T]); ok {
		s, m = d.inner, d.factor*m
	}
	if m == 1 {
		return s, nil
	}

	return &Downsampled[T]{inner: s, factor: m}, nil
}

// Inner returns the wrapped sequence.
func (d *Downsampled[T]) Inner() seq.Sequence[T] { return d.inner }

// Factor returns the (merged) decimation factor.
func (d *Downsampled[T]) Factor() int { return d.factor }

// At returns f[M·n].
func (d *Downsampled[T]) At(n int) (T, error) { return d.inner.At(d.factor * n) }

// IsCompact delegates to the operand: decimation preserves finite support.
func (d *Downsampled[T]) IsCompact() bool { return d.inner.IsCompact() }

// NonZeroRange maps the operand's range [a, b] to
// [⌊(a-1)/M⌋+1, ⌊(b-1)/M⌋+1] (floor division). The top end may cover a
// trailing zero when M does not divide b, which still satisfies the
// zero-outside-the-range contract.
func (d *Downsampled[T]) NonZeroRange() (int, int, error) {
	a, b, err := d.inner.NonZeroRange()
	if err != nil {
		return 0, 0, err
	}

	return floorDiv(a-1, d.factor) + 1, floorDiv(b-1, d.factor) + 1, nil
}

// Reverse stacks a reversal layer.
func (d *Downsampled[T]) Reverse() seq.Sequence[T] { return reverseOf[T](d) }

// Conj returns the lazy elementwise conjugate view.
func (d *Downsampled[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](d) }

// ZTransform uses the aliasing sum
//
//	(1/M) · Σ_{m=0}^{M-1} F(e^(-i·2πm/M) · z^(1/M)),
//
// taking the PRINCIPAL branch of z^(1/M) (cmplx.Pow); the fractional
// power is multi-valued for complex z and other branches are not summed.
func (d *Downsampled[T]) ZTransform(z complex128) (complex128, error) {
	root := cmplx.Pow(z, complex(1/float64(d.factor), 0))
	var sum complex128
	for m := 0; m < d.factor; m++ {
		phase := cmplx.Exp(complex(0, -2*math.Pi*float64(m)/float64(d.factor)))
		fz, err := d.inner.ZTransform(phase * root)
		if err != nil {
			return 0, err
		}
		sum += fz
	}

	return sum / complex(float64(d.factor), 0), nil
}

// Upsampled is the lazy zero-stuffing combinator:
// Upsampled(f, M)[n] == f[n/M] when M divides n, 0 otherwise.
type Upsampled[T vec.Scalar] struct {
	inner  seq.Sequence[T]
	factor int
}

// Upsample builds the zero-stuffed expansion of s by factor m. Upsampling
// an already upsampled sequence merges multiplicatively into one layer.
// A factor of 1 returns the operand unchanged.
// Returns ErrNilSequence when s is nil, ErrBadFactor when m < 1.
// Complexity: O(1).
func Upsample[T vec.Scalar](s seq.Sequence[T], m int) (seq.Sequence[T], error) {
	if s == nil {
		return nil, ErrNilSequence
	}
	if m < 1 {
		return nil, ErrBadFactor
	}
	if u, ok := s.(*Upsampled[T]); ok {
		s, m = u.inner, u.factor*m
	}
	if m == 1 {
		return s, nil
	}

	return &Upsampled[T]{inner: s, factor: m}, nil
}

// Inner returns the wrapped sequence.
func (u *Upsampled[T]) Inner() seq.Sequence[T] { return u.inner }

// Factor returns the (merged) expansion factor.
func (u *Upsampled[T]) Factor() int { return u.factor }

// At returns f[n/M] when M divides n (exactly, also for negative n) and
// the additive identity otherwise.
func (u *Upsampled[T]) At(n int) (T, error) {
	if n%u.factor != 0 {
		var zero T

		return zero, nil
	}

	return u.inner.At(n / u.factor)
}

// IsCompact delegates to the operand: zero-stuffing preserves finite
// support.
func (u *Upsampled[T]) IsCompact() bool { return u.inner.IsCompact() }

// NonZeroRange maps the operand's range [a, b] to [a·M, b·M].
func (u *Upsampled[T]) NonZeroRange() (int, int, error) {
	a, b, err := u.inner.NonZeroRange()
	if err != nil {
		return 0, 0, err
	}

	return a * u.factor, b * u.factor, nil
}

// Reverse stacks a reversal layer.
func (u *Upsampled[T]) Reverse() seq.Sequence[T] { return reverseOf[T](u) }

// Conj returns the lazy elementwise conjugate view.
func (u *Upsampled[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](u) }

// ZTransform uses the zero-stuffing closed form: F(z^M).
func (u *Upsampled[T]) ZTransform(z complex128) (complex128, error) {
	return u.inner.ZTransform(cmplx.Pow(z, complex(float64(u.factor), 0)))
}

// floorDiv divides a by positive b, rounding toward negative infinity.
// Go's native integer division truncates toward zero, which would shift
// support bounds for negative numerators.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}

	return q
}
