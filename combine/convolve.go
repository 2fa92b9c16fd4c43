package combine

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Convolution is the lazy convolution combinator:
// Convolution(f, g)[n] == Σ_k f[k]·g[n-k]. Each read sums over the
// support of whichever operand is compact, so the sum stays finite; with
// neither operand compact the value is ill-defined and reads fail.
//
// Convolution is the sequence-level product: in the transform domain it
// multiplies, and the Dirac sequence is its identity element.
type Convolution[T vec.Scalar] struct {
	f seq.Sequence[T]
	g seq.Sequence[T]
}

// Convolve builds the convolution of f and g. Construction only checks
// the operands for nil; compactness is checked per read, so an operand
// may become usable later (e.g. after being collected).
// Returns ErrNilSequence when either operand is nil.
// Complexity: O(1) construction; reads cost the compact operand's support.
func Convolve[T vec.Scalar](f, g seq.Sequence[T]) (seq.Sequence[T], error) {
	if f == nil || g == nil {
		return nil, ErrNilSequence
	}

	return &Convolution[T]{f: f, g: g}, nil
}

// Left returns the first operand.
func (c *Convolution[T]) Left() seq.Sequence[T] { return c.f }

// Right returns the second operand.
func (c *Convolution[T]) Right() seq.Sequence[T] { return c.g }

// At returns Σ_k f[k]·g[n-k], iterating k over the compact operand's
// non-zero range (the symmetric form Σ_k g[k]·f[n-k] when only g is
// compact). Returns ErrUndefinedConvolution when neither operand is.
// Complexity: O(support) reads of each operand.
func (c *Convolution[T]) At(n int) (T, error) {
	var zero T
	f, g := c.f, c.g
	if !f.IsCompact() {
		if !g.IsCompact() {
			return zero, ErrUndefinedConvolution
		}
		f, g = g, f // sum over the compact operand's support
	}

	lo, hi, err := f.NonZeroRange()
	if err != nil {
		return zero, err
	}
	var sum, x, y T
	for k := lo; k <= hi; k++ {
		if x, err = f.At(k); err != nil {
			return zero, err
		}
		if y, err = g.At(n - k); err != nil {
			return zero, err
		}
		sum += x * y
	}

	return sum, nil
}

// IsCompact reports true only when BOTH operands are compact; a single
// compact operand makes reads well-defined but leaves the result with
// unbounded support in general.
func (c *Convolution[T]) IsCompact() bool { return c.f.IsCompact() && c.g.IsCompact() }

// NonZeroRange combines the operand ranges [a, b] and [c, d] into
// [a+c, b+d]: the sum f[k]·g[n-k] needs k ≤ b and n-k ≤ d, hence n ≤ b+d,
// and symmetrically n ≥ a+c.
// Returns seq.ErrNotCompact unless both operands are compact.
func (c *Convolution[T]) NonZeroRange() (int, int, error) {
	a, b, err := c.f.NonZeroRange()
	if err != nil {
		return 0, 0, err
	}
	lo, hi, err := c.g.NonZeroRange()
	if err != nil {
		return 0, 0, err
	}

	return a + lo, b + hi, nil
}

// Reverse stacks a reversal layer.
func (c *Convolution[T]) Reverse() seq.Sequence[T] { return reverseOf[T](c) }

// Conj returns the lazy elementwise conjugate view.
func (c *Convolution[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](c) }

// ZTransform uses the convolution closed form: F(z)·G(z).
func (c *Convolution[T]) ZTransform(z complex128) (complex128, error) {
	fz, err := c.f.ZTransform(z)
	if err != nil {
		return 0, err
	}
	gz, err := c.g.ZTransform(z)
	if err != nil {
		return 0, err
	}

	return fz * gz, nil
}
