package extend

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// ZeroPadding extends a finite vector to all integers with zeros. It is
// the canonical compact sequence: its non-zero range is exactly the
// backing range [i0, i1].
type ZeroPadding[T vec.Scalar] struct {
	v *vec.Vector[T]
}

// NewZeroPadding wraps v in a zero-padded extension.
// Returns vec.ErrNilVector when v is nil.
// Complexity: O(1); the vector is shared, not copied.
func NewZeroPadding[T vec.Scalar](v *vec.Vector[T]) (*ZeroPadding[T], error) {
	if v == nil {
		return nil, vec.ErrNilVector
	}

	return &ZeroPadding[T]{v: v}, nil
}

// Vector returns the shared backing vector.
func (p *ZeroPadding[T]) Vector() *vec.Vector[T] { return p.v }

// At returns the element at index k for any integer k; zero outside the
// backing range.
// Complexity: O(1).
func (p *ZeroPadding[T]) At(k int) (T, error) {
	if k >= p.v.First() && k <= p.v.Last() {
		return p.v.At(k)
	}
	var zero T

	return zero, nil
}

// Set writes x at index k. Only in-range indices are writable: the zeros
// outside the backing range are synthesized, not stored.
// Returns ErrIndexNotWritable for out-of-range k.
// Complexity: O(1).
func (p *ZeroPadding[T]) Set(k int, x T) error {
	if k < p.v.First() || k > p.v.Last() {
		return ErrIndexNotWritable
	}

	return p.v.Set(k, x)
}

// IsCompact reports true.
func (p *ZeroPadding[T]) IsCompact() bool { return true }

// NonZeroRange returns the backing range [i0, i1].
func (p *ZeroPadding[T]) NonZeroRange() (int, int, error) {
	return p.v.First(), p.v.Last(), nil
}

// Reverse returns the zero-padded extension of the index-reversed vector.
// Complexity: O(n).
func (p *ZeroPadding[T]) Reverse() seq.Sequence[T] {
	rv, _ := vec.ReverseIndices(p.v) // v is non-nil by construction

	return &ZeroPadding[T]{v: rv}
}

// Conj returns the lazy elementwise conjugate view.
func (p *ZeroPadding[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](p) }

// ZTransform sums Σ a[k]·z^(-k) over the backing range.
// Complexity: O(n).
func (p *ZeroPadding[T]) ZTransform(z complex128) (complex128, error) {
	return seq.SumZTransform[T](p, z)
}
