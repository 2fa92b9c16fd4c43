package extend

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// ConstantPadding extends a finite vector to all integers with a fixed
// constant: p[k] == c for every k outside the backing range. Unless c is
// zero it is visibly non-compact, and it reports non-compact even then
// (compactness is a structural property here, not a value scan).
type ConstantPadding[T vec.Scalar] struct {
	v *vec.Vector[T]
	c T
}

// NewConstantPadding wraps v in a constant-padded extension with padding
// value c.
// Returns vec.ErrNilVector when v is nil.
// Complexity: O(1); the vector is shared, not copied.
func NewConstantPadding[T vec.Scalar](v *vec.Vector[T], c T) (*ConstantPadding[T], error) {
	if v == nil {
		return nil, vec.ErrNilVector
	}

	return &ConstantPadding[T]{v: v, c: c}, nil
}

// Vector returns the shared backing vector.
func (p *ConstantPadding[T]) Vector() *vec.Vector[T] { return p.v }

// Constant returns the padding value.
func (p *ConstantPadding[T]) Constant() T { return p.c }

// At returns the element at index k for any integer k; the padding
// constant outside the backing range.
// Complexity: O(1).
func (p *ConstantPadding[T]) At(k int) (T, error) {
	if k >= p.v.First() && k <= p.v.Last() {
		return p.v.At(k)
	}

	return p.c, nil
}

// Set writes x at index k. Only in-range indices are writable: the
// padding outside the backing range is synthesized, not stored.
// Returns ErrIndexNotWritable for out-of-range k.
// Complexity: O(1).
func (p *ConstantPadding[T]) Set(k int, x T) error {
	if k < p.v.First() || k > p.v.Last() {
		return ErrIndexNotWritable
	}

	return p.v.Set(k, x)
}

// IsCompact reports false.
func (p *ConstantPadding[T]) IsCompact() bool { return false }

// NonZeroRange returns ErrNotCompact.
func (p *ConstantPadding[T]) NonZeroRange() (int, int, error) { return 0, 0, seq.ErrNotCompact }

// Reverse returns the constant-padded extension of the index-reversed
// vector, keeping the same padding constant.
// Complexity: O(n).
func (p *ConstantPadding[T]) Reverse() seq.Sequence[T] {
	rv, _ := vec.ReverseIndices(p.v) // v is non-nil by construction

	return &ConstantPadding[T]{v: rv, c: p.c}
}

// Conj returns the lazy elementwise conjugate view.
func (p *ConstantPadding[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](p) }

// ZTransform returns ErrNotCompact: the defining sum diverges for a
// non-zero padding constant and no closed form is provided.
func (p *ConstantPadding[T]) ZTransform(complex128) (complex128, error) {
	return 0, seq.ErrNotCompact
}
