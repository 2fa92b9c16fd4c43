package extend

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Periodic extends a finite vector to all integers by wrapping the index:
// p[k] == a[((k-i0) mod n) + i0] for a backing vector a over [i0, i1] of
// length n. The modulo is the mathematical (floor) one, so negative
// offsets wrap correctly. Periodic sequences are never compact.
type Periodic[T vec.Scalar] struct {
	v *vec.Vector[T]
}

// NewPeriodic wraps v in a periodic extension.
// Returns vec.ErrNilVector when v is nil.
// Complexity: O(1); the vector is shared, not copied.
func NewPeriodic[T vec.Scalar](v *vec.Vector[T]) (*Periodic[T], error) {
	if v == nil {
		return nil, vec.ErrNilVector
	}

	return &Periodic[T]{v: v}, nil
}

// Vector returns the shared backing vector.
func (p *Periodic[T]) Vector() *vec.Vector[T] { return p.v }

// wrap maps any integer k onto the backing range [i0, i1].
// Floor modulo: the result offset is always in [0, n).
func (p *Periodic[T]) wrap(k int) int {
	n := p.v.Len()
	off := (k - p.v.First()) % n
	if off < 0 {
		off += n
	}

	return p.v.First() + off
}

// At returns the element at index k for any integer k.
// Complexity: O(1).
func (p *Periodic[T]) At(k int) (T, error) {
	if k >= p.v.First() && k <= p.v.Last() {
		return p.v.At(k)
	}

	return p.v.At(p.wrap(k))
}

// Set writes x at index k, mapping out-of-range k through the same index
// wrap as At. The write lands in the shared backing vector, so every view
// over it observes the change.
// Complexity: O(1).
func (p *Periodic[T]) Set(k int, x T) error {
	return p.v.Set(p.wrap(k), x)
}

// IsCompact reports false: a periodic extension repeats forever.
func (p *Periodic[T]) IsCompact() bool { return false }

// NonZeroRange returns ErrNotCompact: periodic extensions have no finite
// support.
func (p *Periodic[T]) NonZeroRange() (int, int, error) { return 0, 0, seq.ErrNotCompact }

// Reverse returns the periodic extension of the index-reversed vector,
// which satisfies Reverse(p)[k] == p[-k] for all k.
// Complexity: O(n) (the reversed vector is a fresh copy, not a view).
func (p *Periodic[T]) Reverse() seq.Sequence[T] {
	rv, _ := vec.ReverseIndices(p.v) // v is non-nil by construction

	return &Periodic[T]{v: rv}
}

// Conj returns the lazy elementwise conjugate view.
func (p *Periodic[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](p) }

// ZTransform returns ErrNotCompact: the defining sum has infinitely many
// non-zero terms and no closed form is provided for periodic extensions.
func (p *Periodic[T]) ZTransform(complex128) (complex128, error) { return 0, seq.ErrNotCompact }
