package combine

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Reversed is the lazy index-reversal combinator: Reversed(f)[n] == f[-n].
type Reversed[T vec.Scalar] struct {
	inner seq.Sequence[T]
}

// Reverse builds the reversal of s. Reversing a Reversed unwraps it
// (reverse ∘ reverse = id), so chains never stack. Note that extension
// sequences implement their own Reverse (over a reversed vector); this
// constructor is the generic lazy fallback for arbitrary operands.
// Returns ErrNilSequence when s is nil.
// Complexity: O(1).
func Reverse[T vec.Scalar](s seq.Sequence[T]) (seq.Sequence[T], error) {
	if s == nil {
		return nil, ErrNilSequence
	}

	return reverseOf(s), nil
}

// reverseOf wraps (or unwraps) without the nil check; combinator Reverse
// methods call it on their own receivers.
func reverseOf[T vec.Scalar](s seq.Sequence[T]) seq.Sequence[T] {
	if r, ok := s.(*Reversed[T]); ok {
		return r.inner
	}

	return &Reversed[T]{inner: s}
}

// Inner returns the wrapped sequence.
func (r *Reversed[T]) Inner() seq.Sequence[T] { return r.inner }

// At returns f[-n].
func (r *Reversed[T]) At(n int) (T, error) { return r.inner.At(-n) }

// IsCompact delegates to the operand: reversal preserves finite support.
func (r *Reversed[T]) IsCompact() bool { return r.inner.IsCompact() }

// NonZeroRange is the operand's range mirrored through zero: [-hi, -lo].
func (r *Reversed[T]) NonZeroRange() (int, int, error) {
	lo, hi, err := r.inner.NonZeroRange()
	if err != nil {
		return 0, 0, err
	}

	return -hi, -lo, nil
}

// Reverse unwraps back to the original sequence.
func (r *Reversed[T]) Reverse() seq.Sequence[T] { return r.inner }

// Conj returns the lazy elementwise conjugate view.
func (r *Reversed[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](r) }

// ZTransform uses the reversal closed form: F(1/z).
func (r *Reversed[T]) ZTransform(z complex128) (complex128, error) {
	return r.inner.ZTransform(1 / z)
}
