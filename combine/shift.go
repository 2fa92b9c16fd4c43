package combine

import (
	"math/cmplx"

	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Shifted is the lazy shift combinator: Shifted(f, k)[n] == f[n-k].
// Positive k moves the sequence toward larger indices.
type Shifted[T vec.Scalar] struct {
	inner  seq.Sequence[T]
	offset int
}

// Shift builds the shift of s by k. Shifting an already shifted sequence
// merges the offsets into a single layer, so
// Shift(Shift(f, 3), 4) == Shift(f, 7) structurally, not just pointwise.
// A zero total offset returns the operand unchanged.
// Returns ErrNilSequence when s is nil.
// Complexity: O(1).
func Shift[T vec.Scalar](s seq.Sequence[T], k int) (seq.Sequence[T], error) {
	if s == nil {
		return nil, ErrNilSequence
	}
	if sh, ok := s.(*Shifted[T]); ok {
		s, k = sh.inner, sh.offset+k
	}
	if k == 0 {
		return s, nil
	}

	return &Shifted[T]{inner: s, offset: k}, nil
}

// Inner returns the wrapped sequence.
func (s *Shifted[T]) Inner() seq.Sequence[T] { return s.inner }

// Shift returns the (merged) shift offset.
func (s *Shifted[T]) Shift() int { return s.offset }

// At returns f[n-k].
func (s *Shifted[T]) At(n int) (T, error) { return s.inner.At(n - s.offset) }

// IsCompact delegates to the operand: shifting preserves finite support.
func (s *Shifted[T]) IsCompact() bool { return s.inner.IsCompact() }

// NonZeroRange is the operand's range translated by the offset.
func (s *Shifted[T]) NonZeroRange() (int, int, error) {
	lo, hi, err := s.inner.NonZeroRange()
	if err != nil {
		return 0, 0, err
	}

	return lo + s.offset, hi + s.offset, nil
}

// Reverse stacks a reversal layer (reversal of a shift is not simplified).
func (s *Shifted[T]) Reverse() seq.Sequence[T] { return reverseOf[T](s) }

// Conj returns the lazy elementwise conjugate view.
func (s *Shifted[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](s) }

// ZTransform uses the shift closed form: z^(-k) · F(z).
func (s *Shifted[T]) ZTransform(z complex128) (complex128, error) {
	fz, err := s.inner.ZTransform(z)
	if err != nil {
		return 0, err
	}

	return cmplx.Pow(z, complex(float64(-s.offset), 0)) * fz, nil
}
