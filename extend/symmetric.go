package extend

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Symmetric extends a finite vector to all integers by mirror folding
// across the endpoints of the backing range. Each end carries two
// independent tags — a PointKind (where the mirror axis sits) and a
// Parity (whether reflected values flip sign) — giving 16 configurations
// in total, all constructible via NewSymmetric; the four same-tag-both-ends
// cases have shorthand constructors.
//
// Folding rule (applied repeatedly until the index lands in [i0, i1]):
//
//	right, k > i1:  WholePoint k ↦ 2·i1-k+1   HalfPoint k ↦ 2·i1-k
//	left,  k < i0:  WholePoint k ↦ 2·i0-k-1   HalfPoint k ↦ 2·i0-k
//
// Every fold across an Odd end flips the accumulated sign once; the final
// sign is applied to the in-range value.
type Symmetric[T vec.Scalar] struct {
	v           *vec.Vector[T]
	leftKind    PointKind
	rightKind   PointKind
	leftParity  Parity
	rightParity Parity
}

// NewSymmetric wraps v in a symmetric extension with the given endpoint
// tags. Any of the 16 tag combinations is legal.
// Returns vec.ErrNilVector when v is nil, ErrBadSymmetryTag for tags
// outside the declared enums.
// Complexity: O(1); the vector is shared, not copied.
func NewSymmetric[T vec.Scalar](
	v *vec.Vector[T],
	leftKind, rightKind PointKind,
	leftParity, rightParity Parity,
) (*Symmetric[T], error) {
	if v == nil {
		return nil, vec.ErrNilVector
	}
	if !validKind(leftKind) || !validKind(rightKind) ||
		!validParity(leftParity) || !validParity(rightParity) {
		return nil, ErrBadSymmetryTag
	}

	return &Symmetric[T]{
		v:           v,
		leftKind:    leftKind,
		rightKind:   rightKind,
		leftParity:  leftParity,
		rightParity: rightParity,
	}, nil
}

// NewWholePointEven builds the whole-point, even-parity extension on both
// ends: p[i1+1] == a[i1], p[i0-1] == a[i0].
func NewWholePointEven[T vec.Scalar](v *vec.Vector[T]) (*Symmetric[T], error) {
	return NewSymmetric(v, WholePoint, WholePoint, Even, Even)
}

// NewHalfPointEven builds the half-point, even-parity extension on both
// ends: p[i1+1] == a[i1-1], p[i0-1] == a[i0+1].
func NewHalfPointEven[T vec.Scalar](v *vec.Vector[T]) (*Symmetric[T], error) {
	return NewSymmetric(v, HalfPoint, HalfPoint, Even, Even)
}

// NewWholePointOdd builds the whole-point, odd-parity extension on both
// ends: p[i1+1] == -a[i1], p[i0-1] == -a[i0].
func NewWholePointOdd[T vec.Scalar](v *vec.Vector[T]) (*Symmetric[T], error) {
	return NewSymmetric(v, WholePoint, WholePoint, Odd, Odd)
}

// NewHalfPointOdd builds the half-point, odd-parity extension on both
// ends: p[i1+1] == -a[i1-1], p[i0-1] == -a[i0+1].
func NewHalfPointOdd[T vec.Scalar](v *vec.Vector[T]) (*Symmetric[T], error) {
	return NewSymmetric(v, HalfPoint, HalfPoint, Odd, Odd)
}

// Vector returns the shared backing vector.
func (s *Symmetric[T]) Vector() *vec.Vector[T] { return s.v }

// LeftKind returns the mirror kind at the left end.
func (s *Symmetric[T]) LeftKind() PointKind { return s.leftKind }

// RightKind returns the mirror kind at the right end.
func (s *Symmetric[T]) RightKind() PointKind { return s.rightKind }

// LeftParity returns the reflection parity at the left end.
func (s *Symmetric[T]) LeftParity() Parity { return s.leftParity }

// RightParity returns the reflection parity at the right end.
func (s *Symmetric[T]) RightParity() Parity { return s.rightParity }

// At returns the element at index k for any integer k, folding k into the
// backing range and applying the accumulated reflection sign.
//
// The fold is an explicit loop with an iteration guard rather than
// recursion: distant indices walk toward the range in O(|k|/n) steps, and
// the guard turns the one non-terminating configuration (a single-sample
// vector with HalfPoint kinds on both ends, whose reflections oscillate
// between i0-1 and i0+1) into ErrFoldDiverged instead of a hang.
// Complexity: O(1) in range, O(|k - i0|/n) beyond it.
func (s *Symmetric[T]) At(k int) (T, error) {
	i0, i1 := s.v.First(), s.v.Last()
	if k >= i0 && k <= i1 {
		return s.v.At(k)
	}

	// Upper bound on folds: each round trip across the range covers at
	// least one period worth of distance, plus slack for short vectors.
	dist := k - i1
	if k < i0 {
		dist = i0 - k
	}
	maxIter := 4*(dist/s.v.Len()+2) + 4

	neg := false
	for iter := 0; k < i0 || k > i1; iter++ {
		if iter > maxIter {
			var zero T

			return zero, ErrFoldDiverged
		}
		if k > i1 {
			if s.rightKind == WholePoint {
				k = 2*i1 - k + 1
			} else {
				k = 2*i1 - k
			}
			if s.rightParity == Odd {
				neg = !neg
			}
		} else {
			if s.leftKind == WholePoint {
				k = 2*i0 - k - 1
			} else {
				k = 2*i0 - k
			}
			if s.leftParity == Odd {
				neg = !neg
			}
		}
	}

	x, err := s.v.At(k)
	if err != nil {
		var zero T

		return zero, err
	}
	if neg {
		return -x, nil
	}

	return x, nil
}

// Set writes x at index k. Only in-range indices are writable: mirrored
// positions alias stored entries with a possible sign flip, and writing
// through them would be ambiguous.
// Returns ErrIndexNotWritable for out-of-range k.
// Complexity: O(1).
func (s *Symmetric[T]) Set(k int, x T) error {
	if k < s.v.First() || k > s.v.Last() {
		return ErrIndexNotWritable
	}

	return s.v.Set(k, x)
}

// IsCompact reports false: mirrored copies repeat forever.
func (s *Symmetric[T]) IsCompact() bool { return false }

// NonZeroRange returns ErrNotCompact.
func (s *Symmetric[T]) NonZeroRange() (int, int, error) { return 0, 0, seq.ErrNotCompact }

// Reverse returns the symmetric extension of the index-reversed vector
// with the endpoint roles exchanged: left and right kinds swap, left and
// right parities swap. This satisfies Reverse(s)[k] == s[-k] for all k.
// Complexity: O(n).
func (s *Symmetric[T]) Reverse() seq.Sequence[T] {
	rv, _ := vec.ReverseIndices(s.v) // v is non-nil by construction

	return &Symmetric[T]{
		v:           rv,
		leftKind:    s.rightKind,
		rightKind:   s.leftKind,
		leftParity:  s.rightParity,
		rightParity: s.leftParity,
	}
}

// Conj returns the lazy elementwise conjugate view.
func (s *Symmetric[T]) Conj() seq.Sequence[T] { return seq.Conjugate[T](s) }

// ZTransform returns ErrNotCompact: symmetric extensions have infinite
// support and no closed form is provided.
func (s *Symmetric[T]) ZTransform(complex128) (complex128, error) { return 0, seq.ErrNotCompact }
