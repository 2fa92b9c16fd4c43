// Package seq: the Sequence contract shared by every seqext variant.
// This file contains ONLY the interface and its documentation; derived
// operations live in methods.go, trivial variants in special.go.
package seq

import "github.com/katalvlaran/seqext/vec"

// Sequence is a bi-infinite discrete sequence over the scalar type T:
// a total mapping from every integer index to a value.
//
// The variant set is closed and enumerable: the extension sequences in
// package extend, the lazy combinators in package combine, and the Zero /
// Dirac / Conjugated variants here. Combinators and transforms are generic
// over this interface, so a caller-supplied variant also works as long as
// it honors the contracts below.
//
// Complexity notes: At is O(1) for extension sequences on in-range indices;
// combinators pay one constant-factor hop per wrapped layer.
type Sequence[T vec.Scalar] interface {
	// At returns the element at index k, for ANY integer k.
	// It fails only in documented degenerate cases (see extend.Symmetric
	// and combine.Convolution); for every other variant it is total.
	At(k int) (T, error)

	// IsCompact reports whether the sequence is provably zero outside a
	// finite index range. When true, NonZeroRange supplies that range.
	IsCompact() bool

	// NonZeroRange returns a range [lo, hi] with At(k) == 0 for every k
	// outside it. Returns ErrNotCompact when IsCompact is false.
	NonZeroRange() (lo, hi int, err error)

	// Reverse returns a sequence g with g[k] == s[-k] for all k.
	Reverse() Sequence[T]

	// Conj returns the elementwise complex conjugate of the sequence
	// (identity for float64 elements).
	Conj() Sequence[T]

	// ZTransform evaluates S(z) = Σ s[k]·z^(-k). Variants with a closed
	// form (Zero, Dirac, the combinators) use it; the rest sum over their
	// compact support and return ErrNotCompact when they have none.
	ZTransform(z complex128) (complex128, error)
}
