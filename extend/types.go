// Package extend: symmetry tags for the Symmetric extension.
package extend

// PointKind selects where the mirror axis sits when folding across an
// endpoint of the backing range.
//
//   - WholePoint — the boundary sample itself is repeated by the first
//     reflection: p[i1+1] == a[i1] on the right end.
//   - HalfPoint  — the axis sits half a step inside, so the first
//     reflection skips the boundary sample: p[i1+1] == a[i1-1].
type PointKind int

const (
	// WholePoint mirror: right fold k ↦ 2·i1-k+1, left fold k ↦ 2·i0-k-1.
	WholePoint PointKind = iota

	// HalfPoint mirror: right fold k ↦ 2·i1-k, left fold k ↦ 2·i0-k.
	HalfPoint
)

// Parity selects whether a reflected value keeps its sign (Even) or flips
// it (Odd). Sign flips accumulate: every fold across an odd boundary
// negates once more.
type Parity int

const (
	// Even parity: reflections preserve the sign.
	Even Parity = iota

	// Odd parity: each reflection across this end flips the sign.
	Odd
)

func validKind(k PointKind) bool { return k == WholePoint || k == HalfPoint }

func validParity(p Parity) bool { return p == Even || p == Odd }
