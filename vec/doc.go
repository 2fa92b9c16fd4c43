// Package vec provides the finite indexable Vector underlying every
// extension sequence, plus the scalar helpers shared across seqext.
//
// A Vector[T] is a contiguous block of values addressed by an arbitrary
// integer range [First, Last] — not necessarily starting at zero. All
// element access is O(1) and bounds-checked: At and Set return
// ErrOutOfRange instead of panicking.
//
// Vectors are plain mutable containers with reference semantics at the
// seqext level: extension sequences hold a *Vector and forward writes into
// it, so several sequences wrapping the same vector observe each other's
// mutations. Use Clone when isolation is needed.
//
// The package also hosts:
//
//   - Scalar — the element-type constraint (float64 | complex128) together
//     with the promotion helpers FromFloat, Complex128 and Conj.
//   - ReverseIndices — the index-reversal utility w[i] = v[-i] consumed by
//     Reverse on extension sequences.
package vec
