// Package extend provides the vector-backed extension sequences: a finite
// vec.Vector plus a rule answering reads at every out-of-range integer
// index.
//
// 🚀 Extension rules
//
//	For a backing vector a over [i0, i1] (length n), an out-of-range read
//	at index k yields:
//	  • Periodic         — a[((k-i0) mod n) + i0], floor-modulo wrap
//	  • ZeroPadding      — 0 (the only compact variant; support = [i0,i1])
//	  • ConstantPadding  — a fixed constant c
//	  • Symmetric        — mirror folding across the endpoints, with
//	    independent whole-/half-point kind and even/odd parity per end
//	    (16 combinations; see symmetric.go for the folding rule)
//
// ✨ View semantics
//
//	Every extension sequence holds a *vec.Vector by reference. In-range
//	reads and writes go straight through to the shared vector, so two
//	sequences wrapping the same vector observe each other's Set calls —
//	and every out-of-range value derived from a written entry changes on
//	the next read. Callers needing isolation clone the vector first.
//	Writes outside the backing range fail with ErrIndexNotWritable
//	(Periodic excepted: it maps the write through its index wrap).
//
// Collect materializes any compact sequence back into this package: it
// evaluates the sequence over its non-zero range into a fresh vector and
// wraps it as a ZeroPadding extension.
package extend
