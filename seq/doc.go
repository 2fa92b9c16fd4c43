// Package seq defines the Sequence contract at the heart of seqext, the
// trivial Zero and Dirac sequences, and the derived operations (moments,
// transpose, adjoint, Fourier transform) shared by every variant.
//
// 🚀 What is a Sequence?
//
//	A bi-infinite discrete sequence: a total mapping from EVERY integer
//	index to a scalar value. Concrete variants come in two families:
//	  • extension sequences (package extend) — a finite vector plus a rule
//	    for out-of-range indices
//	  • lazy combinators (package combine) — one or two wrapped sequences
//	    composed element-by-element on demand
//
// The contract is intentionally small: indexed read, compactness, reversal,
// conjugation and the Z-transform. Everything else (transpose, adjoint,
// moments, the Fourier transform) derives from it and lives here as free
// functions, so new variants only implement the core.
//
// Compactness is the load-bearing notion: a sequence is compact when it is
// provably zero outside a finite index range. Summation-based operations —
// Moment, SumZTransform, extend.Collect, convolution — demand a compact
// operand and fail with ErrNotCompact otherwise. Zero and Dirac carry
// closed-form Z-transforms (0 and 1) and serve as convolution identities.
//
// All failures are sentinel errors surfaced synchronously; nothing panics
// on user-triggered conditions.
package seq
