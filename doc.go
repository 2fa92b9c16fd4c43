// Package seqext is your in-memory toolkit for building, composing and
// transforming bi-infinite discrete sequences — finite vectors extended to
// all integer indices, lazy signal combinators, and Z/Fourier transforms.
//
// 🚀 What is seqext?
//
//	A modern, pure-Go library that brings together:
//		• Finite vectors: indexable containers over arbitrary integer ranges
//		• Extensions: periodic, zero-padded, constant-padded and symmetric
//		  views that answer reads at ANY integer index
//		• Combinators: shift, reverse, up/downsample, modulate, convolve —
//		  all lazy, all composable
//		• Transforms: Z-transform and Fourier transform with per-combinator
//		  closed forms
//
// ✨ Why choose seqext?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest semantics – extensions are views over shared vectors, writes
//     are visible to every holder, and every failure is a sentinel error
//   - Pure Go – no cgo, no hidden deps
//   - Generic – works over float64 and complex128 element types
//
// Under the hood, everything is organized under five subpackages:
//
//	vec/       — finite indexable Vector, index reversal, scalar helpers
//	seq/       — the Sequence contract, Zero/Dirac, moments & Fourier helpers
//	extend/    — vector-backed extension sequences (periodic, padded, symmetric)
//	combine/   — lazy combinators (shift, reverse, resample, modulate, convolve)
//	transform/ — callable Z/Fourier transform bindings
//
// Quick ASCII example:
//
//	vector  [i0 ........ i1]
//	extend  ...~~~[i0 ... i1]~~~...     (reads defined for every integer k)
//	combine shift ∘ upsample ∘ convolve (computed lazily, element by element)
//
// Dive into the per-package doc.go files and example_test.go files for full
// walkthroughs of the extension rules and transform closed forms.
//
//	go get github.com/katalvlaran/seqext
package seqext
