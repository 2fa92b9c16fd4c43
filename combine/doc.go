// Package combine provides the lazy combinators over sequences: shift,
// reversal, downsampling, upsampling, modulation and convolution.
//
// 🚀 Lazy by construction
//
//	A combinator owns one or two wrapped sequences and NO storage of its
//	own; every element is computed on demand from the operands:
//	  • Shift(f, k)      — g[n] = f[n-k]
//	  • Reverse(f)       — g[n] = f[-n]
//	  • Downsample(f, M) — g[n] = f[M·n]
//	  • Upsample(f, M)   — g[n] = f[n/M] when M divides n, else 0
//	  • Modulate(f)      — g[n] = (-1)^n · f[n]
//	  • Convolve(f, g)   — h[n] = Σ f[k]·g[n-k]
//
// ✨ Algebraic composition
//
//	Constructors merge where the algebra is lossless: shifting a shift
//	adds the offsets, resampling a resample multiplies the factors, and
//	reversing a reversal (or modulating a modulation) unwraps. Distinct
//	layers — e.g. Reverse(Shift(f, k)) — stack unsimplified.
//
// Compactness flows through every combinator by interval arithmetic on
// the operand's non-zero range, and each combinator evaluates its
// Z-transform by the matching closed form (shift ⇒ z^(-k) factor,
// reversal ⇒ argument 1/z, upsampling ⇒ argument z^M, modulation ⇒
// argument -z, convolution ⇒ product, downsampling ⇒ the M-term aliasing
// sum). Convolution requires at least one compact operand; Go has no
// operator overloading, so Convolve is the library's spelling of the
// `*` composition between sequences.
package combine
