// Package combine: compile-time contract checks.
// Every combinator must satisfy seq.Sequence; breaking the contract fails
// the build here rather than at a distant call site.
package combine

import "github.com/katalvlaran/seqext/seq"

var (
	_ seq.Sequence[float64]    = (*Shifted[float64])(nil)
	_ seq.Sequence[float64]    = (*Reversed[float64])(nil)
	_ seq.Sequence[float64]    = (*Downsampled[float64])(nil)
	_ seq.Sequence[float64]    = (*Upsampled[float64])(nil)
	_ seq.Sequence[float64]    = (*Modulated[float64])(nil)
	_ seq.Sequence[float64]    = (*Convolution[float64])(nil)
	_ seq.Sequence[complex128] = (*Convolution[complex128])(nil)
)
