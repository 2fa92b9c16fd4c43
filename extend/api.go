// Package extend: compile-time contract checks.
// Every extension variant must satisfy seq.Sequence; breaking the contract
// fails the build here rather than at a distant call site.
package extend

import "github.com/katalvlaran/seqext/seq"

var (
	_ seq.Sequence[float64]    = (*Periodic[float64])(nil)
	_ seq.Sequence[float64]    = (*ZeroPadding[float64])(nil)
	_ seq.Sequence[float64]    = (*ConstantPadding[float64])(nil)
	_ seq.Sequence[float64]    = (*Symmetric[float64])(nil)
	_ seq.Sequence[complex128] = (*Symmetric[complex128])(nil)
)
