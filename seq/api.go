// Package seq: compile-time contract checks for the variants defined here.
package seq

var (
	_ Sequence[float64]    = Zero[float64]{}
	_ Sequence[float64]    = Dirac[float64]{}
	_ Sequence[complex128] = Dirac[complex128]{}
	_ Sequence[float64]    = (*Conjugated[float64])(nil)
)
