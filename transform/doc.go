// Package transform provides callable bindings of a sequence to its
// Z-transform or Fourier transform, for repeated evaluation at different
// arguments:
//
//	zf := transform.NewZ(s)
//	v, err := zf.Eval(0.5 + 0.5i)
//
//	ft := transform.NewFourier(s)
//	v, err := ft.Eval(math.Pi / 4)
//
// The bindings are immutable and stateless beyond the bound sequence;
// evaluation delegates to the sequence's own ZTransform, so combinator
// closed forms apply and ErrNotCompact surfaces for sequences without a
// finite support or a closed form. The Fourier transform is the
// Z-transform on the unit circle and is 2π-periodic in its argument.
package transform
