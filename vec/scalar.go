package vec

// Scalar enumerates the element types seqext operates on. The set is closed
// (exact types, no ~approximation) because the promotion helpers below
// dispatch on the concrete type; widening the set requires extending them.
type Scalar interface {
	float64 | complex128
}

// FromFloat converts a float64 into the scalar type T.
// For T = complex128 the value lands in the real part.
// Complexity: O(1).
func FromFloat[T Scalar](x float64) T {
	var out T
	switch p := any(&out).(type) {
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}

	return out
}

// Complex128 promotes a scalar of type T to complex128.
// For T = float64 the imaginary part is zero.
// Complexity: O(1).
func Complex128[T Scalar](x T) complex128 {
	switch v := any(x).(type) {
	case float64:
		return complex(v, 0)
	case complex128:
		return v
	}

	// Unreachable: Scalar is a closed set.
	return 0
}

// Conj returns the complex conjugate of x. For float64 it is the identity.
// Complexity: O(1).
func Conj[T Scalar](x T) T {
	switch p := any(&x).(type) {
	case *complex128:
		*p = complex(real(*p), -imag(*p))
	}

	return x
}
