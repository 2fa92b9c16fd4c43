package vec

// Vector is a finite indexable container of scalars addressed by an
// arbitrary integer range [First, Last]. Unlike a plain slice, the first
// index need not be zero — signal-processing conventions routinely index
// filters from negative offsets or from one.
//
// A Vector is mutable and is shared by reference across the extension
// sequences that wrap it (view semantics). Concurrent reads are safe;
// writes require the caller to enforce a single-writer discipline.
type Vector[T Scalar] struct {
	first int // index of data[0]
	data  []T
}

// New builds a Vector over the index range [0, len(values)-1].
// The values slice is copied; the caller's slice stays independent.
// Returns ErrEmptyVector when values is empty.
// Complexity: O(n).
func New[T Scalar](values []T) (*Vector[T], error) {
	return NewAt(0, values)
}

// NewAt builds a Vector over the index range [first, first+len(values)-1].
// The values slice is copied; the caller's slice stays independent.
// Returns ErrEmptyVector when values is empty.
// Complexity: O(n).
func NewAt[T Scalar](first int, values []T) (*Vector[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyVector
	}
	data := make([]T, len(values))
	copy(data, values)

	return &Vector[T]{first: first, data: data}, nil
}

// NewZero builds a zero-filled Vector over the index range [first, last].
// Returns ErrBadRange when last < first.
// Complexity: O(last-first+1).
func NewZero[T Scalar](first, last int) (*Vector[T], error) {
	if last < first {
		return nil, ErrBadRange
	}

	return &Vector[T]{first: first, data: make([]T, last-first+1)}, nil
}

// First returns the smallest valid index. Complexity: O(1).
func (v *Vector[T]) First() int { return v.first }

// Last returns the largest valid index. Complexity: O(1).
func (v *Vector[T]) Last() int { return v.first + len(v.data) - 1 }

// Len returns the number of stored values. Complexity: O(1).
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns the value stored at index k.
// Returns ErrOutOfRange when k is outside [First, Last].
// Complexity: O(1).
func (v *Vector[T]) At(k int) (T, error) {
	if k < v.first || k > v.Last() {
		var zero T

		return zero, ErrOutOfRange
	}

	return v.data[k-v.first], nil
}

// Set stores value x at index k.
// Returns ErrOutOfRange when k is outside [First, Last].
// Complexity: O(1).
func (v *Vector[T]) Set(k int, x T) error {
	if k < v.first || k > v.Last() {
		return ErrOutOfRange
	}
	v.data[k-v.first] = x

	return nil
}

// Clone returns a deep copy of the vector over the same index range.
// The returned Vector is independent of the original.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{first: v.first, data: data}
}

// ReverseIndices builds a new Vector w with w[i] == v[-i] for every valid i.
// The result spans [-v.Last(), -v.First()]; the input is not modified.
// Returns ErrNilVector when v is nil.
// Complexity: O(n).
func ReverseIndices[T Scalar](v *Vector[T]) (*Vector[T], error) {
	if v == nil {
		return nil, ErrNilVector
	}
	n := len(v.data)
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = v.data[n-1-i]
	}

	return &Vector[T]{first: -v.Last(), data: data}, nil
}
