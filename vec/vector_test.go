package vec_test

import (
	"testing"

	"github.com/katalvlaran/seqext/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_EmptyValues verifies that constructors reject empty input.
func TestNew_EmptyValues(t *testing.T) {
	_, err := vec.New([]float64{})
	assert.ErrorIs(t, err, vec.ErrEmptyVector, "empty values must error")

	_, err = vec.NewAt(5, []float64{})
	assert.ErrorIs(t, err, vec.ErrEmptyVector, "empty values with offset must error")
}

// TestNewZero_BadRange verifies that last < first is rejected.
func TestNewZero_BadRange(t *testing.T) {
	_, err := vec.NewZero[float64](3, 1)
	assert.ErrorIs(t, err, vec.ErrBadRange, "last < first must error")
}

// TestVector_RangeAndAccess exercises First/Last/Len/At over a shifted range.
func TestVector_RangeAndAccess(t *testing.T) {
	v, err := vec.NewAt(-2, []float64{10, 20, 30, 40})
	require.NoError(t, err)

	assert.Equal(t, -2, v.First(), "first index")
	assert.Equal(t, 1, v.Last(), "last index")
	assert.Equal(t, 4, v.Len(), "length")

	x, err := v.At(-2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, x, "value at first index")

	x, err = v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 40.0, x, "value at last index")

	_, err = v.At(2)
	assert.ErrorIs(t, err, vec.ErrOutOfRange, "read past last must error")
	_, err = v.At(-3)
	assert.ErrorIs(t, err, vec.ErrOutOfRange, "read before first must error")
}

// TestVector_SetWritesInPlace verifies Set mutates the stored value and
// respects bounds.
func TestVector_SetWritesInPlace(t *testing.T) {
	v, err := vec.New([]float64{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, v.Set(1, 9))
	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, x, "written value must be visible")

	assert.ErrorIs(t, v.Set(3, 1), vec.ErrOutOfRange, "write past last must error")
}

// TestVector_CopiesInput verifies the constructor copies the caller's slice.
func TestVector_CopiesInput(t *testing.T) {
	values := []float64{1, 2, 3}
	v, err := vec.New(values)
	require.NoError(t, err)

	values[0] = 100
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x, "mutating the input slice must not affect the vector")
}

// TestVector_CloneIsIndependent verifies Clone detaches storage.
func TestVector_CloneIsIndependent(t *testing.T) {
	v, err := vec.NewAt(1, []float64{1, 2, 3})
	require.NoError(t, err)

	c := v.Clone()
	require.NoError(t, c.Set(1, 100))

	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x, "writing the clone must not affect the original")
	assert.Equal(t, v.First(), c.First(), "clone keeps the index range")
	assert.Equal(t, v.Last(), c.Last(), "clone keeps the index range")
}

// TestReverseIndices verifies w[i] == v[-i] across the whole range.
func TestReverseIndices(t *testing.T) {
	v, err := vec.NewAt(1, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	w, err := vec.ReverseIndices(v)
	require.NoError(t, err)

	assert.Equal(t, -4, w.First(), "reversed first index")
	assert.Equal(t, -1, w.Last(), "reversed last index")
	for i := w.First(); i <= w.Last(); i++ {
		got, errAt := w.At(i)
		require.NoError(t, errAt)
		want, errAt := v.At(-i)
		require.NoError(t, errAt)
		assert.Equal(t, want, got, "w[%d] must equal v[%d]", i, -i)
	}
}

// TestReverseIndices_Nil verifies the nil guard.
func TestReverseIndices_Nil(t *testing.T) {
	_, err := vec.ReverseIndices[float64](nil)
	assert.ErrorIs(t, err, vec.ErrNilVector, "nil vector must error")
}

// TestScalarHelpers covers the float64/complex128 promotion helpers.
func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, 2.5, vec.FromFloat[float64](2.5))
	assert.Equal(t, complex(2.5, 0), vec.FromFloat[complex128](2.5))

	assert.Equal(t, complex(3, 0), vec.Complex128(3.0))
	assert.Equal(t, complex(1, -2), vec.Complex128(complex(1, -2)))

	assert.Equal(t, 4.0, vec.Conj(4.0), "conjugation is the identity on float64")
	assert.Equal(t, complex(1, -2), vec.Conj(complex(1, 2)))
}
