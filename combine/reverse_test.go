package combine_test

import (
	"testing"

	"github.com/katalvlaran/seqext/combine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReverse_Pointwise verifies g[n] == f[-n].
func TestReverse_Pointwise(t *testing.T) {
	f := zeroPad(t, 1, []float64{1, 2, 3})
	g, err := combine.Reverse[float64](f)
	require.NoError(t, err)

	for n := -5; n <= 5; n++ {
		want, errAt := f.At(-n)
		require.NoError(t, errAt)
		got, errAt := g.At(n)
		require.NoError(t, errAt)
		assert.Equal(t, want, got, "reversed value at %d", n)
	}
}

// TestReverse_RangeMirrors verifies the support maps [a,b] to [-b,-a].
func TestReverse_RangeMirrors(t *testing.T) {
	f := zeroPad(t, 2, []float64{1, 2, 3})
	g, err := combine.Reverse[float64](f)
	require.NoError(t, err)

	lo, hi, err := g.NonZeroRange()
	require.NoError(t, err)
	assert.Equal(t, -4, lo)
	assert.Equal(t, -2, hi)
}

// TestReverse_RoundTripUnwraps verifies reverse ∘ reverse returns the
// original operand structurally, not just pointwise.
func TestReverse_RoundTripUnwraps(t *testing.T) {
	f := zeroPad(t, 0, []float64{4, 5, 6})

	g, err := combine.Reverse[float64](f)
	require.NoError(t, err)
	h, err := combine.Reverse[float64](g)
	require.NoError(t, err)

	assert.Same(t, f, h, "double reversal must unwrap")
}

// TestReverse_OfShiftStacks verifies reverse(shift(f,k)) keeps two layers
// (no automatic simplification) while staying pointwise-correct.
func TestReverse_OfShiftStacks(t *testing.T) {
	f := zeroPad(t, 0, []float64{1, 2, 3})
	sh, err := combine.Shift[float64](f, 2)
	require.NoError(t, err)
	g, err := combine.Reverse[float64](sh)
	require.NoError(t, err)

	r, ok := g.(*combine.Reversed[float64])
	require.True(t, ok, "outer layer is the reversal")
	_, ok = r.Inner().(*combine.Shifted[float64])
	assert.True(t, ok, "inner layer stays the shift")

	for n := -8; n <= 4; n++ {
		want, errAt := sh.At(-n)
		require.NoError(t, errAt)
		got, errAt := g.At(n)
		require.NoError(t, errAt)
		assert.Equal(t, want, got, "reverse of shift at %d", n)
	}
}

// TestReverse_NilOperand verifies the constructor guard.
func TestReverse_NilOperand(t *testing.T) {
	_, err := combine.Reverse[float64](nil)
	assert.ErrorIs(t, err, combine.ErrNilSequence)
}
