package combine_test

import (
	"testing"

	"github.com/katalvlaran/seqext/combine"
	"github.com/katalvlaran/seqext/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShift_Pointwise verifies g[n] == f[n-k] across the support and a
// margin beyond it.
func TestShift_Pointwise(t *testing.T) {
	f := zeroPad(t, 0, []float64{1, 2, 3})
	g, err := combine.Shift[float64](f, 2)
	require.NoError(t, err)

	for n := -4; n <= 8; n++ {
		want, errAt := f.At(n - 2)
		require.NoError(t, errAt)
		got, errAt := g.At(n)
		require.NoError(t, errAt)
		assert.Equal(t, want, got, "shifted value at %d", n)
	}
}

// TestShift_RangeTranslates verifies the support moves with the shift.
func TestShift_RangeTranslates(t *testing.T) {
	f := zeroPad(t, 1, []float64{1, 2, 3})
	g, err := combine.Shift[float64](f, -4)
	require.NoError(t, err)

	assert.True(t, g.IsCompact())
	lo, hi, err := g.NonZeroRange()
	require.NoError(t, err)
	assert.Equal(t, -3, lo)
	assert.Equal(t, -1, hi)
}

// TestShift_Composes verifies shift(shift(f,3),4) merges into a single
// layer reporting offset 7 and matching shift(f,7) pointwise.
func TestShift_Composes(t *testing.T) {
	f := zeroPad(t, 0, []float64{5, 6})

	s1, err := combine.Shift[float64](f, 3)
	require.NoError(t, err)
	s2, err := combine.Shift[float64](s1, 4)
	require.NoError(t, err)

	merged, ok := s2.(*combine.Shifted[float64])
	require.True(t, ok, "composed shifts must stay a single Shifted layer")
	assert.Equal(t, 7, merged.Shift(), "merged shift amount")
	assert.Same(t, f, merged.Inner(), "merged layer wraps the original operand")

	direct, err := combine.Shift[float64](f, 7)
	require.NoError(t, err)
	for n := -2; n <= 10; n++ {
		want, errAt := direct.At(n)
		require.NoError(t, errAt)
		got, errAt := s2.At(n)
		require.NoError(t, errAt)
		assert.Equal(t, want, got, "composed vs direct shift at %d", n)
	}
}

// TestShift_ZeroOffsetIsIdentity verifies a zero total offset returns the
// operand itself.
func TestShift_ZeroOffsetIsIdentity(t *testing.T) {
	f := zeroPad(t, 0, []float64{1})

	g, err := combine.Shift[float64](f, 0)
	require.NoError(t, err)
	assert.Same(t, f, g, "shift by 0 is the identity")

	s1, err := combine.Shift[float64](f, 3)
	require.NoError(t, err)
	s2, err := combine.Shift[float64](s1, -3)
	require.NoError(t, err)
	assert.Same(t, f, s2, "opposite shifts cancel structurally")
}

// TestShift_NilOperand verifies the constructor guard.
func TestShift_NilOperand(t *testing.T) {
	_, err := combine.Shift[float64](nil, 1)
	assert.ErrorIs(t, err, combine.ErrNilSequence)
}

// TestShift_NonCompactOperand verifies compactness and range errors pass
// through.
func TestShift_NonCompactOperand(t *testing.T) {
	p := periodic(t, 0, []float64{1, 2})
	g, err := combine.Shift[float64](p, 5)
	require.NoError(t, err)

	assert.False(t, g.IsCompact())
	_, _, err = g.NonZeroRange()
	assert.ErrorIs(t, err, seq.ErrNotCompact)
}
