package extend_test

import (
	"testing"

	"github.com/katalvlaran/seqext/extend"
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPeriodic_Wrap verifies the floor-modulo extension rule on both sides
// of the backing range, including ranges that do not start at zero.
func TestPeriodic_Wrap(t *testing.T) {
	// a = [1,2,3] on indices 1..3.
	v, err := vec.NewAt(1, []float64{1, 2, 3})
	require.NoError(t, err)
	p, err := extend.NewPeriodic(v)
	require.NoError(t, err)

	// Immediate neighbors wrap to the opposite end.
	x, err := p.At(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x, "p[i0-1] == a[i1]")
	x, err = p.At(4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x, "p[i1+1] == a[i0]")

	// General rule: p[k] == a[((k-i0) mod n) + i0] for every k.
	for k := -10; k <= 10; k++ {
		off := (k - 1) % 3
		if off < 0 {
			off += 3
		}
		want, errAt := v.At(1 + off)
		require.NoError(t, errAt)
		got, errAt := p.At(k)
		require.NoError(t, errAt)
		assert.Equal(t, want, got, "periodic value at %d", k)
	}
}

// TestPeriodic_SetMapsThroughWrap verifies out-of-range writes land on the
// mapped in-range entry of the shared vector.
func TestPeriodic_SetMapsThroughWrap(t *testing.T) {
	v, err := vec.New([]float64{1, 2, 3})
	require.NoError(t, err)
	p, err := extend.NewPeriodic(v)
	require.NoError(t, err)

	// Index 3 wraps onto index 0.
	require.NoError(t, p.Set(3, 9))
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, x, "write must land in the backing vector")
	x, err = p.At(0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, x, "in-range read reflects the write")
	x, err = p.At(-3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, x, "every image of the entry reflects the write")
}

// TestPeriodic_NotCompact verifies the compactness contract and the
// range-dependent failures.
func TestPeriodic_NotCompact(t *testing.T) {
	v, err := vec.New([]float64{1, 2})
	require.NoError(t, err)
	p, err := extend.NewPeriodic(v)
	require.NoError(t, err)

	assert.False(t, p.IsCompact())
	_, _, err = p.NonZeroRange()
	assert.ErrorIs(t, err, seq.ErrNotCompact)
	_, err = p.ZTransform(2)
	assert.ErrorIs(t, err, seq.ErrNotCompact)
}

// TestPeriodic_Reverse verifies Reverse(p)[k] == p[-k] pointwise.
func TestPeriodic_Reverse(t *testing.T) {
	v, err := vec.NewAt(1, []float64{1, 2, 3})
	require.NoError(t, err)
	p, err := extend.NewPeriodic(v)
	require.NoError(t, err)

	r := p.Reverse()
	for k := -7; k <= 7; k++ {
		got, errAt := r.At(k)
		require.NoError(t, errAt)
		want, errAt := p.At(-k)
		require.NoError(t, errAt)
		assert.Equal(t, want, got, "reversed periodic at %d", k)
	}
}

// TestPeriodic_NilVector verifies the constructor guard.
func TestPeriodic_NilVector(t *testing.T) {
	_, err := extend.NewPeriodic[float64](nil)
	assert.ErrorIs(t, err, vec.ErrNilVector)
}
