package combine_test

import (
	"testing"

	"github.com/katalvlaran/seqext/extend"
	"github.com/katalvlaran/seqext/vec"
	"github.com/stretchr/testify/require"
)

// zeroPad builds a zero-padded extension over values starting at first —
// the canonical compact fixture for combinator tests.
func zeroPad(t *testing.T, first int, values []float64) *extend.ZeroPadding[float64] {
	t.Helper()
	v, err := vec.NewAt(first, values)
	require.NoError(t, err)
	p, err := extend.NewZeroPadding(v)
	require.NoError(t, err)

	return p
}

// periodic builds a periodic extension — the canonical non-compact fixture.
func periodic(t *testing.T, first int, values []float64) *extend.Periodic[float64] {
	t.Helper()
	v, err := vec.NewAt(first, values)
	require.NoError(t, err)
	p, err := extend.NewPeriodic(v)
	require.NoError(t, err)

	return p
}
