package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	require.Equal(t, int64(30000), Line(2, 15000))
	require.Equal(t, int64(0), Line(3, 0))
}

func TestTax_Rounding(t *testing.T) {
	// 1.5% of 15000 = 225, exact
	require.Equal(t, int64(225), Tax(15000))
	// 1.5% of 35000 = 525, exact
	require.Equal(t, int64(525), Tax(35000))
	// 1.5% of 100 = 1.5 -> rounds up to 2
	require.Equal(t, int64(2), Tax(100))
	// 1.5% of 90 = 1.35 -> rounds down to 1
	require.Equal(t, int64(1), Tax(90))
	require.Equal(t, int64(0), Tax(0))
	// 1.5% of 33 = 0.495 -> rounds down to 0
	require.Equal(t, int64(0), Tax(33))
	// 1.5% of 34 = 0.51 -> rounds up to 1
	require.Equal(t, int64(1), Tax(34))
}

func TestTotal(t *testing.T) {
	require.Equal(t, int64(35525), Total(35000, 525, 0))
	require.Equal(t, int64(30000), Total(35000, 525, 5525))
	// discount can consume the full amount, never below zero by the
	// recorder's invariant; Total itself is plain arithmetic
	require.Equal(t, int64(0), Total(1000, 15, 1015))
}
