package curve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/zerocurve/curve"
)

func TestYearGrid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{365, 730, 1095}, curve.YearGrid(3, 365))
	assert.Empty(t, curve.YearGrid(0, 365))
}

func TestPinGridCachesInterpolatedRates(t *testing.T) {
	t.Parallel()

	s := curve.NewStore()
	s.Set(200, 0.02)
	s.Set(800, 0.05)

	require.NoError(t, curve.PinGrid(s, []int{200, 365, 730, 1095}))
	assert.Equal(t, []int{200, 365, 730, 800, 1095}, s.Keys())

	r365, err := s.Get(365)
	require.NoError(t, err)
	assert.InDelta(t, 0.02+0.03*165.0/600.0, r365, 1e-15)

	r1095, err := s.Get(1095)
	require.NoError(t, err)
	assert.Equal(t, 0.05, r1095)

	err = curve.PinGrid(curve.NewStore(), []int{365})
	assert.True(t, errors.Is(err, curve.ErrEmptyStore))
}

func TestForwardRate(t *testing.T) {
	t.Parallel()

	flat := curve.NewStore()
	flat.Set(365, 0.03)
	flat.Set(1825, 0.03)

	f, err := curve.ForwardRate(flat, 365, 730)
	require.NoError(t, err)
	assert.InDelta(t, 0.03, f, 1e-15)

	s := curve.NewStore()
	s.Set(365, 0.02)
	s.Set(730, 0.03)
	f, err = curve.ForwardRate(s, 365, 730)
	require.NoError(t, err)
	assert.InDelta(t, 0.04, f, 1e-12)

	_, err = curve.ForwardRate(s, 730, 365)
	assert.True(t, errors.Is(err, curve.ErrInvalidWindow))
}

func TestForwardCurve(t *testing.T) {
	t.Parallel()

	s := curve.NewStore()
	s.Set(365, 0.02)
	s.Set(730, 0.03)
	s.Set(1095, 0.035)

	got, err := curve.ForwardCurve(s, 365, []int{730, 1095})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.04, got[0], 1e-12)
	assert.InDelta(t, (0.035*3-0.02)/2, got[1], 1e-12)
}
