package bootstrap_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/zerocurve/curve/bootstrap"
)

func TestZeroRateInvertsDiscountFactor(t *testing.T) {
	t.Parallel()

	for _, conv := range []bootstrap.Convention{bootstrap.Continuous, bootstrap.Periodic} {
		for _, m := range []int{1, 2, 4} {
			for _, years := range []float64{0.25, 1, 2.5, 10} {
				r, err := bootstrap.ZeroRate(conv, m, 104, 91.3, years)
				require.NoError(t, err)
				df, err := bootstrap.DiscountFactor(conv, m, r, years)
				require.NoError(t, err)
				assert.InDelta(t, 91.3, df*104, 1e-9, "%s m=%d t=%g", conv, m, years)
			}
		}
	}
}

func TestZeroRatePeriodicAnnualMatchesClosedForm(t *testing.T) {
	t.Parallel()

	r, err := bootstrap.ZeroRate(bootstrap.Periodic, 1, 100, 95, 1)
	require.NoError(t, err)
	assert.InDelta(t, 100.0/95.0-1, r, 1e-15)

	r, err = bootstrap.ZeroRate(bootstrap.Continuous, 1, 100, 95, 1)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(0.95), r, 1e-15)
}

func TestZeroRateRejectsDegenerateInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		final, pv, t float64
	}{
		{"non-positive pv", 100, 0, 1},
		{"negative pv", 100, -3, 1},
		{"non-positive final", 0, 95, 1},
		{"zero time", 100, 95, 0},
	}
	for _, c := range cases {
		for _, conv := range []bootstrap.Convention{bootstrap.Continuous, bootstrap.Periodic} {
			_, err := bootstrap.ZeroRate(conv, 1, c.final, c.pv, c.t)
			assert.True(t, errors.Is(err, bootstrap.ErrInvalidCurveInput), "%s %s", c.name, conv)
		}
	}
}

func TestParseConvention(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]bootstrap.Convention{
		"continuous": bootstrap.Continuous,
		" Cont ":     bootstrap.Continuous,
		"periodic":   bootstrap.Periodic,
		"ANNUAL":     bootstrap.Periodic,
	} {
		got, err := bootstrap.ParseConvention(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := bootstrap.ParseConvention("simple")
	assert.Error(t, err)
	assert.Equal(t, "Convention(7)", bootstrap.Convention(7).String())
}

func TestUnknownConventionIsRejected(t *testing.T) {
	t.Parallel()

	_, err := bootstrap.ZeroRate(bootstrap.Convention(7), 1, 100, 95, 1)
	assert.True(t, errors.Is(err, bootstrap.ErrInvalidCurveInput))

	_, err = bootstrap.DiscountFactor(bootstrap.Convention(7), 1, 0.05, 1)
	assert.True(t, errors.Is(err, bootstrap.ErrInvalidCurveInput))
}

func TestNonPositiveCompoundingFrequencyIsRejected(t *testing.T) {
	t.Parallel()

	for _, m := range []int{0, -2} {
		_, err := bootstrap.ZeroRate(bootstrap.Periodic, m, 100, 105, 1)
		assert.True(t, errors.Is(err, bootstrap.ErrInvalidCurveInput), "m=%d", m)

		_, err = bootstrap.DiscountFactor(bootstrap.Periodic, m, 0.05, 1)
		assert.True(t, errors.Is(err, bootstrap.ErrInvalidCurveInput), "m=%d", m)
	}

	// the continuous convention ignores the frequency
	_, err := bootstrap.ZeroRate(bootstrap.Continuous, 0, 100, 95, 1)
	assert.NoError(t, err)
}

func TestScheduleFromYAML(t *testing.T) {
	t.Parallel()

	raw := []byte(`
convention: annual
instrument:
  id: CAN 1.25 Mar25
  maturity_period: 365
  interim_periods: [182]
  payment_amount: 0.625
  final_amount: 100.625
  target_price: 99.2
`)
	var doc struct {
		Convention bootstrap.Convention       `yaml:"convention"`
		Instrument bootstrap.CashFlowSchedule `yaml:"instrument"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))

	assert.Equal(t, bootstrap.Periodic, doc.Convention)
	assert.Equal(t, bootstrap.CashFlowSchedule{
		ID:             "CAN 1.25 Mar25",
		MaturityPeriod: 365,
		InterimPeriods: []int{182},
		PaymentAmount:  0.625,
		FinalAmount:    100.625,
		TargetPrice:    99.2,
	}, doc.Instrument)

	err := yaml.Unmarshal([]byte("convention: simple\n"), &doc)
	assert.Error(t, err)
}
