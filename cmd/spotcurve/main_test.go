package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/zerocurve/curve/bootstrap"
)

const schedulesYAML = `
convention: continuous
instruments:
  - id: B
    maturity_period: 730
    interim_periods: [365]
    payment_amount: 2
    final_amount: 102
    target_price: 97
  - id: A
    maturity_period: 365
    final_amount: 100
    target_price: 98
`

func TestParseScheduleFile(t *testing.T) {
	in, err := parseScheduleFile([]byte(schedulesYAML))
	require.NoError(t, err)
	require.NotNil(t, in.Convention)
	assert.Equal(t, bootstrap.Continuous, *in.Convention)
	require.Len(t, in.Instruments, 2)

	sortByMaturity(in.Instruments)
	assert.Equal(t, "A", in.Instruments[0].ID)
	assert.Equal(t, []int{365}, in.Instruments[1].InterimPeriods)

	_, err = parseScheduleFile([]byte("convention: periodic\n"))
	assert.Error(t, err)
}

func TestBuildCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(schedulesYAML), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"build", "-f", path, "--sort", "--forward-years", "2"})
	t.Cleanup(func() {
		sortInput = false
		forwardYears = 0
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Zero %")
	assert.Contains(t, out.String(), "365")
	assert.Contains(t, out.String(), "730")
	assert.Contains(t, out.String(), "1Y-2Y")
	assert.Contains(t, out.String(), "Cont. forward %")
}

func TestBuildCommandSkipsForwardsForPeriodicCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(schedulesYAML), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"build", "-f", path, "--sort", "--convention", "annual", "--forward-years", "2"})
	t.Cleanup(func() {
		sortInput = false
		forwardYears = 0
		conventionIn = ""
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Zero %")
	assert.NotContains(t, out.String(), "1Y-2Y")
}
