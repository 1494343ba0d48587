package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/zerocurve/utils"
)

// FailurePolicy selects what a bootstrap run does with an instrument whose
// zero rate cannot be solved.
type FailurePolicy string

const (
	// FailureHalt stops at the first failing instrument. Periods bootstrapped
	// before it stay in the store.
	FailureHalt FailurePolicy = "halt"
	// FailureSkip logs the failing instrument and continues with the next one.
	FailureSkip FailurePolicy = "skip"
)

// Config holds curve bootstrap parameters.
type Config struct {
	// DayCount converts day-count periods to year fractions.
	// See utils.YearFraction for supported conventions.
	DayCount string `yaml:"day_count"`

	// PeriodsPerYear is the compounding frequency of the periodic convention.
	// 1 is annual compounding.
	PeriodsPerYear int `yaml:"periods_per_year"`

	FailurePolicy FailurePolicy `yaml:"failure_policy"`

	// RejectDuplicateMaturities turns a repeated maturity period into an
	// out-of-order error instead of a logged warning.
	RejectDuplicateMaturities bool `yaml:"reject_duplicate_maturities"`
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	DayCount:       utils.Act365F,
	PeriodsPerYear: 1,
	FailurePolicy:  FailureHalt,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
func SetConfig(c Config) {
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if !utils.IsSupportedDayCount(c.DayCount) {
		return errors.Errorf("unsupported day count %q", c.DayCount)
	}
	if c.PeriodsPerYear <= 0 {
		return errors.Errorf("periods_per_year must be positive, got %d", c.PeriodsPerYear)
	}
	switch c.FailurePolicy {
	case FailureHalt, FailureSkip:
	default:
		return errors.Errorf("unknown failure policy %q", c.FailurePolicy)
	}
	return nil
}

// Load reads a YAML file on top of DefaultConfig. Fields absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return Parse(raw)
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
func Parse(raw []byte) (Config, error) {
	c := DefaultConfig
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	c.DayCount = strings.ToUpper(strings.TrimSpace(c.DayCount))
	c.FailurePolicy = FailurePolicy(strings.ToLower(strings.TrimSpace(string(c.FailurePolicy))))
	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return c, nil
}
