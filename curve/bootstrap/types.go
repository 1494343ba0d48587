package bootstrap

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// CashFlowSchedule is one instrument as the bootstrapper sees it: periods are
// whole days from the valuation date.
type CashFlowSchedule struct {
	// ID labels the instrument in logs and errors (e.g. an ISIN). Optional.
	ID string `yaml:"id"`
	// MaturityPeriod is the period of the final payment.
	MaturityPeriod int `yaml:"maturity_period"`
	// InterimPeriods are the coupon periods before maturity, strictly increasing.
	InterimPeriods []int `yaml:"interim_periods"`
	// PaymentAmount is paid at every interim period.
	PaymentAmount float64 `yaml:"payment_amount"`
	// FinalAmount is notional plus final coupon, paid at MaturityPeriod.
	FinalAmount float64 `yaml:"final_amount"`
	// TargetPrice is the observed dirty price the curve must reprice exactly.
	TargetPrice float64 `yaml:"target_price"`
}

func (s CashFlowSchedule) label() string {
	if s.ID != "" {
		return s.ID
	}
	return fmt.Sprintf("maturity %d", s.MaturityPeriod)
}

// Convention is the compounding convention zero rates are quoted in.
type Convention int

const (
	// Continuous discounts with exp(-r·t).
	Continuous Convention = iota
	// Periodic discounts with (1 + r/m)^(-m·t); m = 1 is annual compounding.
	Periodic
)

func (c Convention) String() string {
	switch c {
	case Continuous:
		return "continuous"
	case Periodic:
		return "periodic"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ParseConvention accepts "continuous", "periodic" and its alias "annual".
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "continuous", "cont":
		return Continuous, nil
	case "periodic", "annual":
		return Periodic, nil
	default:
		return 0, errors.Errorf("unknown compounding convention %q", s)
	}
}

func (c Convention) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Convention) UnmarshalText(text []byte) error {
	v, err := ParseConvention(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
