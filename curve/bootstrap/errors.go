package bootstrap

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCurveInput is returned when an instrument's cash flows admit no
	// zero rate: the price left after discounting interim payments is not
	// positive, the final amount is not positive, or the maturity is not after
	// the valuation date.
	ErrInvalidCurveInput = errors.New("invalid curve input")
	// ErrOutOfOrderInput is returned when instruments are not ascending by
	// maturity or an interim period does not precede its own maturity.
	ErrOutOfOrderInput = errors.New("out of order input")
)

// SkippedInstrument records an instrument left out of a curve under the skip
// failure policy.
type SkippedInstrument struct {
	Index int
	ID    string
	Err   error
}

// SkipErrors lists every instrument skipped during one run.
type SkipErrors []SkippedInstrument

func (e SkipErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, s := range e {
		msgs = append(msgs, s.Err.Error())
	}
	return "skipped instruments: " + strings.Join(msgs, "; ")
}

func (e SkipErrors) Unwrap() []error {
	out := make([]error, 0, len(e))
	for _, s := range e {
		out = append(out, s.Err)
	}
	return out
}
