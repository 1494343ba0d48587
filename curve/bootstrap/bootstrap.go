package bootstrap

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/curve/config"
	"github.com/meenmo/zerocurve/utils"
)

// Bootstrapper builds zero curves from maturity-sorted instruments. It keeps
// no state between calls; the store passed in is the only accumulator.
type Bootstrapper struct {
	cfg    config.Config
	logger logrus.FieldLogger
}

type Option func(*Bootstrapper)

// WithConfig overrides the active package configuration.
func WithConfig(c config.Config) Option {
	return func(b *Bootstrapper) {
		b.cfg = c
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Bootstrapper) {
		if l != nil {
			b.logger = l
		}
	}
}

// New returns a Bootstrapper using config.GetConfig() and a silent logger
// unless overridden by opts.
func New(opts ...Option) *Bootstrapper {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	b := &Bootstrapper{
		cfg:    config.GetConfig(),
		logger: silent,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Validate checks the ordering preconditions of a run: maturities must not
// decrease and every instrument's interim periods must be strictly increasing
// and before its maturity. A repeated maturity is logged (the later
// instrument overwrites the earlier rate) unless the configuration rejects it.
func (b *Bootstrapper) Validate(schedules []CashFlowSchedule) error {
	for i, s := range schedules {
		if err := validateSchedule(s); err != nil {
			return errors.Wrapf(err, "instrument %d", i)
		}
		if i == 0 {
			continue
		}
		prev := schedules[i-1]
		switch {
		case s.MaturityPeriod < prev.MaturityPeriod:
			return errors.Wrapf(ErrOutOfOrderInput, "instrument %d (%s): maturity %d before previous maturity %d",
				i, s.label(), s.MaturityPeriod, prev.MaturityPeriod)
		case s.MaturityPeriod == prev.MaturityPeriod:
			if b.cfg.RejectDuplicateMaturities {
				return errors.Wrapf(ErrOutOfOrderInput, "instrument %d (%s): duplicate maturity %d",
					i, s.label(), s.MaturityPeriod)
			}
			b.logger.WithFields(logrus.Fields{
				"instrument": s.label(),
				"previous":   prev.label(),
				"maturity":   s.MaturityPeriod,
			}).Warn("duplicate maturity, later instrument overwrites the earlier rate")
		}
	}
	return nil
}

func validateSchedule(s CashFlowSchedule) error {
	prev := -1
	for _, p := range s.InterimPeriods {
		if p < 0 {
			return errors.Wrapf(ErrOutOfOrderInput, "%s: negative interim period %d", s.label(), p)
		}
		if p <= prev {
			return errors.Wrapf(ErrOutOfOrderInput, "%s: interim period %d does not follow %d", s.label(), p, prev)
		}
		if p >= s.MaturityPeriod {
			return errors.Wrapf(ErrOutOfOrderInput, "%s: interim period %d not before maturity %d", s.label(), p, s.MaturityPeriod)
		}
		prev = p
	}
	return nil
}

// checkRun rejects a configuration or convention no rate can be solved under.
func (b *Bootstrapper) checkRun(conv Convention) error {
	if err := b.cfg.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidCurveInput, "config: %v", err)
	}
	return checkCompounding(conv, b.cfg.PeriodsPerYear)
}

// Build validates schedules and bootstraps them into a new store.
//
// On error the returned store still holds every period bootstrapped before
// the failure (nil only when validation fails). Under the skip policy the
// error is a SkipErrors and the store holds every other instrument.
func (b *Bootstrapper) Build(schedules []CashFlowSchedule, conv Convention) (*curve.Store, error) {
	if err := b.checkRun(conv); err != nil {
		return nil, err
	}
	if err := b.Validate(schedules); err != nil {
		return nil, err
	}
	store := curve.NewStore()
	return store, b.fold(store, schedules, conv)
}

// Extend bootstraps schedules on top of the periods already in store. The
// first maturity must not precede the last period in store; landing on it is
// treated like any other repeated maturity.
func (b *Bootstrapper) Extend(store *curve.Store, schedules []CashFlowSchedule, conv Convention) error {
	if err := b.checkRun(conv); err != nil {
		return err
	}
	if err := b.Validate(schedules); err != nil {
		return err
	}
	if err := b.validateContinuation(store, schedules); err != nil {
		return err
	}
	return b.fold(store, schedules, conv)
}

func (b *Bootstrapper) validateContinuation(store *curve.Store, schedules []CashFlowSchedule) error {
	last, ok := store.Max()
	if !ok || len(schedules) == 0 {
		return nil
	}
	first := schedules[0]
	switch {
	case first.MaturityPeriod < last:
		return errors.Wrapf(ErrOutOfOrderInput, "instrument 0 (%s): maturity %d before last stored period %d",
			first.label(), first.MaturityPeriod, last)
	case first.MaturityPeriod == last:
		if b.cfg.RejectDuplicateMaturities {
			return errors.Wrapf(ErrOutOfOrderInput, "instrument 0 (%s): maturity %d already stored",
				first.label(), first.MaturityPeriod)
		}
		b.logger.WithFields(logrus.Fields{
			"instrument": first.label(),
			"maturity":   first.MaturityPeriod,
		}).Warn("maturity already stored, instrument overwrites the stored rate")
	}
	return nil
}

func (b *Bootstrapper) fold(store *curve.Store, schedules []CashFlowSchedule, conv Convention) error {
	var skipped SkipErrors
	for i, s := range schedules {
		rate, err := b.Step(store, s, conv)
		if err != nil {
			if b.cfg.FailurePolicy != config.FailureSkip {
				return errors.Wrapf(err, "instrument %d", i)
			}
			b.logger.WithError(err).WithField("instrument", s.label()).Warn("skipping instrument")
			skipped = append(skipped, SkippedInstrument{Index: i, ID: s.ID, Err: err})
			continue
		}
		b.logger.WithFields(logrus.Fields{
			"instrument": s.label(),
			"maturity":   s.MaturityPeriod,
			"rate":       rate,
		}).Debug("bootstrapped zero rate")
	}
	if len(skipped) > 0 {
		return skipped
	}
	return nil
}

// Step bootstraps one instrument into store and returns its zero rate.
//
// Interim periods missing from store are interpolated and stored before
// discounting, so a later instrument paying on the same period reads the same
// rate. If the instrument fails, the interim periods it added are removed.
func (b *Bootstrapper) Step(store *curve.Store, s CashFlowSchedule, conv Convention) (float64, error) {
	if err := b.checkRun(conv); err != nil {
		return 0, err
	}
	if err := validateSchedule(s); err != nil {
		return 0, err
	}

	var added []int
	rollback := func() {
		for _, p := range added {
			store.Delete(p)
		}
	}

	discounted := 0.0
	for _, p := range s.InterimPeriods {
		rate, err := store.Get(p)
		if err != nil {
			if rate, err = store.Interpolate(p); err != nil {
				rollback()
				return 0, errors.Wrapf(err, "%s: interim period %d", s.label(), p)
			}
			store.Set(p, rate)
			added = append(added, p)
			b.logger.WithFields(logrus.Fields{
				"instrument": s.label(),
				"period":     p,
				"rate":       rate,
			}).Debug("cached interpolated interim rate")
		}
		df, err := DiscountFactor(conv, b.cfg.PeriodsPerYear, rate, utils.YearFraction(p, b.cfg.DayCount))
		if err != nil {
			rollback()
			return 0, errors.Wrapf(err, "%s: interim period %d", s.label(), p)
		}
		discounted += s.PaymentAmount * df
	}

	t := utils.YearFraction(s.MaturityPeriod, b.cfg.DayCount)
	rate, err := ZeroRate(conv, b.cfg.PeriodsPerYear, s.FinalAmount, s.TargetPrice-discounted, t)
	if err != nil {
		rollback()
		return 0, errors.Wrapf(err, "%s", s.label())
	}

	store.Set(s.MaturityPeriod, rate)
	return rate, nil
}
