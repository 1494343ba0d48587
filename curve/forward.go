package curve

import "github.com/pkg/errors"

// YearGrid returns the periods of whole years 1..years on a daysPerYear basis.
func YearGrid(years, daysPerYear int) []int {
	out := make([]int, 0, years)
	for y := 1; y <= years; y++ {
		out = append(out, y*daysPerYear)
	}
	return out
}

// PinGrid stores an interpolated rate at every period in periods that is not
// already an exact entry, so later reads at those periods are exact.
func PinGrid(s *Store, periods []int) error {
	for _, p := range periods {
		if s.Has(p) {
			continue
		}
		rate, err := s.Interpolate(p)
		if err != nil {
			return err
		}
		s.Set(p, rate)
	}
	return nil
}

// ForwardRate returns the continuously compounded forward rate between two
// periods implied by the zero rates at each end:
//
//	f = (r(to)·to − r(from)·from) / (to − from)
//
// Missing periods are interpolated but not stored.
func ForwardRate(r Reader, from, to int) (float64, error) {
	if to <= from {
		return 0, errors.Wrapf(ErrInvalidWindow, "from %d to %d", from, to)
	}
	r0, err := r.Interpolate(from)
	if err != nil {
		return 0, err
	}
	r1, err := r.Interpolate(to)
	if err != nil {
		return 0, err
	}
	return (r1*float64(to) - r0*float64(from)) / float64(to-from), nil
}

// ForwardCurve returns ForwardRate(base, p) for each p in periods.
func ForwardCurve(r Reader, base int, periods []int) ([]float64, error) {
	out := make([]float64, 0, len(periods))
	for _, p := range periods {
		f, err := ForwardRate(r, base, p)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
