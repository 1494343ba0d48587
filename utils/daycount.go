package utils

// Day count conventions for integer day-count periods.
const (
	Act360  = "ACT/360"
	Act365F = "ACT/365F"
	// Act36525 spreads leap days evenly over a year.
	Act36525 = "ACT/365.25"
)

// daysPerYear maps a convention to the denominator of its year fraction.
var daysPerYear = map[string]float64{
	Act360:   360.0,
	Act365F:  365.0,
	Act36525: 365.25,
}

// YearFraction converts a day-count period into a year fraction.
// Supported conventions: ACT/360, ACT/365F, ACT/365.25.
// Unknown conventions fall back to ACT/365F.
func YearFraction(days int, convention string) float64 {
	return float64(days) / DaysPerYear(convention)
}

// DaysPerYear returns the year length of convention in days.
func DaysPerYear(convention string) float64 {
	if d, ok := daysPerYear[convention]; ok {
		return d
	}
	return daysPerYear[Act365F]
}

func IsSupportedDayCount(convention string) bool {
	_, ok := daysPerYear[convention]
	return ok
}
