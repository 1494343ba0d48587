package curve

// Reader is the read-only surface of a Store. Once bootstrapping has finished a
// Store may be shared between goroutines as a Reader; none of these methods
// mutate it.
type Reader interface {
	Get(period int) (float64, error)
	Has(period int) bool
	Interpolate(period int) (float64, error)
	ClosestBelow(period int) (int, bool)
	ClosestAbove(period int) (int, bool)
	Pairs() []Pair
	Len() int
}

var _ Reader = (*Store)(nil)
