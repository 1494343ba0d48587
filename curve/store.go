package curve

import (
	"iter"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Pair is one stored point of a curve: a day-count period and its rate.
type Pair struct {
	Period int
	Rate   float64
}

// Store maps day-count periods to rates.
//
// Exact lookups go through a flat table; ordered walks and neighbour queries go
// through an unbalanced binary search tree over the same periods. The two are
// updated together on every mutation. A Store is owned by a single writer; use
// NewStore to create one.
type Store struct {
	entries map[int]float64
	order   tree
}

func NewStore() *Store {
	return &Store{
		entries: make(map[int]float64),
		order:   newTree(),
	}
}

// Set stores rate at period. A new period is inserted into the tree; an
// existing one only has its rate replaced.
func (s *Store) Set(period int, rate float64) {
	if _, ok := s.entries[period]; !ok {
		s.order.insert(period)
	}
	s.entries[period] = rate
}

// Get returns the rate stored at exactly period.
func (s *Store) Get(period int) (float64, error) {
	rate, ok := s.entries[period]
	if !ok {
		return 0, errors.Wrapf(ErrKeyNotFound, "period %d", period)
	}
	return rate, nil
}

func (s *Store) Has(period int) bool {
	_, ok := s.entries[period]
	return ok
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Delete removes period. Deleting an absent period is a no-op.
func (s *Store) Delete(period int) {
	if _, ok := s.entries[period]; !ok {
		return
	}
	s.order.remove(period)
	delete(s.entries, period)
}

// ClosestBelow returns the greatest stored period strictly less than period.
func (s *Store) ClosestBelow(period int) (int, bool) {
	return s.order.below(period)
}

// ClosestAbove returns the smallest stored period strictly greater than period.
func (s *Store) ClosestAbove(period int) (int, bool) {
	return s.order.above(period)
}

// Max returns the largest stored period.
func (s *Store) Max() (int, bool) {
	return s.order.max()
}

// Neighbors returns both ClosestBelow and ClosestAbove for period.
func (s *Store) Neighbors(period int) (below, above int, okBelow, okAbove bool) {
	below, okBelow = s.order.below(period)
	above, okAbove = s.order.above(period)
	return below, above, okBelow, okAbove
}

// Interpolate returns the rate at period. A stored period is returned as is.
// Otherwise the rate is linear between the closest stored periods on either
// side; with only one side available that side's rate is returned unchanged
// (flat extrapolation). The result is not stored.
func (s *Store) Interpolate(period int) (float64, error) {
	if len(s.entries) == 0 {
		return 0, errors.Wrapf(ErrEmptyStore, "interpolate period %d", period)
	}
	if rate, ok := s.entries[period]; ok {
		return rate, nil
	}

	below, above, okBelow, okAbove := s.Neighbors(period)
	switch {
	case okBelow && okAbove:
		r0, r1 := s.entries[below], s.entries[above]
		return r0 + (r1-r0)*float64(period-below)/float64(above-below), nil
	case okBelow:
		return s.entries[below], nil
	default:
		return s.entries[above], nil
	}
}

// All iterates periods and rates in ascending period order. The store must not
// be mutated during iteration.
func (s *Store) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		s.order.ascend(func(period int) bool {
			return yield(period, s.entries[period])
		})
	}
}

// Pairs returns every stored point in ascending period order.
func (s *Store) Pairs() []Pair {
	out := make([]Pair, 0, len(s.entries))
	for period, rate := range s.All() {
		out = append(out, Pair{Period: period, Rate: rate})
	}
	return out
}

// Keys returns the stored periods in ascending order.
func (s *Store) Keys() []int {
	out := make([]int, 0, len(s.entries))
	for period := range s.All() {
		out = append(out, period)
	}
	return out
}

// SortedKeyValues returns periods and rates as parallel ascending slices,
// the shape plotting and reporting code consumes.
func (s *Store) SortedKeyValues() ([]int, []float64) {
	periods := make([]int, 0, len(s.entries))
	rates := make([]float64, 0, len(s.entries))
	for period, rate := range s.All() {
		periods = append(periods, period)
		rates = append(rates, rate)
	}
	return periods, rates
}

// Equal reports whether both stores hold the same periods with the same rates.
// Tree shape is not compared.
func (s *Store) Equal(other *Store) bool {
	if other == nil || len(s.entries) != len(other.entries) {
		return false
	}
	for period, rate := range s.entries {
		if r, ok := other.entries[period]; !ok || r != rate {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (s *Store) Clone() *Store {
	c := &Store{
		entries: make(map[int]float64, len(s.entries)),
		order:   s.order.clone(),
	}
	for period, rate := range s.entries {
		c.entries[period] = rate
	}
	return c
}

func (s *Store) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for period, rate := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(strconv.Itoa(period))
		b.WriteString(": ")
		b.WriteString(strconv.FormatFloat(rate, 'g', -1, 64))
	}
	b.WriteByte('}')
	return b.String()
}
