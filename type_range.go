package prysm

import "iter"

// Range represents a range of dates. A zero bound is open.
type Range struct{ From, To Date }

// NewRange creates a new date range. If both bounds are set and 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// Days returns an iterator that yields each date within the range, inclusive.
// Both bounds must be set, it yields nothing otherwise.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if r.From.IsZero() || r.To.IsZero() {
			return
		}
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}
