// Package sequence provides an ordered container of events with
// sorting and filtering built on the event package's natural order and
// partial-match primitives.
package sequence

import (
	"sort"

	"github.com/Stratigraph/esal/pkg/event"
)

// Sequence is a list of events. Methods never mutate the events
// themselves; Sort reorders the slice in place, everything else returns
// a new slice.
type Sequence []event.Event

// Len returns the number of events.
func (s Sequence) Len() int { return len(s) }

// Sort orders the sequence in place by the natural event order:
// sequence ID, then time, then the remaining fields as tie-breaks. The
// sort is stable, though the natural order is total so stability only
// matters for fully identical events.
func (s Sequence) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Compare(s[j]) < 0
	})
}

// Sorted returns a sorted copy, leaving the receiver untouched.
func (s Sequence) Sorted() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	out.Sort()
	return out
}

// Select returns the events satisfying the given partial match, in
// their current order.
func (s Sequence) Select(m event.Match) Sequence {
	var out Sequence
	for _, e := range s {
		if e.Matches(m) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of events satisfying the given partial
// match without materializing them.
func (s Sequence) Count(m event.Match) int {
	n := 0
	for _, e := range s {
		if e.Matches(m) {
			n++
		}
	}
	return n
}

// Span returns the smallest and largest time fields present in the
// sequence. ok is false when every event has an absent time.
func (s Sequence) Span() (first, last event.Value, ok bool) {
	for _, e := range s {
		t := e.Time()
		if t.IsNil() {
			continue
		}
		if !ok {
			first, last, ok = t, t, true
			continue
		}
		if t.Compare(first) < 0 {
			first = t
		}
		if t.Compare(last) > 0 {
			last = t
		}
	}
	return first, last, ok
}
