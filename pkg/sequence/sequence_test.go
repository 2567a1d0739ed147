package sequence

import (
	"testing"
	"time"

	"github.com/Stratigraph/esal/pkg/event"
)

func ev(seq, tm int64) event.Event {
	return event.New(event.WithSeq(event.Int(seq)), event.WithTime(event.Int(tm)))
}

func TestSequence_Sort(t *testing.T) {
	s := Sequence{ev(2, 5), ev(1, 9), ev(1, 3)}
	s.Sort()

	want := Sequence{ev(1, 3), ev(1, 9), ev(2, 5)}
	for i := range want {
		if !s[i].Equal(want[i]) {
			t.Errorf("Position %d: got %v, expected %v", i, s[i], want[i])
		}
	}
}

func TestSequence_SortedLeavesOriginal(t *testing.T) {
	s := Sequence{ev(2, 1), ev(1, 1)}
	sorted := s.Sorted()

	if !s[0].Equal(ev(2, 1)) {
		t.Error("Sorted() mutated the receiver")
	}
	if !sorted[0].Equal(ev(1, 1)) {
		t.Error("Sorted() did not sort the copy")
	}
}

func TestSequence_Select(t *testing.T) {
	s := Sequence{
		event.New(event.WithEv(event.String("login")), event.WithSeq(event.Int(1))),
		event.New(event.WithEv(event.String("logout")), event.WithSeq(event.Int(1))),
		event.New(event.WithEv(event.String("login")), event.WithSeq(event.Int(2))),
	}

	logins := s.Select(event.Match{Ev: event.Equals(event.String("login"))})
	if len(logins) != 2 {
		t.Fatalf("Expected 2 logins, got %d", len(logins))
	}
	for _, e := range logins {
		if !e.Ev().Equal(event.String("login")) {
			t.Errorf("Selected wrong event: %v", e)
		}
	}

	if got := s.Count(event.Match{Ev: event.Equals(event.String("login"))}); got != 2 {
		t.Errorf("Count = %d, expected 2", got)
	}
	if got := s.Count(event.Match{}); got != 3 {
		t.Errorf("Wildcard Count = %d, expected 3", got)
	}
}

func TestSequence_SelectEmpty(t *testing.T) {
	var s Sequence
	if out := s.Select(event.Match{}); len(out) != 0 {
		t.Errorf("Select on empty sequence = %v", out)
	}
}

func TestSequence_Span(t *testing.T) {
	t1 := time.Date(2015, 4, 25, 11, 39, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	s := Sequence{
		event.New(event.WithTime(event.Time(t2))),
		event.New(), // absent time, skipped
		event.New(event.WithTime(event.Time(t1))),
	}

	first, last, ok := s.Span()
	if !ok {
		t.Fatal("Expected a span")
	}
	if first != event.Time(t1) || last != event.Time(t2) {
		t.Errorf("Span = %v .. %v", first, last)
	}

	_, _, ok = Sequence{event.New()}.Span()
	if ok {
		t.Error("Span over absent times should report not-ok")
	}
}
