package event

type critKind uint8

const (
	critWildcard critKind = iota
	critEquals
	critWhere
)

// Criterion is one field condition of a partial match. It is a tagged
// variant of three cases: a wildcard that accepts anything, equality
// against a value, or an arbitrary predicate over the field value. The
// zero Criterion is the wildcard, so leaving a Match field unset means
// "ignore this field".
type Criterion struct {
	kind  critKind
	value Value
	pred  func(Value) bool
}

// Any returns the wildcard criterion. Equivalent to the zero Criterion.
func Any() Criterion { return Criterion{} }

// Equals matches fields equal to v, with Value.Equal semantics (so
// integer and float values compare numerically).
func Equals(v Value) Criterion {
	return Criterion{kind: critEquals, value: v}
}

// Where matches fields for which pred returns true. Predicates must be
// side-effect free: match evaluation short-circuits, so whether a given
// predicate runs at all depends on the other criteria.
func Where(pred func(Value) bool) Criterion {
	return Criterion{kind: critWhere, pred: pred}
}

func (c Criterion) matches(v Value) bool {
	switch c.kind {
	case critEquals:
		return c.value.Equal(v)
	case critWhere:
		return c.pred(v)
	default:
		return true
	}
}

// Match is a partial-match query over the five event fields. Unset
// fields are wildcards, so the zero Match accepts every event.
type Match struct {
	Seq  Criterion
	Time Criterion
	Dura Criterion
	Ev   Criterion
	Val  Criterion
}

// Matches reports whether every criterion in m is satisfied by the
// corresponding field of this event. Criteria are checked in the order
// ev, time, val, dura, seq, stopping at the first failure; the fields
// most likely to differ go first.
func (e Event) Matches(m Match) bool {
	return m.Ev.matches(e.fields[idxEv]) &&
		m.Time.matches(e.fields[idxTime]) &&
		m.Val.matches(e.fields[idxVal]) &&
		m.Dura.matches(e.fields[idxDura]) &&
		m.Seq.matches(e.fields[idxSeq])
}
