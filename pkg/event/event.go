package event

import (
	"fmt"
	"strings"

	"github.com/Stratigraph/esal/pkg/errors"
)

// NumFields is the fixed number of fields in an Event.
const NumFields = 5

// Canonical field names, in record order.
const (
	FieldSeq  = "seq"
	FieldTime = "time"
	FieldDura = "dura"
	FieldEv   = "ev"
	FieldVal  = "val"
)

// Positions of the fixed fields.
const (
	idxSeq = iota
	idxTime
	idxDura
	idxEv
	idxVal
)

// header is the schema shared by every Event. One instance for the
// whole process; Event.Header returns it by reference.
var header = NewHeader(FieldSeq, FieldTime, FieldDura, FieldEv, FieldVal)

// Event is one occurrence in a sequence: a fixed five-field record
// (seq, time, dura, ev, val). The field order gives events a useful
// default sort order. Fields can be read by position, by name, or
// through the typed getters; an Event is immutable once constructed.
//
//   - seq:  ID of the containing sequence
//   - time: when the event happened; any orderable value
//   - dura: how long it lasted, omitted for point events
//   - ev:   type of the event
//   - val:  value of the event, omitted for binary events
//
// For example, a blood pressure measurement could be represented by:
//
//	event.New(event.WithSeq(event.String("patient0123456789")),
//		event.WithTime(event.String("2015-04-25T11:39")),
//		event.WithEv(event.String("bpSystolic")),
//		event.WithVal(event.Int(120)))
type Event struct {
	fields [NumFields]Value
}

// Option sets one field during construction.
type Option func(*Event)

// WithSeq sets the sequence ID field.
func WithSeq(v Value) Option { return func(e *Event) { e.fields[idxSeq] = v } }

// WithTime sets the start time field.
func WithTime(v Value) Option { return func(e *Event) { e.fields[idxTime] = v } }

// WithDura sets the duration field.
func WithDura(v Value) Option { return func(e *Event) { e.fields[idxDura] = v } }

// WithEv sets the event type field.
func WithEv(v Value) Option { return func(e *Event) { e.fields[idxEv] = v } }

// WithVal sets the event value field.
func WithVal(v Value) Option { return func(e *Event) { e.fields[idxVal] = v } }

// New constructs an Event. Every field is optional and defaults to the
// absent value.
func New(opts ...Option) Event {
	var e Event
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Header returns the shared schema describing this record. It is the
// same instance for every Event.
func (e Event) Header() *Header { return header }

// At returns the field at the given position.
func (e Event) At(i int) (Value, error) {
	idx, err := header.Resolve(Index(i))
	if err != nil {
		return Value{}, err
	}
	return e.fields[idx], nil
}

// Get returns the field addressed by the given key, by position or by
// name.
func (e Event) Get(k Key) (Value, error) {
	idx, err := header.Resolve(k)
	if err != nil {
		return Value{}, err
	}
	return e.fields[idx], nil
}

// Slice returns the fields in positions [lo, hi), like a native slice
// of the underlying record.
func (e Event) Slice(lo, hi int) ([]Value, error) {
	if lo < 0 || hi > NumFields || lo > hi {
		return nil, errors.BadRange(lo, hi, NumFields)
	}
	out := make([]Value, hi-lo)
	copy(out, e.fields[lo:hi])
	return out, nil
}

// Fields returns a copy of all five field values in record order.
func (e Event) Fields() [NumFields]Value { return e.fields }

// Seq returns the sequence ID field.
func (e Event) Seq() Value { return e.fields[idxSeq] }

// Time returns the start time field.
func (e Event) Time() Value { return e.fields[idxTime] }

// Dura returns the duration field.
func (e Event) Dura() Value { return e.fields[idxDura] }

// Ev returns the event type field.
func (e Event) Ev() Value { return e.fields[idxEv] }

// Val returns the event value field.
func (e Event) Val() Value { return e.fields[idxVal] }

// Compare defines the natural total order over events: lexicographic
// over the five fields in record order through Value.Compare. Sorting by
// it yields sequence ID, then time, then duration, type, and value as
// successive tie-breaks.
func (e Event) Compare(o Event) int {
	for i := 0; i < NumFields; i++ {
		if c := e.fields[i].Compare(o.fields[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether both events carry identical field tuples.
func (e Event) Equal(o Event) bool { return e.fields == o.fields }

// SortKey returns an opaque key carrying the natural order of this
// event: a.Compare(b) and a.SortKey().Compare(b.SortKey()) always
// agree, and equal field tuples produce equal keys.
func (e Event) SortKey() SortKey { return SortKey{fields: e.fields} }

// SortKey is a self-contained, totally ordered image of an event, for
// callers that sort or deduplicate outside the package.
type SortKey struct {
	fields [NumFields]Value
}

// Compare orders two sort keys.
func (k SortKey) Compare(o SortKey) int {
	for i := 0; i < NumFields; i++ {
		if c := k.fields[i].Compare(o.fields[i]); c != 0 {
			return c
		}
	}
	return 0
}

// String renders the event with its field names, skipping absent fields.
func (e Event) String() string {
	var sb strings.Builder
	sb.WriteString("Event(")
	first := true
	for i, v := range e.fields {
		if v.IsNil() {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s=%s", header.names[i], v))
		first = false
	}
	sb.WriteString(")")
	return sb.String()
}
