// Package event defines the core record model for esal: a typed field
// value, an immutable header mapping field names to positions, and the
// Event record with its natural ordering and partial-match predicate.
package event

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind identifies the type of a field Value. The declaration order is
// also the canonical sort order across kinds: absent values sort before
// everything else, then booleans, numbers, strings, times, durations.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
	KindDuration
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindDuration:
		return "duration"
	default:
		return "invalid"
	}
}

// Value is one field of an Event. The zero Value is Nil, the distinguished
// absent value. Values are plain comparable structs: they can be used as
// map keys and compared with ==, except that == on numeric values does
// not cross kinds (use Equal for that).
//
// Times and durations are stored as int64 nanoseconds, floats as their
// IEEE 754 bit pattern, so the struct stays comparable.
type Value struct {
	kind Kind
	num  int64
	str  string
}

// Nil returns the absent value. Equivalent to the zero Value.
func Nil() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	n := int64(0)
	if b {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, num: i} }

// Float returns a floating-point value.
func Float(f float64) Value {
	return Value{kind: KindFloat, num: int64(math.Float64bits(f))}
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Time returns a timestamp value with nanosecond precision.
func Time(t time.Time) Value {
	return Value{kind: KindTime, num: t.UnixNano()}
}

// Duration returns a duration value.
func Duration(d time.Duration) Value {
	return Value{kind: KindDuration, num: int64(d)}
}

// Of coerces a native Go value into a Value. Unsupported types are
// rendered through fmt and stored as strings. A nil interface is Nil.
func Of(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Nil()
	case Value:
		return x
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return String(x)
	case time.Time:
		return Time(x)
	case time.Duration:
		return Duration(x)
	default:
		return String(fmt.Sprint(x))
	}
}

// Kind returns the kind of this value.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether this is the absent value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsBool returns the boolean payload and whether the kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	return v.num != 0, v.kind == KindBool
}

// AsInt returns the integer payload and whether the kind is KindInt.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsFloat returns the float payload and whether the kind is KindFloat.
func (v Value) AsFloat() (float64, bool) {
	return math.Float64frombits(uint64(v.num)), v.kind == KindFloat
}

// AsString returns the string payload and whether the kind is KindString.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsTime returns the timestamp payload and whether the kind is KindTime.
func (v Value) AsTime() (time.Time, bool) {
	return time.Unix(0, v.num).UTC(), v.kind == KindTime
}

// AsDuration returns the duration payload and whether the kind is
// KindDuration.
func (v Value) AsDuration() (time.Duration, bool) {
	return time.Duration(v.num), v.kind == KindDuration
}

// String renders the value for display.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(math.Float64frombits(uint64(v.num)), 'g', -1, 64)
	case KindString:
		return v.str
	case KindTime:
		return time.Unix(0, v.num).UTC().Format(time.RFC3339Nano)
	case KindDuration:
		return time.Duration(v.num).String()
	default:
		return "invalid"
	}
}

func (v Value) isNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// float returns the numeric payload as a float64. Valid for KindInt and
// KindFloat only.
func (v Value) float() float64 {
	if v.kind == KindInt {
		return float64(v.num)
	}
	return math.Float64frombits(uint64(v.num))
}

// Equal reports value equality. Unlike ==, integers and floats compare
// numerically across kinds, so Int(3).Equal(Float(3)) is true.
func (v Value) Equal(o Value) bool {
	if v.isNumeric() && o.isNumeric() {
		return compareNumeric(v, o) == 0
	}
	return v == o
}

// Compare defines a strict total order over all values: kinds are ranked
// in declaration order (nil first), equal kinds compare by payload, and
// integers and floats compare numerically against each other with the
// kind rank breaking exact numeric ties. NaN sorts below all other
// floats. The result is negative, zero, or positive.
func (v Value) Compare(o Value) int {
	if v.isNumeric() && o.isNumeric() {
		if c := compareNumeric(v, o); c != 0 {
			return c
		}
		return compareKinds(v.kind, o.kind)
	}
	if c := compareKinds(v.kind, o.kind); c != 0 {
		return c
	}
	switch v.kind {
	case KindString:
		switch {
		case v.str < o.str:
			return -1
		case v.str > o.str:
			return 1
		}
		return 0
	default:
		// Nil, Bool, Int, Time, Duration all order by raw payload.
		switch {
		case v.num < o.num:
			return -1
		case v.num > o.num:
			return 1
		}
		return 0
	}
}

func compareKinds(a, b Kind) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareNumeric(v, o Value) int {
	// Same-kind integers compare exactly; float64 would lose precision
	// past 2^53.
	if v.kind == KindInt && o.kind == KindInt {
		switch {
		case v.num < o.num:
			return -1
		case v.num > o.num:
			return 1
		}
		return 0
	}
	a, b := v.float(), o.float()
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
