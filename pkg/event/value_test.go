package event

import (
	"math"
	"testing"
	"time"
)

func TestValue_ZeroIsNil(t *testing.T) {
	var v Value
	if !v.IsNil() {
		t.Error("Zero Value should be nil")
	}
	if v != Nil() {
		t.Error("Zero Value should equal Nil()")
	}
}

func TestValue_Accessors(t *testing.T) {
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("AsBool = %v, %v", b, ok)
	}
	if i, ok := Int(42).AsInt(); !ok || i != 42 {
		t.Errorf("AsInt = %v, %v", i, ok)
	}
	if f, ok := Float(1.5).AsFloat(); !ok || f != 1.5 {
		t.Errorf("AsFloat = %v, %v", f, ok)
	}
	if s, ok := String("x").AsString(); !ok || s != "x" {
		t.Errorf("AsString = %v, %v", s, ok)
	}

	now := time.Date(2015, 4, 25, 11, 39, 0, 0, time.UTC)
	if got, ok := Time(now).AsTime(); !ok || !got.Equal(now) {
		t.Errorf("AsTime = %v, %v", got, ok)
	}
	if d, ok := Duration(time.Minute).AsDuration(); !ok || d != time.Minute {
		t.Errorf("AsDuration = %v, %v", d, ok)
	}

	// Wrong-kind access reports not-ok.
	if _, ok := Int(1).AsString(); ok {
		t.Error("AsString on an int should report not-ok")
	}
}

func TestValue_KindOrdering(t *testing.T) {
	// One representative per kind, in expected ascending order.
	ordered := []Value{
		Nil(),
		Bool(false),
		Int(3),
		String("a"),
		Time(time.Unix(0, 1)),
		Duration(time.Second),
	}
	for i := 0; i < len(ordered); i++ {
		for j := 0; j < len(ordered); j++ {
			c := ordered[i].Compare(ordered[j])
			switch {
			case i < j && c >= 0:
				t.Errorf("Expected %v < %v, got Compare = %d", ordered[i], ordered[j], c)
			case i > j && c <= 0:
				t.Errorf("Expected %v > %v, got Compare = %d", ordered[i], ordered[j], c)
			case i == j && c != 0:
				t.Errorf("Expected %v == %v, got Compare = %d", ordered[i], ordered[j], c)
			}
		}
	}
}

func TestValue_NumericCrossKindCompare(t *testing.T) {
	if c := Int(2).Compare(Float(2.5)); c >= 0 {
		t.Errorf("Int(2) vs Float(2.5) = %d", c)
	}
	if c := Float(2.5).Compare(Int(3)); c >= 0 {
		t.Errorf("Float(2.5) vs Int(3) = %d", c)
	}
	// Exact numeric tie breaks on kind, keeping the order strict.
	if c := Int(2).Compare(Float(2)); c >= 0 {
		t.Errorf("Int(2) vs Float(2) = %d, expected int first", c)
	}
}

func TestValue_LargeIntPrecision(t *testing.T) {
	// Values differing by 1 beyond 2^53 must still compare correctly.
	a := Int(1 << 60)
	b := Int(1<<60 + 1)
	if c := a.Compare(b); c >= 0 {
		t.Errorf("Compare = %d, large ints lost precision", c)
	}
}

func TestValue_NaNOrdering(t *testing.T) {
	nan := Float(math.NaN())
	if c := nan.Compare(Float(-1e300)); c >= 0 {
		t.Errorf("NaN should sort below all floats, got %d", c)
	}
	if c := nan.Compare(nan); c != 0 {
		t.Errorf("NaN vs NaN = %d, expected 0", c)
	}
	if c := nan.Compare(Nil()); c <= 0 {
		t.Errorf("NaN should still sort above nil, got %d", c)
	}
}

func TestValue_Equal(t *testing.T) {
	if !Int(3).Equal(Float(3)) {
		t.Error("Int(3) should Equal Float(3)")
	}
	if Int(3).Equal(String("3")) {
		t.Error("Int(3) should not Equal String(\"3\")")
	}
	if !String("a").Equal(String("a")) {
		t.Error("Equal strings should be Equal")
	}
	if !Nil().Equal(Nil()) {
		t.Error("Nil should Equal Nil")
	}
	if Nil().Equal(Bool(false)) {
		t.Error("Nil should not Equal Bool(false)")
	}
}

func TestValue_UsableAsMapKey(t *testing.T) {
	seen := map[Value]int{
		Nil():        0,
		Int(1):       1,
		String("1"):  2,
		Time(epoch): 3,
	}
	if seen[Int(1)] != 1 {
		t.Error("Int value lookup failed")
	}
	if seen[Nil()] != 0 {
		t.Error("Nil value lookup failed")
	}
	if len(seen) != 4 {
		t.Errorf("Expected 4 distinct keys, got %d", len(seen))
	}
}

var epoch = time.Unix(0, 0)

func TestValue_Of(t *testing.T) {
	cases := []struct {
		in   interface{}
		want Value
	}{
		{nil, Nil()},
		{true, Bool(true)},
		{7, Int(7)},
		{int64(7), Int(7)},
		{1.5, Float(1.5)},
		{"x", String("x")},
		{time.Minute, Duration(time.Minute)},
	}
	for _, c := range cases {
		if got := Of(c.in); got != c.want {
			t.Errorf("Of(%v) = %v, expected %v", c.in, got, c.want)
		}
	}
}
