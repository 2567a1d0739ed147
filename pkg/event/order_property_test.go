package event

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genValue produces values across all kinds, including the absent value.
func genValue() gopter.Gen {
	return gen.OneGenOf(
		gen.Const(Nil()),
		gen.Bool().Map(Bool),
		gen.Int64().Map(Int),
		gen.Float64().Map(Float),
		gen.AlphaString().Map(String),
	)
}

func genEvent() gopter.Gen {
	return gopter.CombineGens(
		genValue(), genValue(), genValue(), genValue(), genValue(),
	).Map(func(vs []interface{}) Event {
		return New(
			WithSeq(vs[0].(Value)),
			WithTime(vs[1].(Value)),
			WithDura(vs[2].(Value)),
			WithEv(vs[3].(Value)),
			WithVal(vs[4].(Value)),
		)
	})
}

func TestProperty_ValueOrderIsTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("compare is antisymmetric", prop.ForAll(
		func(a, b Value) bool {
			return sign(a.Compare(b)) == -sign(b.Compare(a))
		},
		genValue(), genValue(),
	))

	properties.Property("compare is transitive", prop.ForAll(
		func(a, b, c Value) bool {
			if a.Compare(b) <= 0 && b.Compare(c) <= 0 {
				return a.Compare(c) <= 0
			}
			return true
		},
		genValue(), genValue(), genValue(),
	))

	properties.Property("compare zero means equal payload ordering both ways", prop.ForAll(
		func(a, b Value) bool {
			if a.Compare(b) != 0 {
				return true
			}
			return b.Compare(a) == 0
		},
		genValue(), genValue(),
	))

	properties.TestingRun(t)
}

func TestProperty_EventOrderIsTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("exactly one of <, ==, > holds", prop.ForAll(
		func(a, b Event) bool {
			ab, ba := a.Compare(b), b.Compare(a)
			return sign(ab) == -sign(ba)
		},
		genEvent(), genEvent(),
	))

	properties.Property("equal field tuples compare equal", prop.ForAll(
		func(a Event) bool {
			clone := New(
				WithSeq(a.Seq()), WithTime(a.Time()), WithDura(a.Dura()),
				WithEv(a.Ev()), WithVal(a.Val()),
			)
			return a.Compare(clone) == 0 && a.SortKey() == clone.SortKey()
		},
		genEvent(),
	))

	properties.Property("sort key order agrees with compare", prop.ForAll(
		func(a, b Event) bool {
			return sign(a.Compare(b)) == sign(a.SortKey().Compare(b.SortKey()))
		},
		genEvent(), genEvent(),
	))

	properties.TestingRun(t)
}

func TestProperty_HeaderRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("resolve(name_of(i)) == i for unique names", prop.ForAll(
		func(names []string) bool {
			seen := make(map[string]bool)
			unique := names[:0]
			for _, n := range names {
				if !seen[n] {
					seen[n] = true
					unique = append(unique, n)
				}
			}
			h := NewHeader(unique...)
			for i := 0; i < h.Len(); i++ {
				name, err := h.NameOf(i)
				if err != nil {
					return false
				}
				back, err := h.Resolve(Name(name))
				if err != nil || back != i {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
