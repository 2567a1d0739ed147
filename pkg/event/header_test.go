package event

import (
	"testing"

	"github.com/Stratigraph/esal/pkg/errors"
)

func TestHeader_RoundTrip(t *testing.T) {
	h := NewHeader("seq", "time", "dura", "ev", "val")

	if h.Len() != 5 {
		t.Fatalf("Expected length 5, got %d", h.Len())
	}

	for i := 0; i < h.Len(); i++ {
		name, err := h.NameOf(i)
		if err != nil {
			t.Fatalf("NameOf(%d) failed: %v", i, err)
		}
		back, err := h.IndexOf(name)
		if err != nil {
			t.Fatalf("IndexOf(%q) failed: %v", name, err)
		}
		if back != i {
			t.Errorf("IndexOf(NameOf(%d)) = %d", i, back)
		}
		resolved, err := h.Resolve(Name(name))
		if err != nil {
			t.Fatalf("Resolve(Name(%q)) failed: %v", name, err)
		}
		if resolved != i {
			t.Errorf("Resolve(Name(%q)) = %d, expected %d", name, resolved, i)
		}
	}
}

func TestHeader_ResolveIndex(t *testing.T) {
	h := NewHeader("a", "b", "c")

	i, err := h.Resolve(Index(2))
	if err != nil {
		t.Fatalf("Resolve(Index(2)) failed: %v", err)
	}
	if i != 2 {
		t.Errorf("Resolve(Index(2)) = %d", i)
	}
}

func TestHeader_OutOfRange(t *testing.T) {
	h := NewHeader("a", "b", "c")

	for _, idx := range []int{-1, 3, 100} {
		if _, err := h.Resolve(Index(idx)); !errors.IsCode(err, errors.CodeIndexOutOfRange) {
			t.Errorf("Resolve(Index(%d)): expected CodeIndexOutOfRange, got %v", idx, err)
		}
		if _, err := h.NameOf(idx); !errors.IsCode(err, errors.CodeIndexOutOfRange) {
			t.Errorf("NameOf(%d): expected CodeIndexOutOfRange, got %v", idx, err)
		}
	}
}

func TestHeader_UnknownName(t *testing.T) {
	h := NewHeader("a", "b")

	if _, err := h.IndexOf("nonexistent"); !errors.IsCode(err, errors.CodeUnknownField) {
		t.Errorf("Expected CodeUnknownField, got %v", err)
	}
	if _, err := h.Resolve(Name("nonexistent")); !errors.IsCode(err, errors.CodeUnknownField) {
		t.Errorf("Expected CodeUnknownField, got %v", err)
	}
}

func TestHeader_ZeroKey(t *testing.T) {
	h := NewHeader("a")

	if _, err := h.Resolve(Key{}); !errors.IsCode(err, errors.CodeBadKey) {
		t.Errorf("Expected CodeBadKey for zero key, got %v", err)
	}
}

func TestHeader_DuplicateNamesLastWins(t *testing.T) {
	h := NewHeader("x", "y", "x")

	// Position-to-name stays exact per position.
	name, err := h.NameOf(0)
	if err != nil || name != "x" {
		t.Errorf("NameOf(0) = %q, %v", name, err)
	}
	name, err = h.NameOf(2)
	if err != nil || name != "x" {
		t.Errorf("NameOf(2) = %q, %v", name, err)
	}

	// Name lookup resolves to the later position.
	i, err := h.IndexOf("x")
	if err != nil {
		t.Fatalf("IndexOf(x) failed: %v", err)
	}
	if i != 2 {
		t.Errorf("IndexOf(x) = %d, expected 2 (last wins)", i)
	}
}

func TestHeader_NamesIsACopy(t *testing.T) {
	h := NewHeader("a", "b")

	names := h.Names()
	names[0] = "mutated"

	name, err := h.NameOf(0)
	if err != nil || name != "a" {
		t.Errorf("Header mutated through Names(): NameOf(0) = %q, %v", name, err)
	}
}
