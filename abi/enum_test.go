package abi

import (
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/icu4x-go/errors"
)

type weekday uint32

func weekdays() *Enum[weekday] {
	return NewEnum("iso-weekday",
		EnumCase[weekday]{"monday", 1},
		EnumCase[weekday]{"tuesday", 2},
		EnumCase[weekday]{"wednesday", 3},
		EnumCase[weekday]{"thursday", 4},
		EnumCase[weekday]{"friday", 5},
		EnumCase[weekday]{"saturday", 6},
		EnumCase[weekday]{"sunday", 7},
	)
}

func TestEnum_RoundTrip(t *testing.T) {
	e := weekdays()
	for _, c := range e.Cases() {
		raw, err := e.Lower(c.Value)
		if err != nil {
			t.Fatalf("Lower(%s): %v", c.Name, err)
		}
		back, err := e.Lift(raw)
		if err != nil {
			t.Fatalf("Lift(%d): %v", raw, err)
		}
		if back != c.Value {
			t.Errorf("round trip %s: got %d", c.Name, back)
		}
		if e.CaseName(back) != c.Name {
			t.Errorf("CaseName(%d) = %q", back, e.CaseName(back))
		}
	}
}

func TestEnum_RejectsOutsideSet(t *testing.T) {
	e := weekdays()

	// Discriminants are not contiguous from zero.
	for _, raw := range []uint32{0, 8, 1 << 31} {
		if _, err := e.Lift(raw); !errors.IsKind(err, errors.KindInvalidEnum) {
			t.Errorf("Lift(%d) err = %v", raw, err)
		}
	}
	if _, err := e.Lower(weekday(0)); !errors.IsKind(err, errors.KindInvalidEnum) {
		t.Errorf("Lower(0) err = %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustLift should panic on unknown discriminant")
		}
	}()
	e.MustLift(99)
}

func TestEnum_Parse(t *testing.T) {
	e := weekdays()
	if v, ok := e.Parse("friday"); !ok || v != 5 {
		t.Fatalf("Parse(friday) = %d, %v", v, ok)
	}
	if _, ok := e.Parse("caturday"); ok {
		t.Fatal("Parse accepted unknown name")
	}
}

func TestEnum_WIT(t *testing.T) {
	def := weekdays().WIT()
	if def.Name == nil || *def.Name != "iso-weekday" {
		t.Fatalf("name = %v", def.Name)
	}
	enum, ok := def.Kind.(*wit.Enum)
	if !ok {
		t.Fatalf("kind = %T", def.Kind)
	}
	if len(enum.Cases) != 7 || enum.Cases[0].Name != "monday" {
		t.Fatalf("cases = %+v", enum.Cases)
	}
}

func TestNewEnum_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate value")
		}
	}()
	NewEnum("dup", EnumCase[uint32]{"a", 1}, EnumCase[uint32]{"b", 1})
}

func TestMap_Total(t *testing.T) {
	type color string
	m := NewMap("color", map[color]uint32{"red": 0, "green": 1})

	if m.Len() != 2 {
		t.Fatalf("Len = %d", m.Len())
	}
	for _, c := range []color{"red", "green"} {
		b, err := m.ToBoundary(c)
		if err != nil {
			t.Fatal(err)
		}
		w, err := m.ToWrapper(b)
		if err != nil || w != c {
			t.Fatalf("round trip %s = %s, %v", c, w, err)
		}
	}
	if _, err := m.ToWrapper(7); !errors.IsKind(err, errors.KindInvalidEnum) {
		t.Errorf("ToWrapper(7) err = %v", err)
	}
	if _, err := m.ToBoundary("blue"); !errors.IsKind(err, errors.KindInvalidEnum) {
		t.Errorf("ToBoundary(blue) err = %v", err)
	}
}

func TestNewMap_NotOneToOnePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewMap("bad", map[string]uint32{"a": 1, "b": 1})
}
