package resource

import (
	"testing"

	"github.com/wippyai/icu4x-go/errors"
)

type calendarStub struct{ id string }

func TestTyped(t *testing.T) {
	table := NewTable()
	calendars := NewTyped[*calendarStub](table, TypeCalendar)
	locales := NewTyped[string](table, TypeLocale)

	h := calendars.Insert(&calendarStub{id: "hebrew"})
	locales.Insert("he-IL")

	if calendars.TypeID() != TypeCalendar {
		t.Fatalf("TypeID = %v", calendars.TypeID())
	}

	c, err := calendars.Get(h, errors.PhaseCall)
	if err != nil || c.id != "hebrew" {
		t.Fatalf("Get = %v, %v", c, err)
	}

	if _, err := locales.Get(h, errors.PhaseCall); !errors.IsKind(err, errors.KindWrongType) {
		t.Fatalf("expected wrong_type through foreign view, got %v", err)
	}

	if calendars.Len() != 1 || locales.Len() != 1 {
		t.Fatalf("Len = %d/%d", calendars.Len(), locales.Len())
	}

	var seen []string
	calendars.Each(func(_ Handle, c *calendarStub) bool {
		seen = append(seen, c.id)
		return true
	})
	if len(seen) != 1 || seen[0] != "hebrew" {
		t.Fatalf("Each saw %v", seen)
	}

	if got, ok := calendars.Remove(h); !ok || got.id != "hebrew" {
		t.Fatalf("Remove = %v, %v", got, ok)
	}
	if _, ok := calendars.Remove(h); ok {
		t.Fatal("second Remove should fail")
	}
}

func TestTyped_ValueTypeMismatch(t *testing.T) {
	table := NewTable()
	h := table.Insert(TypeCalendar, "not a stub")

	calendars := NewTyped[*calendarStub](table, TypeCalendar)
	if _, err := calendars.Get(h, errors.PhaseCall); !errors.IsKind(err, errors.KindWrongType) {
		t.Fatalf("expected wrong_type, got %v", err)
	}
}
