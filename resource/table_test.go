package resource

import (
	"testing"

	"github.com/wippyai/icu4x-go/errors"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

func TestTable_Basic(t *testing.T) {
	table := NewTable()

	h := table.Insert(TypeCalendar, "buddhist")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := table.Get(h)
	if !ok || val != "buddhist" {
		t.Fatalf("Get = %v, %v", val, ok)
	}

	if _, ok = table.GetTyped(h, TypeCalendar); !ok {
		t.Fatal("GetTyped with correct type failed")
	}
	if _, ok = table.GetTyped(h, TypeLocale); ok {
		t.Fatal("GetTyped with wrong type should fail")
	}

	if _, ok = table.Remove(h, TypeLocale); ok {
		t.Fatal("Remove with wrong type should fail")
	}
	val, ok = table.Remove(h, TypeCalendar)
	if !ok || val != "buddhist" {
		t.Fatalf("Remove = %v, %v", val, ok)
	}
	if _, ok = table.Remove(h, TypeCalendar); ok {
		t.Fatal("second Remove should fail")
	}

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
}

func TestTable_Lookup(t *testing.T) {
	table := NewTable()
	h := table.Insert(TypeLocale, "en")

	if v, err := table.Lookup(h, TypeLocale, errors.PhaseCall); err != nil || v != "en" {
		t.Fatalf("Lookup = %v, %v", v, err)
	}

	_, err := table.Lookup(h, TypeCalendar, errors.PhaseCall)
	if !errors.IsKind(err, errors.KindWrongType) {
		t.Fatalf("expected wrong_type, got %v", err)
	}

	table.Remove(h, TypeLocale)
	_, err = table.Lookup(h, TypeLocale, errors.PhaseCall)
	if !errors.IsKind(err, errors.KindInvalidHandle) {
		t.Fatalf("expected invalid_handle, got %v", err)
	}
}

func TestTable_BorrowBlocksRemove(t *testing.T) {
	table := NewTable()
	h := table.Insert(TypeDataProvider, "compiled")

	if !table.Borrow(h) {
		t.Fatal("Borrow failed")
	}
	if _, ok := table.Remove(h, TypeDataProvider); ok {
		t.Fatal("Remove should fail while borrowed")
	}
	table.Release(h)
	if _, ok := table.Remove(h, TypeDataProvider); !ok {
		t.Fatal("Remove should succeed after Release")
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	h := table.Insert(TypeCalendar, "test")
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventCreated || obs.events[0].Handle != h || obs.events[0].TypeID != TypeCalendar {
		t.Fatalf("unexpected event %+v", obs.events[0])
	}

	table.Remove(h, TypeCalendar)
	if len(obs.events) != 2 || obs.events[1].Type != EventDropped {
		t.Fatalf("Expected EventDropped, got %+v", obs.events)
	}

	// Failed removes are silent.
	table.Remove(h, TypeCalendar)
	if len(obs.events) != 2 {
		t.Fatal("stale Remove should not notify")
	}

	table.Unsubscribe(obs)
	table.Insert(TypeCalendar, "test2")
	if len(obs.events) != 2 {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestTable_LenOfAndClear(t *testing.T) {
	table := NewTable()

	table.Insert(TypeCalendar, "a")
	table.Insert(TypeCalendar, "b")
	table.Insert(TypeLocale, "c")

	if n := table.LenOf(TypeCalendar); n != 2 {
		t.Fatalf("LenOf(Calendar) = %d", n)
	}
	if n := table.LenOf(TypeLocale); n != 1 {
		t.Fatalf("LenOf(Locale) = %d", n)
	}

	table.Clear()

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Clear")
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}

	h := table.Insert(TypeCalendar, d)
	table.Remove(h, TypeCalendar)
	if d.count != 1 {
		t.Fatalf("Expected Drop() once, called %d times", d.count)
	}

	table.Insert(TypeCalendar, "a")
	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if h := table.Insert(TypeCalendar, "c"); h != 0 {
		t.Fatal("Expected Insert to fail after Close")
	}
}

func TestTable_CloseNotifiesDrops(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	table.Insert(TypeDataProvider, "p")
	table.Insert(TypeCalendar, "c")
	if err := table.Close(); err != nil {
		t.Fatal(err)
	}

	created, dropped := 0, 0
	for _, e := range obs.events {
		switch e.Type {
		case EventCreated:
			created++
		case EventDropped:
			dropped++
		}
	}
	if created != 2 || dropped != 2 {
		t.Fatalf("created=%d dropped=%d", created, dropped)
	}
}

func TestTypeID_String(t *testing.T) {
	if TypeCalendar.String() != "Calendar" {
		t.Errorf("TypeCalendar = %q", TypeCalendar.String())
	}
	if TypeID(42).String() != "type(42)" {
		t.Errorf("unknown = %q", TypeID(42).String())
	}
}
