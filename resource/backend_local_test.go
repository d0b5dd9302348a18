package resource

import (
	"errors"
	"sync"
	"testing"
)

func TestLocalBackend_Basic(t *testing.T) {
	b := NewLocalBackend()

	handle, err := b.Create(TypeCalendar, "gregory")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if handle == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := b.Get(handle)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "gregory" {
		t.Fatalf("Expected 'gregory', got %v", val)
	}

	typeID, ok := b.TypeID(handle)
	if !ok || typeID != TypeCalendar {
		t.Fatalf("TypeID = %v, %v", typeID, ok)
	}

	val, ok = b.Drop(handle)
	if !ok {
		t.Fatal("Drop failed")
	}
	if val != "gregory" {
		t.Fatalf("Expected 'gregory', got %v", val)
	}

	if _, ok = b.Get(handle); ok {
		t.Fatal("Expected Get to fail after Drop")
	}
	if _, ok = b.Drop(handle); ok {
		t.Fatal("Expected second Drop to fail")
	}
}

func TestLocalBackend_Borrow(t *testing.T) {
	b := NewLocalBackend()

	handle, _ := b.Create(TypeLocale, "en")

	for i := 0; i < 3; i++ {
		if !b.Borrow(handle) {
			t.Fatalf("Borrow %d failed", i)
		}
	}

	if _, ok := b.Drop(handle); ok {
		t.Fatal("Drop should fail with outstanding borrows")
	}

	for i := 0; i < 3; i++ {
		if !b.ReturnBorrow(handle) {
			t.Fatalf("ReturnBorrow %d failed", i)
		}
	}
	if b.ReturnBorrow(handle) {
		t.Fatal("ReturnBorrow without a borrow should fail")
	}

	if _, ok := b.Drop(handle); !ok {
		t.Fatal("Drop should succeed after returning all borrows")
	}
}

func TestLocalBackend_HandleReuse(t *testing.T) {
	b := NewLocalBackend()

	h1, _ := b.Create(TypeCalendar, 1)
	h2, _ := b.Create(TypeCalendar, 2)
	h3, _ := b.Create(TypeCalendar, 3)

	b.Drop(h2)
	b.Drop(h1)

	h4, _ := b.Create(TypeLocale, 4)
	if h4 != h1 {
		t.Fatalf("expected LIFO slot reuse, got %d want %d", h4, h1)
	}
	h5, _ := b.Create(TypeLocale, 5)
	if h5 != h2 {
		t.Fatalf("expected LIFO slot reuse, got %d want %d", h5, h2)
	}

	// The reused slot carries the new type.
	if id, _ := b.TypeID(h4); id != TypeLocale {
		t.Fatalf("reused slot TypeID = %v", id)
	}
	if _, ok := b.Get(h3); !ok {
		t.Fatal("h3 should still be valid")
	}
}

type dropCounter struct {
	count int
}

func (d *dropCounter) Drop() {
	d.count++
}

func TestLocalBackend_Close(t *testing.T) {
	b := NewLocalBackend()
	d := &dropCounter{}

	b.Create(TypeCalendar, d)
	b.Create(TypeCalendar, 2)

	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if d.count != 1 {
		t.Fatalf("Dropper called %d times on Close", d.count)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	_, err := b.Create(TypeCalendar, "x")
	if !errors.Is(err, ErrClosed) {
		t.Fatal("Expected ErrClosed after Close")
	}
}

func TestLocalBackend_Concurrent(t *testing.T) {
	b := NewLocalBackend()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			h, _ := b.Create(TypeCalendar, id)
			b.Borrow(h)
			b.ReturnBorrow(h)
			b.Drop(h)
		}(i)
	}

	wg.Wait()

	if b.Len() != 0 {
		t.Fatalf("Len() = %d after concurrent create/drop", b.Len())
	}
}

func TestLocalBackend_InvalidHandle(t *testing.T) {
	b := NewLocalBackend()

	if _, ok := b.Get(0); ok {
		t.Fatal("Handle 0 should be invalid")
	}
	if b.Borrow(0) {
		t.Fatal("Handle 0 should fail Borrow")
	}
	if b.ReturnBorrow(0) {
		t.Fatal("Handle 0 should fail ReturnBorrow")
	}
	if _, ok := b.Drop(0); ok {
		t.Fatal("Handle 0 should fail Drop")
	}
	if _, ok := b.Get(999); ok {
		t.Fatal("Non-existent handle should be invalid")
	}
}

func TestLocalBackend_Each(t *testing.T) {
	b := NewLocalBackend()

	b.Create(TypeCalendar, "a")
	b.Create(TypeLocale, "b")
	b.Create(TypeCalendar, "c")

	count := 0
	b.Each(func(Handle, TypeID, any) bool {
		count++
		return true
	})
	if count != 3 {
		t.Fatalf("Expected to iterate over 3 items, got %d", count)
	}

	count = 0
	b.Each(func(Handle, TypeID, any) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Expected early termination after 1 item, got %d", count)
	}
}
