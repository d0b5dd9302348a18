package resource

import (
	"sync"

	"github.com/wippyai/icu4x-go/errors"
)

// Table is the handle table of the owning side. It maps opaque handles to
// domain objects, tags each handle with its type, and notifies observers on
// creation and destruction.
type Table struct {
	backend   *LocalBackend
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// NewTable creates a new table with a LocalBackend.
func NewTable() *Table {
	return &Table{
		backend: NewLocalBackend(),
	}
}

// Insert adds a value and returns its handle, or 0 once the table is closed.
func (t *Table) Insert(typeID TypeID, value any) Handle {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return 0
	}
	t.closeMu.RUnlock()

	handle, err := t.backend.Create(typeID, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		TypeID: typeID,
		Value:  value,
	})

	return handle
}

// Get retrieves a value by handle.
func (t *Table) Get(handle Handle) (any, bool) {
	return t.backend.Get(handle)
}

// GetTyped retrieves a value only if it matches the expected type.
func (t *Table) GetTyped(handle Handle, typeID TypeID) (any, bool) {
	actual, ok := t.backend.TypeID(handle)
	if !ok || actual != typeID {
		return nil, false
	}
	return t.backend.Get(handle)
}

// Lookup is GetTyped with a structured error describing why the handle
// could not be used.
func (t *Table) Lookup(handle Handle, typeID TypeID, phase errors.Phase) (any, error) {
	actual, ok := t.backend.TypeID(handle)
	if !ok {
		return nil, errors.InvalidHandle(phase, typeID.String(), uint32(handle))
	}
	if actual != typeID {
		return nil, errors.WrongType(phase, typeID.String(), actual.String(), uint32(handle))
	}
	v, ok := t.backend.Get(handle)
	if !ok {
		return nil, errors.InvalidHandle(phase, typeID.String(), uint32(handle))
	}
	return v, nil
}

// Remove drops a resource of the given type and returns (value, true) if it
// was live. Handles of another type, stale handles, and borrowed handles are
// left untouched.
func (t *Table) Remove(handle Handle, typeID TypeID) (any, bool) {
	actual, ok := t.backend.TypeID(handle)
	if !ok || actual != typeID {
		return nil, false
	}
	value, ok := t.backend.Drop(handle)
	if !ok {
		return nil, false
	}

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: handle,
		TypeID: typeID,
		Value:  value,
	})

	return value, true
}

// Borrow pins a handle so it cannot be removed until Release is called.
func (t *Table) Borrow(handle Handle) bool {
	return t.backend.Borrow(handle)
}

// Release returns a borrow taken with Borrow.
func (t *Table) Release(handle Handle) bool {
	return t.backend.ReturnBorrow(handle)
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	return t.backend.Len()
}

// LenOf returns the number of live handles of one type.
func (t *Table) LenOf(typeID TypeID) int {
	n := 0
	t.backend.Each(func(_ Handle, id TypeID, _ any) bool {
		if id == typeID {
			n++
		}
		return true
	})
	return n
}

// Clear drops all resources.
func (t *Table) Clear() {
	type live struct {
		h  Handle
		id TypeID
	}
	// Collect first; Remove takes the backend lock.
	var handles []live
	t.backend.Each(func(h Handle, id TypeID, _ any) bool {
		handles = append(handles, live{h, id})
		return true
	})
	for _, l := range handles {
		t.Remove(l.h, l.id)
	}
}

// Close releases all resources and stops accepting new ones. Observers
// see a drop event for every handle that was live.
func (t *Table) Close() error {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	t.Clear()
	return t.backend.Close()
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
