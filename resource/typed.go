package resource

import "github.com/wippyai/icu4x-go/errors"

// Typed is a view of a Table restricted to one opaque type.
type Typed[T any] struct {
	table  *Table
	typeID TypeID
}

// NewTyped returns a typed view over table for typeID.
func NewTyped[T any](table *Table, typeID TypeID) Typed[T] {
	return Typed[T]{table: table, typeID: typeID}
}

// TypeID returns the opaque type this view serves.
func (v Typed[T]) TypeID() TypeID {
	return v.typeID
}

// Insert adds a value and returns its handle.
func (v Typed[T]) Insert(value T) Handle {
	return v.table.Insert(v.typeID, value)
}

// Get retrieves a value by handle, failing for stale or foreign handles.
func (v Typed[T]) Get(handle Handle, phase errors.Phase) (T, error) {
	var zero T
	raw, err := v.table.Lookup(handle, v.typeID, phase)
	if err != nil {
		return zero, err
	}
	value, ok := raw.(T)
	if !ok {
		return zero, errors.WrongType(phase, v.typeID.String(), errors.TypeName(raw), uint32(handle))
	}
	return value, nil
}

// Remove drops a value and returns it if it was live.
func (v Typed[T]) Remove(handle Handle) (T, bool) {
	var zero T
	raw, ok := v.table.Remove(handle, v.typeID)
	if !ok {
		return zero, false
	}
	value, ok := raw.(T)
	return value, ok
}

// Len returns the number of live handles of this type.
func (v Typed[T]) Len() int {
	return v.table.LenOf(v.typeID)
}

// Each iterates over all live values of this type.
func (v Typed[T]) Each(fn func(Handle, T) bool) {
	v.table.backend.Each(func(h Handle, id TypeID, raw any) bool {
		if id != v.typeID {
			return true
		}
		value, ok := raw.(T)
		if !ok {
			return true
		}
		return fn(h, value)
	})
}
