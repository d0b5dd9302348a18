// Package resource provides the opaque handle table behind the boundary.
//
// Every domain object created by a create_* entry point lives in the table
// and is known to callers only by its Handle. The owning side allocates and
// the owning side alone frees.
//
// # Handle Lifecycle
//
//	create   - Insert stores the object, the handle becomes live
//	borrow   - Borrow pins the handle for the duration of an accessor call
//	destroy  - Remove frees the slot; the handle is dead from then on
//
// # Type Safety
//
// Handles are tagged with the opaque type they were created for:
//
//	h := table.Insert(resource.TypeCalendar, cal)
//
//	v, ok := table.GetTyped(h, resource.TypeCalendar) // ok
//	v, ok := table.GetTyped(h, resource.TypeLocale)   // !ok
//
// Typed gives a generic view for a single type:
//
//	calendars := resource.NewTyped[*calendar](table, resource.TypeCalendar)
//	cal, err := calendars.Get(h, errors.PhaseCall)
//
// # Observers
//
// Register observers to track resource lifecycle events, for example to
// count live objects in tests:
//
//	table.Subscribe(observer)
//
// # Stale Handles
//
// Slots are reused after Remove. Removing a dead handle, a handle of a
// different type, or a borrowed handle does nothing and reports false.
// Callers that hold handles across a destroy must not use them again.
package resource
