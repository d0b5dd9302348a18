// Package icu wraps the boundary in owning Go types.
//
// Each wrapper holds exactly one handle. Fallible constructors translate
// the error arm of the boundary result into a Go error:
//
//	cal, err := icu.NewCalendarForKind(provider, icu.Hebrew)
//	switch {
//	case errors.Is(err, icu.ErrMarkerNotFound):
//	    // provider has no Hebrew calendar data
//	case err != nil:
//	    return err
//	}
//	defer cal.Close()
//
// Boundary enums are mapped to this package's enums through total
// mappings; a value outside the mapping is a protocol fault and panics.
//
// # Lifetime
//
// Close destroys a handle exactly once. A second Close returns an
// *errors.Error of kind double_destroy without touching the boundary, and
// accessors on a closed wrapper panic with kind use_after_destroy.
// Wrappers that become unreachable without Close are destroyed by a
// runtime cleanup.
//
// Handle and the *FromHandle constructors move between a wrapper and its
// raw handle. Handle borrows; Calendar.Release hands ownership out and
// FromHandle takes it back in.
package icu
