// Package errors provides structured error types for the icu4x-go boundary.
//
// Errors are categorized by Phase (where on the boundary the error occurred)
// and Kind (error category). Domain failures such as missing locale data do
// not use this package: they travel through the Result convention and
// surface as typed values in package icu. This package describes protocol
// faults and caller misuse.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLift, errors.KindInvalidEnum).
//		Path("Calendar", "kind").
//		GoType("icu.AnyCalendarKind").
//		WitType("any-calendar-kind").
//		Detail("discriminant %d not in closed set", 99).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidEnum(errors.PhaseLift, path, 99, "any-calendar-kind")
//	err := errors.UseAfterDestroy("Calendar", handle)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
