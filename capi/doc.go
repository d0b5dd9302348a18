// Package capi is the fixed-layout boundary between the owning side (this
// library and its data provider) and callers that only hold handles.
//
// # Surface
//
// Every exported function is declared once in DefaultSurface as a WIT
// signature and named after the C convention:
//
//	icu4x_<Type>_<function>_mv1
//
//	DataProvider  create_compiled, create_empty, create_from_yaml, create_fs, destroy
//	Locale        create_from_string, is_calendar_explicit, destroy
//	Calendar      create_for_locale, create_for_kind, kind, destroy
//	AnyCalendarKind     get_for_locale, get_for_bcp47
//	TitlecaseOptionsV1  default_options, destroy (no-op)
//
// Surface.Verify checks that every opaque type has a create and exactly
// one destroy, and that every declared symbol is implemented.
//
// # Transports
//
// Library serves the surface in process and returns abi.Result and
// abi.Option values directly. Exports serves the same Library in flat
// form over linear memory:
//
//	fallible  (retptr, args...) -> ()   struct { union { T ok; E err; }; bool is_ok; }
//	optional  (retptr, args...) -> ()   struct { T value; bool is_some; }
//	struct    (retptr) -> ()            fields at their C offsets
//	string    (ptr, len)                UTF-8, not NUL terminated
//	handle    i32                       0 is never a valid handle
//
// MemoryClient calls Exports the way a foreign caller would, so both
// transports satisfy Boundary and can be compared in tests.
//
// # Contract
//
// Domain failures (missing data, malformed locale) are reported through
// the error arm. Contract violations are not: passing a destroyed handle
// to an accessor or an out-of-range enum discriminant panics with an
// *errors.Error. Destroy of a stale handle is ignored and logged at debug
// level.
package capi
