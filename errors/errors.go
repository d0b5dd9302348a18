package errors

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Phase indicates where on the boundary the error occurred
type Phase string

const (
	PhaseLayout  Phase = "layout"  // type layout computation
	PhaseLower   Phase = "lower"   // Go to boundary
	PhaseLift    Phase = "lift"    // boundary to Go
	PhaseCreate  Phase = "create"  // create_* entry points
	PhaseCall    Phase = "call"    // accessor entry points
	PhaseDestroy Phase = "destroy" // destroy entry points
	PhaseHost    Phase = "host"    // host module registration
	PhaseLoad    Phase = "load"    // provider data loading
	PhaseSurface Phase = "surface" // export surface verification
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch    Kind = "type_mismatch"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindInvalidData     Kind = "invalid_data"
	KindUnsupported     Kind = "unsupported"
	KindAllocation      Kind = "allocation"
	KindInvalidUTF8     Kind = "invalid_utf8"
	KindNilPointer      Kind = "nil_pointer"
	KindInvalidEnum     Kind = "invalid_enum"
	KindWrongArm        Kind = "wrong_arm"
	KindInvalidHandle   Kind = "invalid_handle"
	KindWrongType       Kind = "wrong_type"
	KindUseAfterDestroy Kind = "use_after_destroy"
	KindDoubleDestroy   Kind = "double_destroy"
	KindMissingSymbol   Kind = "missing_symbol"
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindRegistration    Kind = "registration"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	GoType  string
	WitType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WitType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WitType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", WIT type ")
			b.WriteString(e.WitType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("WIT type ")
			b.WriteString(e.WitType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WitType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is an *Error of the given kind, in any phase.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WitType sets the WIT type name
func (b *Builder) WitType(t string) *Builder {
	b.err.WitType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// TypeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, witType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		Path:    path,
		GoType:  goType,
		WitType: witType,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// OutOfBounds creates an out of bounds memory access error
func OutOfBounds(phase Phase, offset, length uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("access at offset %d length %d out of bounds", offset, length),
		Value:  offset,
	}
}

// InvalidEnum creates an error for a discriminant outside an enum's closed set.
// It is a protocol fault: both sides disagree on the enum definition.
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindInvalidEnum,
		Path:    path,
		WitType: enumType,
		Detail:  fmt.Sprintf("invalid enum value %v for %s", value, enumType),
		Value:   value,
	}
}

// WrongArm creates an error for reading the inactive arm of a tagged union.
func WrongArm(union, arm string) *Error {
	return &Error{
		Phase:   PhaseLift,
		Kind:    KindWrongArm,
		WitType: union,
		Detail:  fmt.Sprintf("%s arm read while inactive", arm),
	}
}

// InvalidHandle creates an error for a handle the table does not know.
func InvalidHandle(phase Phase, typeName string, handle uint32) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindInvalidHandle,
		WitType: typeName,
		Detail:  fmt.Sprintf("handle %d is not live", handle),
		Value:   handle,
	}
}

// WrongType creates an error for a live handle of a different opaque type.
func WrongType(phase Phase, want, got string, handle uint32) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindWrongType,
		WitType: want,
		Detail:  fmt.Sprintf("handle %d refers to %s", handle, got),
		Value:   handle,
	}
}

// UseAfterDestroy creates an error for an operation on a released wrapper.
func UseAfterDestroy(typeName string, handle uint32) *Error {
	return &Error{
		Phase:   PhaseCall,
		Kind:    KindUseAfterDestroy,
		WitType: typeName,
		Detail:  fmt.Sprintf("handle %d already destroyed", handle),
		Value:   handle,
	}
}

// DoubleDestroy creates an error for a second release of the same wrapper.
func DoubleDestroy(typeName string, handle uint32) *Error {
	return &Error{
		Phase:   PhaseDestroy,
		Kind:    KindDoubleDestroy,
		WitType: typeName,
		Detail:  fmt.Sprintf("handle %d destroyed twice", handle),
		Value:   handle,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration creates a host function registration error
func Registration(namespace, name string, cause error) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("register %s#%s", namespace, name),
		Cause:  cause,
	}
}

// Load creates a data loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingSymbol names one declared boundary function without an implementation.
type MissingSymbol struct {
	Type     string // e.g., "Calendar"
	Function string // e.g., "icu4x_Calendar_kind_mv1"
}

// MissingSymbolsError is returned when a boundary surface is incomplete or
// breaks the per-type shape rules.
type MissingSymbolsError struct {
	Symbols []MissingSymbol
}

// NewMissingSymbolsError creates an error from "Type#function" keys
func NewMissingSymbolsError(keys []string) *MissingSymbolsError {
	result := &MissingSymbolsError{
		Symbols: make([]MissingSymbol, 0, len(keys)),
	}
	for _, key := range keys {
		typ, fn := parseSymbolKey(key)
		result.Symbols = append(result.Symbols, MissingSymbol{
			Type:     typ,
			Function: fn,
		})
	}
	return result
}

func parseSymbolKey(key string) (typeName, function string) {
	typ, fn, found := strings.Cut(key, "#")
	if found {
		return typ, fn
	}
	return key, ""
}

func (e *MissingSymbolsError) Error() string {
	if len(e.Symbols) == 0 {
		return "[surface] missing_symbol: no symbols specified"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("missing %d boundary function(s):\n", len(e.Symbols)))

	byType := make(map[string][]string)
	for _, s := range e.Symbols {
		byType[s.Type] = append(byType[s.Type], s.Function)
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		b.WriteString("\n  ")
		b.WriteString(t)
		b.WriteString(":\n")
		for _, fn := range byType[t] {
			b.WriteString("    - ")
			b.WriteString(fn)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *MissingSymbolsError) Is(target error) bool {
	_, ok := target.(*MissingSymbolsError)
	return ok
}
