package capi

import (
	"sort"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/icu4x-go/errors"
)

// FuncKind is the role of a boundary function within its type.
type FuncKind uint8

const (
	FuncCreate   FuncKind = iota // returns an owned handle
	FuncAccessor                 // borrows a handle, returns a value
	FuncDestroy                  // consumes a handle or value
	FuncFactory                  // pure default-value factory
	FuncStatic                   // free function scoped to a type
)

func (k FuncKind) String() string {
	switch k {
	case FuncCreate:
		return "create"
	case FuncAccessor:
		return "accessor"
	case FuncDestroy:
		return "destroy"
	case FuncFactory:
		return "factory"
	case FuncStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Param is one declared parameter.
type Param struct {
	Name string
	Type wit.Type
}

// Symbol declares one exported boundary function.
type Symbol struct {
	Result wit.Type
	Type   string
	Func   string
	Params []Param
	Kind   FuncKind
}

// SymbolName returns the exported name of fn on typ.
func SymbolName(typ, fn string) string {
	return "icu4x_" + typ + "_" + fn + "_mv1"
}

// Name returns the exported symbol name.
func (s Symbol) Name() string {
	return SymbolName(s.Type, s.Func)
}

// Flat returns the core wasm signature: the number of i32 parameters,
// including a leading return pointer when the result does not fit in a
// single i32, and the number of i32 results.
func (s Symbol) Flat() (params, results int) {
	if s.Result != nil {
		if returnsViaPointer(s.Result) {
			params++
		} else {
			results = 1
		}
	}
	// Strings are (ptr, len); handles, enums and bools are one i32;
	// records are passed by pointer.
	for _, p := range s.Params {
		if _, ok := p.Type.(wit.String); ok {
			params += 2
			continue
		}
		params++
	}
	return params, results
}

func returnsViaPointer(t wit.Type) bool {
	def, ok := t.(*wit.TypeDef)
	if !ok {
		return false
	}
	switch def.Kind.(type) {
	case *wit.Result, *wit.Option, *wit.Record:
		return true
	}
	return false
}

// Surface is the declared set of exported functions. It replaces the
// generated headers: everything that crosses the boundary is listed here
// once and checked by Verify.
type Surface struct {
	byName  map[string]Symbol
	Opaque  []string
	Values  []string
	Symbols []Symbol
}

// NewSurface indexes symbols for lookup.
func NewSurface(opaque, values []string, symbols []Symbol) *Surface {
	s := &Surface{
		Opaque:  opaque,
		Values:  values,
		Symbols: symbols,
		byName:  make(map[string]Symbol, len(symbols)),
	}
	for _, sym := range symbols {
		s.byName[sym.Name()] = sym
	}
	return s
}

// Lookup finds a symbol by exported name.
func (s *Surface) Lookup(name string) (Symbol, bool) {
	sym, ok := s.byName[name]
	return sym, ok
}

// Names returns every exported name, sorted.
func (s *Surface) Names() []string {
	out := make([]string, 0, len(s.Symbols))
	for _, sym := range s.Symbols {
		out = append(out, sym.Name())
	}
	sort.Strings(out)
	return out
}

// Verify checks the shape rules of the surface and that implemented
// reports every declared symbol. Opaque types need at least one create
// and exactly one destroy; value types need at least one factory and
// exactly one destroy.
func (s *Surface) Verify(implemented func(name string) bool) error {
	counts := make(map[string]map[FuncKind]int)
	for _, sym := range s.Symbols {
		if counts[sym.Type] == nil {
			counts[sym.Type] = make(map[FuncKind]int)
		}
		counts[sym.Type][sym.Kind]++
	}

	for _, typ := range s.Opaque {
		if err := requireShape(typ, counts[typ], FuncCreate); err != nil {
			return err
		}
	}
	for _, typ := range s.Values {
		if err := requireShape(typ, counts[typ], FuncFactory); err != nil {
			return err
		}
	}

	var missing []string
	for _, sym := range s.Symbols {
		if !implemented(sym.Name()) {
			missing = append(missing, sym.Type+"#"+sym.Name())
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingSymbolsError(missing)
	}
	return nil
}

func requireShape(typ string, counts map[FuncKind]int, constructor FuncKind) error {
	if counts[constructor] == 0 {
		return errors.New(errors.PhaseSurface, errors.KindInvalidData).
			Path(typ).
			Detail("no %s function", constructor).
			Build()
	}
	if n := counts[FuncDestroy]; n != 1 {
		return errors.New(errors.PhaseSurface, errors.KindInvalidData).
			Path(typ).
			Detail("%d destroy functions, want exactly 1", n).
			Build()
	}
	return nil
}

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func ownOf(t *wit.TypeDef) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Own{Type: t}}
}

func borrowOf(t *wit.TypeDef) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Borrow{Type: t}}
}

func resultOf(ok, err wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Result{OK: ok, Err: err}}
}

func optionOf(t wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Option{Type: t}}
}

// WIT descriptors of the exported types.
var (
	WITDataProvider = named("data-provider", &wit.Resource{})
	WITLocale       = named("locale", &wit.Resource{})
	WITCalendar     = named("calendar", &wit.Resource{})

	WITAnyCalendarKind  = AnyCalendarKinds.WIT()
	WITDataError        = DataErrors.WIT()
	WITLocaleParseError = LocaleParseErrors.WIT()
	WITHeadAdjustment   = HeadAdjustments.WIT()
	WITTrailingCase     = TrailingCases.WIT()

	WITTitlecaseOptionsV1 = named("titlecase-options-v1", &wit.Record{Fields: []wit.Field{
		{Name: "head-adjustment", Type: WITHeadAdjustment},
		{Name: "tail-casing", Type: WITTrailingCase},
	}})
)

// Type names as they appear in symbol names.
const (
	TypeDataProvider       = "DataProvider"
	TypeLocale             = "Locale"
	TypeCalendar           = "Calendar"
	TypeAnyCalendarKind    = "AnyCalendarKind"
	TypeTitlecaseOptionsV1 = "TitlecaseOptionsV1"
)

var defaultSurface = NewSurface(
	[]string{TypeDataProvider, TypeLocale, TypeCalendar},
	[]string{TypeTitlecaseOptionsV1},
	[]Symbol{
		{Type: TypeDataProvider, Func: "create_compiled", Kind: FuncCreate, Result: ownOf(WITDataProvider)},
		{Type: TypeDataProvider, Func: "create_empty", Kind: FuncCreate, Result: ownOf(WITDataProvider)},
		{
			Type: TypeDataProvider, Func: "create_from_yaml", Kind: FuncCreate,
			Params: []Param{{"content", wit.String{}}},
			Result: resultOf(ownOf(WITDataProvider), WITDataError),
		},
		{
			Type: TypeDataProvider, Func: "create_fs", Kind: FuncCreate,
			Params: []Param{{"path", wit.String{}}},
			Result: resultOf(ownOf(WITDataProvider), WITDataError),
		},
		{
			Type: TypeDataProvider, Func: "destroy", Kind: FuncDestroy,
			Params: []Param{{"self", ownOf(WITDataProvider)}},
		},

		{
			Type: TypeLocale, Func: "create_from_string", Kind: FuncCreate,
			Params: []Param{{"name", wit.String{}}},
			Result: resultOf(ownOf(WITLocale), WITLocaleParseError),
		},
		{
			Type: TypeLocale, Func: "is_calendar_explicit", Kind: FuncAccessor,
			Params: []Param{{"self", borrowOf(WITLocale)}},
			Result: wit.Bool{},
		},
		{
			Type: TypeLocale, Func: "destroy", Kind: FuncDestroy,
			Params: []Param{{"self", ownOf(WITLocale)}},
		},

		{
			Type: TypeCalendar, Func: "create_for_locale", Kind: FuncCreate,
			Params: []Param{{"provider", borrowOf(WITDataProvider)}, {"locale", borrowOf(WITLocale)}},
			Result: resultOf(ownOf(WITCalendar), WITDataError),
		},
		{
			Type: TypeCalendar, Func: "create_for_kind", Kind: FuncCreate,
			Params: []Param{{"provider", borrowOf(WITDataProvider)}, {"kind", WITAnyCalendarKind}},
			Result: resultOf(ownOf(WITCalendar), WITDataError),
		},
		{
			Type: TypeCalendar, Func: "kind", Kind: FuncAccessor,
			Params: []Param{{"self", borrowOf(WITCalendar)}},
			Result: WITAnyCalendarKind,
		},
		{
			Type: TypeCalendar, Func: "destroy", Kind: FuncDestroy,
			Params: []Param{{"self", ownOf(WITCalendar)}},
		},

		{
			Type: TypeAnyCalendarKind, Func: "get_for_locale", Kind: FuncStatic,
			Params: []Param{{"locale", borrowOf(WITLocale)}},
			Result: optionOf(WITAnyCalendarKind),
		},
		{
			Type: TypeAnyCalendarKind, Func: "get_for_bcp47", Kind: FuncStatic,
			Params: []Param{{"s", wit.String{}}},
			Result: optionOf(WITAnyCalendarKind),
		},

		{
			Type: TypeTitlecaseOptionsV1, Func: "default_options", Kind: FuncFactory,
			Result: WITTitlecaseOptionsV1,
		},
		{
			Type: TypeTitlecaseOptionsV1, Func: "destroy", Kind: FuncDestroy,
			Params: []Param{{"self", WITTitlecaseOptionsV1}},
		},
	},
)

// DefaultSurface returns the declared surface of this library.
func DefaultSurface() *Surface {
	return defaultSurface
}
