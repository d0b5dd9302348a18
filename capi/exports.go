package capi

import (
	"fmt"
	"sort"

	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/errors"
	"github.com/wippyai/icu4x-go/resource"
)

// ExportFunc is a boundary function in its flat form: i32 parameters in,
// at most one i32 out. Results that do not fit are written through the
// return pointer passed as the first parameter.
type ExportFunc func(mem abi.Memory, params []uint32) (uint32, error)

// layouts holds the return-area layouts computed from the surface.
type layouts struct {
	providerResult abi.ResultLayout
	localeResult   abi.ResultLayout
	calendarResult abi.ResultLayout
	kindOption     abi.OptionLayout
	titlecase      abi.Info
}

func computeLayouts(s *Surface) (layouts, error) {
	calc := abi.NewCalculator()
	var l layouts
	var err error

	result := func(typ, fn string) abi.ResultLayout {
		if err != nil {
			return abi.ResultLayout{}
		}
		var r abi.ResultLayout
		r, err = calc.Result(mustSymbol(s, typ, fn).Result)
		return r
	}
	l.providerResult = result(TypeDataProvider, "create_from_yaml")
	l.localeResult = result(TypeLocale, "create_from_string")
	l.calendarResult = result(TypeCalendar, "create_for_kind")
	if err != nil {
		return layouts{}, err
	}

	l.kindOption, err = calc.Option(mustSymbol(s, TypeAnyCalendarKind, "get_for_bcp47").Result)
	if err != nil {
		return layouts{}, err
	}
	l.titlecase = calc.Calculate(mustSymbol(s, TypeTitlecaseOptionsV1, "default_options").Result)
	return l, nil
}

func mustSymbol(s *Surface, typ, fn string) Symbol {
	sym, ok := s.Lookup(SymbolName(typ, fn))
	if !ok {
		panic("capi: surface lacks " + SymbolName(typ, fn))
	}
	return sym
}

// Exports serves a Library through linear memory. Strings are read from
// the caller's memory as (ptr, len); tagged unions and structs are written
// into caller-allocated return areas.
type Exports struct {
	lib     *Library
	surface *Surface
	funcs   map[string]ExportFunc
	layouts layouts
}

// NewExports builds the flat function table for lib.
func NewExports(lib *Library) (*Exports, error) {
	surface := DefaultSurface()
	l, err := computeLayouts(surface)
	if err != nil {
		return nil, err
	}
	e := &Exports{
		lib:     lib,
		surface: surface,
		layouts: l,
	}
	e.funcs = e.table()
	if err := surface.Verify(e.Has); err != nil {
		return nil, err
	}
	return e, nil
}

// Surface returns the declared surface served.
func (e *Exports) Surface() *Surface {
	return e.surface
}

// Has reports whether name is implemented.
func (e *Exports) Has(name string) bool {
	_, ok := e.funcs[name]
	return ok
}

// Names returns every implemented export, sorted.
func (e *Exports) Names() []string {
	out := make([]string, 0, len(e.funcs))
	for name := range e.funcs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Call invokes an export. Protocol faults raised by the library are
// returned as errors so hosts can turn them into traps.
func (e *Exports) Call(mem abi.Memory, name string, params ...uint32) (result uint32, err error) {
	fn, ok := e.funcs[name]
	if !ok {
		return 0, errors.NotFound(errors.PhaseCall, "export", name)
	}
	sym, _ := e.surface.Lookup(name)
	if want, _ := sym.Flat(); len(params) != want {
		return 0, errors.InvalidInput(errors.PhaseCall,
			fmt.Sprintf("%s takes %d params, got %d", name, want, len(params)))
	}

	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(error); ok {
				err = perr
				return
			}
			err = errors.New(errors.PhaseCall, errors.KindInvalidData).
				Value(r).
				Detail("panic in %s", name).
				Build()
		}
	}()
	return fn(mem, params)
}

func (e *Exports) table() map[string]ExportFunc {
	dp := e.lib.DataProvider()
	loc := e.lib.Locale()
	cal := e.lib.Calendar()
	kinds := e.lib.AnyCalendarKind()
	tc := e.lib.TitlecaseOptionsV1()
	l := e.layouts

	return map[string]ExportFunc{
		SymbolName(TypeDataProvider, "create_compiled"): func(abi.Memory, []uint32) (uint32, error) {
			return uint32(dp.CreateCompiled()), nil
		},
		SymbolName(TypeDataProvider, "create_empty"): func(abi.Memory, []uint32) (uint32, error) {
			return uint32(dp.CreateEmpty()), nil
		},
		SymbolName(TypeDataProvider, "create_from_yaml"): func(mem abi.Memory, p []uint32) (uint32, error) {
			content, err := liftText(mem, p[1], p[2])
			if err != nil {
				return 0, err
			}
			return 0, storeHandleResult(mem, p[0], l.providerResult, dp.CreateFromYAML(content), DataErrors.MustLower)
		},
		SymbolName(TypeDataProvider, "create_fs"): func(mem abi.Memory, p []uint32) (uint32, error) {
			path, err := liftText(mem, p[1], p[2])
			if err != nil {
				return 0, err
			}
			return 0, storeHandleResult(mem, p[0], l.providerResult, dp.CreateFS(path), DataErrors.MustLower)
		},
		SymbolName(TypeDataProvider, "destroy"): func(_ abi.Memory, p []uint32) (uint32, error) {
			dp.Destroy(resource.Handle(p[0]))
			return 0, nil
		},

		SymbolName(TypeLocale, "create_from_string"): func(mem abi.Memory, p []uint32) (uint32, error) {
			name, err := liftText(mem, p[1], p[2])
			if err != nil {
				return 0, err
			}
			return 0, storeHandleResult(mem, p[0], l.localeResult, loc.CreateFromString(name), LocaleParseErrors.MustLower)
		},
		SymbolName(TypeLocale, "is_calendar_explicit"): func(_ abi.Memory, p []uint32) (uint32, error) {
			if loc.IsCalendarExplicit(resource.Handle(p[0])) {
				return 1, nil
			}
			return 0, nil
		},
		SymbolName(TypeLocale, "destroy"): func(_ abi.Memory, p []uint32) (uint32, error) {
			loc.Destroy(resource.Handle(p[0]))
			return 0, nil
		},

		SymbolName(TypeCalendar, "create_for_locale"): func(mem abi.Memory, p []uint32) (uint32, error) {
			r := cal.CreateForLocale(resource.Handle(p[1]), resource.Handle(p[2]))
			return 0, storeHandleResult(mem, p[0], l.calendarResult, r, DataErrors.MustLower)
		},
		SymbolName(TypeCalendar, "create_for_kind"): func(mem abi.Memory, p []uint32) (uint32, error) {
			kind, err := AnyCalendarKinds.Lift(p[2])
			if err != nil {
				return 0, err
			}
			r := cal.CreateForKind(resource.Handle(p[1]), kind)
			return 0, storeHandleResult(mem, p[0], l.calendarResult, r, DataErrors.MustLower)
		},
		SymbolName(TypeCalendar, "kind"): func(_ abi.Memory, p []uint32) (uint32, error) {
			return AnyCalendarKinds.Lower(cal.Kind(resource.Handle(p[0])))
		},
		SymbolName(TypeCalendar, "destroy"): func(_ abi.Memory, p []uint32) (uint32, error) {
			cal.Destroy(resource.Handle(p[0]))
			return 0, nil
		},

		SymbolName(TypeAnyCalendarKind, "get_for_locale"): func(mem abi.Memory, p []uint32) (uint32, error) {
			return 0, storeKindOption(mem, p[0], l.kindOption, kinds.GetForLocale(resource.Handle(p[1])))
		},
		SymbolName(TypeAnyCalendarKind, "get_for_bcp47"): func(mem abi.Memory, p []uint32) (uint32, error) {
			id, err := liftText(mem, p[1], p[2])
			if err != nil {
				return 0, err
			}
			return 0, storeKindOption(mem, p[0], l.kindOption, kinds.GetForBCP47(id))
		},

		SymbolName(TypeTitlecaseOptionsV1, "default_options"): func(mem abi.Memory, p []uint32) (uint32, error) {
			return 0, storeTitlecase(mem, p[0], l.titlecase, tc.DefaultOptions())
		},
		SymbolName(TypeTitlecaseOptionsV1, "destroy"): func(mem abi.Memory, p []uint32) (uint32, error) {
			opts, err := loadTitlecase(mem, p[0], l.titlecase)
			if err != nil {
				return 0, err
			}
			tc.Destroy(opts)
			return 0, nil
		},
	}
}

// liftText reads a string argument for callees that report malformed text
// through their own error set. Out-of-bounds views still fault.
func liftText(mem abi.Memory, ptr, length uint32) (string, error) {
	s, err := abi.LiftString(mem, ptr, length)
	if errors.IsKind(err, errors.KindInvalidUTF8) {
		data, rerr := mem.Read(ptr, length)
		return string(data), rerr
	}
	return s, err
}

func storeHandleResult[E any](mem abi.Memory, ptr uint32, l abi.ResultLayout, r abi.Result[resource.Handle, E], lower func(E) uint32) error {
	if h, ok := r.Get(); ok {
		return abi.StoreResultU32(mem, ptr, l, true, uint32(h))
	}
	return abi.StoreResultU32(mem, ptr, l, false, lower(r.Err()))
}

func storeKindOption(mem abi.Memory, ptr uint32, l abi.OptionLayout, o abi.Option[AnyCalendarKind]) error {
	kind, ok := o.Get()
	if !ok {
		return abi.StoreOptionU32(mem, ptr, l, false, 0)
	}
	raw, err := AnyCalendarKinds.Lower(kind)
	if err != nil {
		return err
	}
	return abi.StoreOptionU32(mem, ptr, l, true, raw)
}

const (
	fieldHeadAdjustment = "head-adjustment"
	fieldTailCasing     = "tail-casing"
)

func storeTitlecase(mem abi.Memory, ptr uint32, info abi.Info, opts TitlecaseOptionsV1) error {
	head, err := HeadAdjustments.Lower(opts.HeadAdjustment)
	if err != nil {
		return err
	}
	tail, err := TrailingCases.Lower(opts.TailCasing)
	if err != nil {
		return err
	}
	return abi.StoreRecordU32(mem, ptr, info, map[string]uint32{
		fieldHeadAdjustment: head,
		fieldTailCasing:     tail,
	})
}

func loadTitlecase(mem abi.Memory, ptr uint32, info abi.Info) (TitlecaseOptionsV1, error) {
	raw, err := abi.LoadRecordU32(mem, ptr, info, fieldHeadAdjustment, fieldTailCasing)
	if err != nil {
		return TitlecaseOptionsV1{}, err
	}
	head, err := HeadAdjustments.Lift(raw[fieldHeadAdjustment])
	if err != nil {
		return TitlecaseOptionsV1{}, err
	}
	tail, err := TrailingCases.Lift(raw[fieldTailCasing])
	if err != nil {
		return TitlecaseOptionsV1{}, err
	}
	return TitlecaseOptionsV1{HeadAdjustment: head, TailCasing: tail}, nil
}
