package capi

import (
	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/resource"
)

// MemoryClient implements Boundary by routing every call through linear
// memory, the way a foreign caller would: strings are copied in, a return
// area is allocated per call, the discriminant is read before the payload,
// and every allocation is freed before returning.
//
// Protocol faults (bad discriminants, unknown enum values, stale handles
// passed to accessors) panic with the *errors.Error reported by Exports.
type MemoryClient struct {
	exports *Exports
	mem     abi.Memory
	alloc   abi.Allocator
	layouts layouts
}

// NewMemoryClient creates a client that calls exports over mem, allocating
// argument and return areas with alloc.
func NewMemoryClient(exports *Exports, mem abi.Memory, alloc abi.Allocator) *MemoryClient {
	return &MemoryClient{
		exports: exports,
		mem:     mem,
		alloc:   alloc,
		layouts: exports.layouts,
	}
}

// DataProvider implements Boundary.
func (c *MemoryClient) DataProvider() DataProviderFuncs {
	return memDataProvider{c}
}

// Locale implements Boundary.
func (c *MemoryClient) Locale() LocaleFuncs {
	return memLocale{c}
}

// Calendar implements Boundary.
func (c *MemoryClient) Calendar() CalendarFuncs {
	return memCalendar{c}
}

// AnyCalendarKind implements Boundary.
func (c *MemoryClient) AnyCalendarKind() AnyCalendarKindFuncs {
	return memAnyCalendarKind{c}
}

// TitlecaseOptionsV1 implements Boundary.
func (c *MemoryClient) TitlecaseOptionsV1() TitlecaseOptionsV1Funcs {
	return memTitlecase{c}
}

func (c *MemoryClient) call(name string, params ...uint32) uint32 {
	v, err := c.exports.Call(c.mem, name, params...)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *MemoryClient) lowerString(s string) *abi.StringArg {
	arg, err := abi.LowerString(c.mem, c.alloc, s)
	if err != nil {
		panic(err)
	}
	return arg
}

// callResult calls name with a fresh result return area prepended to
// params and returns the discriminant and raw payload.
func (c *MemoryClient) callResult(name string, l abi.ResultLayout, params ...uint32) (bool, uint32) {
	buf, err := abi.NewResultBuf(c.mem, c.alloc, l)
	if err != nil {
		panic(err)
	}
	defer buf.Free()

	c.call(name, append([]uint32{buf.Ptr()}, params...)...)

	ok, payload, err := abi.LoadResultU32(c.mem, buf.Ptr(), l)
	if err != nil {
		panic(err)
	}
	return ok, payload
}

func (c *MemoryClient) callKindOption(name string, params ...uint32) abi.Option[AnyCalendarKind] {
	buf, err := abi.NewOptionBuf(c.mem, c.alloc, c.layouts.kindOption)
	if err != nil {
		panic(err)
	}
	defer buf.Free()

	c.call(name, append([]uint32{buf.Ptr()}, params...)...)

	raw, err := abi.LoadOptionU32(c.mem, buf.Ptr(), c.layouts.kindOption)
	if err != nil {
		panic(err)
	}
	v, ok := raw.Get()
	if !ok {
		return abi.None[AnyCalendarKind]()
	}
	return abi.Some(AnyCalendarKinds.MustLift(v))
}

func liftHandleResult[E any](ok bool, payload uint32, lift func(uint32) E) abi.Result[resource.Handle, E] {
	if ok {
		return abi.Ok[resource.Handle, E](resource.Handle(payload))
	}
	return abi.Err[resource.Handle](lift(payload))
}

type memDataProvider struct{ c *MemoryClient }

func (f memDataProvider) CreateCompiled() resource.Handle {
	return resource.Handle(f.c.call(SymbolName(TypeDataProvider, "create_compiled")))
}

func (f memDataProvider) CreateEmpty() resource.Handle {
	return resource.Handle(f.c.call(SymbolName(TypeDataProvider, "create_empty")))
}

func (f memDataProvider) CreateFromYAML(content string) abi.Result[resource.Handle, DataError] {
	return f.createFromString("create_from_yaml", content)
}

func (f memDataProvider) CreateFS(path string) abi.Result[resource.Handle, DataError] {
	return f.createFromString("create_fs", path)
}

func (f memDataProvider) createFromString(fn, s string) abi.Result[resource.Handle, DataError] {
	arg := f.c.lowerString(s)
	defer arg.Free()
	ok, payload := f.c.callResult(SymbolName(TypeDataProvider, fn), f.c.layouts.providerResult, arg.Ptr, arg.Len)
	return liftHandleResult(ok, payload, DataErrors.MustLift)
}

func (f memDataProvider) Destroy(h resource.Handle) {
	f.c.call(SymbolName(TypeDataProvider, "destroy"), uint32(h))
}

type memLocale struct{ c *MemoryClient }

func (f memLocale) CreateFromString(name string) abi.Result[resource.Handle, LocaleParseError] {
	arg := f.c.lowerString(name)
	defer arg.Free()
	ok, payload := f.c.callResult(SymbolName(TypeLocale, "create_from_string"), f.c.layouts.localeResult, arg.Ptr, arg.Len)
	return liftHandleResult(ok, payload, LocaleParseErrors.MustLift)
}

func (f memLocale) IsCalendarExplicit(h resource.Handle) bool {
	return f.c.call(SymbolName(TypeLocale, "is_calendar_explicit"), uint32(h)) != 0
}

func (f memLocale) Destroy(h resource.Handle) {
	f.c.call(SymbolName(TypeLocale, "destroy"), uint32(h))
}

type memCalendar struct{ c *MemoryClient }

func (f memCalendar) CreateForLocale(p, l resource.Handle) abi.Result[resource.Handle, DataError] {
	ok, payload := f.c.callResult(SymbolName(TypeCalendar, "create_for_locale"), f.c.layouts.calendarResult, uint32(p), uint32(l))
	return liftHandleResult(ok, payload, DataErrors.MustLift)
}

func (f memCalendar) CreateForKind(p resource.Handle, kind AnyCalendarKind) abi.Result[resource.Handle, DataError] {
	ok, payload := f.c.callResult(SymbolName(TypeCalendar, "create_for_kind"), f.c.layouts.calendarResult, uint32(p), AnyCalendarKinds.MustLower(kind))
	return liftHandleResult(ok, payload, DataErrors.MustLift)
}

func (f memCalendar) Kind(h resource.Handle) AnyCalendarKind {
	return AnyCalendarKinds.MustLift(f.c.call(SymbolName(TypeCalendar, "kind"), uint32(h)))
}

func (f memCalendar) Destroy(h resource.Handle) {
	f.c.call(SymbolName(TypeCalendar, "destroy"), uint32(h))
}

type memAnyCalendarKind struct{ c *MemoryClient }

func (f memAnyCalendarKind) GetForLocale(l resource.Handle) abi.Option[AnyCalendarKind] {
	return f.c.callKindOption(SymbolName(TypeAnyCalendarKind, "get_for_locale"), uint32(l))
}

func (f memAnyCalendarKind) GetForBCP47(id string) abi.Option[AnyCalendarKind] {
	arg := f.c.lowerString(id)
	defer arg.Free()
	return f.c.callKindOption(SymbolName(TypeAnyCalendarKind, "get_for_bcp47"), arg.Ptr, arg.Len)
}

type memTitlecase struct{ c *MemoryClient }

func (f memTitlecase) DefaultOptions() TitlecaseOptionsV1 {
	info := f.c.layouts.titlecase
	buf, err := abi.NewReceiveBuf(f.c.mem, f.c.alloc, info.Size, info.Align)
	if err != nil {
		panic(err)
	}
	defer buf.Free()

	f.c.call(SymbolName(TypeTitlecaseOptionsV1, "default_options"), buf.Ptr())
	opts, err := loadTitlecase(f.c.mem, buf.Ptr(), info)
	if err != nil {
		panic(err)
	}
	return opts
}

func (f memTitlecase) Destroy(opts TitlecaseOptionsV1) {
	info := f.c.layouts.titlecase
	buf, err := abi.NewReceiveBuf(f.c.mem, f.c.alloc, info.Size, info.Align)
	if err != nil {
		panic(err)
	}
	defer buf.Free()

	if err := storeTitlecase(f.c.mem, buf.Ptr(), info, opts); err != nil {
		panic(err)
	}
	f.c.call(SymbolName(TypeTitlecaseOptionsV1, "destroy"), buf.Ptr())
}
