package capi

import (
	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/resource"
)

// Boundary is the full function surface, grouped into one capability
// table per exported type. Library serves it in process and MemoryClient
// serves it through linear memory; wrappers accept either.
type Boundary interface {
	DataProvider() DataProviderFuncs
	Locale() LocaleFuncs
	Calendar() CalendarFuncs
	AnyCalendarKind() AnyCalendarKindFuncs
	TitlecaseOptionsV1() TitlecaseOptionsV1Funcs
}

// DataProviderFuncs creates and destroys data providers.
type DataProviderFuncs interface {
	CreateCompiled() resource.Handle
	CreateEmpty() resource.Handle
	CreateFromYAML(content string) abi.Result[resource.Handle, DataError]
	CreateFS(path string) abi.Result[resource.Handle, DataError]
	Destroy(h resource.Handle)
}

// LocaleFuncs creates, inspects and destroys locales.
type LocaleFuncs interface {
	CreateFromString(name string) abi.Result[resource.Handle, LocaleParseError]
	IsCalendarExplicit(locale resource.Handle) bool
	Destroy(h resource.Handle)
}

// CalendarFuncs creates, inspects and destroys calendars. Provider and
// locale arguments are borrowed for the duration of the call.
type CalendarFuncs interface {
	CreateForLocale(provider, locale resource.Handle) abi.Result[resource.Handle, DataError]
	CreateForKind(provider resource.Handle, kind AnyCalendarKind) abi.Result[resource.Handle, DataError]
	Kind(calendar resource.Handle) AnyCalendarKind
	Destroy(h resource.Handle)
}

// AnyCalendarKindFuncs are the static functions on AnyCalendarKind.
type AnyCalendarKindFuncs interface {
	GetForLocale(locale resource.Handle) abi.Option[AnyCalendarKind]
	GetForBCP47(id string) abi.Option[AnyCalendarKind]
}

// TitlecaseOptionsV1Funcs are the functions of the plain options struct.
type TitlecaseOptionsV1Funcs interface {
	DefaultOptions() TitlecaseOptionsV1
	Destroy(opts TitlecaseOptionsV1)
}

var (
	_ Boundary = (*Library)(nil)
	_ Boundary = (*MemoryClient)(nil)
)
