package capi

import (
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/wippyai/icu4x-go/errors"
	"github.com/wippyai/icu4x-go/provider"
	"github.com/wippyai/icu4x-go/resource"
)

// locale is the owning-side object behind a Locale handle.
type locale struct {
	tag    language.Tag
	source string
}

// calendar is the owning-side object behind a Calendar handle.
type calendar struct {
	id       string
	provider string
	kind     AnyCalendarKind
}

// Library is the in-process implementation of the boundary. It owns every
// object it hands out a handle for; handles stay valid until the matching
// Destroy or until the Library is closed.
//
// Destroy keeps the unchecked contract of the C surface: a stale or
// foreign handle is not reported to the caller. The table ignores it and
// the event is logged at debug level.
type Library struct {
	table     *resource.Table
	providers resource.Typed[provider.DataProvider]
	locales   resource.Typed[*locale]
	calendars resource.Typed[*calendar]
	compiled  provider.DataProvider
	logger    *zap.Logger
	calls     atomic.Uint64
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(lib *Library) {
		lib.logger = l
	}
}

// WithProvider replaces the data served by DataProvider.create_compiled.
func WithProvider(p provider.DataProvider) Option {
	return func(lib *Library) {
		lib.compiled = p
	}
}

// WithTable uses an existing handle table, e.g. one with observers
// already subscribed.
func WithTable(t *resource.Table) Option {
	return func(lib *Library) {
		lib.table = t
	}
}

// New creates a Library.
func New(opts ...Option) *Library {
	lib := &Library{
		compiled: provider.Compiled(),
		logger:   Logger(),
	}
	for _, opt := range opts {
		opt(lib)
	}
	if lib.table == nil {
		lib.table = resource.NewTable()
	}
	lib.providers = resource.NewTyped[provider.DataProvider](lib.table, resource.TypeDataProvider)
	lib.locales = resource.NewTyped[*locale](lib.table, resource.TypeLocale)
	lib.calendars = resource.NewTyped[*calendar](lib.table, resource.TypeCalendar)
	return lib
}

// Table exposes the handle table, mainly for leak accounting.
func (l *Library) Table() *resource.Table {
	return l.table
}

// Live returns the number of live handles of every type.
func (l *Library) Live() int {
	return l.table.Len()
}

// Calls returns the number of boundary calls served.
func (l *Library) Calls() uint64 {
	return l.calls.Load()
}

// Close destroys every outstanding object. Handles become invalid.
func (l *Library) Close() error {
	if n := l.table.Len(); n > 0 {
		l.logger.Debug("closing library with live handles", zap.Int("live", n))
	}
	return l.table.Close()
}

// DataProvider implements Boundary.
func (l *Library) DataProvider() DataProviderFuncs {
	return dataProviderFuncs{l}
}

// Locale implements Boundary.
func (l *Library) Locale() LocaleFuncs {
	return localeFuncs{l}
}

// Calendar implements Boundary.
func (l *Library) Calendar() CalendarFuncs {
	return calendarFuncs{l}
}

// AnyCalendarKind implements Boundary.
func (l *Library) AnyCalendarKind() AnyCalendarKindFuncs {
	return anyCalendarKindFuncs{l}
}

// TitlecaseOptionsV1 implements Boundary.
func (l *Library) TitlecaseOptionsV1() TitlecaseOptionsV1Funcs {
	return titlecaseFuncs{l}
}

func (l *Library) insert(typeID resource.TypeID, value any) resource.Handle {
	h := l.table.Insert(typeID, value)
	if h == 0 {
		panic(errors.New(errors.PhaseCreate, errors.KindAllocation).
			Detail("handle table closed").
			Build())
	}
	l.logger.Debug("created", zap.Stringer("type", typeID), zap.Uint32("handle", uint32(h)))
	return h
}

func (l *Library) destroy(typeID resource.TypeID, h resource.Handle) {
	l.calls.Add(1)
	if _, ok := l.table.Remove(h, typeID); !ok {
		l.logger.Debug("destroy of stale handle ignored",
			zap.Stringer("type", typeID), zap.Uint32("handle", uint32(h)))
		return
	}
	l.logger.Debug("destroyed", zap.Stringer("type", typeID), zap.Uint32("handle", uint32(h)))
}

// borrow pins h for the duration of a call. The returned func releases it.
func (l *Library) borrow(h resource.Handle) func() {
	if !l.table.Borrow(h) {
		return func() {}
	}
	return func() { l.table.Release(h) }
}

// mustGet resolves a borrowed handle. A stale or foreign handle is a
// caller contract violation and panics.
func mustGet[T any](v resource.Typed[T], h resource.Handle, phase errors.Phase) T {
	value, err := v.Get(h, phase)
	if err != nil {
		panic(err)
	}
	return value
}
