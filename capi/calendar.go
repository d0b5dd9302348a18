package capi

import (
	"go.uber.org/zap"

	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/errors"
	"github.com/wippyai/icu4x-go/provider"
	"github.com/wippyai/icu4x-go/resource"
)

type calendarFuncs struct {
	lib *Library
}

func (f calendarFuncs) CreateForLocale(p, l resource.Handle) abi.Result[resource.Handle, DataError] {
	f.lib.calls.Add(1)
	defer f.lib.borrow(p)()
	defer f.lib.borrow(l)()

	dp := mustGet(f.lib.providers, p, errors.PhaseCreate)
	loc := mustGet(f.lib.locales, l, errors.PhaseCreate)

	if !dp.SupportsLocale(loc.tag) {
		f.lib.logger.Debug("no data for locale",
			zap.String("provider", dp.Name()), zap.Stringer("locale", loc.tag))
		return abi.Err[resource.Handle](DataErrorIdentifierNotFound)
	}

	id := provider.CalendarForLocale(loc.tag)
	kind, ok := KindForCalendarID(id)
	if !ok {
		return abi.Err[resource.Handle](DataErrorInconsistentData)
	}
	return f.create(dp, kind, id)
}

func (f calendarFuncs) CreateForKind(p resource.Handle, kind AnyCalendarKind) abi.Result[resource.Handle, DataError] {
	f.lib.calls.Add(1)
	defer f.lib.borrow(p)()

	dp := mustGet(f.lib.providers, p, errors.PhaseCreate)
	id, err := CalendarID(kind)
	if err != nil {
		// The kind did not come from the closed set: the caller and this
		// library disagree on the enum.
		panic(err)
	}
	return f.create(dp, kind, id)
}

func (f calendarFuncs) create(dp provider.DataProvider, kind AnyCalendarKind, id string) abi.Result[resource.Handle, DataError] {
	if !dp.HasCalendar(id) {
		f.lib.logger.Debug("no data for calendar",
			zap.String("provider", dp.Name()), zap.String("calendar", id))
		return abi.Err[resource.Handle](DataErrorMarkerNotFound)
	}
	h := f.lib.insert(resource.TypeCalendar, &calendar{id: id, kind: kind, provider: dp.Name()})
	return abi.Ok[resource.Handle, DataError](h)
}

func (f calendarFuncs) Kind(h resource.Handle) AnyCalendarKind {
	f.lib.calls.Add(1)
	return mustGet(f.lib.calendars, h, errors.PhaseCall).kind
}

func (f calendarFuncs) Destroy(h resource.Handle) {
	f.lib.destroy(resource.TypeCalendar, h)
}
