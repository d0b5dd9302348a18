package capi

import (
	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/errors"
	"github.com/wippyai/icu4x-go/provider"
	"github.com/wippyai/icu4x-go/resource"
)

type anyCalendarKindFuncs struct {
	lib *Library
}

// GetForLocale returns the kind named by the locale's -u-ca- keyword, if
// any. Defaults implied by language or region are not considered.
func (f anyCalendarKindFuncs) GetForLocale(l resource.Handle) abi.Option[AnyCalendarKind] {
	f.lib.calls.Add(1)
	loc := mustGet(f.lib.locales, l, errors.PhaseCall)
	id, ok := provider.ExplicitCalendar(loc.tag)
	if !ok {
		return abi.None[AnyCalendarKind]()
	}
	return kindOption(id)
}

func (f anyCalendarKindFuncs) GetForBCP47(id string) abi.Option[AnyCalendarKind] {
	f.lib.calls.Add(1)
	return kindOption(id)
}

func kindOption(id string) abi.Option[AnyCalendarKind] {
	kind, ok := KindForCalendarID(id)
	if !ok {
		return abi.None[AnyCalendarKind]()
	}
	return abi.Some(kind)
}
