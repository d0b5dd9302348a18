package capi

import (
	"golang.org/x/text/language"

	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/errors"
	"github.com/wippyai/icu4x-go/provider"
	"github.com/wippyai/icu4x-go/resource"
)

type localeFuncs struct {
	lib *Library
}

func (f localeFuncs) CreateFromString(name string) abi.Result[resource.Handle, LocaleParseError] {
	f.lib.calls.Add(1)
	tag, err := language.Parse(name)
	if err != nil {
		return abi.Err[resource.Handle](classifyLocaleError(name, err))
	}
	h := f.lib.insert(resource.TypeLocale, &locale{tag: tag, source: name})
	return abi.Ok[resource.Handle, LocaleParseError](h)
}

func (f localeFuncs) IsCalendarExplicit(h resource.Handle) bool {
	f.lib.calls.Add(1)
	loc := mustGet(f.lib.locales, h, errors.PhaseCall)
	_, ok := provider.ExplicitCalendar(loc.tag)
	return ok
}

func (f localeFuncs) Destroy(h resource.Handle) {
	f.lib.destroy(resource.TypeLocale, h)
}
