package icu

import (
	"github.com/wippyai/icu4x-go/capi"
	"github.com/wippyai/icu4x-go/resource"
)

// Locale owns a boundary Locale handle.
type Locale struct {
	env *Env
	own owned
}

func newLocale(env *Env, h resource.Handle) *Locale {
	l := &Locale{env: env}
	adopt(l, &l.own, env, capi.TypeLocale, h, env.b.Locale().Destroy)
	return l
}

// ParseLocale parses a BCP 47 identifier. Failures are LocaleParseError
// values.
func (e *Env) ParseLocale(name string) (*Locale, error) {
	r := e.b.Locale().CreateFromString(name)
	h, ok := r.Get()
	if !ok {
		return nil, mustLift(localeParseErrorMap, r.Err())
	}
	return newLocale(e, h), nil
}

// LocaleFromHandle adopts an owned handle.
func LocaleFromHandle(env *Env, h resource.Handle) *Locale {
	return newLocale(env, h)
}

// IsCalendarExplicit reports whether the locale names a calendar with the
// -u-ca- keyword.
func (l *Locale) IsCalendarExplicit() bool {
	return l.env.b.Locale().IsCalendarExplicit(l.own.live())
}

// CalendarKind returns the kind named by the -u-ca- keyword, if any.
func (l *Locale) CalendarKind() (AnyCalendarKind, bool) {
	o := l.env.b.AnyCalendarKind().GetForLocale(l.own.live())
	raw, ok := o.Get()
	if !ok {
		return 0, false
	}
	return mustLift(kindMap, raw), true
}

// Handle returns the boundary handle. It stays owned by l.
func (l *Locale) Handle() resource.Handle {
	return l.own.live()
}

// Close destroys the locale.
func (l *Locale) Close() error {
	return l.own.close()
}
