package icu

import (
	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/capi"
	"github.com/wippyai/icu4x-go/resource"
)

// Calendar owns a boundary Calendar handle.
//
// Close destroys the handle exactly once. Calling Close again returns an
// error of kind double_destroy; calling an accessor after Close panics
// with kind use_after_destroy. A Calendar dropped without Close is
// destroyed by a runtime cleanup.
type Calendar struct {
	env *Env
	own owned
}

func newCalendar(env *Env, h resource.Handle) *Calendar {
	c := &Calendar{env: env}
	adopt(c, &c.own, env, capi.TypeCalendar, h, env.b.Calendar().Destroy)
	return c
}

// NewCalendarForLocale creates the calendar a locale uses by default.
// Missing data is reported as a DataError.
func NewCalendarForLocale(p *DataProvider, l *Locale) (*Calendar, error) {
	env := p.env
	return calendarResult(env, env.b.Calendar().CreateForLocale(p.own.live(), l.own.live()))
}

// NewCalendarForKind creates a calendar of the given kind.
func NewCalendarForKind(p *DataProvider, kind AnyCalendarKind) (*Calendar, error) {
	env := p.env
	return calendarResult(env, env.b.Calendar().CreateForKind(p.own.live(), mustLower(kindMap, kind)))
}

func calendarResult(env *Env, r abi.Result[resource.Handle, capi.DataError]) (*Calendar, error) {
	h, ok := r.Get()
	if !ok {
		return nil, mustLift(dataErrorMap, r.Err())
	}
	return newCalendar(env, h), nil
}

// CalendarFromHandle adopts an owned handle. The caller gives up
// ownership of h.
func CalendarFromHandle(env *Env, h resource.Handle) *Calendar {
	return newCalendar(env, h)
}

// Kind returns the calendar system.
func (c *Calendar) Kind() AnyCalendarKind {
	return mustLift(kindMap, c.env.b.Calendar().Kind(c.own.live()))
}

// Handle returns the boundary handle. It stays owned by c.
func (c *Calendar) Handle() resource.Handle {
	return c.own.live()
}

// Release transfers ownership of the handle to the caller, who must
// destroy it or adopt it with CalendarFromHandle. c is closed afterwards.
func (c *Calendar) Release() resource.Handle {
	return c.own.disown()
}

// Closed reports whether Close has run.
func (c *Calendar) Closed() bool {
	return c.own.closed()
}

// Close destroys the calendar.
func (c *Calendar) Close() error {
	return c.own.close()
}

// KindForBCP47 looks up a kind by BCP 47 calendar identifier.
func (e *Env) KindForBCP47(id string) (AnyCalendarKind, bool) {
	raw, ok := e.b.AnyCalendarKind().GetForBCP47(id).Get()
	if !ok {
		return 0, false
	}
	return mustLift(kindMap, raw), true
}
