package provider

import (
	"sort"

	"golang.org/x/text/language"
)

// DataProvider is the read-only view of locale data the boundary needs.
// Implementations must be safe for concurrent use.
type DataProvider interface {
	// Name identifies the provider in logs.
	Name() string
	// HasCalendar reports whether data for the calendar id is present.
	HasCalendar(id string) bool
	// SupportsLocale reports whether data for tag or one of its parents
	// (excluding root) is present.
	SupportsLocale(tag language.Tag) bool
}

// maxFallbackDepth bounds the parent chain walk (en-Latn-US -> en-US -> en).
const maxFallbackDepth = 8

// Static is a DataProvider backed by fixed sets. It is immutable after
// construction.
type Static struct {
	name      string
	calendars map[string]struct{}
	locales   map[string]struct{}
}

// NewStatic builds a provider from calendar ids and locale tags.
// Unknown calendar ids or malformed tags are rejected.
func NewStatic(name string, calendars, locales []string) (*Static, error) {
	s := &Static{
		name:      name,
		calendars: make(map[string]struct{}, len(calendars)),
		locales:   make(map[string]struct{}, len(locales)),
	}
	for _, id := range calendars {
		canon, ok := CanonicalCalendar(id)
		if !ok {
			return nil, &UnknownCalendarError{ID: id}
		}
		s.calendars[canon] = struct{}{}
	}
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, &InvalidLocaleError{Tag: l, Err: err}
		}
		s.locales[stripExtensions(tag).String()] = struct{}{}
	}
	return s, nil
}

// Name implements DataProvider.
func (s *Static) Name() string {
	return s.name
}

// HasCalendar implements DataProvider.
func (s *Static) HasCalendar(id string) bool {
	canon, ok := CanonicalCalendar(id)
	if !ok {
		return false
	}
	_, ok = s.calendars[canon]
	return ok
}

// SupportsLocale implements DataProvider.
func (s *Static) SupportsLocale(tag language.Tag) bool {
	if len(s.locales) == 0 {
		return false
	}
	t := stripExtensions(tag)
	for i := 0; i < maxFallbackDepth && !t.IsRoot(); i++ {
		if _, ok := s.locales[t.String()]; ok {
			return true
		}
		t = t.Parent()
	}
	return false
}

// Calendars returns the calendar ids carried, sorted.
func (s *Static) Calendars() []string {
	return sortedKeys(s.calendars)
}

// Locales returns the locale tags carried, sorted.
func (s *Static) Locales() []string {
	return sortedKeys(s.locales)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// stripExtensions drops variants and extensions, keeping language,
// script and region.
func stripExtensions(tag language.Tag) language.Tag {
	base, script, region := tag.Raw()
	t, err := language.Compose(base, script, region)
	if err != nil {
		return tag
	}
	return t
}

var compiledLocales = []string{
	"am", "ar", "ar-SA", "bn", "de", "en", "es", "fa", "fr", "he", "hi",
	"id", "it", "ja", "ko", "pt", "ru", "th", "tr", "uk", "zh", "zh-Hant",
}

var compiled = mustStatic("compiled", CalendarIDs(), compiledLocales)

var empty = &Static{
	name:      "empty",
	calendars: map[string]struct{}{},
	locales:   map[string]struct{}{},
}

// Compiled returns the built-in provider. It carries every calendar and a
// fixed set of common locales.
func Compiled() *Static {
	return compiled
}

// Empty returns a provider with no data.
func Empty() *Static {
	return empty
}

func mustStatic(name string, calendars, locales []string) *Static {
	s, err := NewStatic(name, calendars, locales)
	if err != nil {
		panic(err)
	}
	return s
}
