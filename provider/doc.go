// Package provider supplies the locale data collaborator consumed by the
// boundary.
//
// A DataProvider answers two questions: which calendars it carries and
// which locales it has data for. Three sources exist:
//
//	provider.Compiled()          // built-in data, every calendar
//	provider.Empty()             // no data at all
//	provider.ParseYAML(content)  // data described by a YAML document
//	provider.LoadFile(path)      // same, read from disk
//
// The YAML format lists calendar identifiers (BCP 47 "ca" values) and
// locale tags:
//
//	name: th-only
//	calendars: [gregory, buddhist]
//	locales: [th, en]
//
// Locale lookup falls back through parent locales (th-TH -> th) but never
// to the root locale, so a provider without "en" data reports en-US as
// unsupported.
//
// CalendarForLocale resolves the calendar a locale prefers: an explicit
// -u-ca- keyword wins, then language and region defaults apply.
package provider
