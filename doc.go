// Package icu4xgo exposes internationalization objects (calendars, locales,
// data providers, casing options) through a fixed-layout boundary and wraps
// that boundary in owning Go types.
//
// The interesting part is the marshaling protocol every boundary type
// follows: opaque handles, tagged result and option unions, exactly-once
// destruction and relabeling between a wrapper and its handle.
//
// # Architecture Overview
//
//	icu4xgo/          Root package with the Memory and Allocator interfaces
//	├── errors/       Structured Phase/Kind errors for protocol faults
//	├── resource/     Opaque handle table owned by the boundary
//	├── abi/          Layouts, Result/Option unions, enum codecs, linear memory
//	├── provider/     Data provider collaborators and locale calendar lookup
//	├── capi/         Boundary function tables, declared surface, memory exports
//	├── icu/          Owning wrapper types with native Go errors
//	├── engine/       wazero host module exposing the boundary to wasm guests
//	├── cmd/icu4x/    Command line and interactive front end
//	└── examples/     Runnable usage examples
//
// # Quick Start
//
//	env := icu.New(capi.New())
//
//	provider := env.CompiledProvider()
//	defer provider.Close()
//
//	loc, err := env.ParseLocale("th-TH")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer loc.Close()
//
//	cal, err := icu.NewCalendarForLocale(provider, loc)
//	if err != nil {
//	    log.Fatal(err) // icu.DataError for missing data
//	}
//	defer cal.Close()
//
//	fmt.Println(cal.Kind()) // Buddhist
//
// # Transports
//
// The wrapper talks to a capi.Boundary. capi.Library answers in process
// with Go values; capi.MemoryClient routes every call through linear memory
// with the return-pointer convention, exactly as a wasm guest would see it.
//
// # Thread Safety
//
// The handle table is safe for concurrent use. Individual wrapper objects
// are not synchronized beyond Close, which destroys exactly once.
package icu4xgo
