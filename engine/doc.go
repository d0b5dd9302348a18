// Package engine serves the icu4x boundary to WebAssembly guests.
//
// This package wraps wazero: the boundary surface declared in capi is
// registered as host module "icu4x", one host function per symbol, with the
// flat signature the symbol declares. Guests import what they need:
//
//	(import "icu4x" "icu4x_Calendar_create_for_kind_mv1"
//	    (func $create (param i32 i32 i32)))
//
// # Architecture
//
//	Engine  - a wazero runtime with the host module instantiated
//	Guest   - an instantiated guest module with exported memory
//	Memory  - adapts a guest's wazero memory to abi.Memory
//
// # Calling Convention
//
//	Boundary Type        Core Representation
//	───────────────────────────────────────────
//	handle, enum, bool   i32
//	string               (ptr, len) as i32×2
//	result, option       retptr i32, written by the host
//	record               pointer to the C layout
//
// A result is written as { union { ok; err }; bool is_ok } at the return
// pointer the guest passes as first argument.
//
// # Traps
//
// Protocol faults (unknown enum discriminants, invalid handles, handles of
// the wrong type, out of bounds pointers) trap the calling guest. Domain
// failures such as missing data are returned in the error arm and never
// trap.
//
// # Host-side Clients
//
// Guest.Client returns a capi.MemoryClient that marshals through the
// guest's own memory, allocating with the guest's diplomat_alloc and
// diplomat_free exports. This is the same path a guest takes, driven from
// Go.
//
// # Thread Safety
//
// Engine is safe for concurrent use. A Guest must be used by a single
// goroutine at a time.
package engine
