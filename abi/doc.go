// Package abi implements the value side of the boundary protocol: type
// layouts, tagged Result and Option unions, closed enum codecs, plain struct
// marshaling and a linear memory for return areas.
//
// # Memory Layout
//
// Boundary types are described with WIT type descriptors and laid out with
// C rules on a 32-bit target, matching the generated C headers both sides
// compile against:
//
//	Type               Size    Alignment
//	─────────────────────────────────────
//	bool, u8           1       1
//	u16                2       2
//	u32, enum          4       4
//	own<T>, borrow<T>  4       4 (opaque pointer)
//	u64                8       8
//	string             8       4 (ptr + len)
//	record             sum     max field align
//	result<T, E>       union + flag, flag after the union
//	option<T>          value + flag, flag after the value
//
// A result is the C struct
//
//	struct { union { T ok; E err; }; bool is_ok; }
//
// so the discriminant lives at FlagOffset, after the payload. Readers must
// load the flag before touching the payload.
//
// # Go Representation
//
// In Go the same unions are real sum types:
//
//	r := abi.Ok[resource.Handle, DataError](h)
//	if v, ok := r.Get(); ok { ... }
//
// Reading the inactive arm through Value or Err panics with a
// errors.KindWrongArm fault.
package abi
