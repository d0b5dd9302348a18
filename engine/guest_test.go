package engine

// A tiny wasm binary writer for test guests. Every value type is i32.

const (
	opEnd      = 0x0b
	opIf       = 0x04
	opReturn   = 0x0f
	opCall     = 0x10
	opLocalGet = 0x20
	opLocalSet = 0x21
	opLocalTee = 0x22
	opGlobGet  = 0x23
	opGlobSet  = 0x24
	opI32Load  = 0x28
	opI32Load8 = 0x2d
	opI32Const = 0x41
	opI32Eqz   = 0x45
	opI32Add   = 0x6a
	opI32Sub   = 0x6b
	opI32And   = 0x71

	valI32    = 0x7f
	blockVoid = 0x40
)

func uleb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}

func sleb(v int32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}

func wasmName(s string) []byte {
	return append(uleb(uint32(len(s))), s...)
}

func vec(items [][]byte) []byte {
	out := uleb(uint32(len(items)))
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

func section(id byte, body []byte) []byte {
	out := []byte{id}
	out = append(out, uleb(uint32(len(body)))...)
	return append(out, body...)
}

func funcType(params, results int) []byte {
	out := []byte{0x60}
	out = append(out, uleb(uint32(params))...)
	for i := 0; i < params; i++ {
		out = append(out, valI32)
	}
	out = append(out, uleb(uint32(results))...)
	for i := 0; i < results; i++ {
		out = append(out, valI32)
	}
	return out
}

type guestImport struct {
	name string
	typ  uint32
}

type guestFunc struct {
	export string
	typ    uint32
	locals uint32
	body   []byte
}

// buildGuest assembles a module importing funcs from "icu4x", exporting
// memory and funcs, with one mutable i32 global.
func buildGuest(types [][]byte, imports []guestImport, funcs []guestFunc, pages uint32, global int32) []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	out = append(out, section(1, vec(types))...)

	var imps [][]byte
	for _, im := range imports {
		b := append(wasmName(ModuleName), wasmName(im.name)...)
		b = append(b, 0x00)
		imps = append(imps, append(b, uleb(im.typ)...))
	}
	out = append(out, section(2, vec(imps))...)

	var sigs [][]byte
	for _, f := range funcs {
		sigs = append(sigs, uleb(f.typ))
	}
	out = append(out, section(3, vec(sigs))...)

	out = append(out, section(5, vec([][]byte{append([]byte{0x00}, uleb(pages)...)}))...)

	g := []byte{valI32, 0x01, opI32Const}
	g = append(g, sleb(global)...)
	g = append(g, opEnd)
	out = append(out, section(6, vec([][]byte{g}))...)

	exps := [][]byte{append(wasmName("memory"), 0x02, 0x00)}
	for i, f := range funcs {
		b := append(wasmName(f.export), 0x00)
		exps = append(exps, append(b, uleb(uint32(len(imports)+i))...))
	}
	out = append(out, section(7, vec(exps))...)

	var codes [][]byte
	for _, f := range funcs {
		var body []byte
		if f.locals > 0 {
			body = append(body, 0x01)
			body = append(body, uleb(f.locals)...)
			body = append(body, valI32)
		} else {
			body = append(body, 0x00)
		}
		body = append(body, f.body...)
		body = append(body, opEnd)
		codes = append(codes, append(uleb(uint32(len(body))), body...))
	}
	return append(out, section(10, vec(codes))...)
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func op(code byte, imm ...byte) []byte {
	return append([]byte{code}, imm...)
}

func i32const(v int32) []byte {
	return append([]byte{opI32Const}, sleb(v)...)
}

// Return area used by the calendar guest.
const retArea = 64

// calendarGuest imports the calendar functions and exports:
//
//	kind_round_trip(kind) -> kind, or -1 - error code when creation fails
//	diplomat_alloc / diplomat_free, a bump allocator starting at 1024
func calendarGuest() []byte {
	types := [][]byte{
		funcType(0, 1), // 0: () -> i32
		funcType(3, 0), // 1: (i32 i32 i32)
		funcType(1, 1), // 2: (i32) -> i32
		funcType(1, 0), // 3: (i32)
		funcType(2, 1), // 4: (i32 i32) -> i32
	}
	imports := []guestImport{
		{"icu4x_DataProvider_create_compiled_mv1", 0}, // 0
		{"icu4x_Calendar_create_for_kind_mv1", 1},     // 1
		{"icu4x_Calendar_kind_mv1", 2},                // 2
		{"icu4x_Calendar_destroy_mv1", 3},             // 3
		{"icu4x_DataProvider_destroy_mv1", 3},         // 4
	}

	// params: 0 kind; locals: 1 provider, 2 calendar
	roundTrip := cat(
		op(opCall, 0), op(opLocalSet, 1),
		i32const(retArea), op(opLocalGet, 1), op(opLocalGet, 0), op(opCall, 1),
		i32const(retArea+4), op(opI32Load8, 0, 0), op(opI32Eqz),
		op(opIf, blockVoid),
		op(opLocalGet, 1), op(opCall, 4),
		i32const(-1), i32const(retArea), op(opI32Load, 2, 0), op(opI32Sub),
		op(opReturn),
		op(opEnd),
		i32const(retArea), op(opI32Load, 2, 0), op(opLocalTee, 2),
		op(opCall, 2),
		op(opLocalGet, 2), op(opCall, 3),
		op(opLocalGet, 1), op(opCall, 4),
	)

	// params: 0 size, 1 align; locals: 2 ptr
	alloc := cat(
		op(opGlobGet, 0), op(opLocalGet, 1), op(opI32Add), i32const(1), op(opI32Sub),
		i32const(0), op(opLocalGet, 1), op(opI32Sub), op(opI32And),
		op(opLocalTee, 2), op(opLocalGet, 0), op(opI32Add), op(opGlobSet, 0),
		op(opLocalGet, 2),
	)

	funcs := []guestFunc{
		{export: "kind_round_trip", typ: 2, locals: 2, body: roundTrip},
		{export: AllocExport, typ: 4, locals: 1, body: alloc},
		{export: FreeExport, typ: 1},
	}
	return buildGuest(types, imports, funcs, 2, 1024)
}

// bareGuest exports memory and nothing else.
func bareGuest() []byte {
	return buildGuest(nil, nil, nil, 1, 0)
}
