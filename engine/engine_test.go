package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/capi"
	"github.com/wippyai/icu4x-go/errors"
	"github.com/wippyai/icu4x-go/icu"
	"github.com/wippyai/icu4x-go/provider"
)

func newEngine(t *testing.T, lib *capi.Library, cfg *Config) *Engine {
	t.Helper()
	ctx := context.Background()
	e, err := New(ctx, lib, cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() {
		_ = e.Close(ctx)
		_ = lib.Close()
	})
	return e
}

func TestNew_Configs(t *testing.T) {
	tests := []struct {
		cfg  *Config
		name string
	}{
		{nil, "nil config"},
		{&Config{}, "default config"},
		{&Config{MemoryLimitPages: 256}, "16MB limit"},
		{&Config{CloseOnContextDone: true}, "close on context done"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, capi.New(), tc.cfg)
			if e.Runtime() == nil {
				t.Error("engine runtime should not be nil")
			}
			if e.Exports() == nil {
				t.Error("engine exports should not be nil")
			}
		})
	}
}

func TestInstantiate_Signatures(t *testing.T) {
	e := newEngine(t, capi.New(), nil)

	host := e.Runtime().Module(ModuleName)
	if host == nil {
		t.Fatal("host module not registered")
	}
	defs := host.ExportedFunctionDefinitions()
	surface := e.Exports().Surface()
	if len(defs) != len(surface.Names()) {
		t.Fatalf("host exports %d functions, surface declares %d", len(defs), len(surface.Names()))
	}

	for _, name := range surface.Names() {
		def, ok := defs[name]
		if !ok {
			t.Errorf("%s not exported", name)
			continue
		}
		sym, _ := surface.Lookup(name)
		params, results := sym.Flat()
		if len(def.ParamTypes()) != params || len(def.ResultTypes()) != results {
			t.Errorf("%s: signature (%d)->(%d), want (%d)->(%d)",
				name, len(def.ParamTypes()), len(def.ResultTypes()), params, results)
		}
		for _, vt := range append(def.ParamTypes(), def.ResultTypes()...) {
			if vt != api.ValueTypeI32 {
				t.Errorf("%s: non-i32 value type %s", name, api.ValueTypeName(vt))
			}
		}
	}
}

func TestGuest_KindRoundTrip(t *testing.T) {
	ctx := context.Background()
	lib := capi.New()
	e := newEngine(t, lib, nil)

	guest, err := e.Load(ctx, calendarGuest())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer guest.Close(ctx)

	for _, c := range capi.AnyCalendarKinds.Cases() {
		t.Run(c.Name, func(t *testing.T) {
			results, err := guest.Call(ctx, "kind_round_trip", uint64(c.Value))
			if err != nil {
				t.Fatal(err)
			}
			if got := api.DecodeU32(results[0]); got != uint32(c.Value) {
				t.Errorf("kind = %d, want %d", got, c.Value)
			}
		})
	}

	if n := lib.Live(); n != 0 {
		t.Errorf("%d handles live after guest calls", n)
	}
}

func TestGuest_ErrorArm(t *testing.T) {
	ctx := context.Background()
	lib := capi.New(capi.WithProvider(provider.Empty()))
	e := newEngine(t, lib, nil)

	guest, err := e.Load(ctx, calendarGuest())
	if err != nil {
		t.Fatal(err)
	}
	defer guest.Close(ctx)

	results, err := guest.Call(ctx, "kind_round_trip", uint64(capi.AnyCalendarKindGregorian))
	if err != nil {
		t.Fatal(err)
	}
	code := -1 - int32(api.DecodeU32(results[0]))
	if capi.DataError(code) != capi.DataErrorMarkerNotFound {
		t.Errorf("error code = %d", code)
	}
	if lib.Live() != 0 {
		t.Error("failed create leaked a handle")
	}
}

func TestGuest_InvalidKindTraps(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, capi.New(), nil)

	guest, err := e.Load(ctx, calendarGuest())
	if err != nil {
		t.Fatal(err)
	}
	defer guest.Close(ctx)

	_, err = guest.Call(ctx, "kind_round_trip", 99)
	if err == nil {
		t.Fatal("expected trap for unknown discriminant")
	}
	if !strings.Contains(err.Error(), string(errors.KindInvalidEnum)) {
		t.Errorf("trap = %v", err)
	}

	// The instance survives a host trap.
	if _, err := guest.Call(ctx, "kind_round_trip", uint64(capi.AnyCalendarKindIso)); err != nil {
		t.Errorf("call after trap: %v", err)
	}
}

func TestGuest_Client(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, capi.New(), nil)

	guest, err := e.Load(ctx, calendarGuest())
	if err != nil {
		t.Fatal(err)
	}
	defer guest.Close(ctx)

	client, err := guest.Client(ctx)
	if err != nil {
		t.Fatal(err)
	}
	env := icu.New(client)

	p := env.CompiledProvider()
	defer p.Close()
	loc, err := env.ParseLocale("th-TH")
	if err != nil {
		t.Fatal(err)
	}
	defer loc.Close()

	cal, err := icu.NewCalendarForLocale(p, loc)
	if err != nil {
		t.Fatal(err)
	}
	defer cal.Close()
	if cal.Kind() != icu.Buddhist {
		t.Errorf("Kind() = %s", cal.Kind())
	}

	// String arguments go through the guest allocator too.
	if k, ok := env.KindForBCP47("islamic-umalqura"); !ok || k != icu.IslamicUmmAlQura {
		t.Errorf("KindForBCP47 = %s, %v", k, ok)
	}
}

func TestGuest_ClientNeedsAllocator(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, capi.New(), nil)

	guest, err := e.Load(ctx, bareGuest())
	if err != nil {
		t.Fatal(err)
	}
	defer guest.Close(ctx)

	_, err = guest.Client(ctx)
	if !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("err = %v", err)
	}
	if _, err := guest.Call(ctx, "missing"); !errors.IsKind(err, errors.KindNotFound) {
		t.Errorf("Call err = %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	e := newEngine(t, capi.New(), nil)
	if _, err := e.Load(context.Background(), []byte("not wasm")); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestMemory_Bounds(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, bareGuest())
	if err != nil {
		t.Fatal(err)
	}
	var mem abi.Memory = WrapMemory(mod.ExportedMemory("memory"))

	if err := mem.WriteU32(8, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	b, _ := mem.ReadU8(8)
	if b != 0xef {
		t.Errorf("low byte = %#x, want little endian", b)
	}

	size := WrapMemory(mod.ExportedMemory("memory")).Size()
	if size != abi.PageSize {
		t.Errorf("Size() = %d", size)
	}
	if _, err := mem.ReadU32(size - 2); !errors.IsKind(err, errors.KindOutOfBounds) {
		t.Errorf("ReadU32 err = %v", err)
	}
	if err := mem.Write(size, []byte{1}); !errors.IsKind(err, errors.KindOutOfBounds) {
		t.Errorf("Write err = %v", err)
	}
	if WrapMemory(nil) != nil {
		t.Error("WrapMemory(nil) should be nil")
	}
}
