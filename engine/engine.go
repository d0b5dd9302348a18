package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/icu4x-go/capi"
	"github.com/wippyai/icu4x-go/errors"
)

// Config holds configuration for engine creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per guest in pages (64KB each).
	// 0 means the wazero default (65536 pages = 4GB).
	MemoryLimitPages uint32

	// CloseOnContextDone makes guest calls stop when their context is
	// cancelled.
	CloseOnContextDone bool
}

// Engine is a wazero runtime with the icu4x host module registered.
type Engine struct {
	runtime wazero.Runtime
	exports *capi.Exports
	host    api.Module
}

// New creates a runtime and registers lib's exports. A nil cfg uses the
// defaults.
func New(ctx context.Context, lib *capi.Library, cfg *Config) (*Engine, error) {
	exports, err := capi.NewExports(lib)
	if err != nil {
		return nil, err
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil {
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
		if cfg.CloseOnContextDone {
			runtimeCfg = runtimeCfg.WithCloseOnContextDone(true)
		}
	}

	r := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	host, err := Instantiate(ctx, r, exports)
	if err != nil {
		_ = r.Close(ctx)
		return nil, err
	}
	return &Engine{runtime: r, exports: exports, host: host}, nil
}

// Runtime returns the underlying wazero runtime.
func (e *Engine) Runtime() wazero.Runtime {
	return e.runtime
}

// Exports returns the boundary exports served to guests.
func (e *Engine) Exports() *capi.Exports {
	return e.exports
}

// Load compiles and instantiates a guest module. The guest must export
// its memory as "memory".
func (e *Engine) Load(ctx context.Context, wasm []byte) (*Guest, error) {
	compiled, err := e.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Load("compile guest", err)
	}
	mod, err := e.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return nil, errors.Load("instantiate guest", err)
	}
	mem := WrapMemory(mod.ExportedMemory("memory"))
	if mem == nil {
		_ = mod.Close(ctx)
		return nil, errors.NotFound(errors.PhaseLoad, "guest export", "memory")
	}
	return &Guest{engine: e, mod: mod, mem: mem}, nil
}

// Close closes the runtime and every guest loaded into it.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Guest is an instantiated guest module.
type Guest struct {
	engine *Engine
	mod    api.Module
	mem    *Memory
}

// Memory returns the guest's exported memory.
func (g *Guest) Memory() *Memory {
	return g.mem
}

// Call invokes a guest export.
func (g *Guest) Call(ctx context.Context, name string, params ...uint64) ([]uint64, error) {
	fn := g.mod.ExportedFunction(name)
	if fn == nil {
		return nil, errors.NotFound(errors.PhaseCall, "guest export", name)
	}
	return fn.Call(ctx, params...)
}

// Client returns a boundary client whose arguments and return areas live
// in the guest's memory, allocated through its diplomat_alloc export.
func (g *Guest) Client(ctx context.Context) (*capi.MemoryClient, error) {
	alloc, err := NewAllocator(ctx, g.mod)
	if err != nil {
		return nil, err
	}
	return capi.NewMemoryClient(g.engine.exports, g.mem, alloc), nil
}

// Close closes the guest instance.
func (g *Guest) Close(ctx context.Context) error {
	return g.mod.Close(ctx)
}
