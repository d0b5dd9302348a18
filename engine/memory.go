package engine

import (
	"context"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/errors"
)

// Guest allocator exports, named after the diplomat wasm runtime.
const (
	AllocExport = "diplomat_alloc"
	FreeExport  = "diplomat_free"
)

var (
	_ abi.Memory    = (*Memory)(nil)
	_ abi.Allocator = (*Allocator)(nil)
)

// Memory adapts a guest's wazero memory to abi.Memory.
type Memory struct {
	mem api.Memory
}

// WrapMemory wraps mem. It returns nil if mem is nil.
func WrapMemory(mem api.Memory) *Memory {
	if mem == nil {
		return nil
	}
	return &Memory{mem: mem}
}

// Size returns the memory size in bytes.
func (m *Memory) Size() uint32 {
	return m.mem.Size()
}

// Read returns a view of guest memory. The slice aliases the guest's
// memory and is invalidated by growth.
func (m *Memory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseLift, offset, length)
	}
	return data, nil
}

func (m *Memory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return errors.OutOfBounds(errors.PhaseLower, offset, uint32(len(data)))
	}
	return nil
}

func (m *Memory) ReadU8(offset uint32) (uint8, error) {
	v, ok := m.mem.ReadByte(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseLift, offset, 1)
	}
	return v, nil
}

func (m *Memory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseLift, offset, 4)
	}
	return v, nil
}

func (m *Memory) WriteU8(offset uint32, value uint8) error {
	if !m.mem.WriteByte(offset, value) {
		return errors.OutOfBounds(errors.PhaseLower, offset, 1)
	}
	return nil
}

func (m *Memory) WriteU32(offset uint32, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return errors.OutOfBounds(errors.PhaseLower, offset, 4)
	}
	return nil
}

// Allocator calls the guest's diplomat_alloc and diplomat_free exports.
type Allocator struct {
	ctx   context.Context
	alloc api.Function
	free  api.Function
}

// NewAllocator looks up the allocator exports on mod.
func NewAllocator(ctx context.Context, mod api.Module) (*Allocator, error) {
	alloc := mod.ExportedFunction(AllocExport)
	if alloc == nil {
		return nil, errors.NotFound(errors.PhaseHost, "guest export", AllocExport)
	}
	free := mod.ExportedFunction(FreeExport)
	if free == nil {
		return nil, errors.NotFound(errors.PhaseHost, "guest export", FreeExport)
	}
	return &Allocator{ctx: ctx, alloc: alloc, free: free}, nil
}

// Alloc allocates size bytes in guest memory.
func (a *Allocator) Alloc(size, align uint32) (uint32, error) {
	results, err := a.alloc.Call(a.ctx, api.EncodeU32(size), api.EncodeU32(align))
	if err != nil {
		return 0, errors.New(errors.PhaseLower, errors.KindAllocation).
			Cause(err).
			Detail("%s(%d, %d)", AllocExport, size, align).
			Build()
	}
	ptr := api.DecodeU32(results[0])
	if ptr == 0 {
		return 0, errors.AllocationFailed(errors.PhaseLower, size, align)
	}
	return ptr, nil
}

// Free releases a region returned by Alloc.
func (a *Allocator) Free(ptr, size, align uint32) {
	if _, err := a.free.Call(a.ctx, api.EncodeU32(ptr), api.EncodeU32(size), api.EncodeU32(align)); err != nil {
		Logger().Debug("guest free failed", zap.Uint32("ptr", ptr), zap.Error(err))
	}
}
