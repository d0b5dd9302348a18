package abi

import (
	"encoding/binary"
	"sort"
	"sync"

	icu4xgo "github.com/wippyai/icu4x-go"
	"github.com/wippyai/icu4x-go/errors"
)

// Memory and Allocator are the root package interfaces, re-exported so
// callers of this package need only one import.
type (
	Memory    = icu4xgo.Memory
	Allocator = icu4xgo.Allocator
)

const (
	// PageSize matches the wasm page size.
	PageSize = 64 * 1024

	// reserved keeps offset 0 unused so a zero pointer is always null.
	reserved = 16
)

// Stats reports allocator activity. Live counts drop back to zero when
// every allocation has been freed.
type Stats struct {
	Allocs    uint64
	Frees     uint64
	LiveCount int
	LiveBytes uint32
}

type block struct {
	ptr  uint32
	size uint32
}

// LinearMemory is a growable, byte-slice backed linear memory with a
// first-fit allocator. It is safe for concurrent use.
type LinearMemory struct {
	data     []byte
	live     map[uint32]uint32
	free     []block
	mu       sync.Mutex
	top      uint32
	maxPages uint32
	stats    Stats
}

// NewLinearMemory creates a memory with initial pages, growable up to maxPages.
func NewLinearMemory(pages, maxPages uint32) *LinearMemory {
	if pages == 0 {
		pages = 1
	}
	if maxPages < pages {
		maxPages = pages
	}
	return &LinearMemory{
		data:     make([]byte, pages*PageSize),
		live:     make(map[uint32]uint32),
		top:      reserved,
		maxPages: maxPages,
	}
}

// Size returns the current memory size in bytes.
func (m *LinearMemory) Size() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return uint32(len(m.data))
}

// Stats returns a snapshot of allocator counters.
func (m *LinearMemory) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

func (m *LinearMemory) bounds(offset, length uint32) bool {
	end := uint64(offset) + uint64(length)
	return end <= uint64(len(m.data))
}

// Read returns a copy of length bytes at offset.
func (m *LinearMemory) Read(offset, length uint32) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.bounds(offset, length) {
		return nil, errors.OutOfBounds(errors.PhaseLift, offset, length)
	}
	out := make([]byte, length)
	copy(out, m.data[offset:offset+length])
	return out, nil
}

// Write copies data to offset.
func (m *LinearMemory) Write(offset uint32, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.bounds(offset, uint32(len(data))) {
		return errors.OutOfBounds(errors.PhaseLower, offset, uint32(len(data)))
	}
	copy(m.data[offset:], data)
	return nil
}

// ReadU8 reads one byte.
func (m *LinearMemory) ReadU8(offset uint32) (uint8, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.bounds(offset, 1) {
		return 0, errors.OutOfBounds(errors.PhaseLift, offset, 1)
	}
	return m.data[offset], nil
}

// ReadU32 reads a little-endian u32.
func (m *LinearMemory) ReadU32(offset uint32) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.bounds(offset, 4) {
		return 0, errors.OutOfBounds(errors.PhaseLift, offset, 4)
	}
	return binary.LittleEndian.Uint32(m.data[offset:]), nil
}

// WriteU8 writes one byte.
func (m *LinearMemory) WriteU8(offset uint32, value uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.bounds(offset, 1) {
		return errors.OutOfBounds(errors.PhaseLower, offset, 1)
	}
	m.data[offset] = value
	return nil
}

// WriteU32 writes a little-endian u32.
func (m *LinearMemory) WriteU32(offset uint32, value uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.bounds(offset, 4) {
		return errors.OutOfBounds(errors.PhaseLower, offset, 4)
	}
	binary.LittleEndian.PutUint32(m.data[offset:], value)
	return nil
}

// Alloc returns a zeroed region of size bytes aligned to align.
func (m *LinearMemory) Alloc(size, align uint32) (uint32, error) {
	if align == 0 {
		align = 1
	}
	if size == 0 {
		size = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ptr, ok := m.takeFree(size, align)
	if !ok {
		ptr = AlignTo(m.top, align)
		end := uint64(ptr) + uint64(size)
		if end > uint64(len(m.data)) && !m.grow(end) {
			return 0, errors.AllocationFailed(errors.PhaseLower, size, align)
		}
		m.top = uint32(end)
	}

	clear(m.data[ptr : ptr+size])
	m.live[ptr] = size
	m.stats.Allocs++
	m.stats.LiveCount++
	m.stats.LiveBytes += size
	return ptr, nil
}

// Free releases a region returned by Alloc. Unknown pointers are ignored.
func (m *LinearMemory) Free(ptr, size, align uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actual, ok := m.live[ptr]
	if !ok {
		return
	}
	delete(m.live, ptr)
	m.free = append(m.free, block{ptr: ptr, size: actual})
	m.stats.Frees++
	m.stats.LiveCount--
	m.stats.LiveBytes -= actual
}

// takeFree finds the first free block that fits size at align, splitting
// off the unused tail. Caller holds the lock.
func (m *LinearMemory) takeFree(size, align uint32) (uint32, bool) {
	for i, b := range m.free {
		ptr := AlignTo(b.ptr, align)
		if ptr != b.ptr || b.size < size {
			continue
		}
		m.free = append(m.free[:i], m.free[i+1:]...)
		if rest := b.size - size; rest > 0 {
			m.free = append(m.free, block{ptr: ptr + size, size: rest})
		}
		sort.Slice(m.free, func(a, b int) bool { return m.free[a].ptr < m.free[b].ptr })
		return ptr, true
	}
	return 0, false
}

// grow extends memory by whole pages to cover end. Caller holds the lock.
func (m *LinearMemory) grow(end uint64) bool {
	pages := (end + PageSize - 1) / PageSize
	if pages > uint64(m.maxPages) {
		return false
	}
	next := make([]byte, pages*PageSize)
	copy(next, m.data)
	m.data = next
	return true
}
