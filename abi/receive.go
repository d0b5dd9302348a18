package abi

import "github.com/wippyai/icu4x-go/errors"

// ReceiveBuf is a caller-allocated return area. The callee writes a tagged
// union into it; the caller reads the flag first, then the payload, then
// frees the buffer.
type ReceiveBuf struct {
	mem        Memory
	alloc      Allocator
	ptr        uint32
	size       uint32
	align      uint32
	flagOffset uint32
	hasFlag    bool
}

// NewReceiveBuf allocates a return area of the given size and alignment.
func NewReceiveBuf(mem Memory, alloc Allocator, size, align uint32) (*ReceiveBuf, error) {
	ptr, err := alloc.Alloc(size, align)
	if err != nil {
		return nil, err
	}
	return &ReceiveBuf{
		mem:   mem,
		alloc: alloc,
		ptr:   ptr,
		size:  size,
		align: align,
	}, nil
}

// NewResultBuf allocates a return area for a result layout.
func NewResultBuf(mem Memory, alloc Allocator, l ResultLayout) (*ReceiveBuf, error) {
	buf, err := NewReceiveBuf(mem, alloc, l.Size, l.Align)
	if err != nil {
		return nil, err
	}
	buf.flagOffset = l.FlagOffset
	buf.hasFlag = true
	return buf, nil
}

// NewOptionBuf allocates a return area for an option layout.
func NewOptionBuf(mem Memory, alloc Allocator, l OptionLayout) (*ReceiveBuf, error) {
	buf, err := NewReceiveBuf(mem, alloc, l.Size, l.Align)
	if err != nil {
		return nil, err
	}
	buf.flagOffset = l.FlagOffset
	buf.hasFlag = true
	return buf, nil
}

// Ptr returns the address to pass as the return pointer.
func (b *ReceiveBuf) Ptr() uint32 {
	return b.ptr
}

// Flag reads the discriminant. Buffers without a discriminant report true.
// Any byte other than 0 or 1 is invalid data.
func (b *ReceiveBuf) Flag() (bool, error) {
	if !b.hasFlag {
		return true, nil
	}
	v, err := b.mem.ReadU8(b.ptr + b.flagOffset)
	if err != nil {
		return false, err
	}
	if v > 1 {
		return false, errors.InvalidData(errors.PhaseLift, []string{"discriminant"}, "discriminant byte is not 0 or 1")
	}
	return v == 1, nil
}

// U32 reads a u32 payload at offset within the buffer.
func (b *ReceiveBuf) U32(offset uint32) (uint32, error) {
	return b.mem.ReadU32(b.ptr + offset)
}

// Bytes returns a copy of the whole buffer.
func (b *ReceiveBuf) Bytes() ([]byte, error) {
	view, err := b.mem.Read(b.ptr, b.size)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), view...), nil
}

// Free releases the buffer. Safe to call more than once.
func (b *ReceiveBuf) Free() {
	if b.ptr == 0 {
		return
	}
	b.alloc.Free(b.ptr, b.size, b.align)
	b.ptr = 0
}
