package abi

import (
	"testing"

	"github.com/wippyai/icu4x-go/errors"
)

func TestLinearMemory_AllocFree(t *testing.T) {
	mem := NewLinearMemory(1, 1)

	a, err := mem.Alloc(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	if a == 0 || a%4 != 0 {
		t.Fatalf("ptr = %d, want non-zero multiple of 4", a)
	}
	b, err := mem.Alloc(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if b < a+8 {
		t.Fatalf("allocations overlap: a=%d b=%d", a, b)
	}

	s := mem.Stats()
	if s.LiveCount != 2 || s.LiveBytes != 11 || s.Allocs != 2 {
		t.Fatalf("stats = %+v", s)
	}

	mem.Free(a, 8, 4)
	mem.Free(b, 3, 1)
	s = mem.Stats()
	if s.LiveCount != 0 || s.LiveBytes != 0 || s.Frees != 2 {
		t.Fatalf("stats after free = %+v", s)
	}
}

func TestLinearMemory_ReusesFreedBlock(t *testing.T) {
	mem := NewLinearMemory(1, 1)

	a, _ := mem.Alloc(16, 4)
	if err := mem.WriteU32(a, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	mem.Free(a, 16, 4)

	b, err := mem.Alloc(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	if b != a {
		t.Fatalf("expected reuse of %d, got %d", a, b)
	}
	v, _ := mem.ReadU32(b)
	if v != 0 {
		t.Fatalf("reused block not zeroed: %#x", v)
	}
}

func TestLinearMemory_FreeUnknownIgnored(t *testing.T) {
	mem := NewLinearMemory(1, 1)
	mem.Free(1234, 4, 4)
	if s := mem.Stats(); s.Frees != 0 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestLinearMemory_Grow(t *testing.T) {
	mem := NewLinearMemory(1, 3)

	if _, err := mem.Alloc(PageSize, 1); err != nil {
		t.Fatalf("alloc past first page: %v", err)
	}
	if mem.Size() != 2*PageSize {
		t.Fatalf("size = %d", mem.Size())
	}

	_, err := mem.Alloc(4*PageSize, 1)
	if !errors.IsKind(err, errors.KindAllocation) {
		t.Fatalf("err = %v, want allocation failure", err)
	}
}

func TestLinearMemory_Bounds(t *testing.T) {
	mem := NewLinearMemory(1, 1)
	end := mem.Size()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"read", func() error { _, err := mem.Read(end-2, 4); return err }},
		{"write", func() error { return mem.Write(end, []byte{1}) }},
		{"read u8", func() error { _, err := mem.ReadU8(end); return err }},
		{"read u32", func() error { _, err := mem.ReadU32(end - 3); return err }},
		{"write u8", func() error { return mem.WriteU8(end, 1) }},
		{"write u32", func() error { return mem.WriteU32(end-1, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.IsKind(err, errors.KindOutOfBounds) {
				t.Errorf("err = %v, want out_of_bounds", err)
			}
		})
	}
}

func TestLinearMemory_LittleEndian(t *testing.T) {
	mem := NewLinearMemory(1, 1)
	ptr, _ := mem.Alloc(4, 4)
	if err := mem.WriteU32(ptr, 0x04030201); err != nil {
		t.Fatal(err)
	}
	b, err := mem.Read(ptr, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []byte{1, 2, 3, 4} {
		if b[i] != want {
			t.Fatalf("byte %d = %d, want %d", i, b[i], want)
		}
	}
}

func TestReceiveBuf(t *testing.T) {
	mem := NewLinearMemory(1, 1)
	l := ResultLayout{Size: 8, Align: 4, FlagOffset: 4}

	buf, err := NewResultBuf(mem, mem, l)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Ptr()%4 != 0 {
		t.Fatalf("misaligned ptr %d", buf.Ptr())
	}
	if ok, _ := buf.Flag(); ok {
		t.Fatal("fresh buffer should read as failure")
	}

	if err := StoreResultU32(mem, buf.Ptr(), l, true, 42); err != nil {
		t.Fatal(err)
	}
	if ok, _ := buf.Flag(); !ok {
		t.Fatal("flag not set")
	}
	if v, _ := buf.U32(0); v != 42 {
		t.Fatalf("payload = %d", v)
	}
	raw, _ := buf.Bytes()
	if len(raw) != 8 || raw[4] != 1 {
		t.Fatalf("bytes = %v", raw)
	}

	buf.Free()
	buf.Free()
	if s := mem.Stats(); s.LiveCount != 0 || s.Frees != 1 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestReceiveBuf_RejectsBadDiscriminant(t *testing.T) {
	mem := NewLinearMemory(1, 1)
	l := ResultLayout{Size: 8, Align: 4, FlagOffset: 4}
	buf, err := NewResultBuf(mem, mem, l)
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Free()

	_ = mem.WriteU8(buf.Ptr()+l.FlagOffset, 2)
	if _, err := buf.Flag(); !errors.IsKind(err, errors.KindInvalidData) {
		t.Fatalf("err = %v", err)
	}
}

// viewMemory hands out slices of the backing store, like guest memory.
type viewMemory struct{ *LinearMemory }

func (m viewMemory) Read(offset, length uint32) ([]byte, error) {
	return m.data[offset : offset+length], nil
}

func TestReceiveBuf_BytesIsCopy(t *testing.T) {
	mem := viewMemory{NewLinearMemory(1, 1)}
	buf, err := NewReceiveBuf(mem, mem, 8, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Free()

	_ = mem.WriteU32(buf.Ptr(), 7)
	raw, err := buf.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	_ = mem.WriteU32(buf.Ptr(), 9)
	if raw[0] != 7 {
		t.Fatalf("copy changed with memory: %v", raw)
	}
}

func TestReceiveBuf_NoFlag(t *testing.T) {
	mem := NewLinearMemory(1, 1)
	buf, err := NewReceiveBuf(mem, mem, 8, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Free()
	if ok, err := buf.Flag(); !ok || err != nil {
		t.Fatalf("Flag = %v, %v", ok, err)
	}
}
