package abi

import (
	"unicode/utf8"

	"github.com/wippyai/icu4x-go/errors"
)

// StoreResultU32 writes a result whose active arm is a single u32
// (a handle or an enum discriminant) into the return area at ptr.
func StoreResultU32(mem Memory, ptr uint32, l ResultLayout, ok bool, payload uint32) error {
	if err := mem.WriteU32(ptr, payload); err != nil {
		return err
	}
	return mem.WriteU8(ptr+l.FlagOffset, boolByte(ok))
}

// LoadResultU32 reads a result written by StoreResultU32. The flag is read
// before the payload.
func LoadResultU32(mem Memory, ptr uint32, l ResultLayout) (bool, uint32, error) {
	flag, err := mem.ReadU8(ptr + l.FlagOffset)
	if err != nil {
		return false, 0, err
	}
	if flag > 1 {
		return false, 0, errors.InvalidData(errors.PhaseLift, []string{"is_ok"}, "discriminant byte is not 0 or 1")
	}
	payload, err := mem.ReadU32(ptr)
	if err != nil {
		return false, 0, err
	}
	return flag == 1, payload, nil
}

// StoreOptionU32 writes an option of a u32 into the return area at ptr.
func StoreOptionU32(mem Memory, ptr uint32, l OptionLayout, some bool, value uint32) error {
	if err := mem.WriteU32(ptr, value); err != nil {
		return err
	}
	return mem.WriteU8(ptr+l.FlagOffset, boolByte(some))
}

// LoadOptionU32 reads an option written by StoreOptionU32.
func LoadOptionU32(mem Memory, ptr uint32, l OptionLayout) (Option[uint32], error) {
	flag, err := mem.ReadU8(ptr + l.FlagOffset)
	if err != nil {
		return None[uint32](), err
	}
	switch flag {
	case 0:
		return None[uint32](), nil
	case 1:
		v, err := mem.ReadU32(ptr)
		if err != nil {
			return None[uint32](), err
		}
		return Some(v), nil
	default:
		return None[uint32](), errors.InvalidData(errors.PhaseLift, []string{"is_some"}, "discriminant byte is not 0 or 1")
	}
}

// StoreRecordU32 writes a record whose fields are all u32-sized, using the
// field offsets of its layout.
func StoreRecordU32(mem Memory, ptr uint32, info Info, fields map[string]uint32) error {
	for name, v := range fields {
		off, ok := info.FieldOffs[name]
		if !ok {
			return errors.New(errors.PhaseLower, errors.KindInvalidData).
				Path(name).
				Detail("field not in layout").
				Build()
		}
		if err := mem.WriteU32(ptr+off, v); err != nil {
			return err
		}
	}
	return nil
}

// LoadRecordU32 reads the named u32 fields of a record.
func LoadRecordU32(mem Memory, ptr uint32, info Info, names ...string) (map[string]uint32, error) {
	out := make(map[string]uint32, len(names))
	for _, name := range names {
		off, ok := info.FieldOffs[name]
		if !ok {
			return nil, errors.New(errors.PhaseLift, errors.KindInvalidData).
				Path(name).
				Detail("field not in layout").
				Build()
		}
		v, err := mem.ReadU32(ptr + off)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// StringArg is a UTF-8 string lowered into linear memory as ptr/len.
type StringArg struct {
	alloc Allocator
	Ptr   uint32
	Len   uint32
}

// LowerString copies s into freshly allocated memory.
func LowerString(mem Memory, alloc Allocator, s string) (*StringArg, error) {
	if len(s) == 0 {
		return &StringArg{alloc: alloc}, nil
	}
	ptr, err := alloc.Alloc(uint32(len(s)), 1)
	if err != nil {
		return nil, err
	}
	if err := mem.Write(ptr, []byte(s)); err != nil {
		alloc.Free(ptr, uint32(len(s)), 1)
		return nil, err
	}
	return &StringArg{alloc: alloc, Ptr: ptr, Len: uint32(len(s))}, nil
}

// Free releases the string memory.
func (s *StringArg) Free() {
	if s.Ptr == 0 {
		return
	}
	s.alloc.Free(s.Ptr, s.Len, 1)
	s.Ptr = 0
}

// LiftString reads and validates a UTF-8 string view.
func LiftString(mem Memory, ptr, length uint32) (string, error) {
	if length == 0 {
		return "", nil
	}
	data, err := mem.Read(ptr, length)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.InvalidUTF8(errors.PhaseLift, nil, data)
	}
	return string(data), nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
