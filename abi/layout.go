package abi

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/icu4x-go/errors"
)

// PointerSize is the size of an opaque handle on a 32-bit boundary.
const PointerSize = 4

// Info describes the size and alignment of a boundary type.
type Info struct {
	FieldOffs map[string]uint32
	Size      uint32
	Align     uint32
}

// ResultLayout is the layout of a result<T, E> return area.
type ResultLayout struct {
	OK         Info
	Err        Info
	Size       uint32
	Align      uint32
	FlagOffset uint32
}

// OptionLayout is the layout of an option<T> return area.
type OptionLayout struct {
	Value      Info
	Size       uint32
	Align      uint32
	FlagOffset uint32
}

// AlignTo rounds offset up to a multiple of align.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Calculator computes C layouts for WIT type descriptors.
// It caches per TypeDef and is not safe for concurrent use.
type Calculator struct {
	cache map[*wit.TypeDef]Info
}

// NewCalculator creates a layout calculator.
func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

// Calculate returns the layout of t.
func (c *Calculator) Calculate(t wit.Type) Info {
	switch typ := t.(type) {
	case nil:
		return Info{Size: 0, Align: 1}
	case wit.U8, wit.S8, wit.Bool:
		return Info{Size: 1, Align: 1}
	case wit.U16, wit.S16:
		return Info{Size: 2, Align: 2}
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return Info{Size: 4, Align: 4}
	case wit.U64, wit.S64, wit.F64:
		return Info{Size: 8, Align: 8}
	case wit.String:
		return Info{Size: 8, Align: 4}
	case *wit.TypeDef:
		return c.calculateTypeDef(typ)
	default:
		return Info{Size: 0, Align: 1}
	}
}

func (c *Calculator) calculateTypeDef(t *wit.TypeDef) Info {
	if cached, ok := c.cache[t]; ok {
		return cached
	}

	var info Info

	switch kind := t.Kind.(type) {
	case *wit.Record:
		info = c.calculateRecord(kind)
	case *wit.Enum:
		// C enums are int sized regardless of case count.
		info = Info{Size: 4, Align: 4}
	case *wit.Own, *wit.Borrow, *wit.Resource:
		info = Info{Size: PointerSize, Align: PointerSize}
	case *wit.List:
		info = Info{Size: 8, Align: 4}
	case *wit.Option:
		l := c.option(kind)
		info = Info{Size: l.Size, Align: l.Align}
	case *wit.Result:
		l := c.result(kind)
		info = Info{Size: l.Size, Align: l.Align}
	case wit.Type:
		info = c.Calculate(kind)
	default:
		info = Info{Size: 0, Align: 1}
	}

	c.cache[t] = info
	return info
}

func (c *Calculator) calculateRecord(r *wit.Record) Info {
	if len(r.Fields) == 0 {
		return Info{Size: 0, Align: 1}
	}

	fieldOffs := make(map[string]uint32, len(r.Fields))
	maxAlign := uint32(1)
	offset := uint32(0)

	for _, field := range r.Fields {
		fieldLayout := c.Calculate(field.Type)

		offset = AlignTo(offset, fieldLayout.Align)
		fieldOffs[field.Name] = offset

		if fieldLayout.Align > maxAlign {
			maxAlign = fieldLayout.Align
		}

		offset += fieldLayout.Size
	}

	return Info{
		Size:      AlignTo(offset, maxAlign),
		Align:     maxAlign,
		FieldOffs: fieldOffs,
	}
}

func (c *Calculator) result(r *wit.Result) ResultLayout {
	okLayout := c.Calculate(r.OK)
	errLayout := c.Calculate(r.Err)

	maxAlign := max(okLayout.Align, errLayout.Align, 1)
	unionSize := max(okLayout.Size, errLayout.Size)

	return ResultLayout{
		OK:         okLayout,
		Err:        errLayout,
		FlagOffset: unionSize,
		Size:       AlignTo(unionSize+1, maxAlign),
		Align:      maxAlign,
	}
}

func (c *Calculator) option(o *wit.Option) OptionLayout {
	inner := c.Calculate(o.Type)
	align := max(inner.Align, 1)

	return OptionLayout{
		Value:      inner,
		FlagOffset: inner.Size,
		Size:       AlignTo(inner.Size+1, align),
		Align:      align,
	}
}

// Result returns the return-area layout of a result type.
func (c *Calculator) Result(t wit.Type) (ResultLayout, error) {
	def, ok := t.(*wit.TypeDef)
	if ok {
		if r, ok := def.Kind.(*wit.Result); ok {
			return c.result(r), nil
		}
	}
	return ResultLayout{}, errors.TypeMismatch(errors.PhaseLayout, nil, errors.TypeName(t), "result")
}

// Option returns the return-area layout of an option type.
func (c *Calculator) Option(t wit.Type) (OptionLayout, error) {
	def, ok := t.(*wit.TypeDef)
	if ok {
		if o, ok := def.Kind.(*wit.Option); ok {
			return c.option(o), nil
		}
	}
	return OptionLayout{}, errors.TypeMismatch(errors.PhaseLayout, nil, errors.TypeName(t), "option")
}
