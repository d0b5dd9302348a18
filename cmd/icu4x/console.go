package main

import (
	"fmt"
	"strconv"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/capi"
)

// console calls boundary functions by name with textual arguments, the
// way a guest would: strings and return areas live in linear memory and
// handles are plain numbers.
type console struct {
	lib     *capi.Library
	exports *capi.Exports
	mem     *abi.LinearMemory
	calc    *abi.Calculator
}

func newConsole(lib *capi.Library) (*console, error) {
	exports, err := capi.NewExports(lib)
	if err != nil {
		return nil, err
	}
	return &console{
		lib:     lib,
		exports: exports,
		mem:     abi.NewLinearMemory(1, 64),
		calc:    abi.NewCalculator(),
	}, nil
}

type enumCodec struct {
	parse func(string) (uint32, bool)
	name  func(uint32) string
}

func codecOf[T abi.Discriminant](e *abi.Enum[T]) enumCodec {
	return enumCodec{
		parse: func(s string) (uint32, bool) {
			v, ok := e.Parse(s)
			if !ok {
				return 0, false
			}
			return e.MustLower(v), true
		},
		name: func(raw uint32) string {
			v, err := e.Lift(raw)
			if err != nil {
				return fmt.Sprintf("<invalid %d>", raw)
			}
			return e.CaseName(v)
		},
	}
}

var enumCodecs = map[string]enumCodec{
	capi.AnyCalendarKinds.Name():  codecOf(capi.AnyCalendarKinds),
	capi.DataErrors.Name():        codecOf(capi.DataErrors),
	capi.LocaleParseErrors.Name(): codecOf(capi.LocaleParseErrors),
	capi.HeadAdjustments.Name():   codecOf(capi.HeadAdjustments),
	capi.TrailingCases.Name():     codecOf(capi.TrailingCases),
}

// call lowers args, invokes the export and renders its result.
func (c *console) call(name string, args []string) (string, error) {
	sym, ok := c.exports.Surface().Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown function %s", name)
	}
	if len(args) != len(sym.Params) {
		return "", fmt.Errorf("%s takes %d arguments, got %d", name, len(sym.Params), len(args))
	}

	var flat []uint32
	var release []func()
	defer func() {
		for _, fn := range release {
			fn()
		}
	}()

	var ret *abi.ReceiveBuf
	if info, ok := c.returnArea(sym.Result); ok {
		buf, err := abi.NewReceiveBuf(c.mem, c.mem, info.Size, info.Align)
		if err != nil {
			return "", err
		}
		release = append(release, buf.Free)
		ret = buf
		flat = append(flat, buf.Ptr())
	}

	for i, p := range sym.Params {
		vals, free, err := c.lowerArg(p, strings.TrimSpace(args[i]))
		if err != nil {
			return "", fmt.Errorf("%s: %w", p.Name, err)
		}
		if free != nil {
			release = append(release, free)
		}
		flat = append(flat, vals...)
	}

	result, err := c.exports.Call(c.mem, name, flat...)
	if err != nil {
		return "", err
	}
	if ret != nil {
		return c.liftReturnArea(sym.Result, ret.Ptr())
	}
	if sym.Result == nil {
		return "ok", nil
	}
	return c.liftFlat(sym.Result, result), nil
}

func (c *console) returnArea(t wit.Type) (abi.Info, bool) {
	def, ok := t.(*wit.TypeDef)
	if !ok {
		return abi.Info{}, false
	}
	switch def.Kind.(type) {
	case *wit.Result, *wit.Option, *wit.Record:
		return c.calc.Calculate(def), true
	}
	return abi.Info{}, false
}

func (c *console) lowerArg(p capi.Param, s string) ([]uint32, func(), error) {
	switch t := p.Type.(type) {
	case wit.String:
		arg, err := abi.LowerString(c.mem, c.mem, s)
		if err != nil {
			return nil, nil, err
		}
		return []uint32{arg.Ptr, arg.Len}, arg.Free, nil
	case *wit.TypeDef:
		switch k := t.Kind.(type) {
		case *wit.Enum:
			v, err := parseEnum(t, s)
			return []uint32{v}, nil, err
		case *wit.Record:
			ptr, err := c.lowerRecord(t, k, s)
			if err != nil {
				return nil, nil, err
			}
			info := c.calc.Calculate(t)
			return []uint32{ptr}, func() { c.mem.Free(ptr, info.Size, info.Align) }, nil
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, nil, fmt.Errorf("want a handle number, got %q", s)
	}
	return []uint32{uint32(v)}, nil, nil
}

func parseEnum(def *wit.TypeDef, s string) (uint32, error) {
	if codec, ok := enumCodecs[typeName(def)]; ok {
		if v, ok := codec.parse(s); ok {
			return v, nil
		}
	}
	// Raw discriminants are passed through unchecked.
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown %s %q", typeName(def), s)
	}
	return uint32(v), nil
}

// lowerRecord parses "v1,v2,..." in field order.
func (c *console) lowerRecord(def *wit.TypeDef, r *wit.Record, s string) (uint32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(r.Fields) {
		return 0, fmt.Errorf("want %d comma separated fields", len(r.Fields))
	}
	fields := make(map[string]uint32, len(r.Fields))
	for i, f := range r.Fields {
		fd, ok := f.Type.(*wit.TypeDef)
		if !ok {
			return 0, fmt.Errorf("field %s: unsupported type", f.Name)
		}
		v, err := parseEnum(fd, strings.TrimSpace(parts[i]))
		if err != nil {
			return 0, fmt.Errorf("field %s: %w", f.Name, err)
		}
		fields[f.Name] = v
	}
	info := c.calc.Calculate(def)
	ptr, err := c.mem.Alloc(info.Size, info.Align)
	if err != nil {
		return 0, err
	}
	if err := abi.StoreRecordU32(c.mem, ptr, info, fields); err != nil {
		c.mem.Free(ptr, info.Size, info.Align)
		return 0, err
	}
	return ptr, nil
}

func (c *console) liftReturnArea(t wit.Type, ptr uint32) (string, error) {
	def := t.(*wit.TypeDef)
	switch k := def.Kind.(type) {
	case *wit.Result:
		l, err := c.calc.Result(def)
		if err != nil {
			return "", err
		}
		ok, payload, err := abi.LoadResultU32(c.mem, ptr, l)
		if err != nil {
			return "", err
		}
		if ok {
			return "ok(" + c.liftFlat(k.OK, payload) + ")", nil
		}
		return "err(" + c.liftFlat(k.Err, payload) + ")", nil

	case *wit.Option:
		l, err := c.calc.Option(def)
		if err != nil {
			return "", err
		}
		o, err := abi.LoadOptionU32(c.mem, ptr, l)
		if err != nil {
			return "", err
		}
		if v, ok := o.Get(); ok {
			return "some(" + c.liftFlat(k.Type, v) + ")", nil
		}
		return "none", nil

	case *wit.Record:
		names := make([]string, len(k.Fields))
		for i, f := range k.Fields {
			names[i] = f.Name
		}
		vals, err := abi.LoadRecordU32(c.mem, ptr, c.calc.Calculate(def), names...)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(k.Fields))
		for i, f := range k.Fields {
			parts[i] = f.Name + ": " + c.liftFlat(f.Type, vals[f.Name])
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	}
	return "", fmt.Errorf("no return area for %s", witTypeStr(t))
}

func (c *console) liftFlat(t wit.Type, v uint32) string {
	switch t := t.(type) {
	case wit.Bool:
		return strconv.FormatBool(v != 0)
	case *wit.TypeDef:
		switch t.Kind.(type) {
		case *wit.Enum:
			if codec, ok := enumCodecs[typeName(t)]; ok {
				return codec.name(v)
			}
		case *wit.Own, *wit.Borrow:
			return witTypeStr(t) + "#" + strconv.FormatUint(uint64(v), 10)
		}
	}
	return strconv.FormatUint(uint64(v), 10)
}

func typeName(def *wit.TypeDef) string {
	if def.Name != nil {
		return *def.Name
	}
	return ""
}

func witTypeStr(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U32:
		return "u32"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		switch k := v.Kind.(type) {
		case *wit.Own:
			return "own<" + witTypeStr(k.Type) + ">"
		case *wit.Borrow:
			return "borrow<" + witTypeStr(k.Type) + ">"
		case *wit.Result:
			return "result<" + witTypeStr(k.OK) + ", " + witTypeStr(k.Err) + ">"
		case *wit.Option:
			return "option<" + witTypeStr(k.Type) + ">"
		}
		return "typedef"
	default:
		return fmt.Sprintf("%T", t)
	}
}
