package abi

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/icu4x-go/errors"
)

// Discriminant is the integer type behind a boundary enum.
type Discriminant interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// EnumCase names one member of a closed enum.
type EnumCase[T Discriminant] struct {
	Name  string
	Value T
}

// Enum is a closed, bidirectional mapping between a Go enum and its
// boundary discriminant. Discriminants need not be contiguous.
type Enum[T Discriminant] struct {
	byValue map[uint32]T
	names   map[T]string
	witName string
	cases   []EnumCase[T]
}

// NewEnum builds an enum codec. It panics on duplicate values or names,
// since both indicate a broken declaration rather than bad input.
func NewEnum[T Discriminant](witName string, cases ...EnumCase[T]) *Enum[T] {
	e := &Enum[T]{
		byValue: make(map[uint32]T, len(cases)),
		names:   make(map[T]string, len(cases)),
		witName: witName,
		cases:   cases,
	}
	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		if _, dup := e.names[c.Value]; dup || seen[c.Name] {
			panic("abi: duplicate case in enum " + witName + ": " + c.Name)
		}
		seen[c.Name] = true
		e.byValue[uint32(c.Value)] = c.Value
		e.names[c.Value] = c.Name
	}
	return e
}

// Name returns the WIT name of the enum.
func (e *Enum[T]) Name() string {
	return e.witName
}

// Cases returns the declared cases in declaration order.
func (e *Enum[T]) Cases() []EnumCase[T] {
	out := make([]EnumCase[T], len(e.cases))
	copy(out, e.cases)
	return out
}

// Len returns the number of cases.
func (e *Enum[T]) Len() int {
	return len(e.cases)
}

// Valid reports whether v is a member of the closed set.
func (e *Enum[T]) Valid(v T) bool {
	_, ok := e.names[v]
	return ok
}

// CaseName returns the case name of v, or "" if v is not a member.
func (e *Enum[T]) CaseName(v T) string {
	return e.names[v]
}

// Parse returns the member with the given case name.
func (e *Enum[T]) Parse(name string) (T, bool) {
	for _, c := range e.cases {
		if c.Name == name {
			return c.Value, true
		}
	}
	var zero T
	return zero, false
}

// Lower converts a Go value to its boundary discriminant.
func (e *Enum[T]) Lower(v T) (uint32, error) {
	if !e.Valid(v) {
		return 0, errors.InvalidEnum(errors.PhaseLower, nil, v, e.witName)
	}
	return uint32(v), nil
}

// Lift converts a boundary discriminant to the Go value.
// Values outside the closed set are protocol faults.
func (e *Enum[T]) Lift(raw uint32) (T, error) {
	v, ok := e.byValue[raw]
	if !ok {
		var zero T
		return zero, errors.InvalidEnum(errors.PhaseLift, nil, raw, e.witName)
	}
	return v, nil
}

// MustLift is Lift for discriminants produced by this process; an unknown
// value means the two sides disagree on the enum and panics.
func (e *Enum[T]) MustLift(raw uint32) T {
	v, err := e.Lift(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// MustLower is Lower for values that are known members.
func (e *Enum[T]) MustLower(v T) uint32 {
	raw, err := e.Lower(v)
	if err != nil {
		panic(err)
	}
	return raw
}

// WIT returns a type descriptor for the enum. Case order follows the
// declaration, which is the order documented in the C header.
func (e *Enum[T]) WIT() *wit.TypeDef {
	cases := make([]wit.EnumCase, len(e.cases))
	for i, c := range e.cases {
		cases[i] = wit.EnumCase{Name: c.Name}
	}
	name := e.witName
	return &wit.TypeDef{
		Name: &name,
		Kind: &wit.Enum{Cases: cases},
	}
}

// Map is a total bidirectional mapping between two closed enums, used
// where the wrapper keeps its own enum type apart from the boundary one.
type Map[W comparable, B comparable] struct {
	toBoundary map[W]B
	toWrapper  map[B]W
	name       string
}

// NewMap builds a mapping from wrapper/boundary pairs. It panics if the
// pairs are not one to one.
func NewMap[W comparable, B comparable](name string, pairs map[W]B) *Map[W, B] {
	m := &Map[W, B]{
		toBoundary: make(map[W]B, len(pairs)),
		toWrapper:  make(map[B]W, len(pairs)),
		name:       name,
	}
	for w, b := range pairs {
		if _, dup := m.toWrapper[b]; dup {
			panic("abi: mapping " + name + " is not one to one")
		}
		m.toBoundary[w] = b
		m.toWrapper[b] = w
	}
	return m
}

// Len returns the number of mapped pairs.
func (m *Map[W, B]) Len() int {
	return len(m.toBoundary)
}

// ToBoundary maps a wrapper value to its boundary value.
func (m *Map[W, B]) ToBoundary(w W) (B, error) {
	b, ok := m.toBoundary[w]
	if !ok {
		return b, errors.InvalidEnum(errors.PhaseLower, nil, w, m.name)
	}
	return b, nil
}

// ToWrapper maps a boundary value to its wrapper value.
func (m *Map[W, B]) ToWrapper(b B) (W, error) {
	w, ok := m.toWrapper[b]
	if !ok {
		return w, errors.InvalidEnum(errors.PhaseLift, nil, b, m.name)
	}
	return w, nil
}
