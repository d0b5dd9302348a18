package abi

import (
	"testing"

	"github.com/wippyai/icu4x-go/errors"
)

type code uint32

func expectWrongArm(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.IsKind(err, errors.KindWrongArm) {
			t.Fatalf("expected wrong_arm panic, got %v", r)
		}
	}()
	fn()
}

func TestResult_Ok(t *testing.T) {
	r := Ok[uint32, code](7)
	if !r.IsOK() {
		t.Fatal("IsOK = false")
	}
	if v, ok := r.Get(); !ok || v != 7 {
		t.Fatalf("Get = %d, %v", v, ok)
	}
	if _, failed := r.GetErr(); failed {
		t.Fatal("GetErr reported failure")
	}
	if r.Value() != 7 {
		t.Fatal("Value mismatch")
	}
	expectWrongArm(t, func() { r.Err() })
}

func TestResult_Err(t *testing.T) {
	r := Err[uint32](code(2))
	if r.IsOK() {
		t.Fatal("IsOK = true")
	}
	if e, failed := r.GetErr(); !failed || e != 2 {
		t.Fatalf("GetErr = %d, %v", e, failed)
	}
	if r.Err() != 2 {
		t.Fatal("Err mismatch")
	}
	expectWrongArm(t, func() { r.Value() })
}

func TestResult_ZeroValueIsErr(t *testing.T) {
	var r Result[uint32, code]
	if r.IsOK() {
		t.Fatal("zero Result should not be OK")
	}
}

func TestMapResult(t *testing.T) {
	double := func(v uint32) uint64 { return uint64(v) * 2 }

	ok := MapResult(Ok[uint32, code](21), double)
	if ok.Value() != 42 {
		t.Fatalf("mapped = %d", ok.Value())
	}

	failed := MapResult(Err[uint32](code(5)), double)
	if failed.IsOK() || failed.Err() != 5 {
		t.Fatal("failure should pass through unchanged")
	}
}

func TestOption(t *testing.T) {
	s := Some[uint32](3)
	if !s.IsSome() || s.Value() != 3 || s.Or(9) != 3 {
		t.Fatal("Some misbehaves")
	}

	n := None[uint32]()
	if n.IsSome() {
		t.Fatal("None.IsSome = true")
	}
	if v, ok := n.Get(); ok || v != 0 {
		t.Fatalf("None.Get = %d, %v", v, ok)
	}
	if n.Or(9) != 9 {
		t.Fatal("Or fallback not used")
	}
	expectWrongArm(t, func() { n.Value() })
}
