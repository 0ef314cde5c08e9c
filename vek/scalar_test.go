package vek

import (
	"math"
	"testing"
)

func TestMinMaxValueInts(t *testing.T) {
	if got := MinValue[int32](); got != math.MinInt32 {
		t.Errorf("MinValue[int32]: got %d", got)
	}
	if got := MaxValue[int32](); got != math.MaxInt32 {
		t.Errorf("MaxValue[int32]: got %d", got)
	}
	if got := MinValue[uint16](); got != 0 {
		t.Errorf("MinValue[uint16]: got %d", got)
	}
	if got := MaxValue[uint16](); got != math.MaxUint16 {
		t.Errorf("MaxValue[uint16]: got %d", got)
	}
	if got := MinValue[int8](); got != math.MinInt8 {
		t.Errorf("MinValue[int8]: got %d", got)
	}
	if got := MaxValue[uint64](); got != math.MaxUint64 {
		t.Errorf("MaxValue[uint64]: got %d", got)
	}
}

func TestMinMaxValueFloats(t *testing.T) {
	// Float MIN is the most negative finite value, so it absorbs under Glb.
	if got := MinValue[float32](); got != -math.MaxFloat32 {
		t.Errorf("MinValue[float32]: got %v", got)
	}
	if got := MaxValue[float32](); got != math.MaxFloat32 {
		t.Errorf("MaxValue[float32]: got %v", got)
	}
	if got := MinValue[float64](); got != -math.MaxFloat64 {
		t.Errorf("MinValue[float64]: got %v", got)
	}
}

func TestOne(t *testing.T) {
	if got := One[int32](); got != 1 {
		t.Errorf("One[int32]: got %d", got)
	}
	if got := One[float64](); got != 1.0 {
		t.Errorf("One[float64]: got %v", got)
	}
}

func TestAbs(t *testing.T) {
	if got := Abs[int32](-5); got != 5 {
		t.Errorf("Abs(-5): got %d", got)
	}
	if got := Abs[int32](5); got != 5 {
		t.Errorf("Abs(5): got %d", got)
	}
	if got := Abs[int64](math.MinInt64 + 1); got != math.MaxInt64 {
		t.Errorf("Abs(MinInt64+1): got %d", got)
	}
	if got := Abs[float32](-2.5); got != 2.5 {
		t.Errorf("Abs(-2.5): got %v", got)
	}
	if got := Abs(math.Copysign(0, -1)); !(got == 0 && !math.Signbit(got)) {
		t.Errorf("Abs(-0): got %v", got)
	}
	if got := Abs(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Abs(NaN): got %v", got)
	}
}
