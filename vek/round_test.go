package vek

import "testing"

func TestFloorCeil(t *testing.T) {
	v := V2[float32](1.5, -1.5)
	if got := Floor2(v); got != V2[float32](1, -2) {
		t.Errorf("Floor2: got %v, want (1,-2)", got)
	}
	if got := Ceil2(v); got != V2[float32](2, -1) {
		t.Errorf("Ceil2: got %v, want (2,-1)", got)
	}

	u := V3[float64](0.1, -0.1, 3)
	if got := Floor3(u); got != V3[float64](0, -1, 3) {
		t.Errorf("Floor3: got %v, want (0,-1,3)", got)
	}
	if got := Ceil3(u); got != V3[float64](1, 0, 3) {
		t.Errorf("Ceil3: got %v, want (1,0,3)", got)
	}
}
