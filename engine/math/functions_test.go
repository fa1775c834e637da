package math

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 1, 3); got != 3 {
		t.Errorf("Clamp(5,1,3) = %d", got)
	}
	if got := Clamp(-1.5, 0.0, 1.0); got != 0 {
		t.Errorf("Clamp(-1.5,0,1) = %v", got)
	}
	if got := Clamp[uint32](2, 1, 3); got != 2 {
		t.Errorf("Clamp(2,1,3) = %d", got)
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	if got := DegToRad(180); kabs(got-K_PI) > K_FLOAT_EPSILON*4 {
		t.Errorf("DegToRad(180) = %v", got)
	}
	if got := RadToDeg(DegToRad(37)); kabs(got-37) > 1e-4 {
		t.Errorf("round trip = %v", got)
	}
}

func TestVec3Normalized(t *testing.T) {
	if got := NewVec3(3, 0, 4).Normalized(); !got.Compare(NewVec3(0.6, 0, 0.8), tolerance) {
		t.Errorf("Normalized = %v", got)
	}
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Errorf("zero Normalized = %v", got)
	}
}
