package animation

import (
	m "math"
	"testing"

	"github.com/spaghettifunk/transformation/engine/config"
	"github.com/spaghettifunk/transformation/engine/math"
)

const tolerance float32 = 1e-4

func newDefaultAnimator(t *testing.T) *Animator {
	t.Helper()
	a, err := NewAnimator(config.Default().Animation)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	return a
}

func TestAnimatorAtZero(t *testing.T) {
	a := newDefaultAnimator(t)
	model := a.Model(0)
	// no spin yet: scale 0.35 and move to (0, 0.75)
	want := math.NewMat4Identity().Translate(0, 0.75, 0).Scale(0.35, 0.35, 0.35)
	if !model.Compare(want, tolerance) {
		t.Errorf("Model(0) =\n%v want\n%v", model, want)
	}
}

// The default config feeds the spin rate straight to sin/cos, matching the
// classic demo that spun at 250 radians per second.
func TestAnimatorRadiansSpin(t *testing.T) {
	a := newDefaultAnimator(t)
	if a.AngleUnit() != math.AngleUnitRadians {
		t.Fatalf("default unit = %v", a.AngleUnit())
	}
	const tm = 0.1
	got := a.Model(tm).Transform(math.NewVec4Point(1, 0, 0))

	angle := 250 * tm
	phase := 2.5 * tm
	want := math.NewVec4Point(
		float32(0.75*m.Sin(phase)+0.35*m.Cos(angle)),
		float32(0.75*m.Cos(phase)+0.35*m.Sin(angle)),
		0,
	)
	if !got.Compare(want, tolerance) {
		t.Errorf("corner at t=%v = %v, want %v", tm, got, want)
	}
}

func TestAnimatorDegreesSpin(t *testing.T) {
	cfg := config.Default().Animation
	cfg.AngleUnit = "degrees"
	cfg.SpinRate = 90
	cfg.OrbitRadius = 0
	cfg.Scale = [3]float32{1, 1, 1}
	a, err := NewAnimator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// one second at 90 deg/s is a quarter turn
	got := a.Model(1).Transform(math.NewVec4Point(1, 0, 0))
	if want := math.NewVec4Point(0, 1, 0); !got.Compare(want, tolerance) {
		t.Errorf("quarter turn = %v, want %v", got, want)
	}
}

func TestAnimatorNormalizeAxis(t *testing.T) {
	cfg := config.Default().Animation
	cfg.Axis = [3]float32{0, 0, 3}
	cfg.OrbitRadius = 0
	raw, err := NewAnimator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.NormalizeAxis = true
	norm, err := NewAnimator(cfg)
	if err != nil {
		t.Fatal(err)
	}

	unit := newDefaultAnimator(t)
	if !norm.Model(0.3).Compare(unitModelNoOrbit(unit, 0.3), tolerance) {
		t.Errorf("normalized axis disagrees with unit axis")
	}
	if raw.Model(0.3).Compare(norm.Model(0.3), tolerance) {
		t.Errorf("a length-3 axis should not match the normalized rotation")
	}
}

func unitModelNoOrbit(a *Animator, tm float64) math.Mat4 {
	return math.NewMat4Identity().
		Rotate(a.Angle(tm), 0, 0, 1).
		Scale(0.35, 0.35, 0.35)
}

func TestNewAnimatorRejectsUnit(t *testing.T) {
	cfg := config.Default().Animation
	cfg.AngleUnit = "turns"
	if _, err := NewAnimator(cfg); err == nil {
		t.Error("expected an error for an unknown angle unit")
	}
}
