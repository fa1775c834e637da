package animation

import (
	m "math"

	"github.com/spaghettifunk/transformation/engine/config"
	"github.com/spaghettifunk/transformation/engine/math"
)

// Animator turns elapsed time into the model matrix of an orbiting, spinning
// quad.
type Animator struct {
	orbitRadius   float32
	orbitSpeed    float32
	spinRate      float32
	unit          math.AngleUnit
	axis          math.Vec3
	scale         math.Vec3
	normalizeAxis bool
}

func NewAnimator(cfg config.AnimationConfig) (*Animator, error) {
	unit, err := math.ParseAngleUnit(cfg.AngleUnit)
	if err != nil {
		return nil, err
	}
	return &Animator{
		orbitRadius:   cfg.OrbitRadius,
		orbitSpeed:    cfg.OrbitSpeed,
		spinRate:      cfg.SpinRate,
		unit:          unit,
		axis:          math.NewVec3(cfg.Axis[0], cfg.Axis[1], cfg.Axis[2]),
		scale:         math.NewVec3(cfg.Scale[0], cfg.Scale[1], cfg.Scale[2]),
		normalizeAxis: cfg.NormalizeAxis,
	}, nil
}

func (a *Animator) AngleUnit() math.AngleUnit {
	return a.unit
}

// Offset is the orbit position at t seconds.
func (a *Animator) Offset(t float64) math.Vec3 {
	phase := float64(a.orbitSpeed) * t
	return math.NewVec3(
		a.orbitRadius*float32(m.Sin(phase)),
		a.orbitRadius*float32(m.Cos(phase)),
		0,
	)
}

// Angle is the spin at t seconds, in the animator's angle unit.
func (a *Animator) Angle(t float64) float32 {
	return float32(float64(a.spinRate) * t)
}

// Model builds the model matrix for t seconds. Builders are chained
// translate, rotate, scale so a vertex is scaled first, then spun, then
// moved along the orbit.
func (a *Animator) Model(t float64) math.Mat4 {
	offset := a.Offset(t)
	model := math.NewMat4Identity().Translate(offset.X, offset.Y, offset.Z)

	angle := a.unit.ToRadians(a.Angle(t))
	if a.normalizeAxis {
		model = model.RotateNormalized(angle, a.axis.X, a.axis.Y, a.axis.Z)
	} else {
		model = model.Rotate(angle, a.axis.X, a.axis.Y, a.axis.Z)
	}

	return model.Scale(a.scale.X, a.scale.Y, a.scale.Z)
}
