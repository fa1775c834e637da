package testbed

import (
	"fmt"

	"github.com/spaghettifunk/transformation/engine"
	"github.com/spaghettifunk/transformation/engine/animation"
	"github.com/spaghettifunk/transformation/engine/config"
	"github.com/spaghettifunk/transformation/engine/core"
	"github.com/spaghettifunk/transformation/engine/math"
)

// Vertex is a quad corner: position and texture coordinate.
type Vertex struct {
	Position math.Vec3
	UV       [2]float32
}

// Quad is a unit square centred on the origin, ordered for a triangle strip.
var Quad = [4]Vertex{
	{Position: math.NewVec3(-0.5, 0.5, 0), UV: [2]float32{0, 1}},
	{Position: math.NewVec3(-0.5, -0.5, 0), UV: [2]float32{0, 0}},
	{Position: math.NewVec3(0.5, 0.5, 0), UV: [2]float32{1, 1}},
	{Position: math.NewVec3(0.5, -0.5, 0), UV: [2]float32{1, 0}},
}

type QuadGame struct {
	*engine.Game
}

type gameState struct {
	animator *animation.Animator
	sink     animation.UniformSink
	uniform  string

	elapsed float64
	model   math.Mat4
}

func NewQuadGame(cfg *config.Config, sink animation.UniformSink) (*QuadGame, error) {
	animator, err := animation.NewAnimator(cfg.Animation)
	if err != nil {
		return nil, err
	}
	qg := &QuadGame{
		Game: &engine.Game{
			Config: cfg,
			State: &gameState{
				animator: animator,
				sink:     sink,
				uniform:  cfg.Output.Uniform,
				model:    math.NewMat4Identity(),
			},
		},
	}

	qg.FnInitialize = qg.Initialize
	qg.FnUpdate = qg.Update
	qg.FnRender = qg.Render
	qg.FnConfigChange = qg.OnConfigChange
	qg.FnShutdown = qg.Shutdown

	return qg, nil
}

func (g *QuadGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *QuadGame) Initialize() error {
	s := g.state()
	core.LogInfo("quad spins in %s, uploading %q", s.animator.AngleUnit(), s.uniform)
	return nil
}

// Update builds this frame's model matrix from a fresh identity.
func (g *QuadGame) Update(elapsed, deltaTime float64) error {
	s := g.state()
	s.elapsed = elapsed
	s.model = s.animator.Model(elapsed)
	return nil
}

func (g *QuadGame) Render(frame uint64) error {
	s := g.state()
	if err := s.sink.UploadMatrix4(s.uniform, s.model.Data); err != nil {
		return fmt.Errorf("upload %s for frame %d: %w", s.uniform, frame, err)
	}
	return nil
}

// OnConfigChange swaps in a new animator; an invalid animation section
// leaves the running one untouched.
func (g *QuadGame) OnConfigChange(cfg *config.Config) error {
	animator, err := animation.NewAnimator(cfg.Animation)
	if err != nil {
		return err
	}
	s := g.state()
	s.animator = animator
	s.uniform = cfg.Output.Uniform
	return nil
}

func (g *QuadGame) Shutdown() error {
	core.LogDebug("quad game finished at t=%.3fs", g.state().elapsed)
	return nil
}

// Model returns the matrix computed by the last Update.
func (g *QuadGame) Model() math.Mat4 {
	return g.state().model
}

// Corners returns the quad corners transformed by the current model matrix.
func (g *QuadGame) Corners() [4]math.Vec3 {
	var out [4]math.Vec3
	model := g.state().model
	for i, v := range Quad {
		out[i] = model.TransformPoint(v.Position)
	}
	return out
}
