package testbed

import (
	"context"
	"testing"

	"github.com/spaghettifunk/transformation/engine"
	"github.com/spaghettifunk/transformation/engine/animation"
	"github.com/spaghettifunk/transformation/engine/config"
	"github.com/spaghettifunk/transformation/engine/math"
)

const tolerance float32 = 1e-4

func TestQuadGameUploadsEveryFrame(t *testing.T) {
	cfg := config.Default()
	cfg.Application.Frames = 4
	rec := &animation.RecordingSink{}

	qg, err := NewQuadGame(cfg, rec)
	if err != nil {
		t.Fatal(err)
	}
	e, err := engine.New(qg.Game, engine.WithoutPacing())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := e.Shutdown(); err != nil {
		t.Fatal(err)
	}

	uploads := rec.Uploads()
	if len(uploads) != 4 {
		t.Fatalf("uploads = %d, want 4", len(uploads))
	}
	for _, u := range uploads {
		if u.Name != "modelmat" {
			t.Errorf("uniform name = %q", u.Name)
		}
	}
	if last := uploads[len(uploads)-1].Data; last != qg.Model().Data {
		t.Errorf("last upload does not match the current model")
	}
}

func TestQuadGameCorners(t *testing.T) {
	cfg := config.Default()
	qg, err := NewQuadGame(cfg, animation.DiscardSink)
	if err != nil {
		t.Fatal(err)
	}
	if err := qg.Update(0, 0); err != nil {
		t.Fatal(err)
	}
	// at t=0 the quad is scaled by 0.35 and centred at (0, 0.75)
	corners := qg.Corners()
	for i, v := range Quad {
		want := math.NewVec3(v.Position.X*0.35, 0.75+v.Position.Y*0.35, 0)
		if !corners[i].Compare(want, tolerance) {
			t.Errorf("corner %d = %v, want %v", i, corners[i], want)
		}
	}
}

func TestQuadGameConfigChange(t *testing.T) {
	cfg := config.Default()
	qg, err := NewQuadGame(cfg, animation.DiscardSink)
	if err != nil {
		t.Fatal(err)
	}

	next := config.Default()
	next.Animation.OrbitRadius = 0
	next.Animation.Scale = [3]float32{1, 1, 1}
	next.Animation.SpinRate = 0
	if err := qg.OnConfigChange(next); err != nil {
		t.Fatal(err)
	}
	_ = qg.Update(3, 0)
	if !qg.Model().Compare(math.NewMat4Identity(), tolerance) {
		t.Errorf("model after change =\n%v", qg.Model())
	}

	bad := config.Default()
	bad.Animation.AngleUnit = "turns"
	if err := qg.OnConfigChange(bad); err == nil {
		t.Error("bad config accepted")
	}
}
