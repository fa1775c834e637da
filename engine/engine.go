package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/spaghettifunk/transformation/engine/config"
	"github.com/spaghettifunk/transformation/engine/core"
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	runID        core.RunID
	clock        *core.Clock
	metrics      *core.Metrics
	watcher      ConfigSource
	overrides    []func(*config.Config)
	pace         bool
	lastTime     float64
	frame        uint64
}

type Option func(*Engine)

// ConfigSource publishes replacement configs; *config.Watcher is one.
type ConfigSource interface {
	Updates() <-chan *config.Config
	Close() error
}

// WithClock replaces the wall clock, e.g. with a fake time source.
func WithClock(c *core.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithWatcher applies configs published by w between frames.
func WithWatcher(w ConfigSource) Option {
	return func(e *Engine) {
		e.watcher = w
	}
}

// WithOverrides registers fn to run on every reloaded config before it is
// handed to the game, so settings that did not come from the file (command
// line flags) survive a reload.
func WithOverrides(fn func(*config.Config)) Option {
	return func(e *Engine) {
		e.overrides = append(e.overrides, fn)
	}
}

// WithoutPacing disables sleeping towards the target frame rate.
func WithoutPacing() Option {
	return func(e *Engine) {
		e.pace = false
	}
}

func New(g *Game, opts ...Option) (*Engine, error) {
	if g == nil || g.Config == nil {
		return nil, fmt.Errorf("engine requires a game with a config")
	}
	e := &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		runID:        core.NewRunID(),
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		pace:         true,
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) RunID() core.RunID {
	return e.runID
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("initialize in stage %s: %w", e.currentStage, core.ErrUnknown)
	}
	e.currentStage = EngineStageInitializing

	if err := e.applyLogLevel(e.gameInstance.Config); err != nil {
		return err
	}
	core.LogInfo("initializing %s [run %s]", e.gameInstance.Config.Application.Name, e.runID.Short())

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// Run drives frames until ctx is cancelled or the configured frame count is
// reached. Cancellation is a normal stop and returns nil.
func (e *Engine) Run(ctx context.Context) error {
	switch e.currentStage {
	case EngineStageInitialized:
	case EngineStageStopped, EngineStageShuttingDown:
		return core.ErrEngineStopped
	default:
		return core.ErrEngineNotInitialized
	}
	e.currentStage = EngineStageRunning
	defer func() {
		if e.currentStage == EngineStageRunning {
			e.currentStage = EngineStageInitialized
		}
	}()

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	var reportMS float64
	for {
		cfg := e.gameInstance.Config
		if limit := cfg.Application.Frames; limit > 0 && e.frame >= limit {
			core.LogInfo("rendered %d frames, stopping", e.frame)
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		if err := e.pollConfig(); err != nil {
			return err
		}

		// Update clock and get delta time.
		e.clock.Update()
		var currentTime float64 = e.clock.Elapsed()
		var delta float64 = currentTime - e.lastTime
		frameStartTime := time.Now()

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(currentTime, delta); err != nil {
				core.LogError("game update failed, shutting down: %s", err)
				return err
			}
		}

		// Call the game's render routine.
		if e.gameInstance.FnRender != nil {
			if err := e.gameInstance.FnRender(e.frame); err != nil {
				core.LogError("game render failed, shutting down: %s", err)
				return err
			}
		}
		e.frame++

		// Figure out how long the frame took and, if below the target, give
		// the rest back to the OS.
		frameElapsedTime := time.Since(frameStartTime).Seconds()
		if target := cfg.Application.TargetFPS; e.pace && target > 0 {
			remaining := time.Duration((1.0/target - frameElapsedTime) * float64(time.Second))
			if remaining > 0 {
				timer := time.NewTimer(remaining)
				select {
				case <-ctx.Done():
					timer.Stop()
					return nil
				case <-timer.C:
				}
				frameElapsedTime = time.Since(frameStartTime).Seconds()
			}
		}
		e.metrics.Update(frameElapsedTime)

		reportMS += frameElapsedTime * 1000
		if reportMS > 1000 {
			fps, avg := e.metrics.Frame()
			core.LogDebug("fps=%.1f frame=%.3fms frames=%d", fps, avg, e.metrics.TotalFrames())
			reportMS = 0
		}

		// Update last time
		e.lastTime = currentTime
	}
}

func (e *Engine) pollConfig() error {
	if e.watcher == nil {
		return nil
	}
	select {
	case cfg := <-e.watcher.Updates():
		for _, fn := range e.overrides {
			fn(cfg)
		}
		level, err := cfg.ParsedLogLevel()
		if err != nil {
			core.LogWarn("config change rejected, keeping previous config: %s", err)
			return nil
		}
		if e.gameInstance.FnConfigChange != nil {
			if err := e.gameInstance.FnConfigChange(cfg); err != nil {
				core.LogWarn("config change rejected, keeping previous config: %s", err)
				return nil
			}
		}
		e.gameInstance.Config = cfg
		if previous := core.GetLogLevel(); previous != level {
			core.LogInfo("log level %s -> %s", previous, level)
			core.SetLogLevel(level)
		}
	default:
	}
	return nil
}

func (e *Engine) applyLogLevel(cfg *config.Config) error {
	level, err := cfg.ParsedLogLevel()
	if err != nil {
		return err
	}
	core.SetLogLevel(level)
	return nil
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageStopped {
		return core.ErrEngineStopped
	}
	e.currentStage = EngineStageShuttingDown
	defer func() { e.currentStage = EngineStageStopped }()

	if e.watcher != nil {
		_ = e.watcher.Close()
	}
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	core.LogInfo("shut down after %d frames [run %s]", e.frame, e.runID.Short())
	return nil
}
