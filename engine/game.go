package engine

import (
	"github.com/spaghettifunk/transformation/engine/config"
)

type Game struct {
	Config         *config.Config
	State          interface{}
	FnInitialize   Initialize
	FnUpdate       Update
	FnRender       Render
	FnConfigChange ConfigChange
	FnShutdown     Shutdown
}

type Initialize func() error

// Update receives the seconds since the run started and since the last frame.
type Update func(elapsed, deltaTime float64) error
type Render func(frame uint64) error
type ConfigChange func(cfg *config.Config) error
type Shutdown func() error
