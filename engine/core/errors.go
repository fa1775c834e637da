package core

import (
	"errors"
)

var (
	ErrEngineNotInitialized = errors.New("engine not initialized")
	ErrEngineStopped        = errors.New("engine already shut down")
	ErrUnknown              = errors.New("unknown")
)
