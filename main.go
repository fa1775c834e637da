/*
Headless driver for the orbiting quad: computes the model matrix every
frame and hands it to the configured uniform sink.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/transformation/engine"
	"github.com/spaghettifunk/transformation/engine/animation"
	"github.com/spaghettifunk/transformation/engine/config"
	"github.com/spaghettifunk/transformation/engine/core"
	"github.com/spaghettifunk/transformation/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	frames := flag.Uint64("frames", 0, "number of frames to render, overrides the config")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			core.LogFatal("%s", err)
		}
		cfg = loaded
	}
	// flags win over the file, on startup and on every reload
	applyFlags := func(c *config.Config) {
		if *frames > 0 {
			c.Application.Frames = *frames
		}
	}
	applyFlags(cfg)

	sink, err := animation.NewSink(cfg.Output, os.Stdout, core.Logger())
	if err != nil {
		core.LogFatal("%s", err)
	}

	qg, err := testbed.NewQuadGame(cfg, sink)
	if err != nil {
		core.LogFatal("%s", err)
	}

	// signal context to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	opts := []engine.Option{engine.WithOverrides(applyFlags)}
	if *watch && *configPath != "" {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			core.LogFatal("%s", err)
		}
		w.Start(ctx)
		opts = append(opts, engine.WithWatcher(w))
	}

	e, err := engine.New(qg.Game, opts...)
	if err != nil {
		core.LogFatal("%s", err)
	}
	if err := e.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError("%s", err)
	}
	if runErr != nil {
		core.LogFatal("%s", runErr)
	}
}
