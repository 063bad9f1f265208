package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/display"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/spectate"
)

// app carries the state shared by the commands that start a game.
type app struct {
	configPath string
	cfg        *config.Config
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// logger writes to stderr, or to the configured log file when the terminal
// owns stderr.
func (a *app) logger(toFile bool) (*zap.Logger, error) {
	opts := logging.Options{
		Level:       a.cfg.Log.Level,
		Development: a.cfg.Log.Development,
	}
	if toFile {
		opts.File = a.cfg.Log.File
	}
	return logging.New(opts)
}

// newGame builds a game rendering to frontend plus the optional spectator hub
// and observed by the optional audio player. The returned func releases what
// newGame started.
func (a *app) newGame(ctx context.Context, frontend game.Renderer, logger *zap.Logger) (*game.Game, func(), error) {
	settings, err := a.cfg.Game.Settings()
	if err != nil {
		return nil, nil, err
	}
	gen, err := a.cfg.Game.Generator()
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	var cleanup []func()
	release := func() {
		cancel()
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}

	renderers := game.Renderers{frontend}
	var observers []game.Observer

	if a.cfg.Audio.Enabled {
		player, closeAudio, err := audio.Open(a.cfg.Audio.SampleRate, a.cfg.Audio.Volume, logger)
		if err != nil {
			logger.Warn("audio unavailable, playing silently", zap.Error(err))
		} else {
			observers = append(observers, player)
			cleanup = append(cleanup, closeAudio)
		}
	}

	if addr := a.cfg.Spectate.Addr; addr != "" {
		hub := spectate.NewHub()
		renderers = append(renderers, hub)
		observers = append(observers, hub)

		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := spectate.Serve(ctx, addr, hub, logger); err != nil {
				logger.Error("spectator server stopped", zap.Error(err))
			}
		}()
		cleanup = append(cleanup, func() { <-done })
	}

	g := game.New(game.Options{
		Settings:  settings,
		Generator: gen,
		Renderer:  renderers,
		Observers: observers,
		Logger:    logger,
	})
	return g, release, nil
}

func (a *app) runDesktop(ctx context.Context) error {
	logger, err := a.logger(false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	screen := display.NewScreen()
	g, release, err := a.newGame(ctx, screen, logger)
	if err != nil {
		return err
	}
	defer release()

	var overlay display.Overlay
	if a.cfg.Display.Debug {
		o := debugui.New(title, display.ScreenWidth, display.ScreenHeight)
		o.Add(debugui.SessionInspector(g))
		o.Add(debugui.NewPerformanceStats(g, 120).Item())
		overlay = o
	}

	window, err := display.NewApp(display.Options{
		Game:    g,
		Screen:  screen,
		Overlay: overlay,
		Logger:  logger,
		TPS:     a.cfg.Display.TPS,
	})
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}

	logger.Info("starting", zap.String("frontend", "desktop"), zap.Uint64("seed", a.cfg.Game.Seed))
	return display.Run(window, title, a.cfg.Display.Width, a.cfg.Display.Height)
}
