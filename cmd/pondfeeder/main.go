// Pondfeeder opens a window with the orbiting fish pond scene. Hold the feed
// button (mouse or touch) to drop pellets into the pond.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/phanxgames/pondfeeder"
	"github.com/phanxgames/pondfeeder/config"
)

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		l := newLogger("info")
		l.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg.LogLevel)
	pondfeeder.SetLogger(logger)
	if used := config.ConfigFileUsed(); used != "" {
		logger.Info().Str("file", used).Msg("config loaded")
	} else {
		logger.Info().Msg("no config file, using defaults")
	}

	handle, err := pondfeeder.InitializeWith(
		pondfeeder.FixedContainer{W: cfg.Window.Width, H: cfg.Window.Height},
		optionsFromConfig(cfg),
	)
	if err != nil {
		logger.Warn().Err(err).Msg("nothing to animate")
		return
	}
	handle.Scene.SetDebugMode(cfg.Debug)

	game := pondfeeder.NewGame(handle)
	game.ScreenshotDir = cfg.ScreenshotDir
	game.ShowStats(cfg.ShowStats)
	if err := game.SetFeedButton(pondfeeder.NewFeedButton(pondfeeder.Rect{}, nil), true); err != nil {
		logger.Warn().Err(err).Msg("feed control")
	}

	if cfg.ScriptPath != "" {
		data, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.ScriptPath).Msg("read test script")
		}
		runner, err := pondfeeder.LoadTestScript(data)
		if err != nil {
			logger.Fatal().Err(err).Msg("load test script")
		}
		game.SetTestRunner(runner)
	}

	start := time.Now()
	err = pondfeeder.Run(game, pondfeeder.RunConfig{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		TPS:    cfg.Window.TPS,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("run")
	}
	logger.Info().Dur("uptime", time.Since(start)).
		Uint64("ticks", handle.Driver.Ticks()).
		Int("transitions", handle.Driver.Transitions()).
		Msg("window closed")
}

// optionsFromConfig maps config values onto scene options.
func optionsFromConfig(cfg config.Config) pondfeeder.Options {
	opts := pondfeeder.DefaultOptions()
	opts.Shadows = cfg.Shadows

	opts.Emitter.PerTick = cfg.Feeder.PelletsPerTick
	opts.Emitter.MaxParticles = cfg.Feeder.MaxPellets
	opts.Emitter.Gravity = cfg.Feeder.Gravity
	opts.Emitter.GroundY = cfg.Feeder.GroundY

	opts.Driver.Jitter = cfg.Feeder.Jitter
	opts.Driver.OrbitRadius = cfg.Camera.OrbitRadius
	opts.Driver.OrbitRate = cfg.Camera.OrbitRate
	return opts
}
