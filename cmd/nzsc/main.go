package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/hubastard/nzsc/engine/assets"
	"github.com/hubastard/nzsc/engine/audio"
	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/core"
	glbackend "github.com/hubastard/nzsc/engine/gfx/gl"
	"github.com/hubastard/nzsc/engine/platform"
	"github.com/hubastard/nzsc/internal/config"
	"github.com/hubastard/nzsc/internal/game"
	"github.com/hubastard/nzsc/internal/opponent"
	"github.com/hubastard/nzsc/internal/render"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		configPath = flag.String("config", "nzsc.yaml", "config file; created on the first difficulty change")
		painter    = flag.String("painter", "", "gl or tui (overrides the config)")
		assetsDir  = flag.String("assets", "", "asset directory (overrides the config)")
		logLevel   = flag.String("log-level", "", "trace, debug, info, warn or error (overrides the config)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if *painter != "" {
		cfg.Painter = *painter
	}
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("logging")
	}
	defer closeLog()

	sound := newSound(cfg.Audio)
	defer sound.Close()

	opts := game.Options{
		Durations: cfg.Durations.Phase(),
		Sound:     sound,
	}
	opts.Machine.Difficulty = cfg.Difficulty
	opts.Machine.Seed = cfg.Seed
	opts.Machine.OnDifficulty = func(d opponent.Difficulty) {
		cfg.Difficulty = d
		if err := config.Save(*configPath, cfg); err != nil {
			log.Warn().Err(err).Msg("difficulty not saved")
		}
	}
	g := game.New(opts, time.Now())
	loader := assets.NewLoader(cfg.AssetsDir)

	switch cfg.Painter {
	case "tui":
		err = runTerminal(g, loader)
	default:
		err = runWindow(g, loader, cfg)
	}
	if err != nil {
		log.Error().Err(err).Str("painter", cfg.Painter).Msg("exit")
		os.Exit(1)
	}
}

// loadConfig falls back to the defaults when path does not exist yet.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		def := config.Default()
		return &def, nil
	}
	return cfg, err
}

func setupLogging(cfg *config.Config) (func(), error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		log.Logger = log.Output(f)
		return func() { f.Close() }, nil
	case cfg.Painter == "tui":
		// The terminal belongs to the painter.
		log.Logger = log.Output(io.Discard)
	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return func() {}, nil
}

func newSound(a config.Audio) *audio.Player {
	p := audio.NewPlayer(a.Volume)
	if !a.Enabled {
		return p
	}
	if err := p.Init(); err != nil {
		log.Warn().Err(err).Msg("audio disabled")
	}
	return p
}

func spriteKeys() []string {
	keys := render.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

func runWindow(g *game.Game, loader assets.Loader, cfg *config.Config) error {
	ecfg := core.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		VSync:      cfg.Window.VSync,
		ClearColor: colors.Black,
	}
	app := &App{game: g, loader: loader}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}
	return core.Run(app, ecfg, newWindow, newRenderer)
}
