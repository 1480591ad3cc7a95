package config

import (
	"os"
	"time"

	"github.com/hubastard/nzsc/internal/opponent"
	"github.com/hubastard/nzsc/internal/phase"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// Durations overrides phase lengths in seconds. Zero keeps the default.
type Durations struct {
	Character         float64 `yaml:"character,omitempty"`
	Rechoose          float64 `yaml:"rechoose,omitempty"`
	Booster           float64 `yaml:"booster,omitempty"`
	FirstDequeue      float64 `yaml:"first_dequeue,omitempty"`
	Action            float64 `yaml:"action,omitempty"`
	SubsequentDequeue float64 `yaml:"subsequent_dequeue,omitempty"`
	GameOver          float64 `yaml:"game_over,omitempty"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

type Config struct {
	Difficulty opponent.Difficulty `yaml:"difficulty"`
	Seed       *[4]uint32          `yaml:"seed,omitempty"`
	Painter    string              `yaml:"painter"` // "gl" | "tui"
	AssetsDir  string              `yaml:"assets_dir"`

	Window Window `yaml:"window"`
	Audio  Audio  `yaml:"audio"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file,omitempty"`

	Durations Durations `yaml:"durations,omitempty"`
}

func Default() Config {
	return Config{
		Difficulty: opponent.Stupid,
		Painter:    "gl",
		AssetsDir:  "assets",
		Window:     Window{Title: "NZSC", Width: 1280, Height: 720, VSync: true},
		Audio:      Audio{Enabled: false, Volume: 0.5},
		LogLevel:   "info",
	}
}

// Load reads path over the defaults, so a partial file only changes what it names.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %q", path)
	}
	c := Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %q", path)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrapf(os.WriteFile(path, b, 0644), "write config %q", path)
}

func (c *Config) Validate() error {
	switch c.Painter {
	case "gl", "tui":
	default:
		return errors.Errorf("painter %q: want gl or tui", c.Painter)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return errors.Errorf("audio volume %g outside [0,1]", c.Audio.Volume)
	}
	d := c.Durations
	for _, v := range []float64{d.Character, d.Rechoose, d.Booster, d.FirstDequeue, d.Action, d.SubsequentDequeue, d.GameOver} {
		if v < 0 {
			return errors.Errorf("negative phase duration %g", v)
		}
	}
	return nil
}

// Phase converts the overrides, filling unset phases with the defaults.
func (d Durations) Phase() phase.Durations {
	sec := func(v float64) time.Duration { return time.Duration(v * float64(time.Second)) }
	return phase.Durations{
		Character:         sec(d.Character),
		Rechoose:          sec(d.Rechoose),
		Booster:           sec(d.Booster),
		FirstDequeue:      sec(d.FirstDequeue),
		Action:            sec(d.Action),
		SubsequentDequeue: sec(d.SubsequentDequeue),
		GameOver:          sec(d.GameOver),
	}.WithDefaults()
}
