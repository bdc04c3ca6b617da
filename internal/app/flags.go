package app

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"minesweeper/pkg/minesweeper"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Preset     string
	ConfigPath string
	Width      int
	Height     int
	Mines      int
	Question   bool
	Seed       int64

	Scale        int
	TPS          int
	HUDWidth     int
	AutoplayRate int
	LogLevel     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := minesweeper.DefaultConfig()
	return &Config{
		Width:        d.Width,
		Height:       d.Height,
		Mines:        d.Mines,
		Scale:        24,
		TPS:          60,
		HUDWidth:     220,
		AutoplayRate: 8,
		LogLevel:     "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "board preset (beginner, intermediate, expert)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with board settings")
	fs.IntVar(&c.Width, "w", c.Width, "board width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "board height in tiles")
	fs.IntVar(&c.Mines, "mines", c.Mines, "number of mines")
	fs.BoolVar(&c.Question, "question", c.Question, "cycle flags through question marks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "mine placement seed (0 picks one from the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "tile size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "settings panel width in pixels (0 hides it)")
	fs.IntVar(&c.AutoplayRate, "autoplay-rate", c.AutoplayRate, "autoplay moves per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// boardFlags are the flags that override the board settings.
var boardFlags = map[string]bool{"preset": true, "w": true, "h": true, "mines": true, "question": true, "seed": true}

// GameConfig resolves the board settings: the config file (or defaults),
// then an explicit preset, then explicitly set board flags. fs must be the
// parsed FlagSet c was bound to.
func (c *Config) GameConfig(fs *flag.FlagSet) (minesweeper.Config, error) {
	base := minesweeper.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := minesweeper.LoadFile(c.ConfigPath)
		if err != nil {
			return minesweeper.Config{}, err
		}
		base = loaded
	}
	if c.Preset != "" {
		if _, err := minesweeper.PresetConfig(c.Preset); err != nil {
			return minesweeper.Config{}, err
		}
	}

	overrides := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		if boardFlags[f.Name] {
			overrides[f.Name] = f.Value.String()
		}
	})
	resolved := base.Apply(overrides)
	if err := resolved.Validate(); err != nil {
		return minesweeper.Config{}, err
	}
	return resolved, nil
}

// NewLogger builds the text logger used by the commands.
func NewLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}
