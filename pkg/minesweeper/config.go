package minesweeper

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"minesweeper/pkg/core"
)

// Config controls the board dimensions and marker behavior of a game.
type Config struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	Mines    int   `yaml:"mines"`
	Question bool  `yaml:"question"`
	Seed     int64 `yaml:"seed"`
}

// DefaultConfig returns the expert board.
func DefaultConfig() Config {
	return Config{Width: 30, Height: 16, Mines: 99}
}

// PresetConfig returns the configuration of a registered preset.
func PresetConfig(name string) (Config, error) {
	p, ok := core.LookupPreset(name)
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	c := DefaultConfig()
	c.Width = p.Size.W
	c.Height = p.Size.H
	c.Mines = p.Mines
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs)
// over the defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides fields from a string map. A "preset" key sets the board
// first so explicit keys win over it; unparsable values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["preset"]; ok {
		if p, ok := core.LookupPreset(v); ok {
			c.Width, c.Height, c.Mines = p.Size.W, p.Size.H, p.Mines
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["mines"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Mines = parsed
		}
	}
	if v, ok := cfg["question"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Question = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// LoadFile reads a YAML config file over the defaults and validates it.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every problem with the config in a single error.
func (c Config) Validate() error {
	var problems []string
	if c.Width <= 0 {
		problems = append(problems, "width must be positive")
	}
	if c.Height <= 0 {
		problems = append(problems, "height must be positive")
	}
	if c.Mines < 0 {
		problems = append(problems, "mines must not be negative")
	}
	if len(problems) == 0 {
		if err := Validate(c.Width, c.Height, c.Mines); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Options translates the config into game options. A zero seed keeps the
// clock-seeded default generator.
func (c Config) Options() []Option {
	var opts []Option
	if c.Seed != 0 {
		opts = append(opts, WithRand(core.NewRNG(c.Seed)))
	}
	if c.Question {
		opts = append(opts, WithModifyMode(ModifyQuestion))
	}
	return opts
}

// NewGameFromConfig builds a game from a validated config. Extra options are
// applied after the config's own.
func NewGameFromConfig(c Config, opts ...Option) (*Game, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewGame(c.Width, c.Height, c.Mines, append(c.Options(), opts...)...)
}
