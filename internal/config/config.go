package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/menu"
	"github.com/san-kum/dialnav/internal/timeline"
)

const (
	DefaultViewport        = 96.0
	DefaultTileRadius      = 48.0
	DefaultDebounceWindow  = 0.35
	DefaultSettleFactor    = 0.3
	DefaultFrictionIdle    = 0.3
	DefaultFrictionActive  = 0.4
	DefaultTransition      = 0.3
	DefaultIndicateOffset  = 10.0
	DefaultLabelDuration   = 0.5
	DefaultLabelFontSize   = 16.0
	DefaultMinimumHold     = 1.0
	DefaultDaydreamTimeout = 30.0
	DefaultFrameRate       = 60
	DefaultTurnStep        = 2 * math.Pi * DefaultFrictionIdle
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	TileRadius float64          `yaml:"tile_radius"`
	Dial       DialConfig       `yaml:"dial"`
	Transition TransitionConfig `yaml:"transition"`
	Label      LabelConfig      `yaml:"label"`

	MinimumHold     float64 `yaml:"minimum_hold"`
	DaydreamTimeout float64 `yaml:"daydream_timeout"`
	FrameRate       int     `yaml:"frame_rate"`

	Menu Tree `yaml:"menu"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type DialConfig struct {
	DebounceWindow float64 `yaml:"debounce_window"`
	SettleFactor   float64 `yaml:"settle_factor"`
	FrictionIdle   float64 `yaml:"friction_idle"`
	FrictionActive float64 `yaml:"friction_active"`

	// TurnStep is the dial amount one key press or wheel notch produces.
	// Turns carry momentum, so 2π·FrictionIdle travels one slot.
	TurnStep float64 `yaml:"turn_step"`
}

type TransitionConfig struct {
	Duration       float64 `yaml:"duration"`
	Ease           string  `yaml:"ease"`
	IndicateOffset float64 `yaml:"indicate_offset"`
}

type LabelConfig struct {
	Duration float64 `yaml:"duration"`
	FontSize float64 `yaml:"font_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Viewport:   ViewportConfig{Width: DefaultViewport, Height: DefaultViewport},
		TileRadius: DefaultTileRadius,
		Dial: DialConfig{
			DebounceWindow: DefaultDebounceWindow,
			SettleFactor:   DefaultSettleFactor,
			FrictionIdle:   DefaultFrictionIdle,
			FrictionActive: DefaultFrictionActive,
			TurnStep:       DefaultTurnStep,
		},
		Transition: TransitionConfig{
			Duration:       DefaultTransition,
			Ease:           "in_out_quad",
			IndicateOffset: DefaultIndicateOffset,
		},
		Label: LabelConfig{
			Duration: DefaultLabelDuration,
			FontSize: DefaultLabelFontSize,
		},
		MinimumHold:     DefaultMinimumHold,
		DaydreamTimeout: DefaultDaydreamTimeout,
		FrameRate:       DefaultFrameRate,
		Menu:            DefaultTree(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return invalid("viewport %gx%g", c.Viewport.Width, c.Viewport.Height)
	case c.TileRadius <= 0:
		return invalid("tile_radius %g", c.TileRadius)
	case c.Dial.DebounceWindow < 0:
		return invalid("debounce_window %g", c.Dial.DebounceWindow)
	case c.Dial.SettleFactor <= 0 || c.Dial.SettleFactor > 1:
		return invalid("settle_factor %g not in (0, 1]", c.Dial.SettleFactor)
	case !unit(c.Dial.FrictionIdle) || !unit(c.Dial.FrictionActive):
		return invalid("friction %g/%g not in [0, 1]", c.Dial.FrictionIdle, c.Dial.FrictionActive)
	case c.Dial.TurnStep <= 0:
		return invalid("turn_step %g", c.Dial.TurnStep)
	case c.Transition.Duration < 0:
		return invalid("transition duration %g", c.Transition.Duration)
	case c.Label.Duration < 0 || c.Label.FontSize <= 0:
		return invalid("label duration %g font size %g", c.Label.Duration, c.Label.FontSize)
	case c.MinimumHold < 0:
		return invalid("minimum_hold %g", c.MinimumHold)
	case c.DaydreamTimeout < 0:
		return invalid("daydream_timeout %g", c.DaydreamTimeout)
	case c.FrameRate <= 0:
		return invalid("frame_rate %d", c.FrameRate)
	}
	if _, err := timeline.ParseEase(c.Transition.Ease); err != nil {
		return invalid("transition ease: %v", err)
	}
	return c.Menu.Validate()
}

func unit(v float64) bool { return v >= 0 && v <= 1 }

// Options converts the settings into carousel options.
func (c *Config) Options() (menu.Options, error) {
	ease, err := timeline.ParseEase(c.Transition.Ease)
	if err != nil {
		return menu.Options{}, err
	}
	return menu.Options{
		Viewport:           gfx.V(c.Viewport.Width, c.Viewport.Height),
		DebounceWindow:     c.Dial.DebounceWindow,
		SettleFactor:       c.Dial.SettleFactor,
		FrictionIdle:       c.Dial.FrictionIdle,
		FrictionActive:     c.Dial.FrictionActive,
		TransitionDuration: c.Transition.Duration,
		TransitionEase:     ease,
		IndicateOffset:     c.Transition.IndicateOffset,
		LabelDuration:      c.Label.Duration,
		LabelFontSize:      c.Label.FontSize,
	}, nil
}

// FrameDt is the fixed timestep for one frame.
func (c *Config) FrameDt() float64 {
	return 1 / float64(c.FrameRate)
}
