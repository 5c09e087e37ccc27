package config

import (
	"math"
	"sort"
)

// Tuning is the feel of the dial: how fast it settles and how eagerly it
// commits a selection.
type Tuning struct {
	DebounceWindow float64
	SettleFactor   float64
	FrictionIdle   float64
	FrictionActive float64
	Transition     float64
	Ease           string
}

var Presets = map[string]Tuning{
	"snappy": {
		DebounceWindow: 0.2, SettleFactor: 0.5, FrictionIdle: 0.45, FrictionActive: 0.55,
		Transition: 0.2, Ease: "out_cubic",
	},
	"default": {
		DebounceWindow: DefaultDebounceWindow, SettleFactor: DefaultSettleFactor,
		FrictionIdle: DefaultFrictionIdle, FrictionActive: DefaultFrictionActive,
		Transition: DefaultTransition, Ease: "in_out_quad",
	},
	"relaxed": {
		DebounceWindow: 0.5, SettleFactor: 0.2, FrictionIdle: 0.2, FrictionActive: 0.3,
		Transition: 0.45, Ease: "in_out_cubic",
	},
}

// Apply overwrites the dial and transition settings of cfg. The turn step
// follows the idle friction so one detent still travels one slot.
func (t Tuning) Apply(cfg *Config) {
	cfg.Dial.DebounceWindow = t.DebounceWindow
	cfg.Dial.SettleFactor = t.SettleFactor
	cfg.Dial.FrictionIdle = t.FrictionIdle
	cfg.Dial.FrictionActive = t.FrictionActive
	cfg.Dial.TurnStep = 2 * math.Pi * t.FrictionIdle
	cfg.Transition.Duration = t.Transition
	cfg.Transition.Ease = t.Ease
}

// GetPreset returns the default config with the named tuning applied, or
// nil if there is no such preset.
func GetPreset(name string) *Config {
	t, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	t.Apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
