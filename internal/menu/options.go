package menu

import (
	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/timeline"
)

// Options tunes the carousel feel. Durations are in seconds.
type Options struct {
	Viewport gfx.Vec2

	DebounceWindow float64
	SettleFactor   float64
	FrictionIdle   float64
	FrictionActive float64

	TransitionDuration float64
	TransitionEase     timeline.Ease
	IndicateOffset     float64

	LabelDuration float64
	LabelFontSize float64
}

func DefaultOptions() Options {
	return Options{
		Viewport:           gfx.V(96, 96),
		DebounceWindow:     0.35,
		SettleFactor:       0.3,
		FrictionIdle:       0.3,
		FrictionActive:     0.4,
		TransitionDuration: 0.3,
		TransitionEase:     timeline.EaseInOutQuad,
		IndicateOffset:     10,
		LabelDuration:      0.5,
		LabelFontSize:      16,
	}
}
