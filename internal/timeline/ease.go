package timeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownEase = errors.New("timeline: unknown easing curve")

// Ease maps normalised time in [0, 1] to progress in [0, 1].
type Ease func(t float64) float64

func Linear(t float64) float64      { return t }
func EaseInQuad(t float64) float64  { return t * t }
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func EaseInCubic(t float64) float64 { return t * t * t }

func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

var eases = map[string]Ease{
	"linear":       Linear,
	"in_quad":      EaseInQuad,
	"out_quad":     EaseOutQuad,
	"in_out_quad":  EaseInOutQuad,
	"in_cubic":     EaseInCubic,
	"out_cubic":    EaseOutCubic,
	"in_out_cubic": EaseInOutCubic,
}

func ParseEase(name string) (Ease, error) {
	e, ok := eases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return e, nil
}

func EaseNames() []string {
	names := make([]string, 0, len(eases))
	for n := range eases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
