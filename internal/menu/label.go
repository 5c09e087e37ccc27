package menu

import (
	"math"

	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/timeline"
)

const labelFade = 0.2

// DisplayLabel fades text in, holds it for duration seconds and fades out.
func (ms *System) DisplayLabel(text string, duration float64) {
	ms.labelText = text
	timeline.Apply(ms.tl, ms.labelOpacity).
		RampTo(1, labelFade, timeline.EaseOutQuad).
		Hold(1, duration).
		RampTo(0, labelFade, timeline.EaseInQuad)
}

// DisplayLabelInfinite shows text until HideLabel or another label replaces it.
func (ms *System) DisplayLabelInfinite(text string) {
	ms.DisplayLabel(text, math.Inf(1))
}

func (ms *System) HideLabel() {
	timeline.Apply(ms.tl, ms.labelOpacity).RampTo(0, labelFade, timeline.EaseInQuad)
}

// Label returns the overlay text and its current opacity.
func (ms *System) Label() (string, float64) {
	return ms.labelText, float64(ms.labelOpacity.Get())
}

func (ms *System) drawLabel(p gfx.Painter) {
	text, opacity := ms.Label()
	if opacity <= 0 || text == "" {
		return
	}

	p.TextAlign(gfx.AlignCenter | gfx.AlignMiddle)
	p.FontSize(ms.opts.LabelFontSize)

	pos, size := p.TextBounds(text)
	p.BeginPath()
	p.Rect(pos.Sub(gfx.Splat(4)), size.Add(gfx.Splat(8)))
	p.FillColor(gfx.Black.WithAlpha(opacity * 0.5))
	p.Fill()

	p.FillColor(gfx.White.WithAlpha(opacity))
	p.FillText(text)
}
