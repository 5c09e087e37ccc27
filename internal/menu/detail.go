package menu

import (
	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/timeline"
)

// releaseSlack lets a release that lands just short of the minimum hold
// commit immediately instead of waiting for the auto-release cue.
const releaseSlack = 0.95

// DetailView is a hold-to-confirm pair of views on one item. Pressing swaps
// the general view for the detail view; the detail view stays up for at
// least MinimumDuration even if the button comes up sooner.
type DetailView struct {
	General *timeline.Output[timeline.Float]
	Detail  *timeline.Output[timeline.Float]

	MinimumDuration float64

	// OnCollapse, when set, runs each time the detail view closes.
	OnCollapse func()

	expanded       bool
	releasePending bool
	pressTime      float64
	autoRelease    timeline.Timer
	collapses      int
}

func NewDetailView(minimumDuration float64) *DetailView {
	return &DetailView{
		General:         timeline.NewOutput(timeline.Float(1)),
		Detail:          timeline.NewOutput(timeline.Float(0)),
		MinimumDuration: minimumDuration,
	}
}

func (d *DetailView) Expanded() bool { return d.expanded }

// Collapses counts how many times the detail view has closed.
func (d *DetailView) Collapses() int { return d.collapses }

func (d *DetailView) Press(tl *timeline.Timeline) {
	d.expanded = true
	d.releasePending = false
	d.pressTime = tl.Now()

	timeline.Apply(tl, d.General).RampTo(0, 0.2, timeline.EaseOutQuad)
	timeline.Apply(tl, d.Detail).RampTo(1, 0.2, timeline.EaseOutQuad)

	d.autoRelease.Arm(tl, d.MinimumDuration, func() {
		if d.releasePending {
			d.collapse(tl)
		}
	})
}

func (d *DetailView) Release(tl *timeline.Timeline) {
	if !d.expanded {
		return
	}
	if tl.Now()-d.pressTime >= releaseSlack*d.MinimumDuration {
		d.collapse(tl)
		return
	}
	d.releasePending = true
}

func (d *DetailView) collapse(tl *timeline.Timeline) {
	if !d.expanded {
		return
	}
	d.expanded = false
	d.releasePending = false
	d.autoRelease.Cancel()
	d.collapses++

	timeline.Apply(tl, d.General).RampTo(1, 0.2, timeline.EaseOutQuad)
	timeline.Apply(tl, d.Detail).RampTo(0, 0.2, timeline.EaseOutQuad)

	if d.OnCollapse != nil {
		d.OnCollapse()
	}
}

// Install routes an item's press and release through the detail view and
// draws both views, each scaled by its own output. The default press and
// release scale tweens are replaced; the other slots are left alone.
func (d *DetailView) Install(it *Item, general, detail DrawFunc) {
	it.Handlers.Press = func(ms *System, _ *Item) { d.Press(ms.tl) }
	it.Handlers.Release = func(ms *System, _ *Item) { d.Release(ms.tl) }
	it.Handlers.Draw = func(p gfx.Painter, it *Item) {
		drawScaled(p, it, general, float64(d.General.Get()))
		drawScaled(p, it, detail, float64(d.Detail.Get()))
	}
}

func drawScaled(p gfx.Painter, it *Item, draw DrawFunc, s float64) {
	if draw == nil || s <= 0 {
		return
	}
	p.Save()
	p.Scale(gfx.Splat(s))
	draw(p, it)
	p.Restore()
}
