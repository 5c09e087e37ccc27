package menu

import (
	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/timeline"
)

type (
	DrawFunc    func(p gfx.Painter, it *Item)
	HandlerFunc func(ms *System, it *Item)
)

// Handlers is an item's capability table. Any slot may be nil; a nil slot
// means the event is ignored for that item.
type Handlers struct {
	Draw     DrawFunc
	Select   HandlerFunc
	Deselect HandlerFunc
	Press    HandlerFunc
	Release  HandlerFunc
	Activate HandlerFunc
}

func DefaultHandlers() Handlers {
	return Handlers{
		Draw:     DefaultDraw,
		Select:   DefaultSelect,
		Deselect: DefaultDeselect,
		Press:    DefaultPress,
		Release:  DefaultRelease,
		Activate: DefaultActivate,
	}
}

// DefaultDraw fills a disc just inside the tile in the item's current colour.
func DefaultDraw(p gfx.Painter, it *Item) {
	r := 45.0
	if it.parent != nil {
		r = it.parent.TileRadius - 3
	}
	p.BeginPath()
	p.Circle(gfx.Vec2{}, r)
	p.FillColor(it.Color.Get())
	p.Fill()
}

func DefaultSelect(ms *System, it *Item) {
	timeline.Apply(ms.tl, it.Color).RampTo(it.ActiveTint, 0.2, timeline.EaseOutQuad)
	timeline.Apply(ms.tl, it.Scale).RampTo(selectedScale, 0.2, timeline.EaseOutQuad)
}

func DefaultDeselect(ms *System, it *Item) {
	timeline.Apply(ms.tl, it.Color).RampTo(it.Tint, 0.2, timeline.EaseOutQuad)
	timeline.Apply(ms.tl, it.Scale).RampTo(deselectedScale, 0.2, timeline.EaseOutQuad)
}

func DefaultPress(ms *System, it *Item) {
	timeline.Apply(ms.tl, it.Scale).RampTo(deselectedScale, 0.25, timeline.EaseOutQuad)
}

func DefaultRelease(ms *System, it *Item) {
	timeline.Apply(ms.tl, it.Scale).RampTo(selectedScale, 0.25, timeline.EaseOutQuad)
	timeline.Apply(ms.tl, it.Color).RampTo(it.ActiveTint, 0.25, timeline.EaseOutQuad)
}

// DefaultActivate opens the item's submenu, if it has one.
func DefaultActivate(ms *System, it *Item) {
	if it.submenu != nil {
		ms.ActivateMenu(it.submenu)
	}
}
