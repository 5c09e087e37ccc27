package menu

import (
	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/timeline"
)

// System routes dial and button input to the active menu and animates the
// hand-off between menus.
//
// It is Idle when no menu is sliding out and Transitioning otherwise. New
// activations are dropped while Transitioning so that bursts of input
// cannot stack up transitions.
type System struct {
	opts     Options
	tl       *timeline.Timeline
	observer Observer

	active       *Menu
	deactivating *Menu
	stack        []*Menu

	labelText    string
	labelOpacity *timeline.Output[timeline.Float]
}

// NewSystem creates a controller that schedules all animation on tl.
// The caller owns tl and steps it once per frame before calling Update.
func NewSystem(tl *timeline.Timeline, opts Options) *System {
	if opts.TransitionEase == nil {
		opts.TransitionEase = timeline.EaseInOutQuad
	}
	return &System{
		opts:         opts,
		tl:           tl,
		observer:     NopObserver{},
		labelOpacity: timeline.NewOutput(timeline.Float(0)),
	}
}

func (ms *System) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	ms.observer = o
}

func (ms *System) Timeline() *timeline.Timeline { return ms.tl }
func (ms *System) Options() Options             { return ms.opts }
func (ms *System) ActiveMenu() *Menu            { return ms.active }
func (ms *System) DeactivatingMenu() *Menu      { return ms.deactivating }
func (ms *System) Transitioning() bool          { return ms.deactivating != nil }
func (ms *System) StackDepth() int              { return len(ms.stack) }

// ActiveItem is the committed selection in the active menu, if any.
func (ms *System) ActiveItem() *Item {
	if ms.active == nil {
		return nil
	}
	return ms.active.activeItem
}

// Update runs one physics tick on the active menu.
func (ms *System) Update() {
	if ms.active == nil {
		return
	}
	ms.active.step(ms)
}

// Draw renders the outgoing menu (during a transition), the active menu and
// the label overlay, centred in the viewport.
func (ms *System) Draw(p gfx.Painter) {
	p.Save()
	defer p.Restore()
	p.Translate(ms.opts.Viewport.Mul(0.5))

	if ms.deactivating != nil {
		ms.deactivating.render(p)
	}
	if ms.active != nil {
		ms.active.render(p)
	}
	ms.drawLabel(p)
}

// ActivateMenu pushes the active menu onto the back-stack and slides m in
// from the right.
func (ms *System) ActivateMenu(m *Menu) {
	ms.activateMenu(m, true)
}

func (ms *System) activateMenu(target *Menu, push bool) {
	if target == nil || target == ms.active || ms.deactivating != nil {
		return
	}

	dir := 1.0
	if !push {
		dir = -1.0
	}
	width := ms.opts.Viewport.X

	if out := ms.active; out != nil {
		ms.deactivating = out
		timeline.Apply(ms.tl, out.Position).
			RampTo(gfx.V(-width*dir, 0), ms.opts.TransitionDuration, ms.opts.TransitionEase).
			OnFinish(func() {
				if ms.deactivating == out {
					ms.deactivating = nil
				}
			})
		if push {
			ms.stack = append(ms.stack, out)
		}
	}

	target.Position.Set(gfx.V(width*dir, 0))
	timeline.Apply(ms.tl, target.Position).
		RampTo(gfx.Vec2{}, ms.opts.TransitionDuration, ms.opts.TransitionEase)

	ms.active = target
	ms.observer.MenuActivated(target, push)
}

// ActivatePreviousMenu slides back to the menu on top of the back-stack.
func (ms *System) ActivatePreviousMenu() {
	if ms.deactivating != nil || len(ms.stack) == 0 {
		return
	}
	prev := ms.stack[len(ms.stack)-1]
	ms.stack = ms.stack[:len(ms.stack)-1]
	ms.activateMenu(prev, false)
}

// IndicatePreviousMenu nudges the active menu toward the back direction and
// lets it spring back, hinting that back is available.
func (ms *System) IndicatePreviousMenu() {
	if ms.deactivating != nil || len(ms.stack) == 0 || ms.active == nil {
		return
	}
	timeline.Apply(ms.tl, ms.active.Position).
		RampTo(gfx.V(ms.opts.IndicateOffset, 0), 0.2, timeline.EaseOutQuad).
		RampTo(gfx.Vec2{}, 0.2, timeline.EaseInOutQuad)
}

// Turn spins the active menu by a signed dial delta. The delta is divided by
// the item count, so an amount of 2π is one slot of travel in any menu.
func (ms *System) Turn(amount float64) {
	if ms.active == nil {
		return
	}
	ms.active.turn(ms, amount)
	ms.observer.Turned(ms.active, amount)
}

func (ms *System) PressItem() {
	m := ms.active
	if m == nil || m.activeItem == nil {
		return
	}
	it := m.activeItem
	m.pressedItem = it
	ms.observer.ItemPressed(m, it)
	if it.Handlers.Press != nil {
		it.Handlers.Press(ms, it)
	}
}

func (ms *System) ReleaseItem() {
	if ms.active == nil {
		return
	}
	ms.release(ms.active)
}

func (ms *System) release(m *Menu) {
	it := m.pressedItem
	if it == nil {
		return
	}
	m.pressedItem = nil
	ms.observer.ItemReleased(m, it)
	if it.Handlers.Release != nil {
		it.Handlers.Release(ms, it)
	}
}

func (ms *System) ActivateItem() {
	m := ms.active
	if m == nil || m.activeItem == nil {
		return
	}
	it := m.activeItem
	ms.observer.ItemActivated(m, it)
	if it.Handlers.Activate != nil {
		it.Handlers.Activate(ms, it)
	}
}

// ReleaseAndActivateItem is the confirm button coming up: it only activates
// an item that was pressed.
func (ms *System) ReleaseAndActivateItem() {
	if ms.active == nil || ms.active.pressedItem == nil {
		return
	}
	ms.ReleaseItem()
	ms.ActivateItem()
}
