package menu

import (
	"fmt"
	"math"

	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/physics"
	"github.com/san-kum/dialnav/internal/timeline"
)

// Menu is an ordered ring of items. Slot i sits at angle i/N·2π.
type Menu struct {
	Name string

	Rotation   physics.AngularParticle
	Position   *timeline.Output[gfx.Vec2]
	TileRadius float64

	// Draw replaces the carousel renderer when set.
	Draw func(p gfx.Painter, m *Menu)

	items []*Item
	owner *Item

	indexedRotation float64
	currentIndex    int

	activeItem  *Item
	pressedItem *Item

	lastInputTime float64
}

// NewMenu builds a menu over items. Items must not belong to another menu.
func NewMenu(name string, items ...*Item) (*Menu, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoItems, name)
	}
	m := &Menu{
		Name:       name,
		Position:   timeline.NewOutput(gfx.Vec2{}),
		TileRadius: 48,
		items:      make([]*Item, 0, len(items)),
	}
	for i, it := range items {
		if it.parent != nil {
			return nil, fmt.Errorf("%w: %q in %q", ErrItemOwned, it.Name, it.parent.Name)
		}
		it.parent = m
		it.index = i
		m.items = append(m.items, it)
	}
	return m, nil
}

// MustMenu is NewMenu for statically known item lists.
func MustMenu(name string, items ...*Item) *Menu {
	m, err := NewMenu(name, items...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Menu) Len() int               { return len(m.items) }
func (m *Menu) Item(i int) *Item       { return m.items[i] }
func (m *Menu) Items() []*Item         { return m.items }
func (m *Menu) Owner() *Item           { return m.owner }
func (m *Menu) CurrentIndex() int      { return m.currentIndex }
func (m *Menu) ActiveItem() *Item      { return m.activeItem }
func (m *Menu) PressedItem() *Item     { return m.pressedItem }
func (m *Menu) LastInputTime() float64 { return m.lastInputTime }

// IndexedRotation is the rotation measured in slots, e.g. 1.5 is halfway
// between items 1 and 2.
func (m *Menu) IndexedRotation() float64 { return m.indexedRotation }

// SlotAngle is the rotation at which item i is centred.
func (m *Menu) SlotAngle(i int) float64 {
	return float64(i) / float64(len(m.items)) * physics.TwoPi
}

// Find returns the first menu named name in this menu's subtree.
func (m *Menu) Find(name string) *Menu {
	if m.Name == name {
		return m
	}
	for _, it := range m.items {
		if it.submenu == nil {
			continue
		}
		if found := it.submenu.Find(name); found != nil {
			return found
		}
	}
	return nil
}

func (m *Menu) updateIndex() {
	n := float64(len(m.items))
	m.indexedRotation = m.Rotation.Angle / physics.TwoPi * n
	m.currentIndex = int(math.Mod(math.Round(m.indexedRotation), n))
	if m.currentIndex < 0 {
		m.currentIndex += len(m.items)
	}
}

func (m *Menu) step(ms *System) {
	if m.activeItem != nil {
		m.Rotation.Friction = ms.opts.FrictionActive
	} else {
		m.Rotation.Friction = ms.opts.FrictionIdle
	}
	m.Rotation.Step()
	m.updateIndex()
	m.commit(ms)
}

func (m *Menu) turn(ms *System, amount float64) {
	m.Rotation.Angle += amount / float64(len(m.items))
	m.lastInputTime = ms.tl.Now()
	m.dropSelection(ms)
}

// VisibleItems lists the slots worth drawing this frame: the current item
// and, once the carousel is more than a quarter slot toward a neighbour,
// that neighbour too.
func (m *Menu) VisibleItems() []int {
	n := len(m.items)
	visible := []int{m.currentIndex}
	if n == 1 {
		return visible
	}
	// measured against the unwrapped nearest slot so the N-1 -> 0 seam
	// reads as a small offset
	offset := m.indexedRotation - math.Round(m.indexedRotation)
	if offset < -0.25 {
		visible = append(visible, (m.currentIndex-1+n)%n)
	} else if offset > 0.25 {
		visible = append(visible, (m.currentIndex+1)%n)
	}
	return visible
}

func (m *Menu) render(p gfx.Painter) {
	if m.Draw != nil {
		m.Draw(p, m)
		return
	}

	n := len(m.items)
	radius := physics.RegularPolyRadius(m.TileRadius*2, n)
	angleIncr := -physics.TwoPi / float64(n)

	p.Save()
	defer p.Restore()
	p.Translate(m.Position.Get().Add(gfx.V(radius, 0)))
	p.Rotate(m.Rotation.Angle)

	for _, i := range m.VisibleItems() {
		it := m.items[i]
		if it.Handlers.Draw == nil {
			continue
		}
		p.Save()
		p.Rotate(float64(i) * angleIncr)
		p.Translate(gfx.V(-radius, 0))
		p.Scale(gfx.Splat(float64(it.Scale.Get())))
		it.Handlers.Draw(p, it)
		p.Restore()
	}
}
