package menu

import (
	"fmt"

	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/timeline"
)

const (
	selectedScale   = 1.0
	deselectedScale = 0.8
)

// LabelFunc produces the text shown when an item is selected.
type LabelFunc func(it *Item) string

// StaticLabel returns a LabelFunc that always yields text.
func StaticLabel(text string) LabelFunc {
	return func(*Item) string { return text }
}

// Item is one carousel tile.
type Item struct {
	Name  string
	Label LabelFunc

	Scale *timeline.Output[timeline.Float]
	Color *timeline.Output[gfx.Color]

	Tint       gfx.Color
	ActiveTint gfx.Color

	Handlers Handlers

	// Data is free for item kinds to hang state on.
	Data any

	submenu *Menu
	parent  *Menu
	index   int
}

// NewItem returns an item in its deselected pose with the default handlers.
func NewItem(name string) *Item {
	tint := gfx.Hex(0x404040)
	return &Item{
		Name:       name,
		Scale:      timeline.NewOutput(timeline.Float(deselectedScale)),
		Color:      timeline.NewOutput(tint),
		Tint:       tint,
		ActiveTint: gfx.White,
		Handlers:   DefaultHandlers(),
	}
}

func (it *Item) Submenu() *Menu { return it.submenu }

// Menu returns the menu the item belongs to, nil before it is added to one.
func (it *Item) Menu() *Menu { return it.parent }

// Index is the item's slot in its menu.
func (it *Item) Index() int { return it.index }

// SetSubmenu makes m the child of it. A menu has at most one parent item and
// may not be an ancestor of it.
func (it *Item) SetSubmenu(m *Menu) error {
	if m == nil {
		if it.submenu != nil {
			it.submenu.owner = nil
		}
		it.submenu = nil
		return nil
	}
	if m.owner != nil && m.owner != it {
		return fmt.Errorf("%w: %q is under %q", ErrSubmenuOwned, m.Name, m.owner.Name)
	}
	for anc := it.parent; anc != nil; {
		if anc == m {
			return fmt.Errorf("%w: %q", ErrCycle, m.Name)
		}
		if anc.owner == nil {
			break
		}
		anc = anc.owner.parent
	}
	if it.submenu != nil && it.submenu != m {
		it.submenu.owner = nil
	}
	it.submenu = m
	m.owner = it
	return nil
}

func (it *Item) String() string {
	if it.parent != nil {
		return fmt.Sprintf("%s/%s", it.parent.Name, it.Name)
	}
	return it.Name
}
