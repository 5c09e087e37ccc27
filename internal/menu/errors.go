package menu

import "errors"

var (
	// ErrNoItems is returned when building a menu with nothing to select.
	ErrNoItems = errors.New("menu: a menu needs at least one item")

	// ErrItemOwned indicates an item that already belongs to another menu.
	ErrItemOwned = errors.New("menu: item already belongs to a menu")

	// ErrSubmenuOwned indicates a submenu that already has a parent item.
	ErrSubmenuOwned = errors.New("menu: submenu already has a parent item")

	// ErrCycle indicates a submenu that is an ancestor of its new parent.
	ErrCycle = errors.New("menu: submenu would create a cycle")
)
