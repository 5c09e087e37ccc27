// Package menu implements the dial-driven carousel menu and the stack-based
// controller that moves between nested menus.
//
//   - [Menu]: items on a circle, spun by a [physics.AngularParticle]
//   - [Item]: a tile with animatable scale and tint, an optional submenu,
//     and a [Handlers] capability table
//   - [System]: owns the active menu, the menu sliding out, and the back-stack
//   - [DetailView]: hold-to-confirm general/detail view pair for an item
//
// # Selection
//
// Turning the dial moves the carousel freely and drops the current
// selection. Once no turn has arrived for Options.DebounceWindow seconds, the
// item under the pointer becomes the active item, its Select handler runs
// once, and the rotation springs onto the exact slot angle every tick until
// the dial moves again.
//
// # Threading
//
// Nothing here is safe for concurrent use. The host delivers input and calls
// [System.Update] and [System.Draw] from one goroutine, and the shared
// [timeline.Timeline] must be stepped on that same goroutine.
package menu
