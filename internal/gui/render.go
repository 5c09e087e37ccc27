package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudHeight = 48

// drawHUD renders the breadcrumb and selection readout under the dial.
func (a *App) drawHUD() {
	m := a.Mode
	ms := m.System()
	active := ms.ActiveMenu()
	top := int32(m.Config().Viewport.Height * a.Zoom)
	width := int32(m.Config().Viewport.Width * a.Zoom)

	rl.DrawLine(0, top, width, top, ColTextDim)

	crumb := active.Name
	if ms.StackDepth() > 0 {
		crumb = fmt.Sprintf("%s  (%d back)", active.Name, ms.StackDepth())
	}
	rl.DrawText(crumb, 8, top+6, 16, ColText)

	item := "-"
	if it := ms.ActiveItem(); it != nil {
		item = it.Name
	}
	status := fmt.Sprintf("%d/%d %s", active.CurrentIndex()+1, active.Len(), item)
	col := ColSelect
	if m.Daydreaming() {
		col = ColTextDim
	}
	rl.DrawText(status, 8, top+26, 16, col)
}
