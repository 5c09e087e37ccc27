// Package gui runs a mode in a raylib window.
package gui

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/dialnav/internal/gfx"
	"github.com/san-kum/dialnav/internal/mode"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

type Clicker interface {
	Click()
}

type Options struct {
	// Zoom is the number of screen pixels per viewport unit.
	Zoom    int
	Clicker Clicker
}

type App struct {
	Mode    *mode.Mode
	Painter *Painter
	Zoom    float64
	Clicker Clicker

	lastMenu  string
	lastIndex int
}

func NewApp(m *mode.Mode, opts Options) *App {
	if opts.Zoom <= 0 {
		opts.Zoom = 4
	}
	return &App{
		Mode:    m,
		Painter: NewPainter(),
		Zoom:    float64(opts.Zoom),
		Clicker: opts.Clicker,
	}
}

// Run opens the window and blocks until it is closed, q is pressed or ctx
// ends.
func Run(ctx context.Context, m *mode.Mode, opts Options) error {
	app := NewApp(m, opts)
	cfg := m.Config()

	w := int32(cfg.Viewport.Width * app.Zoom)
	h := int32(cfg.Viewport.Height*app.Zoom) + hudHeight
	rl.InitWindow(w, h, "dialnav")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FrameRate))
	rl.SetExitKey(0)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		app.Update(pollInput())

		rl.BeginDrawing()
		app.Draw()
		rl.EndDrawing()
	}
	return ctx.Err()
}

// Input is one frame of keyboard and mouse state.
type Input struct {
	Turn        int
	Wheel       float32
	ConfirmDown bool
	ConfirmUp   bool
	Back        bool
	Indicate    bool
}

func pollInput() Input {
	in := Input{
		Wheel:       rl.GetMouseWheelMove(),
		ConfirmDown: rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) || rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		ConfirmUp:   rl.IsKeyReleased(rl.KeyEnter) || rl.IsKeyReleased(rl.KeySpace) || rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		Back:        rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressed(rl.KeyEscape) || rl.IsMouseButtonPressed(rl.MouseButtonRight),
		Indicate:    rl.IsKeyPressed(rl.KeyB),
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressedRepeat(rl.KeyRight) {
		in.Turn++
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressedRepeat(rl.KeyLeft) {
		in.Turn--
	}
	return in
}

// Update applies input and advances the mode by one frame. Holding the
// confirm button maps to press, letting go to release-and-activate.
func (a *App) Update(in Input) {
	m := a.Mode
	if in.Turn != 0 {
		m.TurnSteps(in.Turn)
	}
	if in.Wheel != 0 {
		m.Turn(-float64(in.Wheel) * m.Config().Dial.TurnStep)
	}
	if in.ConfirmDown {
		m.Press()
	}
	if in.ConfirmUp {
		m.ReleaseAndActivate()
	}
	if in.Back {
		m.Back()
	}
	if in.Indicate {
		m.IndicateBack()
	}

	m.Update(m.Config().FrameDt())

	active := m.System().ActiveMenu()
	if a.lastMenu == active.Name && a.lastIndex != active.CurrentIndex() && a.Clicker != nil {
		a.Clicker.Click()
	}
	a.lastMenu, a.lastIndex = active.Name, active.CurrentIndex()
}

func (a *App) Draw() {
	rl.ClearBackground(ColBg)

	p := a.Painter
	p.Reset()
	p.Save()
	p.Scale(gfx.Splat(a.Zoom))
	a.Mode.Draw(p)
	p.Restore()

	a.drawHUD()
}
