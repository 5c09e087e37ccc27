package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/dialnav/internal/gfx"
)

// Painter draws through raylib in screen pixels. Transforms are applied on
// the CPU by the embedded path builder.
type Painter struct {
	gfx.Path
	clips []rl.Rectangle
}

var _ gfx.Painter = (*Painter)(nil)

func NewPainter() *Painter {
	return &Painter{Path: gfx.NewPath()}
}

// Reset prepares the painter for a new frame.
func (p *Painter) Reset() {
	p.Path = gfx.NewPath()
	if len(p.clips) > 0 {
		rl.EndScissorMode()
	}
	p.clips = p.clips[:0]
}

func toRL(c gfx.Color) rl.Color {
	r, g, b, a := c.RGBA8()
	return rl.NewColor(r, g, b, a)
}

func vec(v gfx.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func (p *Painter) Fill() {
	col := toRL(p.CurrentFill())
	for _, s := range p.Shapes() {
		if s.IsCircle {
			rl.DrawCircleV(vec(s.Center), float32(s.Radius), col)
			continue
		}
		if len(s.Points) < 3 {
			continue
		}
		rl.DrawTriangleFan(fan(s.Points), col)
	}
}

// fan orders points counter-clockwise on screen, as raylib expects.
func fan(pts []gfx.Vec2) []rl.Vector2 {
	area := 0.0
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	out := make([]rl.Vector2, len(pts))
	for i, pt := range pts {
		if area > 0 {
			out[len(pts)-1-i] = vec(pt)
		} else {
			out[i] = vec(pt)
		}
	}
	return out
}

func (p *Painter) Stroke() {
	col := toRL(p.CurrentStroke())
	w := float32(p.CurrentStrokeWidth() * p.CurrentTransform().ScaleFactor())
	for _, s := range p.Shapes() {
		if s.IsCircle {
			rl.DrawRing(vec(s.Center), float32(s.Radius)-w/2, float32(s.Radius)+w/2, 0, 360, 48, col)
			continue
		}
		for i := 1; i < len(s.Points); i++ {
			rl.DrawLineEx(vec(s.Points[i-1]), vec(s.Points[i]), w, col)
		}
		if s.Closed && len(s.Points) > 2 {
			rl.DrawLineEx(vec(s.Points[len(s.Points)-1]), vec(s.Points[0]), w, col)
		}
	}
}

func (p *Painter) FillText(text string) {
	xf := p.CurrentTransform()
	size := int32(math.Round(p.CurrentFontSize() * xf.ScaleFactor()))
	if size < 1 {
		return
	}
	w := float64(rl.MeasureText(text, size))
	box := gfx.AlignOffset(p.CurrentAlign(), gfx.V(w, float64(size)))
	origin := xf.Apply(gfx.Vec2{})
	rl.DrawText(text, int32(origin.X+box.X), int32(origin.Y+box.Y), size, toRL(p.CurrentFill()))
}

func (p *Painter) PushClip(pos, size gfx.Vec2) {
	lo, hi := p.ClipBox(pos, size)
	r := rl.NewRectangle(float32(lo.X), float32(lo.Y), float32(hi.X-lo.X), float32(hi.Y-lo.Y))
	if n := len(p.clips); n > 0 {
		r = intersect(p.clips[n-1], r)
		rl.EndScissorMode()
	}
	p.clips = append(p.clips, r)
	scissor(r)
}

func (p *Painter) PopClip() {
	if len(p.clips) == 0 {
		return
	}
	rl.EndScissorMode()
	p.clips = p.clips[:len(p.clips)-1]
	if n := len(p.clips); n > 0 {
		scissor(p.clips[n-1])
	}
}

func scissor(r rl.Rectangle) {
	rl.BeginScissorMode(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height))
}

func intersect(a, b rl.Rectangle) rl.Rectangle {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.Width, b.X+b.Width)
	y1 := min(a.Y+a.Height, b.Y+b.Height)
	return rl.NewRectangle(x0, y0, max(0, x1-x0), max(0, y1-y0))
}
