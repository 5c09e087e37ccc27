package gfx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Painter is the vector drawing surface a menu renders into.
type Painter interface {
	Save()
	Restore()
	Translate(v Vec2)
	Rotate(rad float64)
	Scale(v Vec2)

	BeginPath()
	MoveTo(p Vec2)
	LineTo(p Vec2)
	Circle(center Vec2, radius float64)
	Rect(pos, size Vec2)
	FillColor(c Color)
	StrokeColor(c Color)
	StrokeWidth(w float64)
	Fill()
	Stroke()

	FontSize(px float64)
	TextAlign(a Align)
	FillText(text string)
	TextBounds(text string) (pos, size Vec2)

	PushClip(pos, size Vec2)
	PopClip()
}

type Align int

const (
	AlignLeft Align = 1 << iota
	AlignCenter
	AlignRight
	AlignTop
	AlignMiddle
	AlignBottom
)

type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Splat returns a vector with both components set to s.
func Splat(s float64) Vec2 { return Vec2{X: s, Y: s} }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64       { return math.Hypot(v.X, v.Y) }
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{v.X + (to.X-v.X)*t, v.Y + (to.Y-v.Y)*t}
}

// Color is linear RGBA in [0, 1].
type Color struct {
	R, G, B, A float64
}

func RGB(r, g, b float64) Color { return Color{r, g, b, 1} }

// Hex builds an opaque colour from 0xRRGGBB.
func Hex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// ParseHex reads "#rrggbb" (the leading # is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("gfx: bad colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("gfx: bad colour %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}

func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Luma is the perceived brightness scaled by alpha.
func (c Color) Luma() float64 {
	return (0.2126*c.R + 0.7152*c.G + 0.0722*c.B) * c.A
}

func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// String renders #rrggbb, ignoring alpha.
func (c Color) String() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

// ApproxTextSize estimates the box of a monospace run at the given size.
func ApproxTextSize(text string, fontSize float64) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float64(n) * fontSize * 0.6, Y: fontSize}
}

// AlignOffset returns where a box of size must start so that the origin
// sits at the requested alignment point.
func AlignOffset(a Align, size Vec2) Vec2 {
	var off Vec2
	switch {
	case a&AlignCenter != 0:
		off.X = -size.X / 2
	case a&AlignRight != 0:
		off.X = -size.X
	}
	switch {
	case a&AlignMiddle != 0:
		off.Y = -size.Y / 2
	case a&AlignBottom != 0:
		off.Y = -size.Y
	}
	return off
}
