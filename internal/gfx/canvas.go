package gfx

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// lumaThreshold decides whether a painted colour lights a dot or clears it.
const lumaThreshold = 0.15

// Canvas is a Painter that rasterises into Braille cells. One device unit
// is one dot, so a Width x Height cell canvas covers (2*Width) x (4*Height)
// device units.
type Canvas struct {
	pathState

	Width, Height int
	Grid          [][]rune
	Colors        [][]Color

	text  [][]rune
	clips []clipRect
}

type clipRect struct {
	lo, hi Vec2
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		pathState: newPathState(),
		Width:     w,
		Height:    h,
		Grid:      make([][]rune, h),
		Colors:    make([][]Color, h),
		text:      make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]Color, w)
		c.text[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Size is the drawable area in device units.
func (c *Canvas) Size() Vec2 {
	return Vec2{X: float64(c.Width * 2), Y: float64(c.Height * 4)}
}

// Set lights a dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) {
	c.set(x, y, White)
}

func (c *Canvas) set(x, y int, col Color) {
	if x < 0 || y < 0 || !c.inClip(x, y) {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][cx] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][cx] = col
}

// Unset clears a dot
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 || !c.inClip(x, y) {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height {
		return
	}

	mask := ^rune(pixelMap[y%4][x%2])
	c.Grid[row][cx] &= mask
	if c.Grid[row][cx] < blank {
		c.Grid[row][cx] = blank
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	cx, row := x/2, y/4
	if cx >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][cx]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) plot(x, y int, col Color) {
	if col.Luma() >= lumaThreshold {
		c.set(x, y, col)
	} else {
		c.Unset(x, y)
	}
}

func (c *Canvas) inClip(x, y int) bool {
	if len(c.clips) == 0 {
		return true
	}
	r := c.clips[len(c.clips)-1]
	fx, fy := float64(x)+0.5, float64(y)+0.5
	return fx >= r.lo.X && fx <= r.hi.X && fy >= r.lo.Y && fy <= r.hi.Y
}

// Clear resets the canvas, including text and clip state.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = Black
			c.text[i][j] = 0
		}
	}
	c.clips = c.clips[:0]
	c.pathState = newPathState()
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.plot(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) Fill() {
	col := c.cur.fill
	for _, s := range c.shapes {
		if s.IsCircle {
			c.fillCircle(s.Center, s.Radius, col)
		} else if len(s.Points) >= 3 {
			c.fillPolygon(s.Points, col)
		}
	}
}

func (c *Canvas) fillCircle(center Vec2, r float64, col Color) {
	x0, x1 := int(math.Floor(center.X-r)), int(math.Ceil(center.X+r))
	y0, y1 := int(math.Floor(center.Y-r)), int(math.Ceil(center.Y+r))
	r2 := r * r
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			dy := float64(y) + 0.5 - center.Y
			if dx*dx+dy*dy <= r2 {
				c.plot(x, y, col)
			}
		}
	}
}

func (c *Canvas) fillPolygon(pts []Vec2, col Color) {
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	for y := int(math.Floor(lo.Y)); y <= int(math.Ceil(hi.Y)); y++ {
		for x := int(math.Floor(lo.X)); x <= int(math.Ceil(hi.X)); x++ {
			if pointInPolygon(Vec2{float64(x) + 0.5, float64(y) + 0.5}, pts) {
				c.plot(x, y, col)
			}
		}
	}
}

// even-odd rule
func pointInPolygon(p Vec2, pts []Vec2) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func (c *Canvas) Stroke() {
	col := c.cur.stroke
	for _, s := range c.shapes {
		if s.IsCircle {
			n := int(math.Max(16, 2*math.Pi*s.Radius))
			prev := s.Center.Add(Vec2{s.Radius, 0})
			for i := 1; i <= n; i++ {
				a := float64(i) / float64(n) * 2 * math.Pi
				p := s.Center.Add(Vec2{math.Cos(a) * s.Radius, math.Sin(a) * s.Radius})
				c.line(prev, p, col)
				prev = p
			}
			continue
		}
		for i := 1; i < len(s.Points); i++ {
			c.line(s.Points[i-1], s.Points[i], col)
		}
		if s.Closed && len(s.Points) > 2 {
			c.line(s.Points[len(s.Points)-1], s.Points[0], col)
		}
	}
}

func (c *Canvas) line(a, b Vec2, col Color) {
	c.DrawLine(int(math.Floor(a.X)), int(math.Floor(a.Y)), int(math.Floor(b.X)), int(math.Floor(b.Y)), col)
}

// FillText places text in the cell under the aligned origin. Braille cells
// cannot hold glyphs, so text is kept on an overlay layer.
func (c *Canvas) FillText(text string) {
	if c.cur.fill.Luma() < lumaThreshold {
		return
	}
	// one character per cell, two dots wide
	size := Vec2{X: float64(len([]rune(text))) * 2, Y: 4}
	p := c.cur.xf.Apply(Vec2{}).Add(AlignOffset(c.cur.align, size))
	row := int(math.Floor(p.Y / 4))
	col := int(math.Floor(p.X / 2))
	if row < 0 || row >= c.Height {
		return
	}
	for i, r := range []rune(text) {
		x := col + i
		if x < 0 || x >= c.Width {
			continue
		}
		c.text[row][x] = r
		c.Colors[row][x] = c.cur.fill
	}
}

func (c *Canvas) PushClip(pos, size Vec2) {
	lo, hi := c.ClipBox(pos, size)
	if n := len(c.clips); n > 0 {
		outer := c.clips[n-1]
		lo.X, lo.Y = math.Max(lo.X, outer.lo.X), math.Max(lo.Y, outer.lo.Y)
		hi.X, hi.Y = math.Min(hi.X, outer.hi.X), math.Min(hi.Y, outer.hi.Y)
	}
	c.clips = append(c.clips, clipRect{lo: lo, hi: hi})
}

func (c *Canvas) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
}

// Cell returns the rune shown at a cell, text overlay first, and its colour.
func (c *Canvas) Cell(row, col int) (rune, Color) {
	if t := c.text[row][col]; t != 0 {
		return t, c.Colors[row][col]
	}
	return c.Grid[row][col], c.Colors[row][col]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r, _ := c.Cell(row, col)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
