package gfx

import "math"

// Matrix is a 2D affine transform:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Mul returns m·n, i.e. n applied first.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Matrix) Translate(v Vec2) Matrix {
	return m.Mul(Matrix{A: 1, D: 1, E: v.X, F: v.Y})
}

func (m Matrix) Rotate(rad float64) Matrix {
	s, c := math.Sincos(rad)
	return m.Mul(Matrix{A: c, B: s, C: -s, D: c})
}

func (m Matrix) Scale(v Vec2) Matrix {
	return m.Mul(Matrix{A: v.X, D: v.Y})
}

func (m Matrix) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ScaleFactor is the geometric mean of the axis scales, used to size radii
// and stroke widths.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// Shape is one subpath in device coordinates: a circle, or a polyline
// that Closed joins back to its start.
type Shape struct {
	IsCircle bool
	Center   Vec2
	Radius   float64
	Points   []Vec2
	Closed   bool
}

type drawState struct {
	xf          Matrix
	fill        Color
	stroke      Color
	strokeWidth float64
	fontSize    float64
	align       Align
}

// pathState is the transform stack and path builder shared by the
// rasterising painters. Shapes are stored in device coordinates.
type pathState struct {
	cur    drawState
	stack  []drawState
	shapes []Shape
}

// Path exposes the shared path builder to painters outside this package.
// Embed it and implement Fill, Stroke, FillText and clipping on top of
// Shapes and the Current accessors.
type Path = pathState

func NewPath() Path { return newPathState() }

func newPathState() pathState {
	return pathState{cur: drawState{
		xf:          Identity(),
		fill:        White,
		stroke:      White,
		strokeWidth: 1,
		fontSize:    12,
		align:       AlignLeft | AlignTop,
	}}
}

func (s *pathState) Save() { s.stack = append(s.stack, s.cur) }

func (s *pathState) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *pathState) Translate(v Vec2)      { s.cur.xf = s.cur.xf.Translate(v) }
func (s *pathState) Rotate(rad float64)    { s.cur.xf = s.cur.xf.Rotate(rad) }
func (s *pathState) Scale(v Vec2)          { s.cur.xf = s.cur.xf.Scale(v) }
func (s *pathState) BeginPath()            { s.shapes = s.shapes[:0] }
func (s *pathState) FillColor(c Color)     { s.cur.fill = c }
func (s *pathState) StrokeColor(c Color)   { s.cur.stroke = c }
func (s *pathState) StrokeWidth(w float64) { s.cur.strokeWidth = w }
func (s *pathState) FontSize(px float64)   { s.cur.fontSize = px }
func (s *pathState) TextAlign(a Align)     { s.cur.align = a }

func (s *pathState) MoveTo(p Vec2) {
	s.shapes = append(s.shapes, Shape{Points: []Vec2{s.cur.xf.Apply(p)}})
}

func (s *pathState) LineTo(p Vec2) {
	if len(s.shapes) == 0 || s.shapes[len(s.shapes)-1].IsCircle {
		s.MoveTo(p)
		return
	}
	last := &s.shapes[len(s.shapes)-1]
	last.Points = append(last.Points, s.cur.xf.Apply(p))
}

func (s *pathState) Circle(center Vec2, radius float64) {
	s.shapes = append(s.shapes, Shape{
		IsCircle: true,
		Center:   s.cur.xf.Apply(center),
		Radius:   radius * s.cur.xf.ScaleFactor(),
	})
}

func (s *pathState) Rect(pos, size Vec2) {
	xf := s.cur.xf
	s.shapes = append(s.shapes, Shape{
		Points: []Vec2{
			xf.Apply(pos),
			xf.Apply(Vec2{pos.X + size.X, pos.Y}),
			xf.Apply(pos.Add(size)),
			xf.Apply(Vec2{pos.X, pos.Y + size.Y}),
		},
		Closed: true,
	})
}

func (s *pathState) TextBounds(text string) (Vec2, Vec2) {
	size := ApproxTextSize(text, s.cur.fontSize)
	return AlignOffset(s.cur.align, size), size
}

// ClipBox is the device-space bounding box of a local rectangle.
func (s *pathState) ClipBox(pos, size Vec2) (lo, hi Vec2) {
	xf := s.cur.xf
	corners := [4]Vec2{
		xf.Apply(pos),
		xf.Apply(Vec2{pos.X + size.X, pos.Y}),
		xf.Apply(pos.Add(size)),
		xf.Apply(Vec2{pos.X, pos.Y + size.Y}),
	}
	lo, hi = corners[0], corners[0]
	for _, c := range corners[1:] {
		lo.X = math.Min(lo.X, c.X)
		lo.Y = math.Min(lo.Y, c.Y)
		hi.X = math.Max(hi.X, c.X)
		hi.Y = math.Max(hi.Y, c.Y)
	}
	return lo, hi
}

func (s *pathState) Shapes() []Shape             { return s.shapes }
func (s *pathState) CurrentTransform() Matrix    { return s.cur.xf }
func (s *pathState) CurrentFill() Color          { return s.cur.fill }
func (s *pathState) CurrentStroke() Color        { return s.cur.stroke }
func (s *pathState) CurrentStrokeWidth() float64 { return s.cur.strokeWidth }
func (s *pathState) CurrentFontSize() float64    { return s.cur.fontSize }
func (s *pathState) CurrentAlign() Align         { return s.cur.align }
