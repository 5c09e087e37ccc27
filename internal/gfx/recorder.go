package gfx

import (
	"fmt"
	"strings"
)

// Command is one recorded Painter call.
type Command struct {
	Op   string
	Args []float64
	Text string
}

func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, a := range c.Args {
		parts = append(parts, fmt.Sprintf("%.2f", a))
	}
	if c.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", c.Text))
	}
	return c.Op + "(" + strings.Join(parts, ", ") + ")"
}

// Recorder is a Painter that only remembers what it was asked to do.
type Recorder struct {
	Commands []Command
	fontSize float64
	align    Align
}

func NewRecorder() *Recorder {
	return &Recorder{fontSize: 12, align: AlignLeft | AlignTop}
}

func (r *Recorder) rec(op string, args ...float64) {
	r.Commands = append(r.Commands, Command{Op: op, Args: args})
}

func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts lists every string passed to FillText, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Commands {
		if c.Op == "fillText" {
			out = append(out, c.Text)
		}
	}
	return out
}

func (r *Recorder) Save()                      { r.rec("save") }
func (r *Recorder) Restore()                   { r.rec("restore") }
func (r *Recorder) Translate(v Vec2)           { r.rec("translate", v.X, v.Y) }
func (r *Recorder) Rotate(rad float64)         { r.rec("rotate", rad) }
func (r *Recorder) Scale(v Vec2)               { r.rec("scale", v.X, v.Y) }
func (r *Recorder) BeginPath()                 { r.rec("beginPath") }
func (r *Recorder) MoveTo(p Vec2)              { r.rec("moveTo", p.X, p.Y) }
func (r *Recorder) LineTo(p Vec2)              { r.rec("lineTo", p.X, p.Y) }
func (r *Recorder) Circle(c Vec2, rad float64) { r.rec("circle", c.X, c.Y, rad) }
func (r *Recorder) Rect(pos, size Vec2)        { r.rec("rect", pos.X, pos.Y, size.X, size.Y) }
func (r *Recorder) FillColor(c Color)          { r.rec("fillColor", c.R, c.G, c.B, c.A) }
func (r *Recorder) StrokeColor(c Color)        { r.rec("strokeColor", c.R, c.G, c.B, c.A) }
func (r *Recorder) StrokeWidth(w float64)      { r.rec("strokeWidth", w) }
func (r *Recorder) Fill()                      { r.rec("fill") }
func (r *Recorder) Stroke()                    { r.rec("stroke") }
func (r *Recorder) PopClip()                   { r.rec("popClip") }

func (r *Recorder) FontSize(px float64) {
	r.fontSize = px
	r.rec("fontSize", px)
}

func (r *Recorder) TextAlign(a Align) {
	r.align = a
	r.rec("textAlign", float64(a))
}

func (r *Recorder) FillText(text string) {
	r.Commands = append(r.Commands, Command{Op: "fillText", Text: text})
}

func (r *Recorder) TextBounds(text string) (Vec2, Vec2) {
	size := ApproxTextSize(text, r.fontSize)
	return AlignOffset(r.align, size), size
}

func (r *Recorder) PushClip(pos, size Vec2) {
	r.rec("pushClip", pos.X, pos.Y, size.X, size.Y)
}

var (
	_ Painter = (*Recorder)(nil)
	_ Painter = (*Canvas)(nil)
	_ Painter = (*SVG)(nil)
)
