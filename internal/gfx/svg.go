package gfx

import (
	"fmt"
	"html"
	"strings"
)

// SVG is a Painter that accumulates an SVG document.
type SVG struct {
	pathState

	width, height float64
	background    Color

	body  strings.Builder
	clips int
	open  int
}

func NewSVG(width, height float64, background Color) *SVG {
	return &SVG{
		pathState:  newPathState(),
		width:      width,
		height:     height,
		background: background,
	}
}

func (s *SVG) Fill() {
	for _, sh := range s.shapes {
		s.writeShape(sh, fmt.Sprintf(`fill="%s" fill-opacity="%.2f"`, s.cur.fill, s.cur.fill.A))
	}
}

func (s *SVG) Stroke() {
	w := s.cur.strokeWidth * s.cur.xf.ScaleFactor()
	for _, sh := range s.shapes {
		s.writeShape(sh, fmt.Sprintf(`fill="none" stroke="%s" stroke-opacity="%.2f" stroke-width="%.2f"`,
			s.cur.stroke, s.cur.stroke.A, w))
	}
}

func (s *SVG) writeShape(sh Shape, paint string) {
	if sh.IsCircle {
		s.body.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" %s/>
`, sh.Center.X, sh.Center.Y, sh.Radius, paint))
		return
	}
	if len(sh.Points) < 2 {
		return
	}
	var d strings.Builder
	for i, p := range sh.Points {
		if i == 0 {
			d.WriteString(fmt.Sprintf("M%.2f,%.2f", p.X, p.Y))
		} else {
			d.WriteString(fmt.Sprintf(" L%.2f,%.2f", p.X, p.Y))
		}
	}
	if sh.Closed {
		d.WriteString(" Z")
	}
	s.body.WriteString(fmt.Sprintf(`<path d="%s" %s/>
`, d.String(), paint))
}

func (s *SVG) FillText(text string) {
	size := ApproxTextSize(text, s.cur.fontSize)
	off := AlignOffset(s.cur.align, size)
	// SVG places text on the baseline
	p := s.cur.xf.Apply(off.Add(Vec2{0, size.Y * 0.8}))
	s.body.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" font-family="monospace" font-size="%.1f" fill="%s" fill-opacity="%.2f">%s</text>
`, p.X, p.Y, s.cur.fontSize*s.cur.xf.ScaleFactor(), s.cur.fill, s.cur.fill.A, html.EscapeString(text)))
}

func (s *SVG) PushClip(pos, size Vec2) {
	lo, hi := s.ClipBox(pos, size)
	s.clips++
	s.open++
	id := fmt.Sprintf("clip%d", s.clips)
	s.body.WriteString(fmt.Sprintf(`<clipPath id="%s"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath>
<g clip-path="url(#%s)">
`, id, lo.X, lo.Y, hi.X-lo.X, hi.Y-lo.Y, id))
}

func (s *SVG) PopClip() {
	if s.open == 0 {
		return
	}
	s.open--
	s.body.WriteString("</g>\n")
}

// Document returns the complete SVG, closing any clip groups left open.
func (s *SVG) Document() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.width, s.height, s.width, s.height, s.background))

	sb.WriteString(s.body.String())
	for i := 0; i < s.open; i++ {
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}
