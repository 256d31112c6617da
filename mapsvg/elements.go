// SPDX-License-Identifier: MIT
package mapsvg

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a planar coordinate in SVG user units.
type Point struct {
	X, Y float64
}

// StrokeLineCap is the stroke-linecap attribute value.
type StrokeLineCap string

const (
	LineCapButt   StrokeLineCap = "butt"
	LineCapRound  StrokeLineCap = "round"
	LineCapSquare StrokeLineCap = "square"
)

// StrokeLineJoin is the stroke-linejoin attribute value.
type StrokeLineJoin string

const (
	LineJoinArcs      StrokeLineJoin = "arcs"
	LineJoinBevel     StrokeLineJoin = "bevel"
	LineJoinMiter     StrokeLineJoin = "miter"
	LineJoinMiterClip StrokeLineJoin = "miter-clip"
	LineJoinRound     StrokeLineJoin = "round"
)

// pathProps holds the fill/stroke attributes shared by every drawable
// element. Each field is paired with a Set flag since the zero Color and
// the zero width are both meaningful, renderable values once explicitly
// set — the attribute is only omitted when never touched at all.
type pathProps struct {
	fill        Color
	fillSet     bool
	stroke      Color
	strokeSet   bool
	width       float64
	widthSet    bool
	lineCap     StrokeLineCap
	lineCapSet  bool
	lineJoin    StrokeLineJoin
	lineJoinSet bool
}

func (p *pathProps) setFill(c Color)          { p.fill, p.fillSet = c, true }
func (p *pathProps) setStroke(c Color)        { p.stroke, p.strokeSet = c, true }
func (p *pathProps) setWidth(w float64)       { p.width, p.widthSet = w, true }
func (p *pathProps) setLineCap(lc StrokeLineCap)   { p.lineCap, p.lineCapSet = lc, true }
func (p *pathProps) setLineJoin(lj StrokeLineJoin) { p.lineJoin, p.lineJoinSet = lj, true }

// renderAttrs writes fill, stroke, stroke-width, stroke-linecap, then
// stroke-linejoin, in that fixed order, omitting any attribute never set.
func (p *pathProps) renderAttrs(b *strings.Builder) {
	if p.fillSet {
		fmt.Fprintf(b, " fill=\"%s\"", p.fill.String())
	}
	if p.strokeSet {
		fmt.Fprintf(b, " stroke=\"%s\"", p.stroke.String())
	}
	if p.widthSet {
		fmt.Fprintf(b, " stroke-width=\"%s\"", formatNumber(p.width))
	}
	if p.lineCapSet {
		fmt.Fprintf(b, " stroke-linecap=\"%s\"", p.lineCap)
	}
	if p.lineJoinSet {
		fmt.Fprintf(b, " stroke-linejoin=\"%s\"", p.lineJoin)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Circle is the <circle> element.
type Circle struct {
	pathProps
	center Point
	radius float64
}

func NewCircle() *Circle { return &Circle{radius: 1} }

func (c *Circle) SetCenter(p Point) *Circle        { c.center = p; return c }
func (c *Circle) SetRadius(r float64) *Circle      { c.radius = r; return c }
func (c *Circle) SetFillColor(col Color) *Circle   { c.setFill(col); return c }
func (c *Circle) SetStrokeColor(col Color) *Circle { c.setStroke(col); return c }
func (c *Circle) SetStrokeWidth(w float64) *Circle { c.setWidth(w); return c }
func (c *Circle) SetStrokeLineCap(lc StrokeLineCap) *Circle   { c.setLineCap(lc); return c }
func (c *Circle) SetStrokeLineJoin(lj StrokeLineJoin) *Circle { c.setLineJoin(lj); return c }

func (c *Circle) render(b *strings.Builder) {
	fmt.Fprintf(b, "<circle cx=\"%s\" cy=\"%s\" r=\"%s\"", formatNumber(c.center.X), formatNumber(c.center.Y), formatNumber(c.radius))
	c.renderAttrs(b)
	b.WriteString("/>")
}

// Polyline is the <polyline> element.
type Polyline struct {
	pathProps
	points []Point
}

func NewPolyline() *Polyline { return &Polyline{} }

func (p *Polyline) AddPoint(pt Point) *Polyline { p.points = append(p.points, pt); return p }
func (p *Polyline) SetFillColor(col Color) *Polyline   { p.setFill(col); return p }
func (p *Polyline) SetStrokeColor(col Color) *Polyline { p.setStroke(col); return p }
func (p *Polyline) SetStrokeWidth(w float64) *Polyline { p.setWidth(w); return p }
func (p *Polyline) SetStrokeLineCap(lc StrokeLineCap) *Polyline   { p.setLineCap(lc); return p }
func (p *Polyline) SetStrokeLineJoin(lj StrokeLineJoin) *Polyline { p.setLineJoin(lj); return p }

func (p *Polyline) render(b *strings.Builder) {
	b.WriteString("<polyline points=\"")
	for i, pt := range p.points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(pt.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(pt.Y))
	}
	b.WriteString("\"")
	p.renderAttrs(b)
	b.WriteString("/>")
}

var textEscapes = map[byte]string{
	'"':  "&quot;",
	'\'': "&apos;",
	'<':  "&lt;",
	'>':  "&gt;",
	'&':  "&amp;",
}

func escapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if rep, ok := textEscapes[s[i]]; ok {
			b.WriteString(rep)
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Text is the <text> element. Unlike Circle/Polyline, its path attributes
// are rendered before the element's own x/y/dx/dy/font-* attributes.
type Text struct {
	pathProps
	pos, offset   Point
	fontSize      uint32
	fontFamily    string
	fontFamilySet bool
	fontWeight    string
	fontWeightSet bool
	data          string
}

func NewText() *Text { return &Text{fontSize: 1} }

func (t *Text) SetPosition(p Point) *Text      { t.pos = p; return t }
func (t *Text) SetOffset(p Point) *Text        { t.offset = p; return t }
func (t *Text) SetFontSize(size uint32) *Text  { t.fontSize = size; return t }
func (t *Text) SetFontFamily(f string) *Text   { t.fontFamily, t.fontFamilySet = f, true; return t }
func (t *Text) SetFontWeight(w string) *Text   { t.fontWeight, t.fontWeightSet = w, true; return t }
func (t *Text) SetFillColor(col Color) *Text   { t.setFill(col); return t }
func (t *Text) SetStrokeColor(col Color) *Text { t.setStroke(col); return t }
func (t *Text) SetStrokeWidth(w float64) *Text { t.setWidth(w); return t }
func (t *Text) SetStrokeLineCap(lc StrokeLineCap) *Text   { t.setLineCap(lc); return t }
func (t *Text) SetStrokeLineJoin(lj StrokeLineJoin) *Text { t.setLineJoin(lj); return t }

// SetData assigns the element's text content, XML-escaping it immediately.
func (t *Text) SetData(data string) *Text {
	t.data = escapeText(data)
	return t
}

func (t *Text) render(b *strings.Builder) {
	b.WriteString("<text")
	t.renderAttrs(b)
	fmt.Fprintf(b, " x=\"%s\" y=\"%s\"", formatNumber(t.pos.X), formatNumber(t.pos.Y))
	fmt.Fprintf(b, " dx=\"%s\" dy=\"%s\"", formatNumber(t.offset.X), formatNumber(t.offset.Y))
	fmt.Fprintf(b, " font-size=\"%d\"", t.fontSize)
	if t.fontFamilySet {
		fmt.Fprintf(b, " font-family=\"%s\"", t.fontFamily)
	}
	if t.fontWeightSet {
		fmt.Fprintf(b, " font-weight=\"%s\"", t.fontWeight)
	}
	b.WriteString(">")
	b.WriteString(t.data)
	b.WriteString("</text>")
}
