// SPDX-License-Identifier: MIT
// Package mapsvg is a small SVG document builder plus the transport map
// renderer built on top of it. The renderer's projection is sub-pixel, so
// elements are assembled directly with strings.Builder/fmt under a fixed
// float format, which keeps the output byte-identical across runs.
package mapsvg

import "fmt"

type colorKind int

const (
	colorNone colorKind = iota
	colorNamed
	colorRGB
	colorRGBA
)

// Color is a closed sum type over the four color forms an SVG attribute
// can take: unset/"none", a CSS name or hex string, an (r,g,b) triple, or
// an (r,g,b,a) quadruple. The zero Color renders as "none".
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
	a       float64
}

// NoColor returns the "none" color, the zero value's own meaning made
// explicit at call sites.
func NoColor() Color { return Color{kind: colorNone} }

// NamedColor wraps a CSS color string (e.g. "black", "#3413ec") verbatim.
func NamedColor(name string) Color { return Color{kind: colorNamed, name: name} }

// RGBColor builds an rgb(r,g,b) color.
func RGBColor(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

// RGBAColor builds an rgba(r,g,b,a) color.
func RGBAColor(r, g, b uint8, a float64) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, a: a}
}

// String renders the color the way it belongs inside a fill/stroke
// attribute value.
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	case colorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatOpacity(c.a))
	default:
		return "none"
	}
}

func formatOpacity(a float64) string {
	// Trim to the shortest exact decimal representation, matching how a
	// streamed double prints without a fixed precision.
	s := fmt.Sprintf("%g", a)
	return s
}

// ColorKind identifies which of Color's four wire shapes a value holds.
// Exported for the binary codec, which must round-trip a Color without
// going through its CSS string rendering.
type ColorKind int

const (
	KindNone ColorKind = iota
	KindNamed
	KindRGB
	KindRGBA
)

// Kind reports which shape c holds.
func (c Color) Kind() ColorKind { return ColorKind(c.kind) }

// Name returns the CSS string of a KindNamed color; empty for any other
// kind.
func (c Color) Name() string { return c.name }

// RGB returns the three color channels of a KindRGB or KindRGBA color;
// zero for any other kind.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// Alpha returns the alpha channel of a KindRGBA color; zero for any other
// kind.
func (c Color) Alpha() float64 { return c.a }
