// SPDX-License-Identifier: MIT
package mapsvg

import "strings"

// element is implemented by every drawable type (Circle, Polyline, Text).
type element interface {
	render(b *strings.Builder)
}

// Document accumulates elements in draw order and serializes them as a
// single SVG document.
type Document struct {
	elements []element
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add appends an element to the document. Draw order is preserved: later
// elements are painted over earlier ones.
func (d *Document) Add(e element) {
	d.elements = append(d.elements, e)
}

// Len reports how many elements have been added.
func (d *Document) Len() int {
	return len(d.elements)
}

// Render serializes the full XML document as a string.
func (d *Document) Render() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, e := range d.elements {
		b.WriteString("  ")
		e.render(&b)
		b.WriteString("\n")
	}
	b.WriteString("</svg>")
	return b.String()
}
