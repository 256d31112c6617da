package mapsvg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func renderElement(e element) string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func TestCircleOmitsUnsetAttrs(t *testing.T) {
	c := NewCircle().SetCenter(Point{X: 1, Y: 2}).SetRadius(3)
	assert.Equal(t, `<circle cx="1" cy="2" r="3"/>`, renderElement(c))
}

func TestCircleAttrOrderFillStrokeWidthCapJoin(t *testing.T) {
	c := NewCircle().SetCenter(Point{}).SetRadius(1).
		SetFillColor(NamedColor("white")).
		SetStrokeColor(NamedColor("black")).
		SetStrokeWidth(2).
		SetStrokeLineCap(LineCapRound).
		SetStrokeLineJoin(LineJoinBevel)

	assert.Equal(t,
		`<circle cx="0" cy="0" r="1" fill="white" stroke="black" stroke-width="2" stroke-linecap="round" stroke-linejoin="bevel"/>`,
		renderElement(c))
}

func TestTextEscapesSpecialCharsAtAssignment(t *testing.T) {
	text := NewText().SetData(`Tom & Jerry's "Show" <live>`)
	rendered := renderElement(text)
	assert.Contains(t, rendered, "Tom &amp; Jerry&apos;s &quot;Show&quot; &lt;live&gt;")
}

func TestTextAttrsBeforePositionAttrs(t *testing.T) {
	text := NewText().SetFillColor(NamedColor("black")).SetPosition(Point{X: 5, Y: 6}).SetFontSize(12).SetData("X")
	rendered := renderElement(text)

	fillIdx := strings.Index(rendered, "fill=")
	xIdx := strings.Index(rendered, " x=")
	assert.Greater(t, xIdx, fillIdx)
}

func TestPolylinePointFormatting(t *testing.T) {
	p := NewPolyline().AddPoint(Point{X: 1, Y: 2}).AddPoint(Point{X: 3.5, Y: 4})
	assert.Equal(t, `<polyline points="1,2 3.5,4"/>`, renderElement(p))
}

func TestColorStrings(t *testing.T) {
	assert.Equal(t, "none", NoColor().String())
	assert.Equal(t, "black", NamedColor("black").String())
	assert.Equal(t, "rgb(255,160,0)", RGBColor(255, 160, 0).String())
	assert.Equal(t, "rgba(255,255,255,0.85)", RGBAColor(255, 255, 255, 0.85).String())
}
