// SPDX-License-Identifier: MIT
package mapsvg

import (
	"math"
	"sort"

	"github.com/katalvlaran/transitcat/catalog"
)

// Settings controls every visual parameter of the rendered map, mirroring
// the render_settings JSON object.
type Settings struct {
	Width             float64
	Height            float64
	Padding           float64
	LineWidth         float64
	StopRadius        float64
	BusLabelFontSize  uint32
	BusLabelOffset    Point
	StopLabelFontSize uint32
	StopLabelOffset   Point
	UnderlayerColor   Color
	UnderlayerWidth   float64
	ColorPalette      []Color
}

// Render builds the full SVG document for cat under the given settings.
// Stops with no bus passing through them, and buses with an empty route,
// are excluded entirely: they participate in neither the projection
// bounds nor any drawn layer.
func Render(settings Settings, cat *catalog.Catalog) *Document {
	stops := nonEmptyStops(cat)
	buses := nonEmptyBuses(cat)

	points := projectStops(stops, settings)

	doc := NewDocument()
	drawLines(doc, buses, points, settings)
	drawBusText(doc, buses, points, settings)
	drawStopCircles(doc, stops, points, settings)
	drawStopText(doc, stops, points, settings)

	return doc
}

func nonEmptyStops(cat *catalog.Catalog) []*catalog.Stop {
	touched := make(map[catalog.StopID]bool)
	for _, bus := range cat.Buses() {
		if len(bus.Route) == 0 {
			continue
		}
		for _, s := range bus.Route {
			touched[s.ID] = true
		}
	}

	var out []*catalog.Stop
	for _, s := range cat.Stops() {
		if touched[s.ID] {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// nonEmptyBuses keeps catalog insertion order: the palette index a bus
// gets is its position among the drawn buses, not an alphabetical rank.
func nonEmptyBuses(cat *catalog.Catalog) []*catalog.Bus {
	var out []*catalog.Bus
	for _, b := range cat.Buses() {
		if b.StopsOnRoute > 0 {
			out = append(out, b)
		}
	}
	return out
}

func projectStops(stops []*catalog.Stop, settings Settings) map[catalog.StopID]Point {
	points := make(map[catalog.StopID]Point, len(stops))
	if len(stops) == 0 {
		return points
	}

	minLat, maxLat := stops[0].Coord.Lat, stops[0].Coord.Lat
	minLng, maxLng := stops[0].Coord.Lng, stops[0].Coord.Lng
	for _, s := range stops {
		minLat = math.Min(minLat, s.Coord.Lat)
		maxLat = math.Max(maxLat, s.Coord.Lat)
		minLng = math.Min(minLng, s.Coord.Lng)
		maxLng = math.Max(maxLng, s.Coord.Lng)
	}

	deltaLat := maxLat - minLat
	deltaLng := maxLng - minLng

	var heightCoef, widthCoef float64
	if math.Abs(deltaLat) > 1e-6 {
		heightCoef = (settings.Height - 2*settings.Padding) / deltaLat
	}
	if math.Abs(deltaLng) > 1e-6 {
		widthCoef = (settings.Width - 2*settings.Padding) / deltaLng
	}

	zoom := math.Min(heightCoef, widthCoef)

	for _, s := range stops {
		points[s.ID] = Point{
			X: (s.Coord.Lng-minLng)*zoom + settings.Padding,
			Y: (maxLat-s.Coord.Lat)*zoom + settings.Padding,
		}
	}
	return points
}

func paletteColor(settings Settings, index int) Color {
	if len(settings.ColorPalette) == 0 {
		return NoColor()
	}
	return settings.ColorPalette[index%len(settings.ColorPalette)]
}

func newLine(settings Settings, colorIndex int) *Polyline {
	return NewPolyline().
		SetFillColor(NoColor()).
		SetStrokeWidth(settings.LineWidth).
		SetStrokeLineCap(LineCapRound).
		SetStrokeLineJoin(LineJoinRound).
		SetStrokeColor(paletteColor(settings, colorIndex))
}

func newBusText(settings Settings) *Text {
	return NewText().
		SetOffset(settings.BusLabelOffset).
		SetFontSize(settings.BusLabelFontSize).
		SetFontFamily("Verdana").
		SetFontWeight("bold")
}

func newUnderlayerBusText(settings Settings) *Text {
	return newBusText(settings).
		SetFillColor(settings.UnderlayerColor).
		SetStrokeColor(settings.UnderlayerColor).
		SetStrokeWidth(settings.UnderlayerWidth).
		SetStrokeLineCap(LineCapRound).
		SetStrokeLineJoin(LineJoinRound)
}

func newDataBusText(settings Settings, colorIndex int) *Text {
	return newBusText(settings).SetFillColor(paletteColor(settings, colorIndex))
}

func newStopText(settings Settings) *Text {
	return NewText().
		SetOffset(settings.StopLabelOffset).
		SetFontSize(settings.StopLabelFontSize).
		SetFontFamily("Verdana")
}

func newUnderlayerStopText(settings Settings) *Text {
	return newStopText(settings).
		SetFillColor(settings.UnderlayerColor).
		SetStrokeColor(settings.UnderlayerColor).
		SetStrokeWidth(settings.UnderlayerWidth).
		SetStrokeLineCap(LineCapRound).
		SetStrokeLineJoin(LineJoinRound)
}

func newDataStopText(settings Settings) *Text {
	return newStopText(settings).SetFillColor(NamedColor("black"))
}

func newStopCircle(settings Settings, center Point) *Circle {
	return NewCircle().SetCenter(center).SetRadius(settings.StopRadius).SetFillColor(NamedColor("white"))
}

func drawLines(doc *Document, buses []*catalog.Bus, points map[catalog.StopID]Point, settings Settings) {
	for colorIndex, bus := range buses {
		line := newLine(settings, colorIndex)
		for _, stop := range bus.Route {
			line.AddPoint(points[stop.ID])
		}
		if bus.RouteType == catalog.BackAndForth {
			for i := len(bus.Route) - 2; i >= 0; i-- {
				line.AddPoint(points[bus.Route[i].ID])
			}
		}
		doc.Add(line)
	}
}

func drawBusText(doc *Document, buses []*catalog.Bus, points map[catalog.StopID]Point, settings Settings) {
	for colorIndex, bus := range buses {
		front := bus.Route[0]
		back := bus.Route[len(bus.Route)-1]

		underlayer := newUnderlayerBusText(settings).SetData(bus.Name).SetPosition(points[front.ID])
		data := newDataBusText(settings, colorIndex).SetData(bus.Name).SetPosition(points[front.ID])
		doc.Add(underlayer)
		doc.Add(data)

		if bus.RouteType == catalog.BackAndForth && front.Name != back.Name {
			doc.Add(newUnderlayerBusText(settings).SetData(bus.Name).SetPosition(points[back.ID]))
			doc.Add(newDataBusText(settings, colorIndex).SetData(bus.Name).SetPosition(points[back.ID]))
		}
	}
}

func drawStopCircles(doc *Document, stops []*catalog.Stop, points map[catalog.StopID]Point, settings Settings) {
	for _, stop := range stops {
		doc.Add(newStopCircle(settings, points[stop.ID]))
	}
}

func drawStopText(doc *Document, stops []*catalog.Stop, points map[catalog.StopID]Point, settings Settings) {
	for _, stop := range stops {
		doc.Add(newUnderlayerStopText(settings).SetData(stop.Name).SetPosition(points[stop.ID]))
		doc.Add(newDataStopText(settings).SetData(stop.Name).SetPosition(points[stop.ID]))
	}
}
