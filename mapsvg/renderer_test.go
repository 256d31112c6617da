package mapsvg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/busbuilder"
	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/geo"
)

func TestRenderGoldenTwoStopDirectBus(t *testing.T) {
	cat := catalog.New()
	cat.SetRouteSettings(catalog.RouteSettings{BusVelocity: 40, BusWaitTime: 5})

	a, err := cat.AddStop("A", geo.Coordinate{Lat: 0, Lng: 0})
	require.NoError(t, err)
	b, err := cat.AddStop("B", geo.Coordinate{Lat: 0.01, Lng: 0.02})
	require.NoError(t, err)
	cat.AddDistance(a.ID, b.ID, 1000)

	bus := busbuilder.Build(cat,
		busbuilder.WithName("1"),
		busbuilder.WithStops([]string{"A", "B"}),
		busbuilder.WithRouteType(catalog.Direct),
	)
	_, err = cat.AddBus("1", bus)
	require.NoError(t, err)

	settings := Settings{
		Width:             200,
		Height:            200,
		Padding:           10,
		LineWidth:         14,
		StopRadius:        5,
		BusLabelFontSize:  20,
		BusLabelOffset:    Point{X: 7, Y: 15},
		StopLabelFontSize: 20,
		StopLabelOffset:   Point{X: 7, Y: -3},
		UnderlayerColor:   RGBAColor(255, 255, 255, 0.85),
		UnderlayerWidth:   3,
		ColorPalette:      []Color{NamedColor("green"), RGBColor(255, 160, 0)},
	}

	doc := Render(settings, cat)
	got := doc.Render()

	want := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8" ?>`,
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">`,
		`  <polyline points="10,100 190,10" fill="none" stroke="green" stroke-width="14" stroke-linecap="round" stroke-linejoin="round"/>`,
		`  <text fill="rgba(255,255,255,0.85)" stroke="rgba(255,255,255,0.85)" stroke-width="3" stroke-linecap="round" stroke-linejoin="round" x="10" y="100" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold">1</text>`,
		`  <text fill="green" x="10" y="100" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold">1</text>`,
		`  <circle cx="10" cy="100" r="5" fill="white"/>`,
		`  <circle cx="190" cy="10" r="5" fill="white"/>`,
		`  <text fill="rgba(255,255,255,0.85)" stroke="rgba(255,255,255,0.85)" stroke-width="3" stroke-linecap="round" stroke-linejoin="round" x="10" y="100" dx="7" dy="-3" font-size="20" font-family="Verdana">A</text>`,
		`  <text fill="black" x="10" y="100" dx="7" dy="-3" font-size="20" font-family="Verdana">A</text>`,
		`  <text fill="rgba(255,255,255,0.85)" stroke="rgba(255,255,255,0.85)" stroke-width="3" stroke-linecap="round" stroke-linejoin="round" x="190" y="10" dx="7" dy="-3" font-size="20" font-family="Verdana">B</text>`,
		`  <text fill="black" x="190" y="10" dx="7" dy="-3" font-size="20" font-family="Verdana">B</text>`,
		`</svg>`,
	}, "\n")

	assert.Equal(t, want, got)
}

func TestRenderIsByteIdenticalAcrossRuns(t *testing.T) {
	cat := catalog.New()
	cat.SetRouteSettings(catalog.RouteSettings{BusVelocity: 40, BusWaitTime: 5})

	a, _ := cat.AddStop("A", geo.Coordinate{Lat: 0, Lng: 0})
	b, _ := cat.AddStop("B", geo.Coordinate{Lat: 0.01, Lng: 0.02})
	c, _ := cat.AddStop("C", geo.Coordinate{Lat: 0.02, Lng: 0.01})
	cat.AddDistance(a.ID, b.ID, 1000)
	cat.AddDistance(b.ID, c.ID, 900)

	for i, stops := range [][]string{{"A", "B"}, {"B", "C"}} {
		name := string(rune('1' + i))
		bus := busbuilder.Build(cat,
			busbuilder.WithName(name),
			busbuilder.WithStops(stops),
			busbuilder.WithRouteType(catalog.BackAndForth),
		)
		_, err := cat.AddBus(name, bus)
		require.NoError(t, err)
	}

	settings := Settings{
		Width: 400, Height: 300, Padding: 20, LineWidth: 10, StopRadius: 4,
		BusLabelFontSize: 16, StopLabelFontSize: 14,
		UnderlayerColor: RGBAColor(255, 255, 255, 0.85), UnderlayerWidth: 3,
		ColorPalette: []Color{NamedColor("green"), RGBColor(255, 160, 0)},
	}

	first := Render(settings, cat).Render()
	for run := 0; run < 5; run++ {
		assert.Equal(t, first, Render(settings, cat).Render())
	}
}

func TestBackAndForthDrawsBackLabelOnlyWhenDistinctFromFront(t *testing.T) {
	cat := catalog.New()
	cat.SetRouteSettings(catalog.RouteSettings{BusVelocity: 40, BusWaitTime: 5})

	a, _ := cat.AddStop("A", geo.Coordinate{Lat: 0, Lng: 0})
	b, _ := cat.AddStop("B", geo.Coordinate{Lat: 0.01, Lng: 0.02})
	cat.AddDistance(a.ID, b.ID, 1000)

	bus := busbuilder.Build(cat,
		busbuilder.WithName("1"),
		busbuilder.WithStops([]string{"A", "B"}),
		busbuilder.WithRouteType(catalog.BackAndForth),
	)
	_, err := cat.AddBus("1", bus)
	require.NoError(t, err)

	doc := Render(Settings{Width: 200, Height: 200, ColorPalette: []Color{NamedColor("red")}}, cat)

	var textCount int
	for _, e := range doc.elements {
		if _, ok := e.(*Text); ok {
			textCount++
		}
	}
	// 2 bus labels (front+back, distinct names) + 2 stop labels each x2 = 4 bus + 4 stop = 8.
	assert.Equal(t, 8, textCount)
}
