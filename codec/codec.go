// SPDX-License-Identifier: MIT
// Package codec serializes and deserializes a complete session.State to a
// single binary artifact: a hand-rolled length-delimited binary format
// with a magic/version header followed by fixed-order sections over a
// bufio-wrapped stream.
//
// Section order on the wire is mandatory, because later sections
// dereference ids assigned by earlier ones: stops, then buses (whose
// routes are stop-id lists), then render settings, then routing
// settings, then the graph (whose edge metadata is stored as stop and
// bus names), then the router's all-pairs table (whose prevEdge fields
// are edge ids). Deserialization replays that exact order.
package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/graphbuilder"
	"github.com/katalvlaran/transitcat/mapsvg"
	"github.com/katalvlaran/transitcat/routegraph"
	"github.com/katalvlaran/transitcat/router"
	"github.com/katalvlaran/transitcat/session"
)

const (
	magic          = "TCAT"
	currentVersion = uint16(1)
)

// Write serializes s to w in full. Callers typically wrap w in a
// *os.File opened for writing; Write itself performs no file-handle
// management, see cmd/transitcat for the scoped-acquisition wrapper.
func Write(w io.Writer, s *session.State) error {
	bw := bufio.NewWriter(w)

	wr := newWriter(bw)
	wr.raw([]byte(magic))
	wr.u16(currentVersion)

	writeStops(wr, s.Catalog.Stops())
	writeBuses(wr, s.Catalog.Buses())
	writeRenderSettings(wr, s.RenderSettings)
	writeRoutingSettings(wr, s.Catalog.RouteSettings())
	writeGraph(wr, s.Graph)
	writeRouter(wr, s.Router, s.Graph.NumVertices())

	if wr.err != nil {
		return wr.err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: flush: %w", err)
	}
	return nil
}

// Read deserializes a full session.State from r. Bus routes are rebuilt
// from the stop ids on the wire, edge metadata is restored from the stop
// and bus names stored with each edge, and the stop-to-vertex map is
// recomputed from the stop ids, all before Read returns, so the returned
// state can serve queries without any further resolution step.
func Read(r io.Reader) (*session.State, error) {
	rd := newReader(bufio.NewReader(r))

	gotMagic := rd.raw(len(magic))
	if rd.err != nil {
		return nil, rd.err
	}
	if string(gotMagic) != magic {
		return nil, fmt.Errorf("codec.Read: %w", ErrBadMagic)
	}

	version := rd.u16()
	if rd.err != nil {
		return nil, rd.err
	}
	if version != currentVersion {
		return nil, fmt.Errorf("codec.Read: version %d: %w", version, ErrUnsupportedVersion)
	}

	cat := catalog.New()
	if err := readStops(rd, cat); err != nil {
		return nil, err
	}
	if err := readBuses(rd, cat); err != nil {
		return nil, err
	}
	renderSettings, err := readRenderSettings(rd)
	if err != nil {
		return nil, err
	}
	routingSettings, err := readRoutingSettings(rd)
	if err != nil {
		return nil, err
	}
	cat.SetRouteSettings(routingSettings)
	applyRouteSettingsToBuses(cat, routingSettings)

	graph, vertexOf, err := readGraph(rd, cat)
	if err != nil {
		return nil, err
	}
	rtr, err := readRouter(rd, graph)
	if err != nil {
		return nil, err
	}

	if rd.err != nil {
		return nil, rd.err
	}

	return &session.State{
		Catalog:        cat,
		Graph:          graph,
		VertexOf:       vertexOf,
		Router:         rtr,
		RenderSettings: renderSettings,
	}, nil
}

func applyRouteSettingsToBuses(cat *catalog.Catalog, rs catalog.RouteSettings) {
	for _, b := range cat.Buses() {
		b.Settings = rs
	}
}

// --- stops ---

func writeStops(wr *writer, stops []*catalog.Stop) {
	wr.u32(uint32(len(stops)))
	for _, s := range stops {
		wr.u32(uint32(s.ID))
		wr.str(s.Name)
		wr.f64(s.Coord.Lat)
		wr.f64(s.Coord.Lng)
	}
}

func readStops(rd *reader, cat *catalog.Catalog) error {
	n := rd.u32()
	for i := uint32(0); i < n; i++ {
		id := rd.u32()
		name := rd.str()
		lat := rd.f64()
		lng := rd.f64()
		if rd.err != nil {
			return rd.err
		}
		if _, err := cat.AddStopWithID(catalog.StopID(id), name, geo.Coordinate{Lat: lat, Lng: lng}); err != nil {
			return fmt.Errorf("codec.readStops: stop %q (id=%d): %w", name, id, err)
		}
	}
	return nil
}

// --- buses ---

func writeBuses(wr *writer, buses []*catalog.Bus) {
	wr.u32(uint32(len(buses)))
	for _, b := range buses {
		wr.u32(uint32(b.ID))
		wr.str(b.Name)
		wr.u8(uint8(b.RouteType))
		wr.u32(uint32(len(b.Route)))
		for _, stop := range b.Route {
			wr.u32(uint32(stop.ID))
		}
		wr.f64(b.RouteGeoLength)
		wr.f64(b.RouteTrueLength)
		wr.u32(b.StopsOnRoute)
		wr.u32(b.UniqueStops)
	}
}

func readBuses(rd *reader, cat *catalog.Catalog) error {
	n := rd.u32()
	for i := uint32(0); i < n; i++ {
		id := rd.u32()
		name := rd.str()
		routeType := catalog.RouteType(rd.u8())
		stopCount := rd.u32()
		route := make([]*catalog.Stop, stopCount)
		for j := uint32(0); j < stopCount; j++ {
			stopID := catalog.StopID(rd.u32())
			stop, ok := cat.StopByID(stopID)
			if !ok {
				return fmt.Errorf("codec.readBuses: bus %q: stop id %d: %w", name, stopID, ErrDangling)
			}
			route[j] = stop
		}
		geoLength := rd.f64()
		trueLength := rd.f64()
		stopsOnRoute := rd.u32()
		uniqueStops := rd.u32()
		if rd.err != nil {
			return rd.err
		}

		bus := catalog.Bus{
			Route:           route,
			RouteType:       routeType,
			RouteGeoLength:  geoLength,
			RouteTrueLength: trueLength,
			StopsOnRoute:    stopsOnRoute,
			UniqueStops:     uniqueStops,
		}
		if _, err := cat.AddBusWithID(catalog.BusID(id), name, bus); err != nil {
			return fmt.Errorf("codec.readBuses: bus %q (id=%d): %w", name, id, err)
		}
	}
	return nil
}

// --- settings ---

func writeColor(wr *writer, c mapsvg.Color) {
	wr.u8(uint8(c.Kind()))
	switch c.Kind() {
	case mapsvg.KindNamed:
		wr.str(c.Name())
	case mapsvg.KindRGB:
		r, g, b := c.RGB()
		wr.u8(r)
		wr.u8(g)
		wr.u8(b)
	case mapsvg.KindRGBA:
		r, g, b := c.RGB()
		wr.u8(r)
		wr.u8(g)
		wr.u8(b)
		wr.f64(c.Alpha())
	}
}

func readColor(rd *reader) mapsvg.Color {
	switch mapsvg.ColorKind(rd.u8()) {
	case mapsvg.KindNamed:
		return mapsvg.NamedColor(rd.str())
	case mapsvg.KindRGB:
		r, g, b := rd.u8(), rd.u8(), rd.u8()
		return mapsvg.RGBColor(r, g, b)
	case mapsvg.KindRGBA:
		r, g, b := rd.u8(), rd.u8(), rd.u8()
		a := rd.f64()
		return mapsvg.RGBAColor(r, g, b, a)
	default:
		return mapsvg.NoColor()
	}
}

func writeRenderSettings(wr *writer, rs mapsvg.Settings) {
	wr.f64(rs.Width)
	wr.f64(rs.Height)
	wr.f64(rs.Padding)
	wr.f64(rs.LineWidth)
	wr.f64(rs.StopRadius)
	wr.u32(rs.BusLabelFontSize)
	wr.f64(rs.BusLabelOffset.X)
	wr.f64(rs.BusLabelOffset.Y)
	wr.u32(rs.StopLabelFontSize)
	wr.f64(rs.StopLabelOffset.X)
	wr.f64(rs.StopLabelOffset.Y)
	writeColor(wr, rs.UnderlayerColor)
	wr.f64(rs.UnderlayerWidth)
	wr.u32(uint32(len(rs.ColorPalette)))
	for _, c := range rs.ColorPalette {
		writeColor(wr, c)
	}
}

func readRenderSettings(rd *reader) (mapsvg.Settings, error) {
	var rs mapsvg.Settings
	rs.Width = rd.f64()
	rs.Height = rd.f64()
	rs.Padding = rd.f64()
	rs.LineWidth = rd.f64()
	rs.StopRadius = rd.f64()
	rs.BusLabelFontSize = rd.u32()
	rs.BusLabelOffset.X = rd.f64()
	rs.BusLabelOffset.Y = rd.f64()
	rs.StopLabelFontSize = rd.u32()
	rs.StopLabelOffset.X = rd.f64()
	rs.StopLabelOffset.Y = rd.f64()
	rs.UnderlayerColor = readColor(rd)
	rs.UnderlayerWidth = rd.f64()
	paletteLen := rd.u32()
	rs.ColorPalette = make([]mapsvg.Color, paletteLen)
	for i := range rs.ColorPalette {
		rs.ColorPalette[i] = readColor(rd)
	}
	if rd.err != nil {
		return mapsvg.Settings{}, rd.err
	}
	return rs, nil
}

func writeRoutingSettings(wr *writer, rs catalog.RouteSettings) {
	wr.f64(rs.BusVelocity)
	wr.i32(int32(rs.BusWaitTime))
}

func readRoutingSettings(rd *reader) (catalog.RouteSettings, error) {
	velocity := rd.f64()
	wait := rd.i32()
	if rd.err != nil {
		return catalog.RouteSettings{}, rd.err
	}
	return catalog.RouteSettings{BusVelocity: velocity, BusWaitTime: int(wait)}, nil
}

// --- graph ---

const (
	wireWaitEdge uint8 = 0
	wireRideEdge uint8 = 1
)

func writeGraph(wr *writer, g *routegraph.Graph) {
	wr.u32(uint32(g.NumVertices()))
	edges := g.Edges()
	wr.u32(uint32(len(edges)))
	for _, e := range edges {
		wr.u32(uint32(e.From))
		wr.u32(uint32(e.To))
		wr.f64(e.Weight)
		if e.Kind == routegraph.WaitEdge {
			wr.u8(wireWaitEdge)
			wr.str(e.StopName)
			continue
		}
		wr.u8(wireRideEdge)
		wr.str(e.Ride.FromStop)
		wr.str(e.Ride.ToStop)
		wr.str(e.Ride.Bus)
		wr.u32(e.Ride.SpanCount)
	}
}

// readGraph rebuilds the graph by replaying edges through the same
// AddWaitEdge/AddRideEdge calls graphbuilder uses, in the order they were
// written; this reproduces identical EdgeIDs without needing the graph
// package to expose a raw-edge constructor.
func readGraph(rd *reader, cat *catalog.Catalog) (*routegraph.Graph, map[catalog.StopID]graphbuilder.VertexPair, error) {
	numVertices := rd.u32()
	edgeCount := rd.u32()
	if rd.err != nil {
		return nil, nil, rd.err
	}

	g := routegraph.New(int(numVertices))
	for i := uint32(0); i < edgeCount; i++ {
		from := routegraph.VertexID(rd.u32())
		to := routegraph.VertexID(rd.u32())
		weight := rd.f64()
		kind := rd.u8()
		if rd.err != nil {
			return nil, nil, rd.err
		}

		switch kind {
		case wireWaitEdge:
			stopName := rd.str()
			if rd.err != nil {
				return nil, nil, rd.err
			}
			if _, err := g.AddWaitEdge(from, to, weight, stopName); err != nil {
				return nil, nil, fmt.Errorf("codec.readGraph: wait edge %d: %w", i, err)
			}
		case wireRideEdge:
			fromStop := rd.str()
			toStop := rd.str()
			bus := rd.str()
			spanCount := rd.u32()
			if rd.err != nil {
				return nil, nil, rd.err
			}
			info := routegraph.RideInfo{FromStop: fromStop, ToStop: toStop, Bus: bus, SpanCount: spanCount}
			if _, err := g.AddRideEdge(from, to, weight, info); err != nil {
				return nil, nil, fmt.Errorf("codec.readGraph: ride edge %d: %w", i, err)
			}
		default:
			return nil, nil, fmt.Errorf("codec.readGraph: edge %d kind %d: %w", i, kind, ErrBadEdgeKind)
		}
	}

	return g, vertexOfFromCatalog(cat), nil
}

// vertexOfFromCatalog rebuilds the stop-to-vertex-pair map the router
// queries through. It never touches the wire: vertex ids are a pure
// function of stop id (graphbuilder.Build's own invariant), so the
// mapping is recomputed rather than persisted.
func vertexOfFromCatalog(cat *catalog.Catalog) map[catalog.StopID]graphbuilder.VertexPair {
	out := make(map[catalog.StopID]graphbuilder.VertexPair, len(cat.Stops()))
	for _, stop := range cat.Stops() {
		out[stop.ID] = graphbuilder.VertexPair{
			OnBus:    routegraph.VertexID(2 * stop.ID),
			Transfer: routegraph.VertexID(2*stop.ID + 1),
		}
	}
	return out
}

// --- router table ---

func writeRouter(wr *writer, r *router.Router, numVertices int) {
	entries := r.Entries()
	byVertex := make([][]router.Entry, numVertices)
	for _, e := range entries {
		byVertex[e.From] = append(byVertex[e.From], e)
	}

	for u := 0; u < numVertices; u++ {
		row := byVertex[u]
		wr.u32(uint32(len(row)))
		for _, e := range row {
			wr.u32(uint32(e.To))
			wr.f64(e.Weight)
			if e.HasPrevEdge {
				wr.u8(1)
				wr.u32(uint32(e.PrevEdge))
			} else {
				wr.u8(0)
			}
		}
	}
}

func readRouter(rd *reader, g *routegraph.Graph) (*router.Router, error) {
	n := g.NumVertices()
	var entries []router.Entry
	for u := 0; u < n; u++ {
		count := rd.u32()
		for i := uint32(0); i < count; i++ {
			v := rd.u32()
			weight := rd.f64()
			hasPrev := rd.u8()
			var prevEdge routegraph.EdgeID
			if hasPrev == 1 {
				prevEdge = routegraph.EdgeID(rd.u32())
			}
			if rd.err != nil {
				return nil, rd.err
			}
			entries = append(entries, router.Entry{
				From:        routegraph.VertexID(u),
				To:          routegraph.VertexID(v),
				Weight:      weight,
				PrevEdge:    prevEdge,
				HasPrevEdge: hasPrev == 1,
			})
		}
	}
	return router.FromEntries(g, n, entries), nil
}
