// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/katalvlaran/transitcat/busbuilder"
	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/codec"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/graphbuilder"
	"github.com/katalvlaran/transitcat/router"
	"github.com/katalvlaran/transitcat/session"
)

// runSelftest builds a toy network entirely in memory, routes across it,
// round-trips it through the binary codec, and checks that both the route
// and the reconstructed state agree. It exists for local smoke-testing
// during development, not as part of the CLI's public contract.
func runSelftest() error {
	cat := catalog.New()
	cat.SetRouteSettings(catalog.RouteSettings{BusVelocity: 6, BusWaitTime: 2})

	a, err := cat.AddStop("A", geo.Coordinate{Lat: 0, Lng: 0})
	if err != nil {
		return err
	}
	b, err := cat.AddStop("B", geo.Coordinate{Lat: 0, Lng: 0.001})
	if err != nil {
		return err
	}
	cat.AddDistance(a.ID, b.ID, 100)

	bus := busbuilder.Build(cat,
		busbuilder.WithStops([]string{"A", "B"}),
		busbuilder.WithRouteType(catalog.Direct),
		busbuilder.WithSettings(cat.RouteSettings()),
	)
	if _, err := cat.AddBus("1", bus); err != nil {
		return err
	}

	result, err := graphbuilder.Build(cat)
	if err != nil {
		return err
	}
	r := router.Build(result.Graph)

	route, err := r.BuildRoute(result.VertexOf[a.ID].Transfer, result.VertexOf[b.ID].Transfer)
	if err != nil {
		return fmt.Errorf("selftest: route A->B: %w", err)
	}
	if err := router.ValidateRoute(route); err != nil {
		return fmt.Errorf("selftest: %w", err)
	}
	if route.TotalTime != 3 {
		return fmt.Errorf("selftest: expected total_time 3, got %v", route.TotalTime)
	}

	state := &session.State{
		Catalog:  cat,
		Graph:    result.Graph,
		VertexOf: result.VertexOf,
		Router:   r,
	}

	var buf bytes.Buffer
	if err := codec.Write(&buf, state); err != nil {
		return fmt.Errorf("selftest: codec.Write: %w", err)
	}
	reloaded, err := codec.Read(&buf)
	if err != nil {
		return fmt.Errorf("selftest: codec.Read: %w", err)
	}
	if reloaded.NumStops() != state.NumStops() || reloaded.NumEdges() != state.NumEdges() {
		return fmt.Errorf("selftest: round trip mismatch")
	}

	log.Println("selftest: ok")
	return nil
}
