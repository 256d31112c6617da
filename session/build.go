// SPDX-License-Identifier: MIT
package session

import (
	"fmt"

	"github.com/katalvlaran/transitcat/busbuilder"
	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/graphbuilder"
	"github.com/katalvlaran/transitcat/jsonutil"
	"github.com/katalvlaran/transitcat/router"
)

// Build ingests a make-base request document into a fresh, query-ready
// State: every stop, then every inter-stop distance, then every bus, in
// that order, followed by graph and router construction.
//
// Three passes over BaseRequests are required, not one: a Bus's road
// distances and route can only resolve once every Stop has been added,
// and a Stop's own road_distances entries can only resolve once every
// other Stop named in them exists.
func Build(in *jsonutil.Input) (*State, error) {
	cat := catalog.New()
	cat.SetRouteSettings(routingSettings(in.RoutingSettings))

	for _, req := range in.BaseRequests {
		switch req.Type {
		case "Stop":
			if _, err := cat.AddStop(req.Name, geo.Coordinate{Lat: req.Latitude, Lng: req.Longitude}); err != nil {
				return nil, fmt.Errorf("session.Build: stop %q: %w", req.Name, err)
			}
		case "Bus":
			// Resolved in the third pass, once every stop exists.
		default:
			return nil, fmt.Errorf("session.Build: request type %q: %w: %w", req.Type, ErrUnknownBaseRequestType, jsonutil.ErrParse)
		}
	}

	for _, req := range in.BaseRequests {
		if req.Type != "Stop" {
			continue
		}
		from, ok := cat.StopByName(req.Name)
		if !ok {
			continue
		}
		for otherName, meters := range req.RoadDistances {
			other, ok := cat.StopByName(otherName)
			if !ok {
				// An undeclared stop in a road_distances entry is dropped
				// rather than rejected, mirroring the engine's tolerance
				// for unresolved stop names elsewhere.
				continue
			}
			cat.AddDistance(from.ID, other.ID, float64(meters))
		}
	}

	for _, req := range in.BaseRequests {
		if req.Type != "Bus" {
			continue
		}
		routeType := catalog.BackAndForth
		if req.IsRoundtrip {
			routeType = catalog.Round
		}
		bus := busbuilder.Build(cat,
			busbuilder.WithStops(req.Stops),
			busbuilder.WithRouteType(routeType),
			busbuilder.WithSettings(cat.RouteSettings()),
		)
		if _, err := cat.AddBus(req.Name, bus); err != nil {
			return nil, fmt.Errorf("session.Build: bus %q: %w", req.Name, err)
		}
	}

	render, err := renderSettings(in.RenderSettings)
	if err != nil {
		return nil, fmt.Errorf("session.Build: %w", err)
	}

	result, err := graphbuilder.Build(cat)
	if err != nil {
		return nil, fmt.Errorf("session.Build: %w", err)
	}

	return &State{
		Catalog:        cat,
		Graph:          result.Graph,
		VertexOf:       result.VertexOf,
		Router:         router.Build(result.Graph),
		RenderSettings: render,
	}, nil
}
