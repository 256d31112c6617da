// SPDX-License-Identifier: MIT
package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/transitcat/jsonutil"
	"github.com/katalvlaran/transitcat/mapsvg"
	"github.com/katalvlaran/transitcat/router"
)

// curvatureZeroGuard is the threshold below which route_geo_length is
// treated as zero for curvature purposes, guarding the division against a
// degenerate (single-stop) bus's geo length.
const curvatureZeroGuard = 1e-6

// Answer resolves one stat request against the session and returns its
// reply: an unresolved stop/bus/route is expressed as a "not found" reply,
// not an error. Only a request with an unrecognized "type" returns an
// error, since that shape is closer to malformed input than to a query
// miss, and so does a State whose Router is nil (ErrRouterNotBuilt).
func (s *State) Answer(req jsonutil.StatRequest) (*jsonutil.Reply, error) {
	if s.Router == nil {
		return nil, fmt.Errorf("session.Answer: request %d: %w", req.ID, ErrRouterNotBuilt)
	}

	switch req.Type {
	case "Stop":
		return s.answerStop(req), nil
	case "Bus":
		return s.answerBus(req), nil
	case "Map":
		return s.answerMap(req), nil
	case "Route":
		return s.answerRoute(req), nil
	default:
		return nil, fmt.Errorf("session.Answer: request %d type %q: %w", req.ID, req.Type, ErrUnknownStatRequestType)
	}
}

func (s *State) answerStop(req jsonutil.StatRequest) *jsonutil.Reply {
	if _, ok := s.Catalog.StopByName(req.Name); !ok {
		return jsonutil.NotFound(req.ID)
	}
	return jsonutil.NewReply().
		Set("buses", s.Catalog.BusesForStop(req.Name)).
		Set("request_id", req.ID)
}

func (s *State) answerBus(req jsonutil.StatRequest) *jsonutil.Reply {
	bus, ok := s.Catalog.BusByName(req.Name)
	if !ok {
		return jsonutil.NotFound(req.ID)
	}

	curvature := 0.0
	if math.Abs(bus.RouteGeoLength) > curvatureZeroGuard {
		curvature = bus.RouteTrueLength / bus.RouteGeoLength
	}

	return jsonutil.NewReply().
		Set("curvature", curvature).
		Set("request_id", req.ID).
		Set("route_length", bus.RouteTrueLength).
		Set("stop_count", bus.StopsOnRoute).
		Set("unique_stop_count", bus.UniqueStops)
}

func (s *State) answerMap(req jsonutil.StatRequest) *jsonutil.Reply {
	doc := mapsvg.Render(s.RenderSettings, s.Catalog)
	return jsonutil.NewReply().
		Set("map", doc.Render()).
		Set("request_id", req.ID)
}

func (s *State) answerRoute(req jsonutil.StatRequest) *jsonutil.Reply {
	from, ok := s.Catalog.StopByName(req.From)
	if !ok {
		return jsonutil.NotFound(req.ID)
	}
	to, ok := s.Catalog.StopByName(req.To)
	if !ok {
		return jsonutil.NotFound(req.ID)
	}

	route, err := s.Router.BuildRoute(s.VertexOf[from.ID].Transfer, s.VertexOf[to.ID].Transfer)
	if err != nil {
		if errors.Is(err, router.ErrRouteNotFound) {
			return jsonutil.NotFound(req.ID)
		}
		// Any other error is a structural invariant violation (e.g. a
		// vertex id the router was never built over); Answer has no way
		// to recover, so it surfaces as a not-found rather than a panic.
		return jsonutil.NotFound(req.ID)
	}

	items := make([]jsonutil.RouteItem, len(route.Items))
	for i, item := range route.Items {
		if item.Kind == router.Wait {
			items[i] = jsonutil.NewWaitItem(item.StopName, item.Time)
		} else {
			items[i] = jsonutil.NewBusItem(item.Bus, item.SpanCount, item.Time)
		}
	}

	return jsonutil.NewReply().
		Set("items", items).
		Set("request_id", req.ID).
		Set("total_time", route.TotalTime)
}
