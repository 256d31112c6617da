// SPDX-License-Identifier: MIT
package busbuilder

import (
	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/geo"
)

// Build resolves the declared stop names against cat, computes every
// derived metric, and returns an unregistered catalog.Bus (the caller
// registers it via cat.AddBus to obtain a stable BusID).
//
// Complexity: O(n) in the number of declared stops, plus O(n) distance
// lookups against the catalog's O(1) map.
func Build(cat *catalog.Catalog, opts ...Option) catalog.Bus {
	cfg := newBusConfig(opts...)

	route := make([]*catalog.Stop, 0, len(cfg.stopNames))
	for _, name := range cfg.stopNames {
		stop, ok := cat.StopByName(name)
		if !ok {
			continue
		}
		route = append(route, stop)
	}

	bus := catalog.Bus{
		Name:            cfg.name,
		Route:           route,
		RouteType:       cfg.routeType,
		Settings:        cfg.settings,
		RouteGeoLength:  routeGeoLength(route, cfg.routeType),
		RouteTrueLength: routeTrueLength(cat, route, cfg.routeType),
		StopsOnRoute:    stopsOnRoute(route, cfg.routeType),
		UniqueStops:     uniqueStops(route),
	}

	return bus
}

func routeGeoLength(route []*catalog.Stop, rt catalog.RouteType) float64 {
	if len(route) == 0 {
		return 0
	}
	var length float64
	for i := 0; i+1 < len(route); i++ {
		length += geo.Distance(route[i].Coord, route[i+1].Coord)
	}
	if rt == catalog.BackAndForth {
		length *= 2
	}
	return length
}

func routeTrueLength(cat *catalog.Catalog, route []*catalog.Stop, rt catalog.RouteType) float64 {
	if len(route) == 0 {
		return 0
	}
	var length float64
	for i := 0; i+1 < len(route); i++ {
		d, _ := cat.Distance(route[i].ID, route[i+1].ID)
		length += d
	}
	if rt == catalog.BackAndForth {
		for i := len(route) - 1; i > 0; i-- {
			d, _ := cat.Distance(route[i].ID, route[i-1].ID)
			length += d
		}
	}
	return length
}

// stopsOnRoute reports how many times the route visits a stop, counting
// the BackAndForth return leg but not double-counting its turnaround stop.
func stopsOnRoute(route []*catalog.Stop, rt catalog.RouteType) uint32 {
	n := uint32(len(route))
	if rt == catalog.BackAndForth && n > 0 {
		return n*2 - 1
	}
	return n
}

func uniqueStops(route []*catalog.Stop) uint32 {
	seen := make(map[string]struct{}, len(route))
	for _, stop := range route {
		seen[stop.Name] = struct{}{}
	}
	return uint32(len(seen))
}
