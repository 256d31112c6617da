// SPDX-License-Identifier: MIT
// Package graphbuilder translates a built catalog.Catalog into a
// routegraph.Graph: two vertices per stop, one wait edge per stop, and one
// ride edge per (boarding stop, alighting stop) pair reachable on some bus;
// where several buses or directions connect the same pair, only the
// cheapest is kept.
package graphbuilder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/routegraph"
)

// minutesPerKmhMeter converts (meters / (km/h)) into minutes: d meters at
// v km/h take d/(1000*v) hours, i.e. d/v * 60/1000 = d/v * 3.6/60 minutes.
const minutesPerKmhMeter = 3.6 / 60.0

// VertexPair is the on-bus/at-platform vertex pair assigned to one stop.
type VertexPair struct {
	OnBus    routegraph.VertexID
	Transfer routegraph.VertexID
}

// Result bundles the built graph with the stop<->vertex mapping the router
// needs to translate a stop-name query into a vertex-id query.
type Result struct {
	Graph    *routegraph.Graph
	VertexOf map[catalog.StopID]VertexPair
}

type candidateKey struct {
	from routegraph.VertexID
	to   routegraph.VertexID
}

// Build constructs the full routing graph for cat. Stop IDs are assumed
// dense over [0, len(cat.Stops())): this holds for every catalog built
// through normal insertion (AddStop) or through the binary codec's
// deserialization path, which replays stops in their original order.
func Build(cat *catalog.Catalog) (*Result, error) {
	stops := cat.Stops()
	g := routegraph.New(2 * len(stops))

	vertexOf := make(map[catalog.StopID]VertexPair, len(stops))
	for _, stop := range stops {
		vertexOf[stop.ID] = VertexPair{
			OnBus:    routegraph.VertexID(2 * stop.ID),
			Transfer: routegraph.VertexID(2*stop.ID + 1),
		}
	}

	waitTime := float64(cat.RouteSettings().BusWaitTime)
	for _, stop := range stops {
		vp := vertexOf[stop.ID]
		if _, err := g.AddWaitEdge(vp.Transfer, vp.OnBus, waitTime, stop.Name); err != nil {
			return nil, fmt.Errorf("graphbuilder: wait edge for stop %q: %w", stop.Name, err)
		}
	}

	for _, bus := range cat.Buses() {
		for i := 0; i+1 < len(bus.Route); i++ {
			from, to := bus.Route[i], bus.Route[i+1]
			if _, ok := cat.Distance(from.ID, to.ID); !ok {
				return nil, fmt.Errorf("graphbuilder: bus %q: no road distance %s->%s", bus.Name, from.Name, to.Name)
			}
		}
	}

	candidates := make(map[candidateKey]rideCandidate)

	velocity := cat.RouteSettings().BusVelocity
	for _, bus := range cat.Buses() {
		collectSpans(cat, bus, bus.Route, velocity, vertexOf, candidates)
		if bus.RouteType == catalog.BackAndForth {
			collectSpans(cat, bus, reversed(bus.Route), velocity, vertexOf, candidates)
		}
	}

	keys := make([]candidateKey, 0, len(candidates))
	for k := range candidates {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})

	for _, k := range keys {
		c := candidates[k]
		if _, err := g.AddRideEdge(k.from, k.to, c.time, c.info); err != nil {
			return nil, fmt.Errorf("graphbuilder: ride edge %s->%s on bus %q: %w", c.info.FromStop, c.info.ToStop, c.info.Bus, err)
		}
	}

	return &Result{Graph: g, VertexOf: vertexOf}, nil
}

type rideCandidate struct {
	time float64
	info routegraph.RideInfo
}

// collectSpans enumerates every (boarding, alighting) pair reachable along
// route in the given direction, accumulating the true-distance cost
// span-by-span, and records the cheapest candidate seen so far for each
// (from-vertex, to-vertex) pair across every bus and every direction.
func collectSpans(
	cat *catalog.Catalog,
	bus *catalog.Bus,
	route []*catalog.Stop,
	velocity float64,
	vertexOf map[catalog.StopID]VertexPair,
	candidates map[candidateKey]rideCandidate,
) {
	for i := range route {
		from := route[i]
		fullDistance := 0.0
		spanCount := uint32(0)

		for j := i + 1; j < len(route); j++ {
			to := route[j]
			prev := route[j-1]

			d, _ := cat.Distance(prev.ID, to.ID)
			fullDistance += d
			spanCount++

			// A route can revisit its boarding stop; the span still
			// contributes distance, but a self-pair yields no edge.
			if from.ID == to.ID {
				continue
			}

			time := (fullDistance / velocity) * minutesPerKmhMeter

			key := candidateKey{vertexOf[from.ID].OnBus, vertexOf[to.ID].Transfer}

			if existing, ok := candidates[key]; !ok || time < existing.time {
				candidates[key] = rideCandidate{
					time: time,
					info: routegraph.RideInfo{
						FromStop:  from.Name,
						ToStop:    to.Name,
						Bus:       bus.Name,
						SpanCount: spanCount,
					},
				}
			}
		}
	}
}

func reversed(route []*catalog.Stop) []*catalog.Stop {
	out := make([]*catalog.Stop, len(route))
	for i, s := range route {
		out[len(route)-1-i] = s
	}
	return out
}
