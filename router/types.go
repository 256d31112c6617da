// SPDX-License-Identifier: MIT
// Package router solves all-pairs shortest paths over a routegraph.Graph
// and shapes the winning path into an alternating wait/ride itinerary.
//
// Contract:
//   - The graph is fixed at Build time; mutating it afterward invalidates
//     the Router's internal tables.
//   - +Inf (math.Inf(1)) denotes "no path" between two vertices.
package router

import "github.com/katalvlaran/transitcat/routegraph"

// ItemKind distinguishes the two shapes a route leg can take.
type ItemKind int

const (
	// Wait represents standing at a stop for the fixed boarding penalty.
	Wait ItemKind = iota
	// Ride represents travel aboard a bus between two stops.
	Ride
)

// Item is one leg of a shaped route.
type Item struct {
	Kind ItemKind
	// StopName is set on Wait items: the stop being waited at.
	StopName string
	// Bus, SpanCount are set on Ride items.
	Bus       string
	SpanCount uint32
	// Time is this leg's cost in minutes.
	Time float64
}

// Route is a complete shaped itinerary from a query's source to its
// target transfer vertex. The first item is always a Wait at the source
// stop, matching the graph's construction (every query starts by boarding
// from a platform, never mid-ride).
type Route struct {
	TotalTime float64
	Items     []Item
}

// Router holds the dense shortest-path tables computed over a fixed
// routegraph.Graph.
type Router struct {
	graph *routegraph.Graph
	n     int
	dist  []float64
	// prevEdge[i*n+j] is the ID of the last edge on the shortest path from
	// vertex i to vertex j, or -1 if i == j or no path exists.
	prevEdge []int64
}
