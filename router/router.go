// SPDX-License-Identifier: MIT
package router

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/transitcat/routegraph"
)

// ErrRouteNotFound is returned by BuildRoute when no path connects the two
// vertices; reply construction turns this into a "not found" stat reply,
// never a process-level error (see jsonutil).
var ErrRouteNotFound = errors.New("router: no route between the requested stops")

// ErrRouteInconsistent is returned by ValidateRoute when a shaped Route
// fails its own shape or arithmetic invariants.
var ErrRouteInconsistent = errors.New("router: route fails consistency check")

const noEdge = int64(-1)

// Build runs all-pairs shortest paths over g and returns a Router ready to
// answer BuildRoute queries. Loop order is fixed (k -> i -> j) to match
// the deterministic accumulation style used throughout this module's
// dense-matrix code.
//
// Complexity: O(V^3) time, O(V^2) space, where V = g.NumVertices().
func Build(g *routegraph.Graph) *Router {
	n := g.NumVertices()
	dist := make([]float64, n*n)
	prevEdge := make([]int64, n*n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			idx := i*n + j
			prevEdge[idx] = noEdge
			if i == j {
				dist[idx] = 0
			} else {
				dist[idx] = math.Inf(1)
			}
		}
	}

	for _, e := range g.Edges() {
		idx := int(e.From)*n + int(e.To)
		if e.Weight < dist[idx] {
			dist[idx] = e.Weight
			prevEdge[idx] = int64(e.ID)
		}
	}

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := dist[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := dist[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand := ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
					prevEdge[baseI+j] = prevEdge[baseK+j]
				}
			}
		}
	}

	return &Router{graph: g, n: n, dist: dist, prevEdge: prevEdge}
}

// BuildRoute returns the shaped shortest-time itinerary from the source
// transfer vertex to the target transfer vertex. Returns ErrRouteNotFound
// if the target is unreachable.
func (r *Router) BuildRoute(from, to routegraph.VertexID) (*Route, error) {
	idx := int(from)*r.n + int(to)
	if math.IsInf(r.dist[idx], 1) {
		return nil, fmt.Errorf("BuildRoute(%d, %d): %w", from, to, ErrRouteNotFound)
	}
	if from == to {
		return &Route{TotalTime: 0, Items: nil}, nil
	}

	var edges []routegraph.Edge
	cur := to
	for cur != from {
		eid := r.prevEdge[int(from)*r.n+int(cur)]
		edge := r.graph.Edge(routegraph.EdgeID(eid))
		edges = append(edges, edge)
		cur = edge.From
	}

	// edges was accumulated back-to-front; reverse while converting.
	items := make([]Item, len(edges))
	for i := range edges {
		items[i] = itemFromEdge(edges[len(edges)-1-i])
	}

	return &Route{TotalTime: r.dist[idx], Items: items}, nil
}

func itemFromEdge(e routegraph.Edge) Item {
	if e.Kind == routegraph.WaitEdge {
		return Item{Kind: Wait, StopName: e.StopName, Time: e.Weight}
	}
	return Item{
		Kind:      Ride,
		Bus:       e.Ride.Bus,
		SpanCount: e.Ride.SpanCount,
		Time:      e.Weight,
	}
}

// ValidateRoute re-derives a Route's shape and arithmetic from scratch and
// reports any mismatch. It exists as a self-check used by the engine's
// hidden selftest entry point; production queries never call it.
func ValidateRoute(route *Route) error {
	if route == nil {
		return fmt.Errorf("ValidateRoute: nil route: %w", ErrRouteInconsistent)
	}
	if len(route.Items) == 0 {
		if route.TotalTime != 0 {
			return fmt.Errorf("ValidateRoute: empty route with nonzero time %v: %w", route.TotalTime, ErrRouteInconsistent)
		}
		return nil
	}
	if route.Items[0].Kind != Wait {
		return fmt.Errorf("ValidateRoute: first item is not Wait: %w", ErrRouteInconsistent)
	}

	var sum float64
	expect := Wait
	for i, item := range route.Items {
		if item.Kind != expect {
			return fmt.Errorf("ValidateRoute: item %d breaks Wait/Ride alternation: %w", i, ErrRouteInconsistent)
		}
		sum += item.Time
		if expect == Wait {
			expect = Ride
		} else {
			expect = Wait
		}
	}

	if math.Abs(sum-route.TotalTime) > 1e-6 {
		return fmt.Errorf("ValidateRoute: item times sum to %v, want %v: %w", sum, route.TotalTime, ErrRouteInconsistent)
	}
	return nil
}
