// SPDX-License-Identifier: MIT
package router

import (
	"math"

	"github.com/katalvlaran/transitcat/routegraph"
)

// Entry is one present cell of the all-pairs table, the shape the binary
// codec persists. Only finite (reachable) cells become entries; the codec
// restores absent cells by leaving them at +Inf on load, exactly as Build
// leaves them before any relaxation.
type Entry struct {
	From        routegraph.VertexID
	To          routegraph.VertexID
	Weight      float64
	PrevEdge    routegraph.EdgeID
	HasPrevEdge bool
}

// Entries returns every present cell of r's all-pairs table, ordered by
// source vertex then destination vertex. Absent (unreachable) cells are
// omitted; the codec restores them at the correct index on load.
func (r *Router) Entries() []Entry {
	var out []Entry
	for u := 0; u < r.n; u++ {
		base := u * r.n
		for v := 0; v < r.n; v++ {
			idx := base + v
			w := r.dist[idx]
			if math.IsInf(w, 1) {
				continue
			}
			pe := r.prevEdge[idx]
			out = append(out, Entry{
				From:        routegraph.VertexID(u),
				To:          routegraph.VertexID(v),
				Weight:      w,
				PrevEdge:    routegraph.EdgeID(pe),
				HasPrevEdge: pe != noEdge,
			})
		}
	}
	return out
}

// FromEntries rebuilds a Router directly from a persisted all-pairs table,
// skipping the O(V^3) Floyd-Warshall pass entirely: the process-requests
// phase loads a routing index, it never recomputes one.
func FromEntries(g *routegraph.Graph, numVertices int, entries []Entry) *Router {
	n := numVertices
	dist := make([]float64, n*n)
	prevEdge := make([]int64, n*n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevEdge[i] = noEdge
	}

	for _, e := range entries {
		idx := int(e.From)*n + int(e.To)
		dist[idx] = e.Weight
		if e.HasPrevEdge {
			prevEdge[idx] = int64(e.PrevEdge)
		}
	}

	return &Router{graph: g, n: n, dist: dist, prevEdge: prevEdge}
}
