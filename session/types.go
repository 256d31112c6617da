// SPDX-License-Identifier: MIT
// Package session owns the live, query-ready state the engine builds once
// in make-base and answers stat requests against in process-requests: the
// catalog, the routing graph, the router's all-pairs index, and the
// render settings. Ownership is strictly tree-shaped (per the module's
// concurrency and resource model): the session owns the catalog outright;
// neither the graph nor the router holds pointers into it (graph edges
// carry stop and bus names, the router refers only to the graph).
package session

import (
	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/graphbuilder"
	"github.com/katalvlaran/transitcat/mapsvg"
	"github.com/katalvlaran/transitcat/routegraph"
	"github.com/katalvlaran/transitcat/router"
)

// State bundles everything a stat query needs: the catalog of stops and
// buses, the routing graph and its stop-to-vertex mapping, the all-pairs
// router, and the settings the map renderer needs. The binary codec
// persists the catalog, the render settings, the graph and the router;
// VertexOf is not written and is recomputed from the stop ids on load.
type State struct {
	Catalog        *catalog.Catalog
	Graph          *routegraph.Graph
	VertexOf       map[catalog.StopID]graphbuilder.VertexPair
	Router         *router.Router
	RenderSettings mapsvg.Settings
}

// NumStops is a convenience accessor used by the CLI's phase-milestone
// logging; it never participates in routing logic.
func (s *State) NumStops() int {
	return len(s.Catalog.Stops())
}

// NumBuses is the bus-count counterpart to NumStops.
func (s *State) NumBuses() int {
	return len(s.Catalog.Buses())
}

// NumEdges reports the routing graph's edge count.
func (s *State) NumEdges() int {
	return s.Graph.NumEdges()
}
