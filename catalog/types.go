// SPDX-License-Identifier: MIT
// Package catalog is the canonical owner of stops, buses, and inter-stop
// road distances. It assigns the stable integer identifiers that the graph
// builder, the router, and the binary codec all key off of.
//
// Contract:
//   - The catalog is the single owner of Stop and Bus values; every other
//     component (routegraph, router, mapsvg) holds IDs or borrowed pointers,
//     never a second copy.
//   - Single-threaded: the engine has no concurrent query path, so this
//     package carries no internal mutex.
package catalog

import "github.com/katalvlaran/transitcat/geo"

// StopID and BusID are the stable integer handles assigned in insertion
// order. They are the identifiers the binary codec persists and the ones
// the graph builder uses to derive vertex IDs.
type StopID uint32

// BusID identifies a Bus within a Catalog.
type BusID uint32

// RouteType classifies how a bus traverses its declared stop list.
type RouteType int

const (
	// Direct buses traverse the declared stop list once, forward only.
	Direct RouteType = iota
	// BackAndForth buses traverse forward then back over the same stops,
	// touching the last stop once (it is not repeated at the turnaround).
	BackAndForth
	// Round buses close their declared sequence on itself.
	Round
)

// String renders the route type the way log lines and test failures want
// to see it; not used on any wire format.
func (rt RouteType) String() string {
	switch rt {
	case Direct:
		return "Direct"
	case BackAndForth:
		return "BackAndForth"
	case Round:
		return "Round"
	default:
		return "Unknown"
	}
}

// Stop is a named geographic point. Two stops are equal iff their names
// are equal; coordinates do not participate in equality.
type Stop struct {
	ID    StopID
	Name  string
	Coord geo.Coordinate
}

// RouteSettings carries the two engine-wide routing parameters: the
// per-boarding wait penalty and the assumed bus velocity. Both are fixed
// for the lifetime of a built catalog.
type RouteSettings struct {
	BusVelocity float64 // km/h
	BusWaitTime int     // minutes
}

// Bus is a named ordered sequence of stops with derived metrics. Buses are
// immutable once built by busbuilder.Build; the catalog never recomputes
// these fields.
type Bus struct {
	ID               BusID
	Name             string
	Route            []*Stop
	RouteType        RouteType
	RouteGeoLength   float64
	RouteTrueLength  float64
	StopsOnRoute     uint32
	UniqueStops      uint32
	Settings         RouteSettings
}
