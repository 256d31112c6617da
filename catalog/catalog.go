// SPDX-License-Identifier: MIT
package catalog

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/transitcat/geo"
)

type distKey struct {
	from StopID
	to   StopID
}

// Catalog owns every Stop, every Bus, and the inter-stop road-distance
// table. IDs are assigned in insertion order when not supplied explicitly
// (deserialization path), starting at 0 for each of the two id spaces.
//
// Complexity: AddStop/AddBus/AddDistance are O(1) amortized; BusesForStop
// is O(k log k) in the number of buses touching that stop (sorted output).
type Catalog struct {
	stops       []*Stop
	stopByName  map[string]*Stop
	stopByID    map[StopID]*Stop

	buses      []*Bus
	busByName  map[string]*Bus
	busByID    map[BusID]*Bus

	distances map[distKey]float64

	stopBuses map[StopID]map[string]struct{}

	routeSettings RouteSettings
}

// New returns an empty Catalog ready for insertion.
func New() *Catalog {
	return &Catalog{
		stopByName: make(map[string]*Stop),
		stopByID:   make(map[StopID]*Stop),
		busByName:  make(map[string]*Bus),
		busByID:    make(map[BusID]*Bus),
		distances:  make(map[distKey]float64),
		stopBuses:  make(map[StopID]map[string]struct{}),
	}
}

// SetRouteSettings stores the engine-wide velocity/wait-time pair. Called
// once during make-base, before any bus is built.
func (c *Catalog) SetRouteSettings(s RouteSettings) {
	c.routeSettings = s
}

// RouteSettings returns the engine-wide routing parameters.
func (c *Catalog) RouteSettings() RouteSettings {
	return c.routeSettings
}

// AddStop inserts a new stop, assigning it the next sequential id.
// Fails with ErrDuplicateStopName if the name is already present.
func (c *Catalog) AddStop(name string, coord geo.Coordinate) (*Stop, error) {
	return c.AddStopWithID(StopID(len(c.stops)), name, coord)
}

// AddStopWithID inserts a stop under an explicit id; the deserialization
// path calls it directly, and AddStop delegates to it with the next
// sequential id. Fails if the name or the id already exists.
func (c *Catalog) AddStopWithID(id StopID, name string, coord geo.Coordinate) (*Stop, error) {
	if _, ok := c.stopByName[name]; ok {
		return nil, fmt.Errorf("AddStop(%q): %w", name, ErrDuplicateStopName)
	}
	if _, ok := c.stopByID[id]; ok {
		return nil, fmt.Errorf("AddStop(%q, id=%d): %w", name, id, ErrDuplicateStopID)
	}

	stop := &Stop{ID: id, Name: name, Coord: coord}
	c.stops = append(c.stops, stop)
	c.stopByName[name] = stop
	c.stopByID[id] = stop
	c.stopBuses[id] = make(map[string]struct{})

	return stop, nil
}

// AddDistance records the road distance from -> to. If the reverse pair
// to -> from has no entry yet, it is back-filled with the same value; this
// is a one-shot fallback: once the reverse pair holds any value (explicit
// or back-filled), later calls on the forward pair never touch it again.
func (c *Catalog) AddDistance(from, to StopID, meters float64) {
	c.distances[distKey{from, to}] = meters

	reverse := distKey{to, from}
	if _, ok := c.distances[reverse]; !ok {
		c.distances[reverse] = meters
	}
}

// Distance returns the road distance from -> to and whether it was found.
// Every pair of stops that appear consecutively in some bus route is
// guaranteed present by the engine's invariants; a missing pair at graph-
// build time is a structural invariant violation (see package
// graphbuilder), not a recoverable query outcome.
func (c *Catalog) Distance(from, to StopID) (float64, bool) {
	d, ok := c.distances[distKey{from, to}]
	return d, ok
}

// AddBus registers a fully-built bus, assigning it the next sequential id,
// and updates the stop -> buses reverse index for every stop on its route.
func (c *Catalog) AddBus(name string, b Bus) (*Bus, error) {
	return c.AddBusWithID(BusID(len(c.buses)), name, b)
}

// AddBusWithID registers a bus under an explicit id; the deserialization
// path calls it directly, and AddBus delegates to it with the next
// sequential id.
func (c *Catalog) AddBusWithID(id BusID, name string, b Bus) (*Bus, error) {
	if _, ok := c.busByName[name]; ok {
		return nil, fmt.Errorf("AddBus(%q): %w", name, ErrDuplicateBusName)
	}
	if _, ok := c.busByID[id]; ok {
		return nil, fmt.Errorf("AddBus(%q, id=%d): %w", name, id, ErrDuplicateBusID)
	}

	b.ID = id
	b.Name = name
	bus := &b
	c.buses = append(c.buses, bus)
	c.busByName[name] = bus
	c.busByID[id] = bus

	seen := make(map[StopID]bool, len(bus.Route))
	for _, stop := range bus.Route {
		if seen[stop.ID] {
			continue
		}
		seen[stop.ID] = true
		c.stopBuses[stop.ID][name] = struct{}{}
	}

	return bus, nil
}

// StopByName looks up a stop by name.
func (c *Catalog) StopByName(name string) (*Stop, bool) {
	s, ok := c.stopByName[name]
	return s, ok
}

// StopByID looks up a stop by its stable id.
func (c *Catalog) StopByID(id StopID) (*Stop, bool) {
	s, ok := c.stopByID[id]
	return s, ok
}

// BusByName looks up a bus by name.
func (c *Catalog) BusByName(name string) (*Bus, bool) {
	b, ok := c.busByName[name]
	return b, ok
}

// BusByID looks up a bus by its stable id.
func (c *Catalog) BusByID(id BusID) (*Bus, bool) {
	b, ok := c.busByID[id]
	return b, ok
}

// BusesForStop returns the lexicographically ordered set of bus names that
// include the named stop. Returns an empty (non-nil) slice, never an
// error, when the stop is unknown.
func (c *Catalog) BusesForStop(name string) []string {
	stop, ok := c.stopByName[name]
	if !ok {
		return []string{}
	}

	names := make([]string, 0, len(c.stopBuses[stop.ID]))
	for busName := range c.stopBuses[stop.ID] {
		names = append(names, busName)
	}
	sort.Strings(names)
	return names
}

// Stops returns every stop in insertion (id) order.
func (c *Catalog) Stops() []*Stop {
	return c.stops
}

// Buses returns every bus in insertion (id) order.
func (c *Catalog) Buses() []*Bus {
	return c.buses
}
