// SPDX-License-Identifier: MIT
package jsonutil

// RouteItem is one leg of a Route stat reply's items array. The schema is
// polymorphic on "type": a Wait leg carries stop_name, a Bus leg carries
// bus and span_count. Two concrete struct shapes (rather than one struct
// with omitted fields) keep the wire output free of stray zero-valued
// keys on the leg that doesn't use them.
type RouteItem interface {
	isRouteItem()
}

// WaitItem is a "Wait" leg: the passenger stands at stop_name for the
// engine's fixed boarding penalty.
type WaitItem struct {
	Type     string  `json:"type"`
	StopName string  `json:"stop_name"`
	Time     float64 `json:"time"`
}

func (WaitItem) isRouteItem() {}

// NewWaitItem builds a Wait leg.
func NewWaitItem(stopName string, time float64) WaitItem {
	return WaitItem{Type: "Wait", StopName: stopName, Time: time}
}

// BusItem is a "Bus" leg: travel aboard a named bus across span_count
// stop-to-stop hops.
type BusItem struct {
	Type      string  `json:"type"`
	Bus       string  `json:"bus"`
	SpanCount uint32  `json:"span_count"`
	Time      float64 `json:"time"`
}

func (BusItem) isRouteItem() {}

// NewBusItem builds a Bus leg.
func NewBusItem(bus string, spanCount uint32, time float64) BusItem {
	return BusItem{Type: "Bus", Bus: bus, SpanCount: spanCount, Time: time}
}
