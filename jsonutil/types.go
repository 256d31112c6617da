// SPDX-License-Identifier: MIT
// Package jsonutil decodes the engine's JSON request document and encodes
// its JSON replies. Decoding runs on github.com/goccy/go-json, a drop-in
// encoding/json replacement; replies are assembled through a small fluent
// builder that controls key order. The schema's one genuinely polymorphic
// input field (color-as-string-or-array) decodes through the custom
// RawColor type.
package jsonutil

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Input is the root of a make-base/process-requests JSON document. Either
// section may be absent depending on which phase is reading it.
type Input struct {
	BaseRequests          []BaseRequest         `json:"base_requests"`
	StatRequests          []StatRequest         `json:"stat_requests"`
	RenderSettings        RenderSettings        `json:"render_settings"`
	RoutingSettings       RoutingSettings       `json:"routing_settings"`
	SerializationSettings SerializationSettings `json:"serialization_settings"`
}

// BaseRequest is either a Stop or a Bus declaration; which fields are
// populated depends on Type.
type BaseRequest struct {
	Type string `json:"type"`

	Name string `json:"name"`

	// Stop fields.
	Latitude       float64          `json:"latitude"`
	Longitude      float64          `json:"longitude"`
	RoadDistances  map[string]int   `json:"road_distances"`

	// Bus fields.
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// StatRequest is one query in stat_requests: Stop, Bus, Map, or Route.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`

	Name string `json:"name"` // Stop, Bus

	From string `json:"from"` // Route
	To   string `json:"to"`   // Route
}

// RenderSettings mirrors render_settings verbatim, including the two
// polymorphic color fields and the palette.
type RenderSettings struct {
	Width             float64    `json:"width"`
	Height            float64    `json:"height"`
	Padding           float64    `json:"padding"`
	LineWidth         float64    `json:"line_width"`
	StopRadius        float64    `json:"stop_radius"`
	BusLabelFontSize  int        `json:"bus_label_font_size"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset"`
	StopLabelFontSize int        `json:"stop_label_font_size"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset"`
	UnderlayerColor   RawColor   `json:"underlayer_color"`
	UnderlayerWidth   float64    `json:"underlayer_width"`
	ColorPalette      []RawColor `json:"color_palette"`
}

// RoutingSettings mirrors routing_settings.
type RoutingSettings struct {
	BusWaitTime int     `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

// SerializationSettings mirrors serialization_settings.
type SerializationSettings struct {
	File string `json:"file"`
}

// RawColor decodes a render-settings color, which the schema allows as
// either a CSS color string or a 3- or 4-element numeric array
// ([r,g,b] or [r,g,b,a]).
type RawColor struct {
	IsArray bool
	String  string
	Numbers []float64
}

// UnmarshalJSON implements the string-or-array polymorphism by peeking at
// the first non-whitespace byte before picking a decode target.
func (c *RawColor) UnmarshalJSON(data []byte) error {
	trimmed := trimLeadingSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("RawColor.UnmarshalJSON: empty value: %w", ErrParse)
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("RawColor.UnmarshalJSON: %w: %v", ErrParse, err)
		}
		c.IsArray, c.String = false, s
		return nil
	case '[':
		var nums []float64
		if err := json.Unmarshal(data, &nums); err != nil {
			return fmt.Errorf("RawColor.UnmarshalJSON: %w: %v", ErrParse, err)
		}
		if len(nums) != 3 && len(nums) != 4 {
			return fmt.Errorf("RawColor.UnmarshalJSON: %d elements: %w", len(nums), ErrUnknownColorShape)
		}
		c.IsArray, c.Numbers = true, nums
		return nil
	default:
		return fmt.Errorf("RawColor.UnmarshalJSON: %w", ErrUnknownColorShape)
	}
}

func trimLeadingSpace(data []byte) []byte {
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		}
		break
	}
	return data[i:]
}
