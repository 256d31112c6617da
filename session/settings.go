// SPDX-License-Identifier: MIT
package session

import (
	"fmt"

	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/jsonutil"
	"github.com/katalvlaran/transitcat/mapsvg"
)

// routingSettings converts the decoded routing_settings object into the
// catalog's internal representation.
func routingSettings(rs jsonutil.RoutingSettings) catalog.RouteSettings {
	return catalog.RouteSettings{
		BusVelocity: rs.BusVelocity,
		BusWaitTime: rs.BusWaitTime,
	}
}

// renderSettings converts the decoded render_settings object, resolving
// its two polymorphic color fields, into mapsvg.Settings.
func renderSettings(rs jsonutil.RenderSettings) (mapsvg.Settings, error) {
	underlayer, err := toColor(rs.UnderlayerColor)
	if err != nil {
		return mapsvg.Settings{}, fmt.Errorf("render_settings.underlayer_color: %w", err)
	}

	palette := make([]mapsvg.Color, len(rs.ColorPalette))
	for i, raw := range rs.ColorPalette {
		c, err := toColor(raw)
		if err != nil {
			return mapsvg.Settings{}, fmt.Errorf("render_settings.color_palette[%d]: %w", i, err)
		}
		palette[i] = c
	}

	return mapsvg.Settings{
		Width:             rs.Width,
		Height:            rs.Height,
		Padding:           rs.Padding,
		LineWidth:         rs.LineWidth,
		StopRadius:        rs.StopRadius,
		BusLabelFontSize:  uint32(rs.BusLabelFontSize),
		BusLabelOffset:    mapsvg.Point{X: rs.BusLabelOffset[0], Y: rs.BusLabelOffset[1]},
		StopLabelFontSize: uint32(rs.StopLabelFontSize),
		StopLabelOffset:   mapsvg.Point{X: rs.StopLabelOffset[0], Y: rs.StopLabelOffset[1]},
		UnderlayerColor:   underlayer,
		UnderlayerWidth:   rs.UnderlayerWidth,
		ColorPalette:      palette,
	}, nil
}

// toColor resolves a RawColor's string-or-array polymorphism into a
// concrete mapsvg.Color.
func toColor(raw jsonutil.RawColor) (mapsvg.Color, error) {
	if !raw.IsArray {
		if raw.String == "" {
			return mapsvg.NoColor(), nil
		}
		return mapsvg.NamedColor(raw.String), nil
	}

	switch len(raw.Numbers) {
	case 3:
		return mapsvg.RGBColor(component(raw.Numbers[0]), component(raw.Numbers[1]), component(raw.Numbers[2])), nil
	case 4:
		return mapsvg.RGBAColor(component(raw.Numbers[0]), component(raw.Numbers[1]), component(raw.Numbers[2]), raw.Numbers[3]), nil
	default:
		return mapsvg.Color{}, fmt.Errorf("color array has %d elements, want 3 or 4: %w", len(raw.Numbers), jsonutil.ErrUnknownColorShape)
	}
}

func component(v float64) uint8 {
	return uint8(v)
}
