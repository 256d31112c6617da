package busbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/geo"
)

func setupCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()

	a, err := cat.AddStop("A", geo.Coordinate{Lat: 0, Lng: 0})
	require.NoError(t, err)
	b, err := cat.AddStop("B", geo.Coordinate{Lat: 0.01, Lng: 0})
	require.NoError(t, err)
	c, err := cat.AddStop("C", geo.Coordinate{Lat: 0.02, Lng: 0})
	require.NoError(t, err)

	cat.AddDistance(a.ID, b.ID, 1000)
	cat.AddDistance(b.ID, c.ID, 1100)
	// reverse legs back-filled automatically by AddDistance.

	return cat
}

func TestBuildDirect(t *testing.T) {
	cat := setupCatalog(t)

	bus := Build(cat,
		WithName("1"),
		WithStops([]string{"A", "B", "C"}),
		WithRouteType(catalog.Direct),
	)

	assert.Len(t, bus.Route, 3)
	assert.Equal(t, uint32(3), bus.StopsOnRoute)
	assert.Equal(t, uint32(3), bus.UniqueStops)
	assert.Equal(t, 2100.0, bus.RouteTrueLength)
	assert.Greater(t, bus.RouteGeoLength, 0.0)
}

func TestBuildBackAndForthDoublesLengthAndCountsTurnaroundOnce(t *testing.T) {
	cat := setupCatalog(t)

	bus := Build(cat,
		WithName("2"),
		WithStops([]string{"A", "B", "C"}),
		WithRouteType(catalog.BackAndForth),
	)

	assert.Equal(t, uint32(5), bus.StopsOnRoute) // 3*2-1
	assert.Equal(t, uint32(3), bus.UniqueStops)
	assert.Equal(t, 2100.0*2, bus.RouteTrueLength)
	assert.InDelta(t, 0.0, bus.RouteGeoLength-2*(geoOnly(cat, "A", "B")+geoOnly(cat, "B", "C")), 1e-6)
}

func TestBuildDropsUnknownStops(t *testing.T) {
	cat := setupCatalog(t)

	bus := Build(cat,
		WithName("3"),
		WithStops([]string{"A", "Nonexistent", "C"}),
		WithRouteType(catalog.Direct),
	)

	assert.Len(t, bus.Route, 2)
	assert.Equal(t, "A", bus.Route[0].Name)
	assert.Equal(t, "C", bus.Route[1].Name)
}

func geoOnly(cat *catalog.Catalog, from, to string) float64 {
	a, _ := cat.StopByName(from)
	b, _ := cat.StopByName(to)
	return geo.Distance(a.Coord, b.Coord)
}
