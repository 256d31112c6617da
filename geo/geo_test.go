package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateEqual(t *testing.T) {
	a := Coordinate{Lat: 55.611087, Lng: 37.20829}
	b := Coordinate{Lat: 55.611087 + 1e-9, Lng: 37.20829 - 1e-9}
	c := Coordinate{Lat: 55.6111, Lng: 37.20829}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestDistanceZeroForSamePoint(t *testing.T) {
	p := Coordinate{Lat: 55.611087, Lng: 37.20829}
	require.Equal(t, 0.0, Distance(p, p))
}

func TestDistanceSymmetric(t *testing.T) {
	a := Coordinate{Lat: 55.611087, Lng: 37.20829}
	b := Coordinate{Lat: 55.595884, Lng: 37.209755}

	require.InDelta(t, Distance(a, b), Distance(b, a), AbsTolerance)
}

func TestDistanceKnownSpan(t *testing.T) {
	// Two stops ~0.001 deg of latitude apart near the equator span roughly
	// 111 meters per 0.001 degree; assert an order-of-magnitude sanity bound
	// rather than pin an exact literal tied to a specific implementation.
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 0.001, Lng: 0}

	d := Distance(a, b)
	assert.Greater(t, d, 90.0)
	assert.Less(t, d, 130.0)
}
