package router_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/transitcat/busbuilder"
	"github.com/katalvlaran/transitcat/catalog"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/graphbuilder"
	"github.com/katalvlaran/transitcat/routegraph"
	"github.com/katalvlaran/transitcat/router"
)

// OptimalitySuite pits the router against an independent brute-force
// recomputation of all-pairs shortest paths on small networks, and checks
// that cheaper multi-hop itineraries beat pricier direct ones on total
// weight alone.
type OptimalitySuite struct {
	suite.Suite
	cat *catalog.Catalog
}

func (s *OptimalitySuite) SetupTest() {
	s.cat = catalog.New()
	s.cat.SetRouteSettings(catalog.RouteSettings{BusVelocity: 60, BusWaitTime: 2})
}

func (s *OptimalitySuite) addStop(name string, lat, lng float64) *catalog.Stop {
	stop, err := s.cat.AddStop(name, geo.Coordinate{Lat: lat, Lng: lng})
	s.Require().NoError(err)
	return stop
}

func (s *OptimalitySuite) addBus(name string, stops []string) {
	bus := busbuilder.Build(s.cat,
		busbuilder.WithName(name),
		busbuilder.WithStops(stops),
		busbuilder.WithRouteType(catalog.Direct),
		busbuilder.WithSettings(s.cat.RouteSettings()),
	)
	_, err := s.cat.AddBus(name, bus)
	s.Require().NoError(err)
}

func (s *OptimalitySuite) TestCheaperTwoHopBeatsDirectEdge() {
	require := require.New(s.T())

	a := s.addStop("A", 0, 0)
	b := s.addStop("B", 0.01, 0)
	c := s.addStop("C", 0.02, 0)

	// The direct A->C road is long; going through B is shorter in total.
	s.cat.AddDistance(a.ID, c.ID, 9000)
	s.cat.AddDistance(a.ID, b.ID, 1000)
	s.cat.AddDistance(b.ID, c.ID, 1000)

	s.addBus("direct", []string{"A", "C"})
	s.addBus("via-b", []string{"A", "B", "C"})

	res, err := graphbuilder.Build(s.cat)
	require.NoError(err)
	r := router.Build(res.Graph)

	route, err := r.BuildRoute(res.VertexOf[a.ID].Transfer, res.VertexOf[c.ID].Transfer)
	require.NoError(err)
	require.NoError(router.ValidateRoute(route))

	// 2 min wait + 2000m at 60 km/h (= 1000 m/min) = 2 min ride. The
	// 9000m direct ride alone costs 9 min, so the winner rides via B even
	// though both are a single boarding (via-b's A->C candidate spans two
	// stops on one bus).
	require.InDelta(4.0, route.TotalTime, 1e-6)
	require.Len(route.Items, 2)
	require.Equal("via-b", route.Items[1].Bus)
	require.Equal(uint32(2), route.Items[1].SpanCount)
}

func (s *OptimalitySuite) TestMatchesBruteForceOnSmallNetwork() {
	require := require.New(s.T())

	a := s.addStop("A", 0, 0)
	b := s.addStop("B", 0.01, 0.01)
	c := s.addStop("C", 0.02, 0)
	d := s.addStop("D", 0.03, 0.01)

	s.cat.AddDistance(a.ID, b.ID, 1200)
	s.cat.AddDistance(b.ID, c.ID, 800)
	s.cat.AddDistance(c.ID, d.ID, 1500)
	s.cat.AddDistance(a.ID, d.ID, 5000)

	s.addBus("north", []string{"A", "B", "C"})
	s.addBus("south", []string{"C", "D"})
	s.addBus("express", []string{"A", "D"})

	res, err := graphbuilder.Build(s.cat)
	require.NoError(err)
	r := router.Build(res.Graph)

	want := bruteForceDistances(res.Graph)

	n := res.Graph.NumVertices()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			route, err := r.BuildRoute(routegraph.VertexID(u), routegraph.VertexID(v))
			if math.IsInf(want[u][v], 1) {
				require.ErrorIs(err, router.ErrRouteNotFound, "u=%d v=%d", u, v)
				continue
			}
			require.NoError(err, "u=%d v=%d", u, v)
			require.InDelta(want[u][v], route.TotalTime, 1e-6, "u=%d v=%d", u, v)
		}
	}
}

// bruteForceDistances recomputes all-pairs shortest paths with a plain
// O(V^3) relaxation, independent of the router's table layout.
func bruteForceDistances(g *routegraph.Graph) [][]float64 {
	n := g.NumVertices()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < dist[e.From][e.To] {
			dist[e.From][e.To] = e.Weight
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}

func TestOptimalitySuite(t *testing.T) {
	suite.Run(t, new(OptimalitySuite))
}
