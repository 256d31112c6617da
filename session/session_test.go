package session

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/jsonutil"
)

func toyInput() *jsonutil.Input {
	return &jsonutil.Input{
		BaseRequests: []jsonutil.BaseRequest{
			{Type: "Stop", Name: "A", Latitude: 0, Longitude: 0, RoadDistances: map[string]int{"B": 100}},
			{Type: "Stop", Name: "B", Latitude: 0, Longitude: 0.001},
			{Type: "Bus", Name: "1", Stops: []string{"A", "B"}, IsRoundtrip: false},
		},
		RoutingSettings: jsonutil.RoutingSettings{BusWaitTime: 2, BusVelocity: 6},
		RenderSettings: jsonutil.RenderSettings{
			Width: 200, Height: 200, Padding: 10,
			UnderlayerColor: jsonutil.RawColor{IsArray: false, String: "white"},
			ColorPalette:    []jsonutil.RawColor{{IsArray: false, String: "red"}},
		},
	}
}

func TestBuildThenStopReply(t *testing.T) {
	state, err := Build(toyInput())
	require.NoError(t, err)

	reply, err := state.Answer(jsonutil.StatRequest{ID: 1, Type: "Stop", Name: "A"})
	require.NoError(t, err)
	data, err := reply.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"buses":["1"],"request_id":1}`, string(data))
}

func TestStopNotFound(t *testing.T) {
	state, err := Build(toyInput())
	require.NoError(t, err)

	reply, err := state.Answer(jsonutil.StatRequest{ID: 2, Type: "Stop", Name: "Nowhere"})
	require.NoError(t, err)
	data, err := reply.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"error_message":"not found","request_id":2}`, string(data))
}

func TestBusReplyMatchesSingleHopArithmetic(t *testing.T) {
	state, err := Build(toyInput())
	require.NoError(t, err)

	bus, ok := state.Catalog.BusByName("1")
	require.True(t, ok)

	reply, err := state.Answer(jsonutil.StatRequest{ID: 3, Type: "Bus", Name: "1"})
	require.NoError(t, err)
	data, err := reply.MarshalJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(3), decoded["request_id"])
	// is_roundtrip=false makes bus "1" BackAndForth: A->B and back (100m
	// each way, the reverse back-filled) over stops A, B, A.
	assert.Equal(t, float64(200), decoded["route_length"])
	assert.Equal(t, float64(3), decoded["stop_count"])
	assert.Equal(t, float64(2), decoded["unique_stop_count"])
	assert.InDelta(t, bus.RouteTrueLength/bus.RouteGeoLength, decoded["curvature"], 1e-6)
}

func TestRouteSingleHopMatchesSpecExample(t *testing.T) {
	state, err := Build(toyInput())
	require.NoError(t, err)

	reply, err := state.Answer(jsonutil.StatRequest{ID: 4, Type: "Route", From: "A", To: "B"})
	require.NoError(t, err)
	data, err := reply.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"items": [
			{"type":"Wait","stop_name":"A","time":2},
			{"type":"Bus","bus":"1","span_count":1,"time":1}
		],
		"request_id": 4,
		"total_time": 3
	}`, string(data))
}

func TestRouteSameSourceAndTarget(t *testing.T) {
	state, err := Build(toyInput())
	require.NoError(t, err)

	reply, err := state.Answer(jsonutil.StatRequest{ID: 5, Type: "Route", From: "A", To: "A"})
	require.NoError(t, err)
	data, err := reply.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"request_id":5,"total_time":0}`, string(data))
}

func TestRouteNotFoundWhenNoBusConnects(t *testing.T) {
	in := toyInput()
	in.BaseRequests = append(in.BaseRequests, jsonutil.BaseRequest{Type: "Stop", Name: "C", Latitude: 1, Longitude: 1})
	state, err := Build(in)
	require.NoError(t, err)

	reply, err := state.Answer(jsonutil.StatRequest{ID: 6, Type: "Route", From: "A", To: "C"})
	require.NoError(t, err)
	data, err := reply.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"error_message":"not found","request_id":6}`, string(data))
}

func TestMapReplyProducesSVGDocument(t *testing.T) {
	state, err := Build(toyInput())
	require.NoError(t, err)

	reply, err := state.Answer(jsonutil.StatRequest{ID: 7, Type: "Map"})
	require.NoError(t, err)
	data, err := reply.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "</svg>")
}

func TestAnswerUnknownTypeIsAnError(t *testing.T) {
	state, err := Build(toyInput())
	require.NoError(t, err)

	_, err = state.Answer(jsonutil.StatRequest{ID: 8, Type: "Bogus"})
	assert.ErrorIs(t, err, ErrUnknownStatRequestType)
}
