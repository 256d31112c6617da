package routegraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgesAssignsStableSequentialIDs(t *testing.T) {
	g := New(4)

	w, err := g.AddWaitEdge(1, 0, 6, "A")
	require.NoError(t, err)
	r, err := g.AddRideEdge(0, 3, 5, RideInfo{FromStop: "A", ToStop: "B", Bus: "1", SpanCount: 1})
	require.NoError(t, err)

	assert.Equal(t, EdgeID(0), w)
	assert.Equal(t, EdgeID(1), r)
	assert.Equal(t, 2, g.NumEdges())

	assert.Equal(t, []EdgeID{0}, g.Outgoing(1))
	assert.Equal(t, []EdgeID{1}, g.Outgoing(0))
}

func TestAddEdgeOutOfRange(t *testing.T) {
	g := New(2)
	_, err := g.AddWaitEdge(0, 5, 1, "A")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVertexOutOfRange))
}
