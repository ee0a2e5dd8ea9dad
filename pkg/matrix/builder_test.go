package matrix

import (
	"errors"
	"testing"

	da "github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/geo"
	"github.com/prasetyobagus/anterin/pkg/routing"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// lineGraph five vertices chained bidirectionally with unit weights, plus a
// sixth vertex with no edges at all.
func lineGraph(t *testing.T) *da.Graph {
	t.Helper()

	coords := []geo.Coordinate{
		geo.NewCoordinate(0.0, 0.000),
		geo.NewCoordinate(0.0, 0.001),
		geo.NewCoordinate(0.0, 0.002),
		geo.NewCoordinate(0.0, 0.003),
		geo.NewCoordinate(0.0, 0.004),
		geo.NewCoordinate(0.1, 0.1), // isolated
	}

	segments := make([]da.Segment, 0)
	for i := 0; i < 4; i++ {
		segments = append(segments,
			da.NewSegment(da.Index(i), da.Index(i+1), 1.0),
			da.NewSegment(da.Index(i+1), da.Index(i), 1.0))
	}

	g, err := da.NewGraph(coords, segments)
	require.NoError(t, err)
	return g
}

func TestBuild(t *testing.T) {
	engine := routing.NewRoutingEngine(lineGraph(t), zap.NewNop())
	builder := NewBuilder(engine, zap.NewNop(), 2)

	stops := []da.Index{0, 2, 4}
	m, err := builder.Build(stops)
	require.NoError(t, err)
	require.Equal(t, 3, m.Dimension())

	for i := 0; i < 3; i++ {
		cost, err := m.GetCost(i, i)
		require.NoError(t, err)
		require.Equal(t, 0.0, cost, "diagonal must be zero")
		require.Equal(t, stops[i], m.GetVertex(i))
	}

	wantCosts := map[[2]int]float64{
		{0, 1}: 2, {1, 0}: 2,
		{1, 2}: 2, {2, 1}: 2,
		{0, 2}: 4, {2, 0}: 4,
	}
	for pair, want := range wantCosts {
		cost, err := m.GetCost(pair[0], pair[1])
		require.NoError(t, err)
		require.Equal(t, want, cost, "pair %v", pair)
		require.True(t, m.Reachable(pair[0], pair[1]))
	}

	path, ok := m.GetPath(0, 2)
	require.True(t, ok)
	require.Equal(t, []da.Index{0, 1, 2, 3, 4}, path)
}

func TestBuildUnreachablePairDegrades(t *testing.T) {
	engine := routing.NewRoutingEngine(lineGraph(t), zap.NewNop())
	builder := NewBuilder(engine, zap.NewNop(), 2)

	// stop 5 is isolated, but the build must still succeed
	m, err := builder.Build([]da.Index{0, 4, 5})
	require.NoError(t, err)

	cost, err := m.GetCost(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)

	_, err = m.GetCost(0, 2)
	require.ErrorIs(t, err, ErrUnreachablePair)
	_, err = m.GetCost(2, 0)
	require.ErrorIs(t, err, ErrUnreachablePair)
	require.False(t, m.Reachable(0, 2))
	require.True(t, m.Reachable(2, 2), "a stop always reaches itself")
}

func TestBuildUnknownVertexAborts(t *testing.T) {
	engine := routing.NewRoutingEngine(lineGraph(t), zap.NewNop())
	builder := NewBuilder(engine, zap.NewNop(), 2)

	_, err := builder.Build([]da.Index{0, 99})
	require.Error(t, err)
	require.True(t, errors.Is(err, da.ErrUnknownVertex))
}

func TestGetCostOutOfRange(t *testing.T) {
	engine := routing.NewRoutingEngine(lineGraph(t), zap.NewNop())
	builder := NewBuilder(engine, zap.NewNop(), 1)

	m, err := builder.Build([]da.Index{0, 2})
	require.NoError(t, err)

	_, err = m.GetCost(-1, 0)
	require.Error(t, err)
	_, err = m.GetCost(0, 2)
	require.Error(t, err)
}
