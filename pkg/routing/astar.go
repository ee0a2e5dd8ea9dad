package routing

import (
	"time"

	da "github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/geo"
)

type AStar struct {
	engine *RoutingEngine
	runner *searchRunner
}

func NewAStar(engine *RoutingEngine) *AStar {
	return &AStar{
		engine: engine,
		runner: newSearchRunner(engine.graph),
	}
}

// ShortestPath same relaxation loop as dijkstra, but vertices are ordered by
// tentative cost plus the straight-line haversine distance to the target.
// the heuristic never overestimates road distance and respects the triangle
// inequality, so the first extraction of the target is still optimal.
func (a *AStar) ShortestPath(source, target da.Index) SearchResult {
	start := time.Now()

	graph := a.engine.graph
	targetLat, targetLon, _ := graph.GetVertexCoordinates(target)

	h := func(v da.Index) float64 {
		lat, lon, _ := graph.GetVertexCoordinates(v)
		return geo.CalculateHaversineDistance(lat, lon, targetLat, targetLon)
	}

	found := a.runner.run(source, target, h)
	if !found {
		return NewUnreachableResult(a.runner.numSettledNodes, time.Since(start))
	}

	return NewSearchResult(a.runner.dist[target],
		a.runner.reconstructPath(source, target),
		a.runner.numSettledNodes, time.Since(start))
}
