package routing

import (
	"fmt"

	"github.com/prasetyobagus/anterin/pkg"
	da "github.com/prasetyobagus/anterin/pkg/datastructure"
	"go.uber.org/zap"
)

// RoutingEngine query facade over an immutable road graph. each query builds
// its own search runner, so one engine serves concurrent callers.
type RoutingEngine struct {
	graph  *da.Graph
	logger *zap.Logger
}

func NewRoutingEngine(graph *da.Graph, logger *zap.Logger) *RoutingEngine {
	logger.Info("routing engine ready",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))
	return &RoutingEngine{
		graph:  graph,
		logger: logger,
	}
}

func (e *RoutingEngine) GetGraph() *da.Graph {
	return e.graph
}

// ShortestPath query interface: (source, target, algorithm choice) ->
// SearchResult. algorithm is a pure strategy parameter; both choices share
// one relaxation core and return identical costs on the same pair.
func (e *RoutingEngine) ShortestPath(source, target da.Index, algorithm pkg.Algorithm) (SearchResult, error) {
	if !e.graph.HasVertex(source) {
		return SearchResult{}, fmt.Errorf("source vertex %d: %w", source, da.ErrUnknownVertex)
	}
	if !e.graph.HasVertex(target) {
		return SearchResult{}, fmt.Errorf("target vertex %d: %w", target, da.ErrUnknownVertex)
	}

	var result SearchResult
	switch algorithm {
	case pkg.ASTAR:
		result = NewAStar(e).ShortestPath(source, target)
	default:
		result = NewDijkstra(e).ShortestPath(source, target)
	}

	return result, nil
}

// ShortestPathOneToMany one dijkstra run from source, results ordered as
// targets.
func (e *RoutingEngine) ShortestPathOneToMany(source da.Index, targets []da.Index) ([]SearchResult, error) {
	if !e.graph.HasVertex(source) {
		return nil, fmt.Errorf("source vertex %d: %w", source, da.ErrUnknownVertex)
	}
	for _, t := range targets {
		if !e.graph.HasVertex(t) {
			return nil, fmt.Errorf("target vertex %d: %w", t, da.ErrUnknownVertex)
		}
	}

	return NewDijkstra(e).ShortestPathOneToMany(source, targets), nil
}
