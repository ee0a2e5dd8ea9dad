package usecases

import (
	"github.com/prasetyobagus/anterin/pkg"
	"github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/matrix"
	"github.com/prasetyobagus/anterin/pkg/routing"
)

type RoutingEngine interface {
	GetGraph() *datastructure.Graph
	ShortestPath(source, target datastructure.Index, algorithm pkg.Algorithm) (routing.SearchResult, error)
}

type SpatialIndex interface {
	SnapToNearestVertex(qLat, qLon, radiusKM float64) (datastructure.Index, error)
}

type MatrixBuilder interface {
	Build(stopVertices []datastructure.Index) (*matrix.CostMatrix, error)
}
