package usecases

import (
	"errors"
	"fmt"
	"time"

	"github.com/prasetyobagus/anterin/pkg"
	"github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/geo"
	"github.com/prasetyobagus/anterin/pkg/metrics"
	"github.com/prasetyobagus/anterin/pkg/util"
	"go.uber.org/zap"
)

var ErrPathNotFound = errors.New("no path found")

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
	searchRadius float64
	stats        *metrics.Collector
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialindex SpatialIndex,
	searchRadius float64, stats *metrics.Collector) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialindex,
		searchRadius: searchRadius,
		stats:        stats,
	}
}

func (rs *RoutingService) ShortestPath(origLat, origLon, dstLat, dstLon float64,
	algorithm pkg.Algorithm) (float64, string, int, time.Duration, error) {
	source, err := rs.spatialIndex.SnapToNearestVertex(origLat, origLon, rs.searchRadius)
	if err != nil {
		return 0, "", 0, 0, util.WrapErrorf(err, util.ErrNotFound,
			"no road vertex near origin %f,%f", origLat, origLon)
	}
	target, err := rs.spatialIndex.SnapToNearestVertex(dstLat, dstLon, rs.searchRadius)
	if err != nil {
		return 0, "", 0, 0, util.WrapErrorf(err, util.ErrNotFound,
			"no road vertex near destination %f,%f", dstLat, dstLon)
	}

	result, err := rs.engine.ShortestPath(source, target, algorithm)
	if err != nil {
		return 0, "", 0, 0, util.WrapErrorf(err, util.ErrBadParamInput,
			"shortest path query failed")
	}

	rs.stats.Record(metrics.QueryStat{
		Algorithm:    algorithm,
		Cost:         result.GetCost(),
		SettledNodes: result.GetSettledNodes(),
		Elapsed:      result.GetElapsed(),
	})

	if !result.Found() {
		return 0, "", result.GetSettledNodes(), result.GetElapsed(),
			util.WrapErrorf(ErrPathNotFound, util.ErrNotFound,
				fmt.Sprintf("no path found from %f,%f to %f,%f", origLat, origLon, dstLat, dstLon))
	}

	pathCoords, err := rs.pathCoordinates(result.GetPath())
	if err != nil {
		return 0, "", 0, 0, util.WrapErrorf(err, util.ErrInternalServerError,
			"resolve path coordinates")
	}
	pathPolyline := geo.PolylineFromCoords(pathCoords)

	return result.GetCost(), pathPolyline, result.GetSettledNodes(), result.GetElapsed(), nil
}

func (rs *RoutingService) pathCoordinates(path []datastructure.Index) ([]geo.Coordinate, error) {
	graph := rs.engine.GetGraph()
	coords := make([]geo.Coordinate, 0, len(path))
	for _, v := range path {
		lat, lon, err := graph.GetVertexCoordinates(v)
		if err != nil {
			return nil, err
		}
		coords = append(coords, geo.NewCoordinate(lat, lon))
	}
	return coords, nil
}
