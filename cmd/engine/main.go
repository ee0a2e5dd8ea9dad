package main

import (
	"context"
	"flag"

	"github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/http"
	"github.com/prasetyobagus/anterin/pkg/http/usecases"
	"github.com/prasetyobagus/anterin/pkg/logger"
	"github.com/prasetyobagus/anterin/pkg/matrix"
	"github.com/prasetyobagus/anterin/pkg/metrics"
	"github.com/prasetyobagus/anterin/pkg/routing"
	"github.com/prasetyobagus/anterin/pkg/spatialindex"
	"github.com/prasetyobagus/anterin/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	vertexFile            = flag.String("vertex_file", "./data/vertices.csv", "vertex csv file (lat,lon per row)")
	segmentFile           = flag.String("segment_file", "./data/segments.csv", "segment csv file (from,to,weight per row)")
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}
	viper.SetDefault("SNAP_SEARCH_RADIUS_KM", 0.04)
	viper.SetDefault("MATRIX_WORKERS", 8)

	graph, err := datastructure.LoadGraphFromCSV(*vertexFile, *segmentFile)
	if err != nil {
		panic(err)
	}

	routingEngine := routing.NewRoutingEngine(graph, logger)

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, *leafBoundingBoxRadius, logger)

	matrixBuilder := matrix.NewBuilder(routingEngine, logger, viper.GetInt("MATRIX_WORKERS"))

	api := http.NewServer(logger)

	searchRadius := viper.GetFloat64("SNAP_SEARCH_RADIUS_KM")
	stats := metrics.NewCollector()
	routingService := usecases.NewRoutingService(logger, routingEngine, rtree, searchRadius, stats)
	plannerService := usecases.NewPlannerService(logger, routingEngine, rtree, matrixBuilder, searchRadius)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, false, routingService, plannerService)

	signal := http.GracefulShutdown()

	logger.Info("Anterin Routing Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
