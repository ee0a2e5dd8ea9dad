package controllers

import (
	"time"

	"github.com/prasetyobagus/anterin/pkg"
	"github.com/prasetyobagus/anterin/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(origLat, origLon, dstLat, dstLon float64,
		algorithm pkg.Algorithm) (float64, string, int, time.Duration, error)
}

type RoutePlannerService interface {
	PlanDeliveries(depot usecases.PlanStopInput, stops []usecases.PlanStopInput,
		vehicleCapacity float64) (usecases.PlanOutput, error)
}
