package usecases

import (
	"github.com/prasetyobagus/anterin/pkg/vrp"
)

// PlanStopInput one delivery stop as the caller supplies it: raw coordinate
// plus demand and time-window attributes. the usecase snaps the coordinate
// onto the road graph.
type PlanStopInput struct {
	Lat         float64
	Lon         float64
	Demand      float64
	WindowStart float64
	WindowEnd   float64
	ServiceTime float64
}

// PlannedRoute one vehicle route of the plan, annotated for presentation.
type PlannedRoute struct {
	Stops    []int
	Legs     []vrp.Leg
	Cost     float64
	Polyline string
}

type PlanOutput struct {
	Routes     []PlannedRoute
	Unassigned []int
	TotalCost  float64
}
