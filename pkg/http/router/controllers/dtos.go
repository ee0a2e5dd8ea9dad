package controllers

import (
	"time"

	"github.com/prasetyobagus/anterin/pkg/http/usecases"
	"github.com/prasetyobagus/anterin/pkg/vrp"
)

type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"required,min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"required,min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"required,min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"required,min=-180,max=180"`
	Algorithm      string  `json:"algorithm" validate:"omitempty,oneof=dijkstra astar"`
}

type shortestPathResponse struct {
	Cost         float64 `json:"cost"`
	Path         string  `json:"path"`
	Algorithm    string  `json:"algorithm"`
	SettledNodes int     `json:"settled_nodes"`
	ElapsedMS    float64 `json:"elapsed_ms"`
}

func NewShortestPathResponse(cost float64, path, algorithm string, settledNodes int,
	elapsed time.Duration) shortestPathResponse {
	return shortestPathResponse{
		Cost:         cost,
		Path:         path,
		Algorithm:    algorithm,
		SettledNodes: settledNodes,
		ElapsedMS:    float64(elapsed.Microseconds()) / 1000.0,
	}
}

type planStopRequest struct {
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lon         float64 `json:"lon" validate:"min=-180,max=180"`
	Demand      float64 `json:"demand" validate:"min=0"`
	WindowStart float64 `json:"window_start" validate:"min=0"`
	WindowEnd   float64 `json:"window_end" validate:"min=0"`
	ServiceTime float64 `json:"service_time" validate:"min=0"`
}

func (s planStopRequest) toInput() usecases.PlanStopInput {
	return usecases.PlanStopInput{
		Lat:         s.Lat,
		Lon:         s.Lon,
		Demand:      s.Demand,
		WindowStart: s.WindowStart,
		WindowEnd:   s.WindowEnd,
		ServiceTime: s.ServiceTime,
	}
}

type planRequest struct {
	Depot           planStopRequest   `json:"depot" validate:"required"`
	Stops           []planStopRequest `json:"stops" validate:"required,min=1,dive"`
	VehicleCapacity float64           `json:"vehicle_capacity" validate:"required,gt=0"`
}

type legResponse struct {
	StopIndex int     `json:"stop_index"`
	Arrival   float64 `json:"arrival"`
	Load      float64 `json:"load"`
}

type planRouteResponse struct {
	Stops    []int         `json:"stops"`
	Legs     []legResponse `json:"legs"`
	Cost     float64       `json:"cost"`
	Polyline string        `json:"polyline"`
}

type planResponse struct {
	Routes     []planRouteResponse `json:"routes"`
	Unassigned []int               `json:"unassigned"`
	TotalCost  float64             `json:"total_cost"`
}

func newLegResponses(legs []vrp.Leg) []legResponse {
	out := make([]legResponse, 0, len(legs))
	for _, leg := range legs {
		out = append(out, legResponse{
			StopIndex: leg.StopIndex,
			Arrival:   leg.Arrival,
			Load:      leg.Load,
		})
	}
	return out
}

func NewPlanResponse(plan usecases.PlanOutput) planResponse {
	routes := make([]planRouteResponse, 0, len(plan.Routes))
	for _, route := range plan.Routes {
		routes = append(routes, planRouteResponse{
			Stops:    route.Stops,
			Legs:     newLegResponses(route.Legs),
			Cost:     route.Cost,
			Polyline: route.Polyline,
		})
	}
	unassigned := plan.Unassigned
	if unassigned == nil {
		unassigned = []int{}
	}
	return planResponse{
		Routes:     routes,
		Unassigned: unassigned,
		TotalCost:  plan.TotalCost,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
