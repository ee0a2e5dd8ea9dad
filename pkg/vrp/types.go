package vrp

import (
	"github.com/prasetyobagus/anterin/pkg"
	da "github.com/prasetyobagus/anterin/pkg/datastructure"
)

// Stop vertex reference plus the domain attributes the constructor needs:
// demand for capacity checks, [windowStart, windowEnd] and service duration
// for time-window checks. window bounds are inclusive and share the cost
// matrix's time unit.
type Stop struct {
	vertex      da.Index
	demand      float64
	windowStart float64
	windowEnd   float64
	serviceTime float64
}

func NewStop(vertex da.Index, demand float64) Stop {
	return Stop{
		vertex:      vertex,
		demand:      demand,
		windowStart: 0,
		windowEnd:   pkg.INF_WEIGHT,
		serviceTime: 0,
	}
}

func NewStopWithTimeWindow(vertex da.Index, demand, windowStart, windowEnd,
	serviceTime float64) Stop {
	return Stop{
		vertex:      vertex,
		demand:      demand,
		windowStart: windowStart,
		windowEnd:   windowEnd,
		serviceTime: serviceTime,
	}
}

func (s Stop) GetVertex() da.Index {
	return s.vertex
}

func (s Stop) GetDemand() float64 {
	return s.demand
}

func (s Stop) GetWindowStart() float64 {
	return s.windowStart
}

func (s Stop) GetWindowEnd() float64 {
	return s.windowEnd
}

func (s Stop) GetServiceTime() float64 {
	return s.serviceTime
}

// Leg per-stop annotation on a built route: the stop's index in the solver's
// stop list, arrival time after waiting, and vehicle load after service.
type Leg struct {
	StopIndex int
	Arrival   float64
	Load      float64
}

// Route ordered stop sequence, implicitly starting and ending at the depot.
type Route struct {
	stops []int
	legs  []Leg
	cost  float64
}

// GetStops interior stop indices in visit order (depot not included).
func (r Route) GetStops() []int {
	return r.stops
}

// GetLegs per-stop annotations, aligned with GetStops.
func (r Route) GetLegs() []Leg {
	return r.legs
}

func (r Route) GetCost() float64 {
	return r.cost
}

// Solution routes plus the stops no feasible insertion could place. an
// unassignable stop is part of the output, not a solver failure.
type Solution struct {
	routes     []Route
	unassigned []int
}

func (s Solution) GetRoutes() []Route {
	return s.routes
}

func (s Solution) GetUnassigned() []int {
	return s.unassigned
}

func (s Solution) GetTotalCost() float64 {
	total := 0.0
	for _, r := range s.routes {
		total += r.cost
	}
	return total
}
