package vrp

import (
	"fmt"
	"sort"

	"github.com/prasetyobagus/anterin/pkg"
	"go.uber.org/zap"
)

// Vehicle member of a limited fleet. capacity bounds the cumulative demand
// on the route the vehicle is assigned; vehicles are not interchangeable
// the way the unlimited homogeneous solver assumes.
type Vehicle struct {
	id       int
	capacity float64
}

func NewVehicle(id int, capacity float64) Vehicle {
	return Vehicle{id: id, capacity: capacity}
}

func (v Vehicle) GetID() int {
	return v.id
}

func (v Vehicle) GetCapacity() float64 {
	return v.capacity
}

// Assignment a vehicle paired with the route it serves.
type Assignment struct {
	vehicle Vehicle
	route   Route
}

func (a Assignment) GetVehicle() Vehicle {
	return a.vehicle
}

func (a Assignment) GetRoute() Route {
	return a.route
}

// FleetSolution per-vehicle assignments plus the stops the fleet could not
// serve. idle vehicles are omitted; an unserved stop is part of the output,
// not a solver failure.
type FleetSolution struct {
	assignments []Assignment
	unassigned  []int
}

func (s FleetSolution) GetAssignments() []Assignment {
	return s.assignments
}

func (s FleetSolution) GetUnassigned() []int {
	return s.unassigned
}

func (s FleetSolution) GetTotalCost() float64 {
	total := 0.0
	for _, a := range s.assignments {
		total += a.route.cost
	}
	return total
}

// SolveFleet variant of Solve for a limited heterogeneous fleet: each
// vehicle carries its own capacity and serves at most one route. seeding
// visits higher-capacity vehicles first so large demands find a feasible
// route, insertion then places leftovers into whichever vehicle's route
// admits them most cheaply. stops no vehicle can serve stay unassigned.
func (s *Solver) SolveFleet(stops []Stop, vehicles []Vehicle, depot int) (FleetSolution, error) {
	if len(stops) != s.matrix.Dimension() {
		return FleetSolution{}, fmt.Errorf("stop count %d does not match matrix dimension %d",
			len(stops), s.matrix.Dimension())
	}
	if depot < 0 || depot >= len(stops) {
		return FleetSolution{}, fmt.Errorf("depot index %d out of range", depot)
	}
	if len(vehicles) == 0 {
		return FleetSolution{}, fmt.Errorf("fleet is empty")
	}

	unassigned := make([]int, 0, len(stops)-1)
	for i := range stops {
		if i != depot {
			unassigned = append(unassigned, i)
		}
	}

	fleet := make([]Vehicle, len(vehicles))
	copy(fleet, vehicles)
	sort.SliceStable(fleet, func(i, j int) bool {
		return fleet[i].capacity > fleet[j].capacity
	})

	assignments := make([]Assignment, 0, len(fleet))
	for _, v := range fleet {
		var seq []int
		seq, unassigned = s.seedRoute(stops, v.capacity, depot, unassigned)
		// idle vehicles keep an empty route so insertion can still use them
		assignments = append(assignments, Assignment{vehicle: v, route: Route{stops: seq}})
	}

	assignments, unassigned = s.insertAcrossFleet(stops, depot, assignments, unassigned)

	out := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if len(a.route.stops) == 0 {
			continue
		}
		legs, cost, ok := evaluateRoute(s.matrix, stops, depot, a.route.stops, a.vehicle.capacity)
		if !ok {
			return FleetSolution{}, fmt.Errorf("route for vehicle %d became infeasible", a.vehicle.id)
		}
		a.route.legs = legs
		a.route.cost = cost
		out = append(out, a)
	}

	s.logger.Info("fleet allocation finished",
		zap.Int("vehicles", len(vehicles)),
		zap.Int("serving_vehicles", len(out)),
		zap.Int("unassigned", len(unassigned)))

	return FleetSolution{assignments: out, unassigned: unassigned}, nil
}

// insertAcrossFleet cheapest insertion under per-vehicle capacities:
// repeatedly pick the (stop, vehicle, position) triple with the smallest
// feasible cost delta until no unassigned stop admits any insertion.
func (s *Solver) insertAcrossFleet(stops []Stop, depot int,
	assignments []Assignment, unassigned []int) ([]Assignment, []int) {
	for len(unassigned) > 0 {
		bestStop, bestVehicle, bestPos := -1, -1, -1
		bestDelta := pkg.INF_WEIGHT

		for _, c := range unassigned {
			for ai := range assignments {
				capacity := assignments[ai].vehicle.capacity
				base := routeCost(s.matrix, stops, depot, assignments[ai].route.stops, capacity)
				for pos := 0; pos <= len(assignments[ai].route.stops); pos++ {
					candidate := insertAt(assignments[ai].route.stops, pos, c)
					_, cost, ok := evaluateRoute(s.matrix, stops, depot, candidate, capacity)
					if !ok {
						continue
					}
					if delta := cost - base; delta < bestDelta {
						bestStop, bestVehicle, bestPos = c, ai, pos
						bestDelta = delta
					}
				}
			}
		}

		if bestStop == -1 {
			break
		}

		assignments[bestVehicle].route.stops = insertAt(assignments[bestVehicle].route.stops, bestPos, bestStop)
		unassigned = remove(unassigned, bestStop)
	}

	return assignments, unassigned
}
