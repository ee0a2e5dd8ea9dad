package vrp

import (
	da "github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/matrix"
)

// evaluateRoute walk a candidate stop sequence front-to-back and decide
// feasibility. cumulative load and arrival time are re-derived on every
// call instead of being persisted on stops, so a rejected candidate leaves
// no stale state behind.
//
// the walk starts at the depot at time zero. arrival at each stop is the
// previous departure plus the matrix leg cost, clamped up to the stop's
// window start when the vehicle is early; an arrival past the window end
// (inclusive, epsilon compared) or a load above capacity rejects the
// candidate immediately. the return leg to the depot only needs to exist.
func evaluateRoute(m *matrix.CostMatrix, stops []Stop, depot int, seq []int,
	capacity float64) ([]Leg, float64, bool) {
	if len(seq) == 0 {
		return []Leg{}, 0, true
	}

	legs := make([]Leg, 0, len(seq))

	load := 0.0
	departure := stops[depot].GetWindowStart()
	totalCost := 0.0
	prev := depot

	for _, cur := range seq {
		legCost, err := m.GetCost(prev, cur)
		if err != nil {
			// unreachable pair: ineligible for direct connection
			return nil, 0, false
		}

		load += stops[cur].GetDemand()
		if da.Gt(load, capacity) {
			return nil, 0, false
		}

		arrival := departure + legCost
		if da.Lt(arrival, stops[cur].GetWindowStart()) {
			// early, wait until the window opens
			arrival = stops[cur].GetWindowStart()
		}
		if da.Gt(arrival, stops[cur].GetWindowEnd()) {
			return nil, 0, false
		}

		legs = append(legs, Leg{StopIndex: cur, Arrival: arrival, Load: load})
		totalCost += legCost
		departure = arrival + stops[cur].GetServiceTime()
		prev = cur
	}

	returnCost, err := m.GetCost(prev, depot)
	if err != nil {
		return nil, 0, false
	}
	totalCost += returnCost

	return legs, totalCost, true
}
