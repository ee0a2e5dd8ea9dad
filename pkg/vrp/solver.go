package vrp

import (
	"fmt"

	"github.com/prasetyobagus/anterin/pkg"
	"github.com/prasetyobagus/anterin/pkg/matrix"
	"go.uber.org/zap"
)

// Solver two-phase constructive heuristic: nearest-neighbor seeding builds
// one vehicle route at a time, cheapest insertion then tries to place
// whatever seeding left over. no global optimization is attempted.
type Solver struct {
	matrix *matrix.CostMatrix
	logger *zap.Logger
}

func NewSolver(m *matrix.CostMatrix, logger *zap.Logger) *Solver {
	return &Solver{
		matrix: m,
		logger: logger,
	}
}

// Solve stops are indexed positionally and must align with the cost matrix;
// depot is an index into stops. capacity bounds the cumulative demand per
// vehicle route.
func (s *Solver) Solve(stops []Stop, capacity float64, depot int) (Solution, error) {
	if len(stops) != s.matrix.Dimension() {
		return Solution{}, fmt.Errorf("stop count %d does not match matrix dimension %d",
			len(stops), s.matrix.Dimension())
	}
	if depot < 0 || depot >= len(stops) {
		return Solution{}, fmt.Errorf("depot index %d out of range", depot)
	}

	unassigned := make([]int, 0, len(stops)-1)
	for i := range stops {
		if i != depot {
			unassigned = append(unassigned, i)
		}
	}

	routes, unassigned := s.seedNearestNeighbor(stops, capacity, depot, unassigned)
	routes, unassigned = s.refineCheapestInsertion(stops, capacity, depot, routes, unassigned)

	// final annotation pass over the settled sequences
	for i := range routes {
		legs, cost, ok := evaluateRoute(s.matrix, stops, depot, routes[i].stops, capacity)
		if !ok {
			return Solution{}, fmt.Errorf("constructed route %d became infeasible", i)
		}
		routes[i].legs = legs
		routes[i].cost = cost
	}

	s.logger.Info("vrp construction finished",
		zap.Int("routes", len(routes)),
		zap.Int("unassigned", len(unassigned)))

	return Solution{routes: routes, unassigned: unassigned}, nil
}

// seedNearestNeighbor open a route at the depot and greedily append the
// feasible unassigned stop with minimum matrix cost from the route's last
// stop; when nothing fits, close the route and open the next vehicle. stops
// no fresh vehicle can serve are left for the insertion phase.
func (s *Solver) seedNearestNeighbor(stops []Stop, capacity float64, depot int,
	unassigned []int) ([]Route, []int) {
	routes := make([]Route, 0)

	for len(unassigned) > 0 {
		var seq []int
		seq, unassigned = s.seedRoute(stops, capacity, depot, unassigned)

		if len(seq) == 0 {
			// no fresh vehicle can serve any remaining stop; hand the rest
			// to the insertion phase
			break
		}
		routes = append(routes, Route{stops: seq})
	}

	return routes, unassigned
}

// seedRoute grow a single route from the depot by repeatedly appending the
// feasible unassigned stop with minimum matrix cost from the route's last
// stop. returns the built sequence and the stops still unassigned.
func (s *Solver) seedRoute(stops []Stop, capacity float64, depot int,
	unassigned []int) ([]int, []int) {
	seq := make([]int, 0)

	for {
		last := depot
		if len(seq) > 0 {
			last = seq[len(seq)-1]
		}

		best := -1
		bestCost := pkg.INF_WEIGHT
		for _, c := range unassigned {
			legCost, err := s.matrix.GetCost(last, c)
			if err != nil || legCost >= bestCost {
				continue
			}
			if _, _, ok := evaluateRoute(s.matrix, stops, depot, append(seq, c), capacity); ok {
				best = c
				bestCost = legCost
			}
		}

		if best == -1 {
			break
		}

		seq = append(seq, best)
		unassigned = remove(unassigned, best)
	}

	return seq, unassigned
}

// refineCheapestInsertion repeatedly insert the (stop, route, position)
// triple with the smallest feasible cost delta until no unassigned stop
// admits any insertion. leftovers are reported, not dropped.
func (s *Solver) refineCheapestInsertion(stops []Stop, capacity float64, depot int,
	routes []Route, unassigned []int) ([]Route, []int) {
	for len(unassigned) > 0 {
		bestStop, bestRoute, bestPos := -1, -1, -1
		bestDelta := pkg.INF_WEIGHT

		for _, c := range unassigned {
			for ri := range routes {
				base := routeCost(s.matrix, stops, depot, routes[ri].stops, capacity)
				for pos := 0; pos <= len(routes[ri].stops); pos++ {
					candidate := insertAt(routes[ri].stops, pos, c)
					_, cost, ok := evaluateRoute(s.matrix, stops, depot, candidate, capacity)
					if !ok {
						continue
					}
					if delta := cost - base; delta < bestDelta {
						bestStop, bestRoute, bestPos = c, ri, pos
						bestDelta = delta
					}
				}
			}
		}

		if bestStop == -1 {
			break
		}

		routes[bestRoute].stops = insertAt(routes[bestRoute].stops, bestPos, bestStop)
		unassigned = remove(unassigned, bestStop)
	}

	return routes, unassigned
}

func routeCost(m *matrix.CostMatrix, stops []Stop, depot int, seq []int,
	capacity float64) float64 {
	_, cost, ok := evaluateRoute(m, stops, depot, seq, capacity)
	if !ok {
		return pkg.INF_WEIGHT
	}
	return cost
}

func insertAt(seq []int, pos, v int) []int {
	out := make([]int, 0, len(seq)+1)
	out = append(out, seq[:pos]...)
	out = append(out, v)
	out = append(out, seq[pos:]...)
	return out
}

func remove(seq []int, v int) []int {
	out := seq[:0]
	for _, x := range seq {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
