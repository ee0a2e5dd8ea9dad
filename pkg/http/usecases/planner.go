package usecases

import (
	"github.com/prasetyobagus/anterin/pkg"
	"github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/geo"
	"github.com/prasetyobagus/anterin/pkg/matrix"
	"github.com/prasetyobagus/anterin/pkg/util"
	"github.com/prasetyobagus/anterin/pkg/vrp"
	"go.uber.org/zap"
)

// PlannerService snaps caller coordinates onto the graph, builds the pairwise
// cost matrix over the snapped vertices and runs the route constructor. the
// depot is always matrix index 0, so solver stop index i maps back to caller
// stop i-1.
type PlannerService struct {
	log           *zap.Logger
	engine        RoutingEngine
	spatialIndex  SpatialIndex
	matrixBuilder MatrixBuilder
	searchRadius  float64
}

func NewPlannerService(log *zap.Logger, engine RoutingEngine, spatialindex SpatialIndex,
	matrixBuilder MatrixBuilder, searchRadius float64) *PlannerService {
	return &PlannerService{
		log:           log,
		engine:        engine,
		spatialIndex:  spatialindex,
		matrixBuilder: matrixBuilder,
		searchRadius:  searchRadius,
	}
}

func (ps *PlannerService) PlanDeliveries(depot PlanStopInput, stops []PlanStopInput,
	vehicleCapacity float64) (PlanOutput, error) {
	depotVertex, err := ps.spatialIndex.SnapToNearestVertex(depot.Lat, depot.Lon, ps.searchRadius)
	if err != nil {
		return PlanOutput{}, util.WrapErrorf(err, util.ErrNotFound,
			"no road vertex near depot %f,%f", depot.Lat, depot.Lon)
	}

	vrpStops := make([]vrp.Stop, 0, len(stops)+1)
	vrpStops = append(vrpStops, vrp.NewStop(depotVertex, 0))

	vertices := make([]datastructure.Index, 0, len(stops)+1)
	vertices = append(vertices, depotVertex)

	for i, stop := range stops {
		vertex, err := ps.spatialIndex.SnapToNearestVertex(stop.Lat, stop.Lon, ps.searchRadius)
		if err != nil {
			return PlanOutput{}, util.WrapErrorf(err, util.ErrNotFound,
				"no road vertex near stop %d at %f,%f", i, stop.Lat, stop.Lon)
		}

		windowEnd := stop.WindowEnd
		if windowEnd == 0 {
			// zero window end means unconstrained
			windowEnd = pkg.INF_WEIGHT
		}
		vrpStops = append(vrpStops, vrp.NewStopWithTimeWindow(vertex, stop.Demand,
			stop.WindowStart, windowEnd, stop.ServiceTime))
		vertices = append(vertices, vertex)
	}

	costMatrix, err := ps.matrixBuilder.Build(vertices)
	if err != nil {
		return PlanOutput{}, util.WrapErrorf(err, util.ErrInternalServerError,
			"build cost matrix")
	}

	solver := vrp.NewSolver(costMatrix, ps.log)
	solution, err := solver.Solve(vrpStops, vehicleCapacity, 0)
	if err != nil {
		return PlanOutput{}, util.WrapErrorf(err, util.ErrBadParamInput,
			"route construction failed")
	}

	out := PlanOutput{
		Routes:    make([]PlannedRoute, 0, len(solution.GetRoutes())),
		TotalCost: solution.GetTotalCost(),
	}

	for _, route := range solution.GetRoutes() {
		planned := PlannedRoute{
			Stops: make([]int, 0, len(route.GetStops())),
			Legs:  make([]vrp.Leg, 0, len(route.GetLegs())),
			Cost:  route.GetCost(),
		}
		for _, stopIdx := range route.GetStops() {
			planned.Stops = append(planned.Stops, stopIdx-1)
		}
		for _, leg := range route.GetLegs() {
			leg.StopIndex--
			planned.Legs = append(planned.Legs, leg)
		}

		polyline, err := ps.routePolyline(costMatrix, route.GetStops())
		if err != nil {
			return PlanOutput{}, util.WrapErrorf(err, util.ErrInternalServerError,
				"encode route polyline")
		}
		planned.Polyline = polyline

		out.Routes = append(out.Routes, planned)
	}

	for _, stopIdx := range solution.GetUnassigned() {
		out.Unassigned = append(out.Unassigned, stopIdx-1)
	}

	return out, nil
}

// routePolyline stitches the cached vertex paths of each leg, depot to depot,
// into one encoded polyline.
func (ps *PlannerService) routePolyline(m *matrix.CostMatrix, seq []int) (string, error) {
	graph := ps.engine.GetGraph()

	full := []int{0}
	full = append(full, seq...)
	full = append(full, 0)

	coords := make([]geo.Coordinate, 0)
	for i := 0; i+1 < len(full); i++ {
		path, ok := m.GetPath(full[i], full[i+1])
		if !ok {
			continue
		}
		for j, v := range path {
			if i > 0 && j == 0 && len(coords) > 0 {
				// shared endpoint with the previous leg
				continue
			}
			lat, lon, err := graph.GetVertexCoordinates(v)
			if err != nil {
				return "", err
			}
			coords = append(coords, geo.NewCoordinate(lat, lon))
		}
	}

	return geo.PolylineFromCoords(coords), nil
}
