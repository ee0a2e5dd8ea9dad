package vrp

import (
	"testing"

	da "github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// checkFleetPartition every non-depot stop appears exactly once, either on a
// vehicle's route or in the unassigned list, and no vehicle serves more than
// one route.
func checkFleetPartition(t *testing.T, solution FleetSolution, numStops, depot int) {
	t.Helper()

	seen := make(map[int]int)
	usedVehicles := make(map[int]int)
	for _, a := range solution.GetAssignments() {
		require.NotEmpty(t, a.GetRoute().GetStops(), "idle vehicles must not be emitted")
		usedVehicles[a.GetVehicle().GetID()]++
		for _, s := range a.GetRoute().GetStops() {
			require.NotEqual(t, depot, s, "depot must not appear as an interior stop")
			seen[s]++
		}
	}
	for _, s := range solution.GetUnassigned() {
		seen[s]++
	}

	for i := 0; i < numStops; i++ {
		if i == depot {
			continue
		}
		require.Equal(t, 1, seen[i], "stop %d must appear exactly once", i)
	}
	for id, n := range usedVehicles {
		require.Equal(t, 1, n, "vehicle %d must serve at most one route", id)
	}
}

func TestSolveFleetRespectsVehicleCapacities(t *testing.T) {
	m := chainMatrix(t, 5)

	stops := []Stop{
		NewStop(0, 0), // depot
		NewStop(1, 3),
		NewStop(2, 4),
		NewStop(3, 3),
		NewStop(4, 2),
	}
	vehicles := []Vehicle{
		NewVehicle(1, 7),
		NewVehicle(2, 5),
	}

	solution, err := NewSolver(m, zap.NewNop()).SolveFleet(stops, vehicles, 0)
	require.NoError(t, err)

	// total demand 12 fits in capacities 7+5, nothing is left behind
	require.Empty(t, solution.GetUnassigned())
	checkFleetPartition(t, solution, len(stops), 0)

	for _, a := range solution.GetAssignments() {
		load := 0.0
		for _, s := range a.GetRoute().GetStops() {
			load += stops[s].GetDemand()
		}
		require.LessOrEqual(t, load, a.GetVehicle().GetCapacity(),
			"vehicle %d overloaded", a.GetVehicle().GetID())
	}
}

func TestSolveFleetReportsLeftoverUnassigned(t *testing.T) {
	m := chainMatrix(t, 4)

	stops := []Stop{
		NewStop(0, 0),
		NewStop(1, 4),
		NewStop(2, 4),
		NewStop(3, 4),
	}
	// one vehicle of capacity 8 can serve only two of the three stops
	vehicles := []Vehicle{NewVehicle(1, 8)}

	solution, err := NewSolver(m, zap.NewNop()).SolveFleet(stops, vehicles, 0)
	require.NoError(t, err)

	require.Len(t, solution.GetAssignments(), 1)
	require.Len(t, solution.GetUnassigned(), 1)
	checkFleetPartition(t, solution, len(stops), 0)
}

func TestSolveFleetLargeDemandNeedsLargeVehicle(t *testing.T) {
	m := chainMatrix(t, 3)

	stops := []Stop{
		NewStop(0, 0),
		NewStop(1, 9),
		NewStop(2, 1),
	}
	vehicles := []Vehicle{
		NewVehicle(1, 2),
		NewVehicle(2, 10),
	}

	solution, err := NewSolver(m, zap.NewNop()).SolveFleet(stops, vehicles, 0)
	require.NoError(t, err)
	require.Empty(t, solution.GetUnassigned())
	checkFleetPartition(t, solution, len(stops), 0)

	// the demand-9 stop can only ride the capacity-10 vehicle
	for _, a := range solution.GetAssignments() {
		for _, s := range a.GetRoute().GetStops() {
			if s == 1 {
				require.Equal(t, 2, a.GetVehicle().GetID())
			}
		}
	}
}

func TestSolveFleetIdleVehicleOmitted(t *testing.T) {
	m := chainMatrix(t, 2)

	stops := []Stop{
		NewStop(0, 0),
		NewStop(1, 1),
	}
	vehicles := []Vehicle{
		NewVehicle(1, 5),
		NewVehicle(2, 5),
		NewVehicle(3, 5),
	}

	solution, err := NewSolver(m, zap.NewNop()).SolveFleet(stops, vehicles, 0)
	require.NoError(t, err)

	require.Len(t, solution.GetAssignments(), 1)
	require.Empty(t, solution.GetUnassigned())
	require.Equal(t, solution.GetTotalCost(), solution.GetAssignments()[0].GetRoute().GetCost())
}

func TestSolveFleetTimeWindows(t *testing.T) {
	m := chainMatrixOver(t, 5, []da.Index{0, 1, 4})

	// vertex 4 is 4 time units away but its window closes at 2
	stops := []Stop{
		NewStop(0, 0),
		NewStop(1, 1),
		NewStopWithTimeWindow(4, 1, 0, 2, 0),
	}
	vehicles := []Vehicle{NewVehicle(1, 10), NewVehicle(2, 10)}

	solution, err := NewSolver(m, zap.NewNop()).SolveFleet(stops, vehicles, 0)
	require.NoError(t, err)

	require.Equal(t, []int{2}, solution.GetUnassigned())
	checkFleetPartition(t, solution, len(stops), 0)
}

func TestSolveFleetValidation(t *testing.T) {
	m := chainMatrix(t, 3)

	stops := []Stop{NewStop(0, 0), NewStop(1, 1), NewStop(2, 1)}
	vehicles := []Vehicle{NewVehicle(1, 10)}

	_, err := NewSolver(m, zap.NewNop()).SolveFleet(stops[:2], vehicles, 0)
	require.Error(t, err, "stop count must match the matrix dimension")

	_, err = NewSolver(m, zap.NewNop()).SolveFleet(stops, vehicles, 5)
	require.Error(t, err, "depot out of range")

	_, err = NewSolver(m, zap.NewNop()).SolveFleet(stops, nil, 0)
	require.Error(t, err, "empty fleet")
}
