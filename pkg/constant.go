package pkg

const (
	INF_WEIGHT float64 = 1e15

	// epsilon used when comparing costs and time-window bounds. window
	// bounds are inclusive: arrival == windowEnd is still feasible.
	EPSILON = 1e-6
)

const (
	DEBUG = false
)

// enum of shortest-path algorithm
type Algorithm uint8

const (
	DIJKSTRA Algorithm = iota
	ASTAR
)

func (a Algorithm) String() string {
	switch a {
	case DIJKSTRA:
		return "dijkstra"
	case ASTAR:
		return "astar"
	default:
		return "unknown"
	}
}

func ParseAlgorithm(s string) Algorithm {
	switch s {
	case "astar", "a_star", "a*":
		return ASTAR
	default:
		return DIJKSTRA
	}
}
