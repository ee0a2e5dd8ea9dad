package routing

import (
	"errors"
	"testing"

	"github.com/prasetyobagus/anterin/pkg"
	da "github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/geo"
	"go.uber.org/zap"
)

// squareGraph four vertices on a small square with unit edge weights:
//
//	0 -> 1 -> 2
//	0 -> 3 -> 2
//	0 -> 2 (direct, weight 3)
//
// the cheapest 0->2 route costs 2; the direct edge is never competitive.
func squareGraph(t *testing.T) *da.Graph {
	t.Helper()

	coords := []geo.Coordinate{
		geo.NewCoordinate(0.0, 0.0),
		geo.NewCoordinate(0.0, 0.001),
		geo.NewCoordinate(0.001, 0.001),
		geo.NewCoordinate(0.001, 0.0),
	}
	segments := []da.Segment{
		da.NewSegment(0, 1, 1.0),
		da.NewSegment(0, 2, 3.0),
		da.NewSegment(0, 3, 1.0),
		da.NewSegment(1, 2, 1.0),
		da.NewSegment(3, 2, 1.0),
	}

	g, err := da.NewGraph(coords, segments)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestShortestPath(t *testing.T) {
	engine := NewRoutingEngine(squareGraph(t), zap.NewNop())

	testCases := []struct {
		name      string
		algorithm pkg.Algorithm
	}{
		{name: "dijkstra", algorithm: pkg.DIJKSTRA},
		{name: "astar", algorithm: pkg.ASTAR},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.ShortestPath(0, 2, tt.algorithm)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}

			if !result.Found() {
				t.Fatal("path 0->2 should be found")
			}
			if result.GetCost() != 2.0 {
				t.Errorf("got cost %v, want 2", result.GetCost())
			}

			path := result.GetPath()
			if len(path) != 3 {
				t.Fatalf("got path %v, want 3 vertices", path)
			}
			if path[0] != 0 || path[len(path)-1] != 2 {
				t.Errorf("path %v must start at 0 and end at 2", path)
			}
			if result.GetSettledNodes() <= 0 {
				t.Error("settled node count should be positive")
			}
		})
	}
}

func TestShortestPathSourceIsTarget(t *testing.T) {
	engine := NewRoutingEngine(squareGraph(t), zap.NewNop())

	result, err := engine.ShortestPath(1, 1, pkg.DIJKSTRA)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.Found() {
		t.Fatal("trivial path should be found")
	}
	if result.GetCost() != 0 {
		t.Errorf("got cost %v, want 0", result.GetCost())
	}
	if path := result.GetPath(); len(path) != 1 || path[0] != 1 {
		t.Errorf("got path %v, want [1]", path)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	coords := []geo.Coordinate{
		geo.NewCoordinate(0.0, 0.0),
		geo.NewCoordinate(0.0, 0.001),
	}
	g, err := da.NewGraph(coords, []da.Segment{da.NewSegment(0, 1, 1.0)})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	engine := NewRoutingEngine(g, zap.NewNop())

	result, err := engine.ShortestPath(1, 0, pkg.DIJKSTRA)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if result.Found() {
		t.Fatal("1->0 should be unreachable on a one-way edge")
	}
	if result.GetStatus() != STATUS_UNREACHABLE {
		t.Errorf("got status %v, want unreachable", result.GetStatus())
	}
	if len(result.GetPath()) != 0 {
		t.Errorf("unreachable result must carry an empty path, got %v", result.GetPath())
	}
	if result.GetCost() < pkg.INF_WEIGHT {
		t.Errorf("unreachable cost %v should be infinite", result.GetCost())
	}
}

func TestShortestPathUnknownVertex(t *testing.T) {
	engine := NewRoutingEngine(squareGraph(t), zap.NewNop())

	if _, err := engine.ShortestPath(0, 99, pkg.DIJKSTRA); !errors.Is(err, da.ErrUnknownVertex) {
		t.Errorf("got err %v, want ErrUnknownVertex", err)
	}
	if _, err := engine.ShortestPath(99, 0, pkg.ASTAR); !errors.Is(err, da.ErrUnknownVertex) {
		t.Errorf("got err %v, want ErrUnknownVertex", err)
	}
	if _, err := engine.ShortestPathOneToMany(0, []da.Index{1, 99}); !errors.Is(err, da.ErrUnknownVertex) {
		t.Errorf("got err %v, want ErrUnknownVertex", err)
	}
}

func TestDijkstraAStarAgree(t *testing.T) {
	engine := NewRoutingEngine(squareGraph(t), zap.NewNop())

	pairs := [][2]da.Index{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {3, 2}}
	for _, pair := range pairs {
		dj, err := engine.ShortestPath(pair[0], pair[1], pkg.DIJKSTRA)
		if err != nil {
			t.Fatalf("dijkstra %v: %v", pair, err)
		}
		as, err := engine.ShortestPath(pair[0], pair[1], pkg.ASTAR)
		if err != nil {
			t.Fatalf("astar %v: %v", pair, err)
		}

		if dj.GetCost() != as.GetCost() {
			t.Errorf("pair %v: dijkstra cost %v != astar cost %v", pair, dj.GetCost(), as.GetCost())
		}
		if dj.GetStatus() != as.GetStatus() {
			t.Errorf("pair %v: status mismatch", pair)
		}
	}
}

func TestShortestPathIdempotent(t *testing.T) {
	engine := NewRoutingEngine(squareGraph(t), zap.NewNop())

	first, err := engine.ShortestPath(0, 2, pkg.DIJKSTRA)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := engine.ShortestPath(0, 2, pkg.DIJKSTRA)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if first.GetCost() != second.GetCost() {
		t.Errorf("costs differ across identical queries: %v vs %v", first.GetCost(), second.GetCost())
	}
	fp, sp := first.GetPath(), second.GetPath()
	if len(fp) != len(sp) {
		t.Fatalf("paths differ across identical queries: %v vs %v", fp, sp)
	}
	for i := range fp {
		if fp[i] != sp[i] {
			t.Errorf("paths differ at %d: %v vs %v", i, fp, sp)
		}
	}
}

func TestShortestPathOneToMany(t *testing.T) {
	engine := NewRoutingEngine(squareGraph(t), zap.NewNop())

	targets := []da.Index{1, 2, 3, 0}
	results, err := engine.ShortestPathOneToMany(0, targets)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != len(targets) {
		t.Fatalf("got %d results, want %d", len(results), len(targets))
	}

	wantCosts := []float64{1, 2, 1, 0}
	for i, want := range wantCosts {
		if !results[i].Found() {
			t.Errorf("target %d should be reachable", targets[i])
			continue
		}
		if results[i].GetCost() != want {
			t.Errorf("target %d: got cost %v, want %v", targets[i], results[i].GetCost(), want)
		}
		if path := results[i].GetPath(); len(path) == 0 || path[len(path)-1] != targets[i] {
			t.Errorf("target %d: bad path %v", targets[i], path)
		}
	}
}

// the haversine heuristic must never overestimate the true remaining cost,
// otherwise astar could settle a vertex with a non-final distance.
func TestHeuristicAdmissible(t *testing.T) {
	g := squareGraph(t)
	engine := NewRoutingEngine(g, zap.NewNop())

	target := da.Index(2)
	tLat, tLon, err := g.GetVertexCoordinates(target)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for v := da.Index(0); int(v) < g.NumberOfVertices(); v++ {
		result, err := engine.ShortestPath(v, target, pkg.DIJKSTRA)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !result.Found() {
			continue
		}

		vLat, vLon, err := g.GetVertexCoordinates(v)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		h := geo.CalculateHaversineDistance(vLat, vLon, tLat, tLon)
		if h > result.GetCost() {
			t.Errorf("vertex %d: heuristic %v exceeds true cost %v", v, h, result.GetCost())
		}
	}
}
