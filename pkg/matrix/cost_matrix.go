package matrix

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prasetyobagus/anterin/pkg"
	da "github.com/prasetyobagus/anterin/pkg/datastructure"
)

// ErrUnreachablePair the requested pair has no connecting path. degrades
// that pair's eligibility for direct connection; never aborts a whole
// matrix build.
var ErrUnreachablePair = errors.New("no path between stop pair")

type pairKey struct {
	from, to int
}

// CostMatrix dense pairwise cost table over a fixed stop set, read-only once
// built. costs are always resident; full vertex paths sit behind an LRU so a
// large stop set does not pin every path geometry in memory.
type CostMatrix struct {
	stops []da.Index
	costs [][]float64

	paths *lru.Cache[pairKey, []da.Index]
}

func newCostMatrix(stops []da.Index, pathCacheSize int) (*CostMatrix, error) {
	n := len(stops)
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
		for j := range costs[i] {
			if i != j {
				costs[i][j] = pkg.INF_WEIGHT
			}
		}
	}

	paths, err := lru.New[pairKey, []da.Index](pathCacheSize)
	if err != nil {
		return nil, err
	}

	return &CostMatrix{
		stops: stops,
		costs: costs,
		paths: paths,
	}, nil
}

func (m *CostMatrix) Dimension() int {
	return len(m.stops)
}

// GetVertex vertex id of the i-th stop.
func (m *CostMatrix) GetVertex(i int) da.Index {
	return m.stops[i]
}

// GetCost cost from stop i to stop j. ErrUnreachablePair when no path
// connects the ordered pair.
func (m *CostMatrix) GetCost(i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= len(m.stops) || j >= len(m.stops) {
		return pkg.INF_WEIGHT, fmt.Errorf("stop pair (%d,%d) out of range", i, j)
	}
	c := m.costs[i][j]
	if c >= pkg.INF_WEIGHT {
		return pkg.INF_WEIGHT, fmt.Errorf("stop pair (%d,%d): %w", i, j, ErrUnreachablePair)
	}
	return c, nil
}

// Reachable true when the ordered pair has a connecting path.
func (m *CostMatrix) Reachable(i, j int) bool {
	return i == j || m.costs[i][j] < pkg.INF_WEIGHT
}

// GetPath full vertex path from stop i to stop j, when still cached.
func (m *CostMatrix) GetPath(i, j int) ([]da.Index, bool) {
	return m.paths.Get(pairKey{from: i, to: j})
}

func (m *CostMatrix) setEntry(i, j int, cost float64, path []da.Index) {
	m.costs[i][j] = cost
	if len(path) > 0 {
		m.paths.Add(pairKey{from: i, to: j}, path)
	}
}
