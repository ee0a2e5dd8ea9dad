package routing

import (
	"time"

	"github.com/prasetyobagus/anterin/pkg"
	da "github.com/prasetyobagus/anterin/pkg/datastructure"
)

// enum of search outcome. unreachable is a valid result value, not an error.
type Status uint8

const (
	STATUS_FOUND Status = iota
	STATUS_UNREACHABLE
)

func (s Status) String() string {
	switch s {
	case STATUS_FOUND:
		return "found"
	default:
		return "unreachable"
	}
}

type SearchResult struct {
	cost         float64
	path         []da.Index
	status       Status
	settledNodes int
	elapsed      time.Duration
}

func NewSearchResult(cost float64, path []da.Index, settledNodes int,
	elapsed time.Duration) SearchResult {
	return SearchResult{
		cost:         cost,
		path:         path,
		status:       STATUS_FOUND,
		settledNodes: settledNodes,
		elapsed:      elapsed,
	}
}

func NewUnreachableResult(settledNodes int, elapsed time.Duration) SearchResult {
	return SearchResult{
		cost:         pkg.INF_WEIGHT,
		path:         []da.Index{},
		status:       STATUS_UNREACHABLE,
		settledNodes: settledNodes,
		elapsed:      elapsed,
	}
}

func (r SearchResult) GetCost() float64 {
	return r.cost
}

func (r SearchResult) GetPath() []da.Index {
	return r.path
}

func (r SearchResult) GetStatus() Status {
	return r.status
}

func (r SearchResult) Found() bool {
	return r.status == STATUS_FOUND
}

// GetSettledNodes number of vertices whose distance label was finalized
// during the search. consumed by the benchmarking collaborator.
func (r SearchResult) GetSettledNodes() int {
	return r.settledNodes
}

func (r SearchResult) GetElapsed() time.Duration {
	return r.elapsed
}
