package routing

import (
	"time"

	"github.com/prasetyobagus/anterin/pkg"
	da "github.com/prasetyobagus/anterin/pkg/datastructure"
)

type Dijkstra struct {
	engine *RoutingEngine
	runner *searchRunner
}

func NewDijkstra(engine *RoutingEngine) *Dijkstra {
	return &Dijkstra{
		engine: engine,
		runner: newSearchRunner(engine.graph),
	}
}

// ShortestPath single-pair label-setting search, stops early once the target
// is extracted from the queue.
func (d *Dijkstra) ShortestPath(source, target da.Index) SearchResult {
	start := time.Now()

	found := d.runner.run(source, target, zeroHeuristic)
	if !found {
		return NewUnreachableResult(d.runner.numSettledNodes, time.Since(start))
	}

	return NewSearchResult(d.runner.dist[target],
		d.runner.reconstructPath(source, target),
		d.runner.numSettledNodes, time.Since(start))
}

// ShortestPathOneToMany single run from source to every target, used by the
// cost matrix builder to shave a factor of n off the pairwise build. the
// search exhausts the queue, so every reachable target is settled.
func (d *Dijkstra) ShortestPathOneToMany(source da.Index, targets []da.Index) []SearchResult {
	start := time.Now()

	d.runner.run(source, da.INVALID_VERTEX_ID, zeroHeuristic)

	results := make([]SearchResult, len(targets))
	for i, t := range targets {
		if d.runner.dist[t] >= pkg.INF_WEIGHT {
			results[i] = NewUnreachableResult(d.runner.numSettledNodes, time.Since(start))
			continue
		}
		results[i] = NewSearchResult(d.runner.dist[t],
			d.runner.reconstructPath(source, t),
			d.runner.numSettledNodes, time.Since(start))
	}

	return results
}
