package matrix

import (
	"github.com/prasetyobagus/anterin/pkg/concurrent"
	da "github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/routing"
	"go.uber.org/zap"
)

const defaultPathCacheSize = 1 << 14

// Builder precomputes the pairwise cost matrix for a stop set by running the
// shortest-path engine in one-to-many mode once per stop (n runs instead of
// n*(n-1) single-pair queries). rows are computed concurrently; each worker
// owns an independent search runner and only reads the immutable graph.
type Builder struct {
	engine     *routing.RoutingEngine
	logger     *zap.Logger
	numWorkers int
}

func NewBuilder(engine *routing.RoutingEngine, logger *zap.Logger, numWorkers int) *Builder {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Builder{
		engine:     engine,
		logger:     logger,
		numWorkers: numWorkers,
	}
}

type rowResult struct {
	row     int
	results []routing.SearchResult
	err     error
}

// Build dense matrix over stopVertices (depot included). an unknown vertex
// id fails the whole build (caller bug); an unreachable pair only marks that
// entry and the build continues.
func (b *Builder) Build(stopVertices []da.Index) (*CostMatrix, error) {
	n := len(stopVertices)

	m, err := newCostMatrix(stopVertices, defaultPathCacheSize)
	if err != nil {
		return nil, err
	}

	b.logger.Info("building pairwise cost matrix",
		zap.Int("stops", n), zap.Int("workers", b.numWorkers))

	workers := concurrent.NewWorkerPool[int, rowResult](b.numWorkers, n)

	for row := 0; row < n; row++ {
		workers.AddJob(row)
	}
	workers.Close()

	workers.Start(func(row int) rowResult {
		results, err := b.engine.ShortestPathOneToMany(stopVertices[row], stopVertices)
		return rowResult{row: row, results: results, err: err}
	})
	workers.Wait()

	unreachablePairs := 0
	for res := range workers.CollectResults() {
		if res.err != nil {
			return nil, res.err
		}
		for j, sr := range res.results {
			if res.row == j {
				continue
			}
			if !sr.Found() {
				unreachablePairs++
				continue
			}
			m.setEntry(res.row, j, sr.GetCost(), sr.GetPath())
		}
	}

	if unreachablePairs > 0 {
		b.logger.Warn("cost matrix has unreachable stop pairs",
			zap.Int("pairs", unreachablePairs))
	}

	b.logger.Info("cost matrix built", zap.Int("stops", n),
		zap.Int("unreachable_pairs", unreachablePairs))

	return m, nil
}
