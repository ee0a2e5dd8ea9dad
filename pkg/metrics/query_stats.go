package metrics

import (
	"sync"
	"time"

	"github.com/prasetyobagus/anterin/pkg"
)

// QueryStat timing and cost record of one shortest-path query, the output
// surface the benchmarking collaborator consumes.
type QueryStat struct {
	Algorithm    pkg.Algorithm
	Cost         float64
	SettledNodes int
	Elapsed      time.Duration
}

// Collector accumulates per-query stats. safe for concurrent recording.
type Collector struct {
	mu    sync.Mutex
	stats []QueryStat
}

func NewCollector() *Collector {
	return &Collector{
		stats: make([]QueryStat, 0),
	}
}

func (c *Collector) Record(stat QueryStat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = append(c.stats, stat)
}

// Summary aggregate per algorithm.
type Summary struct {
	Algorithm   pkg.Algorithm
	Count       int
	MeanElapsed time.Duration
	MaxElapsed  time.Duration
	MeanSettled float64
}

func (c *Collector) Summarize() []Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	byAlgo := make(map[pkg.Algorithm][]QueryStat)
	order := make([]pkg.Algorithm, 0, 2)
	for _, st := range c.stats {
		if _, seen := byAlgo[st.Algorithm]; !seen {
			order = append(order, st.Algorithm)
		}
		byAlgo[st.Algorithm] = append(byAlgo[st.Algorithm], st)
	}

	summaries := make([]Summary, 0, len(order))
	for _, algo := range order {
		sts := byAlgo[algo]

		var totalElapsed time.Duration
		var maxElapsed time.Duration
		totalSettled := 0
		for _, st := range sts {
			totalElapsed += st.Elapsed
			if st.Elapsed > maxElapsed {
				maxElapsed = st.Elapsed
			}
			totalSettled += st.SettledNodes
		}

		summaries = append(summaries, Summary{
			Algorithm:   algo,
			Count:       len(sts),
			MeanElapsed: totalElapsed / time.Duration(len(sts)),
			MaxElapsed:  maxElapsed,
			MeanSettled: float64(totalSettled) / float64(len(sts)),
		})
	}

	return summaries
}
