package routing

import (
	"github.com/prasetyobagus/anterin/pkg"
	da "github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/util"
)

// heuristicFunc lower bound on the remaining cost from v to the target. the
// zero heuristic turns the search into plain dijkstra; a haversine bound
// turns it into a*. must never overestimate for the search to stay optimal.
type heuristicFunc func(v da.Index) float64

var zeroHeuristic heuristicFunc = func(_ da.Index) float64 { return 0 }

// searchRunner label-setting relaxation core shared by dijkstra and a*. the
// two algorithms differ only in the priority-ordering function supplied, not
// in the loop itself. a runner is single-use per query and owns its own
// priority queue, so independent queries can run concurrently against the
// same immutable graph.
type searchRunner struct {
	graph *da.Graph

	dist      []float64
	parent    []da.Index
	heapNodes []*da.PriorityQueueNode[da.Index]
	settled   []bool

	pq *da.MinHeap[da.Index]

	numSettledNodes int
}

func newSearchRunner(graph *da.Graph) *searchRunner {
	return &searchRunner{
		graph: graph,
		pq:    da.NewFourAryHeap[da.Index](),
	}
}

func (r *searchRunner) preallocate() {
	n := r.graph.NumberOfVertices()
	r.dist = make([]float64, n)
	r.parent = make([]da.Index, n)
	r.heapNodes = make([]*da.PriorityQueueNode[da.Index], n)
	r.settled = make([]bool, n)
	for i := 0; i < n; i++ {
		r.dist[i] = pkg.INF_WEIGHT
		r.parent[i] = da.INVALID_VERTEX_ID
	}
	r.pq.Preallocate(n)
	r.numSettledNodes = 0
}

// run search from source until target is settled (single-target mode), or
// until the queue empties (target == INVALID_VERTEX_ID, single-source-to-all
// mode). returns true if target was settled.
func (r *searchRunner) run(source, target da.Index, h heuristicFunc) bool {
	r.preallocate()

	r.dist[source] = 0
	sNode := da.NewPriorityQueueNode(h(source), source)
	r.heapNodes[source] = sNode
	r.pq.Insert(sNode)

	for !r.pq.IsEmpty() {
		uNode, err := r.pq.ExtractMin()
		if err != nil {
			// not reachable while !IsEmpty() holds
			util.AssertPanic(false, "extract-min on empty queue")
		}
		u := uNode.GetItem()
		r.settled[u] = true
		r.numSettledNodes++

		if u == target {
			return true
		}

		r.relaxOutEdges(u, h)
	}

	return false
}

// relaxOutEdges examine every outEdge (u,v,w); when dist[u]+w improves
// dist[v] strictly, adopt u as predecessor and push/decrease-key v. strict
// less keeps the first-discovered predecessor on cost ties, so results are
// reproducible given the fixed edge iteration order.
func (r *searchRunner) relaxOutEdges(u da.Index, h heuristicFunc) {
	dU := r.dist[u]

	r.graph.ForOutEdgesOf(u, func(outEdge *da.OutEdge) {
		v := outEdge.GetHead()
		if r.settled[v] {
			return
		}

		newDist := dU + outEdge.GetWeight()
		if newDist >= pkg.INF_WEIGHT {
			return
		}
		if newDist >= r.dist[v] {
			// not better, keep the first-discovered predecessor
			return
		}

		r.dist[v] = newDist
		r.parent[v] = u

		priority := newDist + h(v)
		if vNode := r.heapNodes[v]; vNode != nil && vNode.GetPos() >= 0 {
			r.pq.DecreaseKey(vNode, priority)
		} else {
			vNode := da.NewPriorityQueueNode(priority, v)
			r.heapNodes[v] = vNode
			r.pq.Insert(vNode)
		}
	})
}

// reconstructPath walk predecessors back from target and reverse. empty when
// target was never reached.
func (r *searchRunner) reconstructPath(source, target da.Index) []da.Index {
	if r.dist[target] >= pkg.INF_WEIGHT {
		return []da.Index{}
	}

	reversed := make([]da.Index, 0)
	for cur := target; cur != da.INVALID_VERTEX_ID; cur = r.parent[cur] {
		reversed = append(reversed, cur)
		if cur == source {
			break
		}
	}

	return util.ReverseG(reversed)
}
