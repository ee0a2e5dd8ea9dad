package datastructure

import (
	"errors"
	"fmt"
	"math"

	"github.com/prasetyobagus/anterin/pkg/geo"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = math.MaxUint32
	INVALID_EDGE_ID   Index = math.MaxUint32
)

// ErrUnknownVertex query references a vertex id that is not in the graph.
// caller bug, never retried.
var ErrUnknownVertex = errors.New("unknown vertex id")

type Vertex struct {
	lat      float64
	lon      float64
	firstOut Index // index of the first outEdge of this vertex in the flattened graph.outEdges array
	id       Index
}

func NewVertex(lat, lon float64, id Index) Vertex {
	return Vertex{
		lat: lat,
		lon: lon,
		id:  id,
	}
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

type OutEdge struct {
	weight float64
	head   Index
	edgeId Index
}

func NewOutEdge(edgeId, head Index, weight float64) OutEdge {
	return OutEdge{
		edgeId: edgeId,
		head:   head,
		weight: weight,
	}
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetWeight() float64 {
	return e.weight
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

// Segment directed weighted road segment record supplied by the map-ingestion
// collaborator. a bidirectional road arrives here as two opposite segments,
// and turn restrictions are already resolved to segment presence/absence.
type Segment struct {
	From   Index
	To     Index
	Weight float64
}

func NewSegment(from, to Index, weight float64) Segment {
	return Segment{From: from, To: to, Weight: weight}
}

// Graph immutable directed weighted road graph. adjacency is stored
// compressed-sparse-row style: outEdges of vertex v live in
// outEdges[firstOut[v]:firstOut[v+1]], so neighbor iteration is O(outdegree)
// with no per-query allocation. read-only after construction, safe for
// concurrent readers without locking.
type Graph struct {
	vertices []Vertex
	firstOut []Index
	outEdges []OutEdge
}

// NewGraph build the graph once from vertex coordinates plus the segment
// list. fails fast on a segment referencing an absent vertex, a negative or
// NaN weight; identical parallel segments are deduplicated keeping the
// minimum weight. no partially built graph is ever returned.
func NewGraph(coords []geo.Coordinate, segments []Segment) (*Graph, error) {
	n := len(coords)

	type slot struct {
		to     Index
		weight float64
	}
	adj := make([][]slot, n)

	for i, s := range segments {
		if int(s.From) >= n || int(s.To) >= n {
			return nil, fmt.Errorf("segment %d (%d->%d): %w", i, s.From, s.To, ErrUnknownVertex)
		}
		if math.IsNaN(s.Weight) || s.Weight < 0 {
			return nil, fmt.Errorf("segment %d (%d->%d): negative or NaN weight %v", i, s.From, s.To, s.Weight)
		}

		dup := false
		for j := range adj[s.From] {
			if adj[s.From][j].to == s.To {
				// parallel segment, keep the cheaper one
				if s.Weight < adj[s.From][j].weight {
					adj[s.From][j].weight = s.Weight
				}
				dup = true
				break
			}
		}
		if !dup {
			adj[s.From] = append(adj[s.From], slot{to: s.To, weight: s.Weight})
		}
	}

	g := &Graph{
		vertices: make([]Vertex, n),
		firstOut: make([]Index, n+1),
	}

	numEdges := 0
	for _, edges := range adj {
		numEdges += len(edges)
	}
	g.outEdges = make([]OutEdge, 0, numEdges)

	eid := Index(0)
	for v := 0; v < n; v++ {
		g.vertices[v] = NewVertex(coords[v].GetLat(), coords[v].GetLon(), Index(v))
		g.vertices[v].firstOut = Index(len(g.outEdges))
		g.firstOut[v] = Index(len(g.outEdges))
		for _, e := range adj[v] {
			g.outEdges = append(g.outEdges, NewOutEdge(eid, e.to, e.weight))
			eid++
		}
	}
	g.firstOut[n] = Index(len(g.outEdges))

	return g, nil
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.outEdges)
}

func (g *Graph) HasVertex(v Index) bool {
	return int(v) < len(g.vertices)
}

// GetVertexCoordinates O(1) coordinate lookup.
func (g *Graph) GetVertexCoordinates(v Index) (float64, float64, error) {
	if !g.HasVertex(v) {
		return 0, 0, fmt.Errorf("vertex %d: %w", v, ErrUnknownVertex)
	}
	return g.vertices[v].GetLat(), g.vertices[v].GetLon(), nil
}

// GetOutDegree out-degree of v, zero for unknown vertex ids.
func (g *Graph) GetOutDegree(v Index) int {
	if !g.HasVertex(v) {
		return 0
	}
	return int(g.firstOut[v+1] - g.firstOut[v])
}

// ForOutEdgesOf iterate outEdges of u in construction order. iteration order
// is fixed, which keeps equal-cost tie-breaks deterministic across runs.
// unknown vertex ids iterate nothing.
func (g *Graph) ForOutEdgesOf(u Index, fn func(outEdge *OutEdge)) {
	if !g.HasVertex(u) {
		return
	}
	for i := g.firstOut[u]; i < g.firstOut[u+1]; i++ {
		fn(&g.outEdges[i])
	}
}

// ForVertices iterate all vertices.
func (g *Graph) ForVertices(fn func(v *Vertex)) {
	for i := range g.vertices {
		fn(&g.vertices[i])
	}
}
