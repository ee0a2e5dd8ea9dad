package spatialindex

import (
	"errors"
	"math"

	da "github.com/prasetyobagus/anterin/pkg/datastructure"
	"github.com/prasetyobagus/anterin/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

var ErrNoVertexNearby = errors.New("no road segment within search radius")

// edgeEndpoints tail/head vertex ids of one directed road segment. the
// snapper picks the nearer endpoint of the closest segment, so a query point
// lying along a road still maps onto the road's own vertices.
type edgeEndpoints struct {
	tail da.Index
	head da.Index
}

type Rtree struct {
	tr    *rtree.RTreeG[edgeEndpoints]
	graph *da.Graph
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[edgeEndpoints]
	return &Rtree{
		tr: &tr,
	}
}

// Build index every road segment, each leaf padded to a bounding box with
// radius boundingBoxRadius (in km).
func (rt *Rtree) Build(graph *da.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("building r-tree spatial index...")
	rt.graph = graph

	graph.ForVertices(func(v *da.Vertex) {
		tail := v.GetID()
		tailLat, tailLon := v.GetLat(), v.GetLon()

		graph.ForOutEdgesOf(tail, func(e *da.OutEdge) {
			head := e.GetHead()
			headLat, headLon, _ := graph.GetVertexCoordinates(head)

			lowerTailLat, lowerTailLon := geo.GetDestinationPoint(tailLat, tailLon, 225, boundingBoxRadius)
			upperTailLat, upperTailLon := geo.GetDestinationPoint(tailLat, tailLon, 45, boundingBoxRadius)

			lowerHeadLat, lowerHeadLon := geo.GetDestinationPoint(headLat, headLon, 225, boundingBoxRadius)
			upperHeadLat, upperHeadLon := geo.GetDestinationPoint(headLat, headLon, 45, boundingBoxRadius)

			minLat := math.Min(lowerTailLat, lowerHeadLat)
			minLon := math.Min(lowerTailLon, lowerHeadLon)
			maxLat := math.Max(upperTailLat, upperHeadLat)
			maxLon := math.Max(upperTailLon, upperHeadLon)

			rt.tr.Insert([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
				edgeEndpoints{tail: tail, head: head})
		})
	})

	log.Info("r-tree spatial index built.")
}

// searchWithinRadius all segments whose padded box intersects the radius (in
// km) box around the query point.
func (rt *Rtree) searchWithinRadius(qLat, qLon, radius float64) []edgeEndpoints {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]edgeEndpoints, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data edgeEndpoints) bool {
			results = append(results, data)
			return true
		})
	return results
}

// SnapToNearestVertex map a raw coordinate to the graph vertex that best
// represents it: the nearer endpoint of the perpendicular-closest segment
// within radiusKM. ErrNoVertexNearby when no segment is in range.
func (rt *Rtree) SnapToNearestVertex(qLat, qLon, radiusKM float64) (da.Index, error) {
	candidates := rt.searchWithinRadius(qLat, qLon, radiusKM)
	if len(candidates) == 0 {
		return da.INVALID_VERTEX_ID, ErrNoVertexNearby
	}

	q := geo.NewCoordinate(qLat, qLon)

	best := da.INVALID_VERTEX_ID
	bestDist := math.MaxFloat64
	for _, c := range candidates {
		tailLat, tailLon, _ := rt.graph.GetVertexCoordinates(c.tail)
		headLat, headLon, _ := rt.graph.GetVertexCoordinates(c.head)
		tailCoord := geo.NewCoordinate(tailLat, tailLon)
		headCoord := geo.NewCoordinate(headLat, headLon)

		perp := geo.PointLinePerpendicularDistance(tailCoord, headCoord, q)
		if perp >= bestDist {
			continue
		}
		bestDist = perp

		if geo.CalculateHaversineDistance(qLat, qLon, tailLat, tailLon) <=
			geo.CalculateHaversineDistance(qLat, qLon, headLat, headLon) {
			best = c.tail
		} else {
			best = c.head
		}
	}

	return best, nil
}
