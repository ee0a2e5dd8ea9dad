package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encode path coordinates into a google polyline string
// for the presentation consumer.
func PolylineFromCoords(coords []Coordinate) string {
	latLons := make([][]float64, len(coords))
	for i, c := range coords {
		latLons[i] = []float64{c.GetLat(), c.GetLon()}
	}
	return string(polyline.EncodeCoords(latLons))
}
