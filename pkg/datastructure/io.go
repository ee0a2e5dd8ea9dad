package datastructure

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prasetyobagus/anterin/pkg/geo"
)

// LoadGraphFromCSV reads a road network from two csv files: vertexFile with
// one "lat,lon" row per vertex (row number is the vertex id) and segmentFile
// with "from,to,weight" rows. rows starting with a non-numeric first field
// are treated as headers and skipped.
func LoadGraphFromCSV(vertexFile, segmentFile string) (*Graph, error) {
	coords, err := readVertexFile(vertexFile)
	if err != nil {
		return nil, err
	}
	segments, err := readSegmentFile(segmentFile)
	if err != nil {
		return nil, err
	}
	return NewGraph(coords, segments)
}

func readVertexFile(path string) ([]geo.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	lats := make([]float64, 0)
	lons := make([]float64, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read vertex file %s: %w", path, err)
		}

		lat, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			if len(lats) == 0 {
				// header row
				continue
			}
			return nil, fmt.Errorf("vertex file %s: bad latitude %q", path, record[0])
		}
		lon, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("vertex file %s: bad longitude %q", path, record[1])
		}

		lats = append(lats, lat)
		lons = append(lons, lon)
	}

	return geo.NewCoordinates(lats, lons), nil
}

func readSegmentFile(path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3

	segments := make([]Segment, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read segment file %s: %w", path, err)
		}

		from, err := strconv.ParseUint(record[0], 10, 32)
		if err != nil {
			if len(segments) == 0 {
				continue
			}
			return nil, fmt.Errorf("segment file %s: bad tail vertex %q", path, record[0])
		}
		to, err := strconv.ParseUint(record[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("segment file %s: bad head vertex %q", path, record[1])
		}
		weight, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("segment file %s: bad weight %q", path, record[2])
		}

		segments = append(segments, NewSegment(Index(from), Index(to), weight))
	}

	return segments, nil
}
