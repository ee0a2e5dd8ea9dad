package datastructure

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadGraphFromCSV(t *testing.T) {
	dir := t.TempDir()

	vertexFile := writeFile(t, dir, "vertices.csv",
		"lat,lon\n0.0,0.0\n0.0,0.001\n0.001,0.001\n")
	segmentFile := writeFile(t, dir, "segments.csv",
		"from,to,weight\n0,1,1.5\n1,2,2.5\n2,0,3.0\n")

	g, err := LoadGraphFromCSV(vertexFile, segmentFile)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if g.NumberOfVertices() != 3 {
		t.Errorf("got %d vertices, want 3", g.NumberOfVertices())
	}
	if g.NumberOfEdges() != 3 {
		t.Errorf("got %d edges, want 3", g.NumberOfEdges())
	}

	g.ForOutEdgesOf(0, func(e *OutEdge) {
		if e.GetHead() != 1 || e.GetWeight() != 1.5 {
			t.Errorf("edge of 0: got head %d weight %v", e.GetHead(), e.GetWeight())
		}
	})
}

func TestLoadGraphFromCSVErrors(t *testing.T) {
	dir := t.TempDir()

	vertexFile := writeFile(t, dir, "vertices.csv", "0.0,0.0\n0.0,0.001\n")

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadGraphFromCSV(filepath.Join(dir, "nope.csv"), vertexFile); err == nil {
			t.Error("expected error for missing vertex file")
		}
	})

	t.Run("bad weight", func(t *testing.T) {
		segmentFile := writeFile(t, dir, "bad_weight.csv", "0,1,abc\n0,1,xyz\n")
		if _, err := LoadGraphFromCSV(vertexFile, segmentFile); err == nil {
			t.Error("expected error for non-numeric weight")
		}
	})

	t.Run("segment references unknown vertex", func(t *testing.T) {
		segmentFile := writeFile(t, dir, "unknown.csv", "0,7,1.0\n")
		if _, err := LoadGraphFromCSV(vertexFile, segmentFile); err == nil {
			t.Error("expected error for unknown vertex")
		}
	})
}
