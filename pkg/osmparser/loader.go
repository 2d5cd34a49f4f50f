package osmparser

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"lintang/roadgraph/pkg/datastructure"
)

// GraphBuilder receives the vertices and directed segments a loader finds.
type GraphBuilder interface {
	AddVertex(p datastructure.Coordinate) bool
	AddEdge(from, to datastructure.Coordinate, roadName, roadType string, length float64) error
}

type Summary struct {
	Ways     int
	Vertices int
	Edges    int
}

// LoadFile picks the OpenStreetMap reader for .pbf files and the road map text
// reader for anything else.
func LoadFile(ctx context.Context, path string, g GraphBuilder) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open map file %s: %w", path, err)
	}
	defer f.Close()

	log.Printf("reading map file %s", path)
	if strings.HasSuffix(strings.ToLower(path), ".pbf") {
		return ParseOSM(ctx, f, g)
	}
	return LoadRoadMap(f, g)
}
