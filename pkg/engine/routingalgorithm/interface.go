package routingalgorithm

import "lintang/roadgraph/pkg/datastructure"

// RoadGraph is the read view a search runs against. Topology must not change
// while a search holds it.
type RoadGraph interface {
	GetNode(p datastructure.Coordinate) (*datastructure.MapNode, bool)
	// GetNumVertices bounds every MapNode.ID in the graph.
	GetNumVertices() int
	TopologyVersion() uint64
}

type RouteAlgorithm struct {
	g RoadGraph
}

func NewRouteAlgorithm(g RoadGraph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}
