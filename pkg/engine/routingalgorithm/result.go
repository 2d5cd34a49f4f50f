package routingalgorithm

import "lintang/roadgraph/pkg/datastructure"

type Stats struct {
	// Visited counts points passed to the visitor.
	Visited int `json:"visited"`
	// Settled counts nodes whose outgoing edges were expanded.
	Settled int `json:"settled"`
	// CacheHit is set when the route was completed from a cached path.
	CacheHit bool `json:"cache_hit"`
}

// Result of a single search. Found is false when the goal is unreachable;
// Path then is nil.
type Result struct {
	Path     []datastructure.Coordinate
	Distance float64
	Found    bool
	Stats    Stats
}

func (r Result) NumEdges() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
