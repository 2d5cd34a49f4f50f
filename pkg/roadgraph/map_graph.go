// Package roadgraph stores a directed road network keyed by coordinate and
// answers shortest path queries over it.
package roadgraph

import (
	"fmt"
	"math"
	"sync"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/engine/routingalgorithm"
	"lintang/roadgraph/pkg/util"
)

var (
	ErrInvalidArgument = datastructure.ErrInvalidArgument
	ErrInvalidPoint    = datastructure.ErrInvalidPoint
	ErrVertexNotFound  = datastructure.ErrVertexNotFound
	ErrNegativeWeight  = datastructure.ErrNegativeWeight
)

// Road is an outgoing segment as seen from its source vertex.
type Road struct {
	To       datastructure.Coordinate `json:"to"`
	Name     string                   `json:"name"`
	RoadType string                   `json:"road_type"`
	Length   float64                  `json:"length"`
}

// MapGraph is safe for concurrent use. Searches share a read lock; insertions
// wait for running searches to finish.
type MapGraph struct {
	mu       sync.RWMutex
	vertices map[datastructure.Coordinate]*datastructure.MapNode
	nodes    []*datastructure.MapNode
	version  uint64

	statsMu   sync.Mutex
	lastStats routingalgorithm.Stats
}

func NewMapGraph() *MapGraph {
	return &MapGraph{
		vertices: make(map[datastructure.Coordinate]*datastructure.MapNode),
		nodes:    make([]*datastructure.MapNode, 0),
	}
}

// AddVertex reports whether p was inserted. Invalid and already present
// coordinates are ignored.
func (g *MapGraph) AddVertex(p datastructure.Coordinate) bool {
	if !p.IsValid() {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[p]; ok {
		return false
	}
	node := datastructure.NewMapNode(int32(len(g.nodes)), p)
	g.vertices[p] = node
	g.nodes = append(g.nodes, node)
	g.version++
	return true
}

// AddEdge inserts a directed segment between two existing vertices. Nothing is
// inserted when an error is returned.
func (g *MapGraph) AddEdge(from, to datastructure.Coordinate, roadName, roadType string, length float64) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("add edge %v -> %v: %w", from, to, ErrInvalidPoint)
	}
	if math.IsNaN(length) || length < 0 {
		return fmt.Errorf("add edge %v -> %v with length %v: %w", from, to, length, ErrNegativeWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fromNode, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("add edge from %v: %w", from, ErrVertexNotFound)
	}
	toNode, ok := g.vertices[to]
	if !ok {
		return fmt.Errorf("add edge to %v: %w", to, ErrVertexNotFound)
	}

	fromNode.AddEdge(toNode, roadName, roadType, length)
	g.version++
	return nil
}

func (g *MapGraph) GetNumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

func (g *MapGraph) GetNumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	numEdges := 0
	for _, node := range g.nodes {
		numEdges += node.GetNumNodeEdges()
	}
	return numEdges
}

// GetVertices returns every vertex sorted by latitude then longitude.
func (g *MapGraph) GetVertices() []datastructure.Coordinate {
	g.mu.RLock()
	coords := make([]datastructure.Coordinate, 0, len(g.nodes))
	for _, node := range g.nodes {
		coords = append(coords, node.Loc)
	}
	g.mu.RUnlock()

	return util.QuickSortG(coords, compareCoordinate)
}

func compareCoordinate(a, b datastructure.Coordinate) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

func (g *MapGraph) HasVertex(p datastructure.Coordinate) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[p]
	return ok
}

// Neighbors lists the outgoing segments of p in insertion order.
func (g *MapGraph) Neighbors(p datastructure.Coordinate) ([]Road, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, ok := g.vertices[p]
	if !ok {
		return nil, fmt.Errorf("neighbors of %v: %w", p, ErrVertexNotFound)
	}
	roads := make([]Road, 0, node.GetNumNodeEdges())
	for _, edge := range node.GetEdges() {
		roads = append(roads, Road{
			To:       edge.To.Loc,
			Name:     edge.Name,
			RoadType: edge.RoadType,
			Length:   edge.Length,
		})
	}
	return roads, nil
}

// TopologyVersion changes whenever a vertex or edge is inserted.
func (g *MapGraph) TopologyVersion() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.version
}

// ReInitialize clears the diagnostic counter. Cached paths are kept.
func (g *MapGraph) ReInitialize() {
	g.statsMu.Lock()
	defer g.statsMu.Unlock()
	g.lastStats = routingalgorithm.Stats{}
}

// VisitedCount is the number of nodes expanded by the most recent Dijkstra or
// A* search.
func (g *MapGraph) VisitedCount() int {
	g.statsMu.Lock()
	defer g.statsMu.Unlock()
	return g.lastStats.Settled
}

// CachedPathCount sums the path cache entries of every node, stale ones included.
func (g *MapGraph) CachedPathCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for _, node := range g.nodes {
		count += node.NumPaths()
	}
	return count
}

func (g *MapGraph) BFS(start, goal datastructure.Coordinate, opts ...routingalgorithm.Option) (routingalgorithm.Result, error) {
	return g.search(false, func(rt *routingalgorithm.RouteAlgorithm) (routingalgorithm.Result, error) {
		return rt.ShortestPathBFS(start, goal, opts...)
	})
}

func (g *MapGraph) Dijkstra(start, goal datastructure.Coordinate, opts ...routingalgorithm.Option) (routingalgorithm.Result, error) {
	return g.search(true, func(rt *routingalgorithm.RouteAlgorithm) (routingalgorithm.Result, error) {
		return rt.ShortestPathDijkstra(start, goal, opts...)
	})
}

func (g *MapGraph) AStarSearch(start, goal datastructure.Coordinate, opts ...routingalgorithm.Option) (routingalgorithm.Result, error) {
	return g.search(true, func(rt *routingalgorithm.RouteAlgorithm) (routingalgorithm.Result, error) {
		return rt.ShortestPathAStar(start, goal, opts...)
	})
}

func (g *MapGraph) search(weighted bool,
	run func(rt *routingalgorithm.RouteAlgorithm) (routingalgorithm.Result, error)) (routingalgorithm.Result, error) {
	g.mu.RLock()
	res, err := run(routingalgorithm.NewRouteAlgorithm(lockedView{g}))
	g.mu.RUnlock()

	if err == nil && weighted {
		g.statsMu.Lock()
		g.lastStats = res.Stats
		g.statsMu.Unlock()
	}
	return res, err
}

// lockedView reads the graph without locking. It is only handed out while
// the read lock is held.
type lockedView struct {
	g *MapGraph
}

func (v lockedView) GetNode(p datastructure.Coordinate) (*datastructure.MapNode, bool) {
	node, ok := v.g.vertices[p]
	return node, ok
}

func (v lockedView) GetNumVertices() int {
	return len(v.g.nodes)
}

func (v lockedView) TopologyVersion() uint64 {
	return v.g.version
}
