package datastructure

import "sync"

// MapEdge is a directed road segment. The destination node belongs to the
// graph; the edge only points at it.
type MapEdge struct {
	To       *MapNode
	Name     string
	RoadType string
	Length   float64
}

func NewMapEdge(to *MapNode, name, roadType string, length float64) MapEdge {
	return MapEdge{
		To:       to,
		Name:     name,
		RoadType: roadType,
		Length:   length,
	}
}

// MapNode is a road intersection with its outgoing segments and the shortest
// paths previously found through it.
//
// Edges are written only while the owning graph holds its write lock. The path
// cache has its own lock because A* searches append to it while other
// searches read it.
type MapNode struct {
	ID    int32
	Loc   Coordinate
	edges []MapEdge

	mu    sync.RWMutex
	paths []*MapPath
}

func NewMapNode(id int32, loc Coordinate) *MapNode {
	return &MapNode{
		ID:    id,
		Loc:   loc,
		edges: make([]MapEdge, 0),
		paths: make([]*MapPath, 0),
	}
}

// AddEdge appends a directed segment from n to toNode.
func (n *MapNode) AddEdge(toNode *MapNode, name, roadType string, length float64) {
	n.edges = append(n.edges, NewMapEdge(toNode, name, roadType, length))
}

// GetEdges returns outgoing segments in insertion order. The slice must not be modified.
func (n *MapNode) GetEdges() []MapEdge {
	return n.edges
}

func (n *MapNode) GetNumNodeEdges() int {
	return len(n.edges)
}

// GetAdjacentNodes returns nodes directly reachable from n, one entry per edge.
func (n *MapNode) GetAdjacentNodes() []*MapNode {
	nodes := make([]*MapNode, 0, len(n.edges))
	for _, edge := range n.edges {
		nodes = append(nodes, edge.To)
	}
	return nodes
}

// AddPath records a shortest path passing through n. A path is skipped when n
// already holds one from the same topology version reaching the same destination.
func (n *MapNode) AddPath(path *MapPath) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	dest := path.Last()
	for _, p := range n.paths {
		if p.Version() != path.Version() {
			continue
		}
		if _, ok := p.SubPath(n.Loc, dest); ok {
			return false
		}
	}
	n.paths = append(n.paths, path)
	return true
}

// GetPath returns the cached shortest path from n to dest. Paths recorded
// under another topology version are ignored.
func (n *MapNode) GetPath(dest Coordinate, version uint64) (SubPath, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, p := range n.paths {
		if p.Version() != version {
			continue
		}
		if sub, ok := p.SubPath(n.Loc, dest); ok {
			return sub, true
		}
	}
	return SubPath{}, false
}

// NumPaths is the number of cache entries held, stale ones included.
func (n *MapNode) NumPaths() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.paths)
}
