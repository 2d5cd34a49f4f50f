package routingalgorithm

import "lintang/roadgraph/pkg/datastructure"

// ShortestPathAStar returns the minimum weight route from start to goal using
// the configured heuristic (StraightLine unless WithHeuristic is given).
//
// Each node on a returned route remembers the route. A later query toward the
// same goal that reaches one of those nodes gets a complete route candidate
// from the cache and stops as soon as nothing left in the frontier can beat
// it. Cached routes from an older topology version are ignored.
func (rt *RouteAlgorithm) ShortestPathAStar(start, goal datastructure.Coordinate, opts ...Option) (Result, error) {
	o := newOptions(opts)
	startNode, goalNode, err := rt.resolveEndpoints("astar", start, goal)
	if err != nil {
		return Result{}, err
	}
	return rt.weightedSearch(startNode, goalNode, o.heuristic, o.pathCache, o.visitor), nil
}

// cacheCandidate is a complete route: the search tree path to node followed by
// the cached suffix from node to the goal.
type cacheCandidate struct {
	node   *datastructure.MapNode
	suffix datastructure.SubPath
	cost   float64
}

func (rt *RouteAlgorithm) lookupPath(space *searchSpace, node, goal *datastructure.MapNode,
	version uint64) (*cacheCandidate, bool) {
	suffix, ok := node.GetPath(goal.Loc, version)
	if !ok {
		return nil, false
	}
	return &cacheCandidate{
		node:   node,
		suffix: suffix,
		cost:   space.bestDistance[node.ID] + suffix.Distance(),
	}, true
}

// joinCandidate appends the cached suffix to the search tree path. A suffix
// point already on the prefix closes a zero length loop, which is cut out so
// the route never visits a point twice.
func (rt *RouteAlgorithm) joinCandidate(space *searchSpace, start *datastructure.MapNode,
	c *cacheCandidate) ([]datastructure.Coordinate, []float64) {
	path, cum := space.reconstructPath(start, c.node)
	seen := make(map[datastructure.Coordinate]int, len(path)+len(c.suffix.Points))
	for i, p := range path {
		seen[p] = i
	}

	base := space.bestDistance[c.node.ID]
	for i := 1; i < len(c.suffix.Points); i++ {
		p := c.suffix.Points[i]
		if j, ok := seen[p]; ok {
			for _, q := range path[j+1:] {
				delete(seen, q)
			}
			path, cum = path[:j+1], cum[:j+1]
			base = cum[j] - c.suffix.DistanceAt(i)
			continue
		}
		seen[p] = len(path)
		path = append(path, p)
		cum = append(cum, base+c.suffix.DistanceAt(i))
	}
	return path, cum
}

// recordPath shares one immutable copy of the route with every node on it
// except the goal.
func (rt *RouteAlgorithm) recordPath(path []datastructure.Coordinate, cum []float64, version uint64) {
	if len(path) < 2 {
		return
	}
	shared := datastructure.NewMapPath(path, cum, version)
	for _, p := range path[:len(path)-1] {
		if node, ok := rt.g.GetNode(p); ok {
			node.AddPath(shared)
		}
	}
}
