package routingalgorithm

import (
	"math"

	"lintang/roadgraph/pkg/datastructure"
)

// ShortestPathBFS returns the route with the fewest edges from start to goal.
// Among routes of equal edge count the one found first in edge insertion order
// wins. Distance is the summed length of the returned route, taking the
// shortest road where parallel roads join two consecutive points.
func (rt *RouteAlgorithm) ShortestPathBFS(start, goal datastructure.Coordinate, opts ...Option) (Result, error) {
	o := newOptions(opts)
	startNode, goalNode, err := rt.resolveEndpoints("bfs", start, goal)
	if err != nil {
		return Result{}, err
	}

	space := newSearchSpace(rt.g.GetNumVertices())
	stats := Stats{}

	queue := []*datastructure.MapNode{startNode}
	space.queued[startNode.ID] = true
	space.bestDistance[startNode.ID] = 0

	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		stats.Visited++
		o.visitor(curr.Loc)

		if curr == goalNode {
			path, cum := space.reconstructPath(startNode, goalNode)
			return Result{
				Path:     path,
				Distance: cum[len(cum)-1],
				Found:    true,
				Stats:    stats,
			}, nil
		}

		stats.Settled++
		for _, edge := range curr.GetEdges() {
			next := edge.To
			if space.queued[next.ID] {
				if space.parent[next.ID] == curr {
					space.bestDistance[next.ID] = math.Min(space.bestDistance[next.ID], space.bestDistance[curr.ID]+edge.Length)
				}
				continue
			}
			space.queued[next.ID] = true
			space.parent[next.ID] = curr
			space.bestDistance[next.ID] = space.bestDistance[curr.ID] + edge.Length
			queue = append(queue, next)
		}
	}

	return Result{Stats: stats}, nil
}
