package routingalgorithm

import "lintang/roadgraph/pkg/datastructure"

// frontierLess orders frontier entries by priority, then by node ID so equal
// priorities pop in a fixed order.
func frontierLess(a, b datastructure.PriorityQueueNode[*datastructure.MapNode]) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Item.ID < b.Item.ID
}

// ShortestPathDijkstra returns the minimum weight route from start to goal.
// Path caches are neither read nor written.
func (rt *RouteAlgorithm) ShortestPathDijkstra(start, goal datastructure.Coordinate, opts ...Option) (Result, error) {
	o := newOptions(opts)
	startNode, goalNode, err := rt.resolveEndpoints("dijkstra", start, goal)
	if err != nil {
		return Result{}, err
	}
	return rt.weightedSearch(startNode, goalNode, zeroHeuristic, false, o.visitor), nil
}

// weightedSearch is Dijkstra when h is zero and A* otherwise. The frontier uses
// lazy decrease-key: a node can be queued more than once and only its first pop
// is processed.
func (rt *RouteAlgorithm) weightedSearch(startNode, goalNode *datastructure.MapNode, h Heuristic,
	useCache bool, visit Visitor) Result {
	version := rt.g.TopologyVersion()
	space := newSearchSpace(rt.g.GetNumVertices())
	stats := Stats{}
	var best *cacheCandidate

	pq := datastructure.NewMinHeap[*datastructure.MapNode](frontierLess)

	space.bestDistance[startNode.ID] = 0
	space.estimatedDistance[startNode.ID] = h(startNode.Loc, goalNode.Loc)
	pq.Insert(datastructure.NewPriorityQueueNode(space.estimatedDistance[startNode.ID], startNode))

	for !pq.IsEmpty() {
		if best != nil {
			// no queued route can be cheaper than the cached one anymore
			if top, _ := pq.GetMin(); best.cost <= top.Rank {
				break
			}
		}

		current, _ := pq.ExtractMin()
		curr := current.Item
		if space.confirmed[curr.ID] {
			continue
		}
		space.confirmed[curr.ID] = true
		stats.Visited++
		visit(curr.Loc)

		if curr == goalNode {
			path, cum := space.reconstructPath(startNode, goalNode)
			if useCache {
				rt.recordPath(path, cum, version)
			}
			return Result{
				Path:     path,
				Distance: cum[len(cum)-1],
				Found:    true,
				Stats:    stats,
			}
		}

		if useCache {
			if candidate, ok := rt.lookupPath(space, curr, goalNode, version); ok {
				if best == nil || candidate.cost < best.cost {
					best = candidate
				}
				if curr == startNode {
					// a sub path of a shortest path is itself shortest
					break
				}
				continue
			}
		}

		stats.Settled++
		for _, edge := range curr.GetEdges() {
			next := edge.To
			if space.confirmed[next.ID] {
				continue
			}

			newDistance := space.bestDistance[curr.ID] + edge.Length
			if newDistance >= space.bestDistance[next.ID] {
				continue
			}
			estimate := newDistance + h(next.Loc, goalNode.Loc)
			if best != nil && estimate >= best.cost {
				continue
			}

			space.bestDistance[next.ID] = newDistance
			space.estimatedDistance[next.ID] = estimate
			space.parent[next.ID] = curr
			pq.Insert(datastructure.NewPriorityQueueNode(estimate, next))
		}
	}

	if best == nil {
		return Result{Stats: stats}
	}

	stats.CacheHit = true
	path, cum := rt.joinCandidate(space, startNode, best)
	rt.recordPath(path, cum, version)
	return Result{
		Path:     path,
		Distance: cum[len(cum)-1],
		Found:    true,
		Stats:    stats,
	}
}
