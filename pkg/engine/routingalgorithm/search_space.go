package routingalgorithm

import (
	"fmt"
	"log"
	"math"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/util"
)

// searchSpace holds the per-query state of every node, indexed by MapNode.ID.
// A fresh one is allocated for each search.
type searchSpace struct {
	bestDistance      []float64
	estimatedDistance []float64
	confirmed         []bool
	queued            []bool
	parent            []*datastructure.MapNode
}

func newSearchSpace(numNodes int) *searchSpace {
	s := &searchSpace{
		bestDistance:      make([]float64, numNodes),
		estimatedDistance: make([]float64, numNodes),
		confirmed:         make([]bool, numNodes),
		queued:            make([]bool, numNodes),
		parent:            make([]*datastructure.MapNode, numNodes),
	}
	for i := 0; i < numNodes; i++ {
		s.bestDistance[i] = math.Inf(1)
		s.estimatedDistance[i] = math.Inf(1)
	}
	return s
}

// reconstructPath follows parent links from goal back to start. cum[i] is the
// weight from start to path[i].
func (s *searchSpace) reconstructPath(start, goal *datastructure.MapNode) ([]datastructure.Coordinate, []float64) {
	path := []datastructure.Coordinate{}
	cum := []float64{}

	curr := goal
	for curr != start {
		path = append(path, curr.Loc)
		cum = append(cum, s.bestDistance[curr.ID])
		curr = s.parent[curr.ID]
	}
	path = append(path, start.Loc)
	cum = append(cum, 0)

	return util.ReverseG(path), util.ReverseG(cum)
}

func (rt *RouteAlgorithm) resolveEndpoints(algorithm string, start, goal datastructure.Coordinate) (*datastructure.MapNode, *datastructure.MapNode, error) {
	if !start.IsValid() || !goal.IsValid() {
		log.Printf("%s: start %v or goal %v is not a valid coordinate", algorithm, start, goal)
		return nil, nil, fmt.Errorf("%s from %v to %v: %w", algorithm, start, goal, datastructure.ErrInvalidPoint)
	}
	startNode, ok := rt.g.GetNode(start)
	if !ok {
		log.Printf("%s: start %v is not in the graph", algorithm, start)
		return nil, nil, fmt.Errorf("%s start %v: %w", algorithm, start, datastructure.ErrVertexNotFound)
	}
	goalNode, ok := rt.g.GetNode(goal)
	if !ok {
		log.Printf("%s: goal %v is not in the graph", algorithm, goal)
		return nil, nil, fmt.Errorf("%s goal %v: %w", algorithm, goal, datastructure.ErrVertexNotFound)
	}
	return startNode, goalNode, nil
}
