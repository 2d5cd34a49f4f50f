package service

import (
	"context"
	"errors"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/engine/routingalgorithm"
	"lintang/roadgraph/pkg/geo"
	"lintang/roadgraph/pkg/guidance"
	"lintang/roadgraph/pkg/roadgraph"
	"lintang/roadgraph/pkg/server"
)

type RoadGraph interface {
	BFS(start, goal datastructure.Coordinate, opts ...routingalgorithm.Option) (routingalgorithm.Result, error)
	Dijkstra(start, goal datastructure.Coordinate, opts ...routingalgorithm.Option) (routingalgorithm.Result, error)
	AStarSearch(start, goal datastructure.Coordinate, opts ...routingalgorithm.Option) (routingalgorithm.Result, error)

	Neighbors(p datastructure.Coordinate) ([]roadgraph.Road, error)
	GetNumVertices() int
	GetNumEdges() int
	CachedPathCount() int
	VisitedCount() int
	ComponentSummary() (count int, largest int)
	ReInitialize()
}

type RoadSnapper interface {
	SnapToNode(p datastructure.Coordinate) (datastructure.Coordinate, float64, bool)
	SnapToNodesWithinRadius(p datastructure.Coordinate, radius float64) []datastructure.Coordinate
}

const (
	AlgorithmBFS      = "bfs"
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"

	HeuristicStraightLine = "straightline"
	HeuristicGreatCircle  = "greatcircle"
)

const notCoveredMsg = "sorry!! the location you entered is not covered on my map :(, please use diferrent map file"

type NavigationService struct {
	graph   RoadGraph
	snapper RoadSnapper
	// maxSnapDistance in km, zero means unlimited
	maxSnapDistance float64
	heuristic       routingalgorithm.Heuristic
}

// NewNavigationService picks the A* estimate by name: greatcircle for maps
// whose edge lengths are great-circle km, straightline otherwise.
func NewNavigationService(graph RoadGraph, snapper RoadSnapper, maxSnapDistance float64, heuristic string) *NavigationService {
	h := routingalgorithm.StraightLine
	if heuristic == HeuristicGreatCircle {
		h = geo.GreatCircleDistance
	}
	return &NavigationService{graph: graph, snapper: snapper, maxSnapDistance: maxSnapDistance, heuristic: h}
}

type ShortestPathResult struct {
	Source       datastructure.Coordinate
	Destination  datastructure.Coordinate
	Path         []datastructure.Coordinate
	Polyline     string
	Distance     float64
	Stats        routingalgorithm.Stats
	// Instructions is empty when source and destination snap to the same vertex.
	Instructions []guidance.DrivingInstruction
}

func (uc *NavigationService) ShortestPath(ctx context.Context, src, dst datastructure.Coordinate,
	algorithm string, simplify bool) (ShortestPathResult, error) {
	if err := ctx.Err(); err != nil {
		return ShortestPathResult{}, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled")
	}

	from, err := uc.snap(src)
	if err != nil {
		return ShortestPathResult{}, err
	}
	to, err := uc.snap(dst)
	if err != nil {
		return ShortestPathResult{}, err
	}

	var res routingalgorithm.Result
	switch algorithm {
	case AlgorithmBFS:
		res, err = uc.graph.BFS(from, to)
	case AlgorithmDijkstra:
		res, err = uc.graph.Dijkstra(from, to)
	case AlgorithmAStar, "":
		res, err = uc.graph.AStarSearch(from, to, routingalgorithm.WithHeuristic(uc.heuristic))
	default:
		return ShortestPathResult{}, server.NewErrorf(server.ErrBadParamInput, "unknown algorithm %q", algorithm)
	}
	if err != nil {
		if errors.Is(err, roadgraph.ErrInvalidArgument) {
			return ShortestPathResult{}, server.WrapErrorf(err, server.ErrBadParamInput, "invalid source or destination")
		}
		return ShortestPathResult{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	if !res.Found {
		return ShortestPathResult{}, server.NewErrorf(server.ErrNotFound, "no route from %v to %v", from, to)
	}

	instructions := []guidance.DrivingInstruction{}
	if len(res.Path) >= 2 {
		instructions, err = guidance.NewInstructionsFromEdges(uc.graph).GetDrivingInstructions(res.Path)
		if err != nil {
			return ShortestPathResult{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
		}
	}

	path := res.Path
	if simplify {
		path = geo.RamesDouglasPeucker(path, 0)
	}

	return ShortestPathResult{
		Source:       from,
		Destination:  to,
		Path:         path,
		Polyline:     datastructure.CreatePolyline(path),
		Distance:     res.Distance,
		Stats:        res.Stats,
		Instructions: instructions,
	}, nil
}

func (uc *NavigationService) snap(p datastructure.Coordinate) (datastructure.Coordinate, error) {
	if !p.IsValid() {
		return datastructure.Coordinate{}, server.WrapErrorf(roadgraph.ErrInvalidPoint, server.ErrBadParamInput, "invalid coordinate")
	}
	node, dist, ok := uc.snapper.SnapToNode(p)
	if !ok || (uc.maxSnapDistance > 0 && dist > uc.maxSnapDistance) {
		return datastructure.Coordinate{}, server.NewErrorf(server.ErrNotFound, notCoveredMsg)
	}
	return node, nil
}

// NearbyRoad is an outgoing road of a vertex near a query point.
type NearbyRoad struct {
	roadgraph.Road
	From datastructure.Coordinate
	// Projection is the closest point on the segment to the query point and
	// Offset its distance in meter.
	Projection datastructure.Coordinate
	Offset     float64
}

// NearestRoads snaps p to its nearest vertex and lists that vertex's outgoing
// roads. A positive radius in km, capped at maxSnapDistance, adds the roads of
// every other vertex within it, nearer vertices first.
func (uc *NavigationService) NearestRoads(ctx context.Context, p datastructure.Coordinate, radius float64) (datastructure.Coordinate, []NearbyRoad, error) {
	if err := ctx.Err(); err != nil {
		return datastructure.Coordinate{}, nil, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled")
	}

	node, err := uc.snap(p)
	if err != nil {
		return datastructure.Coordinate{}, nil, err
	}

	vertices := []datastructure.Coordinate{node}
	if radius > 0 {
		if uc.maxSnapDistance > 0 && radius > uc.maxSnapDistance {
			radius = uc.maxSnapDistance
		}
		for _, v := range uc.snapper.SnapToNodesWithinRadius(p, radius) {
			if v != node {
				vertices = append(vertices, v)
			}
		}
	}

	nearby := make([]NearbyRoad, 0)
	for _, v := range vertices {
		roads, err := uc.graph.Neighbors(v)
		if err != nil {
			return datastructure.Coordinate{}, nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
		}
		for _, road := range roads {
			nearby = append(nearby, NearbyRoad{
				Road:       road,
				From:       v,
				Projection: geo.ProjectPointToLineCoord(v, road.To, p),
				Offset:     geo.PointLinePerpendicularDistance(v, road.To, p),
			})
		}
	}
	return node, nearby, nil
}

type GraphStats struct {
	Vertices    int
	Edges       int
	CachedPaths int
	LastVisited int
	// Components counts strongly connected components. Routes only exist
	// inside one, or from one toward another.
	Components       int
	LargestComponent int
}

func (uc *NavigationService) GraphStats(ctx context.Context) GraphStats {
	components, largest := uc.graph.ComponentSummary()
	return GraphStats{
		Vertices:         uc.graph.GetNumVertices(),
		Edges:            uc.graph.GetNumEdges(),
		CachedPaths:      uc.graph.CachedPathCount(),
		LastVisited:      uc.graph.VisitedCount(),
		Components:       components,
		LargestComponent: largest,
	}
}

func (uc *NavigationService) ResetStats(ctx context.Context) {
	uc.graph.ReInitialize()
}
