package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"
	"lintang/roadgraph/pkg/roadgraph"
	"lintang/roadgraph/pkg/server"
	"lintang/roadgraph/pkg/snap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type simplenode struct {
	lat float64
	lon float64
}

func buildGraph(t *testing.T) (*roadgraph.MapGraph, *snap.RoadSnapper) {
	t.Helper()
	edges := [][2]simplenode{
		{{47.615248, -122.320817}, {47.615248, -122.321466}},
		{{47.615248, -122.321466}, {47.615157, -122.321464}},
		{{47.615157, -122.321464}, {47.614111, -122.321455}},
		{{47.615248, -122.321466}, {47.615233, -122.322150}},
		{{47.615233, -122.322150}, {47.614087, -122.322129}},
		{{47.614087, -122.322129}, {47.614094, -122.323413}},
		{{47.614087, -122.322129}, {47.612984, -122.322126}},
		{{47.612984, -122.322126}, {47.612995, -122.323384}},
	}

	g := roadgraph.NewMapGraph()
	for _, e := range edges {
		from := datastructure.NewCoordinate(e[0].lat, e[0].lon)
		to := datastructure.NewCoordinate(e[1].lat, e[1].lon)
		g.AddVertex(from)
		g.AddVertex(to)
		require.NoError(t, g.AddEdge(from, to, "", "residential", geo.HaversineDistance(from, to)))
		require.NoError(t, g.AddEdge(to, from, "", "residential", geo.HaversineDistance(from, to)))
	}
	// unreachable island
	g.AddVertex(datastructure.NewCoordinate(47.62, -122.30))

	rs := snap.NewRoadSnapper()
	rs.BuildRoadSnapper(g.GetVertices())
	return g, rs
}

func errorCode(err error) server.ErrorCode {
	var serr *server.Error
	if errors.As(err, &serr) {
		return serr.Code()
	}
	return server.ErrUnknown
}

func TestNavigationServiceShortestPath(t *testing.T) {
	g, rs := buildGraph(t)
	svc := NewNavigationService(g, rs, 1, HeuristicGreatCircle)

	src := datastructure.NewCoordinate(47.615250, -122.320820)
	dst := datastructure.NewCoordinate(47.612990, -122.323380)

	var distances []float64
	for _, algorithm := range []string{AlgorithmBFS, AlgorithmDijkstra, AlgorithmAStar} {
		t.Run(algorithm, func(t *testing.T) {
			res, err := svc.ShortestPath(context.Background(), src, dst, algorithm, false)
			require.NoError(t, err)
			assert.Equal(t, datastructure.NewCoordinate(47.615248, -122.320817), res.Source)
			assert.Equal(t, datastructure.NewCoordinate(47.612995, -122.323384), res.Destination)
			assert.Len(t, res.Path, 6)
			assert.NotEmpty(t, res.Polyline)

			decoded, err := datastructure.DecodePolyline(res.Polyline)
			require.NoError(t, err)
			assert.Len(t, decoded, len(res.Path))
			distances = append(distances, res.Distance)

			require.GreaterOrEqual(t, len(res.Instructions), 2)
			assert.Equal(t, "START", res.Instructions[0].TurnType)
			assert.Equal(t, res.Source, res.Instructions[0].Point)
			last := res.Instructions[len(res.Instructions)-1]
			assert.Equal(t, "FINISH", last.TurnType)
			assert.Equal(t, res.Destination, last.Point)
			total := 0.0
			for _, ins := range res.Instructions {
				total += ins.Distance
			}
			assert.InDelta(t, res.Distance, total, 0.001*float64(len(res.Instructions)))
		})
	}
	require.Len(t, distances, 3)
	assert.InDelta(t, distances[1], distances[2], 1e-9)

	stats := svc.GraphStats(context.Background())
	assert.Equal(t, 10, stats.Vertices)
	assert.Equal(t, 16, stats.Edges)
	assert.Equal(t, 2, stats.Components)
	assert.Equal(t, 9, stats.LargestComponent)
	assert.Equal(t, 5, stats.CachedPaths, "every route node but the goal")
	assert.Greater(t, stats.LastVisited, 0)

	svc.ResetStats(context.Background())
	assert.Equal(t, 0, svc.GraphStats(context.Background()).LastVisited)
}

func TestNavigationServiceSameVertex(t *testing.T) {
	g, rs := buildGraph(t)
	svc := NewNavigationService(g, rs, 1, HeuristicGreatCircle)
	p := datastructure.NewCoordinate(47.615248, -122.320817)

	res, err := svc.ShortestPath(context.Background(), p, p, AlgorithmAStar, false)
	require.NoError(t, err)
	assert.Equal(t, []datastructure.Coordinate{p}, res.Path)
	assert.Zero(t, res.Distance)
	assert.Empty(t, res.Instructions)
}

func TestNavigationServiceSimplify(t *testing.T) {
	g, rs := buildGraph(t)
	svc := NewNavigationService(g, rs, 0, HeuristicStraightLine)

	src := datastructure.NewCoordinate(47.615248, -122.320817)
	dst := datastructure.NewCoordinate(47.612995, -122.323384)

	full, err := svc.ShortestPath(context.Background(), src, dst, AlgorithmDijkstra, false)
	require.NoError(t, err)
	simple, err := svc.ShortestPath(context.Background(), src, dst, AlgorithmDijkstra, true)
	require.NoError(t, err)

	assert.Less(t, len(simple.Path), len(full.Path))
	assert.Equal(t, full.Path[0], simple.Path[0])
	assert.Equal(t, full.Path[len(full.Path)-1], simple.Path[len(simple.Path)-1])
	assert.Equal(t, full.Distance, simple.Distance)
}

func TestNavigationServiceErrors(t *testing.T) {
	g, rs := buildGraph(t)
	svc := NewNavigationService(g, rs, 0.5, HeuristicStraightLine)
	ctx := context.Background()
	src := datastructure.NewCoordinate(47.615248, -122.320817)

	_, err := svc.ShortestPath(ctx, src, datastructure.NewCoordinate(47.62, -122.30), AlgorithmAStar, false)
	assert.Equal(t, server.ErrNotFound, errorCode(err), "island is unreachable")

	_, err = svc.ShortestPath(ctx, src, datastructure.NewCoordinate(48.5, -122.3), AlgorithmAStar, false)
	assert.Equal(t, server.ErrNotFound, errorCode(err), "too far from any road")

	_, err = svc.ShortestPath(ctx, src, datastructure.NewCoordinate(math.NaN(), 0), AlgorithmAStar, false)
	assert.Equal(t, server.ErrBadParamInput, errorCode(err))

	_, err = svc.ShortestPath(ctx, src, src, "floyd", false)
	assert.Equal(t, server.ErrBadParamInput, errorCode(err))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.ShortestPath(cancelled, src, src, AlgorithmAStar, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNavigationServiceNearestRoads(t *testing.T) {
	g, rs := buildGraph(t)
	svc := NewNavigationService(g, rs, 0, HeuristicStraightLine)

	q := datastructure.NewCoordinate(47.615200, -122.321000)
	node, roads, err := svc.NearestRoads(context.Background(), q, 0)
	require.NoError(t, err)
	assert.Equal(t, datastructure.NewCoordinate(47.615248, -122.320817), node)
	require.Len(t, roads, 1)
	assert.Equal(t, datastructure.NewCoordinate(47.615248, -122.321466), roads[0].To)
	assert.InDelta(t, 5.3, roads[0].Offset, 0.5)
	assert.InDelta(t, 47.615248, roads[0].Projection.Lat, 1e-5)
}

func TestNavigationServiceNearestRoadsWithinRadius(t *testing.T) {
	g, rs := buildGraph(t)
	q := datastructure.NewCoordinate(47.615200, -122.321000)
	first := datastructure.NewCoordinate(47.615248, -122.320817)  // ~15 m
	second := datastructure.NewCoordinate(47.615157, -122.321464) // ~35.1 m
	third := datastructure.NewCoordinate(47.615248, -122.321466)  // ~35.3 m

	type testCase struct {
		name      string
		maxSnap   float64
		radius    float64
		wantFroms []datastructure.Coordinate
	}
	cases := []testCase{
		{
			name:      "nearest vertex only",
			wantFroms: []datastructure.Coordinate{first},
		},
		{
			name:      "three vertices within 50 meter",
			radius:    0.05,
			wantFroms: []datastructure.Coordinate{first, second, second, third, third, third},
		},
		{
			name:      "radius capped by max snap distance",
			maxSnap:   0.02,
			radius:    0.05,
			wantFroms: []datastructure.Coordinate{first},
		},
		{
			name:      "radius smaller than the snap distance keeps the nearest vertex",
			radius:    0.001,
			wantFroms: []datastructure.Coordinate{first},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewNavigationService(g, rs, tc.maxSnap, HeuristicStraightLine)
			node, roads, err := svc.NearestRoads(context.Background(), q, tc.radius)
			require.NoError(t, err)
			assert.Equal(t, first, node)

			froms := make([]datastructure.Coordinate, 0, len(roads))
			for _, road := range roads {
				froms = append(froms, road.From)
			}
			assert.Equal(t, tc.wantFroms, froms)
		})
	}
}
