package routingalgorithm

import (
	"math"

	"lintang/roadgraph/pkg/datastructure"

	"golang.org/x/exp/rand"
)

type testGraph struct {
	nodes   map[datastructure.Coordinate]*datastructure.MapNode
	version uint64
}

func newTestGraph() *testGraph {
	return &testGraph{nodes: make(map[datastructure.Coordinate]*datastructure.MapNode)}
}

func (g *testGraph) addVertex(lat, lon float64) datastructure.Coordinate {
	p := datastructure.NewCoordinate(lat, lon)
	if _, ok := g.nodes[p]; !ok {
		g.nodes[p] = datastructure.NewMapNode(int32(len(g.nodes)), p)
		g.version++
	}
	return p
}

func (g *testGraph) addEdge(from, to datastructure.Coordinate, length float64) {
	g.nodes[from].AddEdge(g.nodes[to], "", "", length)
	g.version++
}

func (g *testGraph) addBidirectional(a, b datastructure.Coordinate, length float64) {
	g.addEdge(a, b, length)
	g.addEdge(b, a, length)
}

func (g *testGraph) GetNode(p datastructure.Coordinate) (*datastructure.MapNode, bool) {
	n, ok := g.nodes[p]
	return n, ok
}

func (g *testGraph) GetNumVertices() int {
	return len(g.nodes)
}

func (g *testGraph) TopologyVersion() uint64 {
	return g.version
}

// randomGraph builds a graph whose edge lengths are never shorter than the
// straight line between their endpoints, so StraightLine stays consistent.
func randomGraph(rd *rand.Rand, numVertices, numEdges int) (*testGraph, []datastructure.Coordinate) {
	g := newTestGraph()
	points := make([]datastructure.Coordinate, 0, numVertices)
	for len(points) < numVertices {
		p := datastructure.NewCoordinate(float64(rd.Intn(100))/10, float64(rd.Intn(100))/10)
		if _, ok := g.nodes[p]; ok {
			continue
		}
		points = append(points, g.addVertex(p.Lat, p.Lon))
	}
	for i := 0; i < numEdges; i++ {
		from := points[rd.Intn(len(points))]
		to := points[rd.Intn(len(points))]
		g.addEdge(from, to, from.Distance(to)*(1+rd.Float64()))
	}
	return g, points
}

// bellmanFord returns the minimum weight and the minimum edge count from
// source to every vertex.
func bellmanFord(g *testGraph, source datastructure.Coordinate) (map[datastructure.Coordinate]float64,
	map[datastructure.Coordinate]int) {
	dist := make(map[datastructure.Coordinate]float64, len(g.nodes))
	hops := make(map[datastructure.Coordinate]int, len(g.nodes))
	for p := range g.nodes {
		dist[p] = math.Inf(1)
		hops[p] = math.MaxInt32
	}
	dist[source] = 0
	hops[source] = 0

	for i := 0; i < len(g.nodes); i++ {
		for p, n := range g.nodes {
			for _, e := range n.GetEdges() {
				if dist[p]+e.Length < dist[e.To.Loc] {
					dist[e.To.Loc] = dist[p] + e.Length
				}
				if hops[p] != math.MaxInt32 && hops[p]+1 < hops[e.To.Loc] {
					hops[e.To.Loc] = hops[p] + 1
				}
			}
		}
	}
	return dist, hops
}

// routeWeight sums the shortest parallel edge between consecutive points and
// reports false when two consecutive points are not connected.
func routeWeight(g *testGraph, path []datastructure.Coordinate) (float64, bool) {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		best := math.Inf(1)
		for _, e := range g.nodes[path[i]].GetEdges() {
			if e.To.Loc == path[i+1] && e.Length < best {
				best = e.Length
			}
		}
		if math.IsInf(best, 1) {
			return 0, false
		}
		total += best
	}
	return total, true
}
