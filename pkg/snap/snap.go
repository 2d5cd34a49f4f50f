package snap

import (
	"log"
	"math"
	"sort"
	"sync"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

const (
	pointTolerance = 1e-9
	// r-tree candidates compared by great-circle distance, the tree itself
	// ranks by degrees
	nearestCandidates = 8
	minRadius         = 0.3 // 300 meter
)

type vertexLeaf struct {
	loc datastructure.Coordinate
}

func (v vertexLeaf) Bounds() rtreego.Rect {
	return rtreego.Point{v.loc.Lat, v.loc.Lon}.ToRect(pointTolerance)
}

// RoadSnapper maps arbitrary query coordinates onto graph vertices.
type RoadSnapper struct {
	mu    sync.RWMutex
	rtree *rtreego.Rtree
}

func NewRoadSnapper() *RoadSnapper {
	return &RoadSnapper{rtree: rtreego.NewTree(2, 25, 50)}
}

func (rs *RoadSnapper) BuildRoadSnapper(vertices []datastructure.Coordinate) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for idx, v := range vertices {
		if (idx+1)%10000 == 0 {
			log.Printf("insert vertex %d to r-tree...", idx+1)
		}
		rs.rtree.Insert(vertexLeaf{loc: v})
	}
}

func (rs *RoadSnapper) Size() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.rtree.Size()
}

// SnapToNode returns the vertex closest to p and its distance in km.
func (rs *RoadSnapper) SnapToNode(p datastructure.Coordinate) (datastructure.Coordinate, float64, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	if !p.IsValid() || rs.rtree.Size() == 0 {
		return datastructure.Coordinate{}, 0, false
	}

	best := datastructure.Coordinate{}
	bestDist := math.Inf(1)
	for _, obj := range rs.rtree.NearestNeighbors(nearestCandidates, rtreego.Point{p.Lat, p.Lon}) {
		leaf, ok := obj.(vertexLeaf)
		if !ok {
			continue
		}
		dist := geo.HaversineDistance(p, leaf.loc)
		if dist < bestDist || (dist == bestDist && leaf.loc.Less(best)) {
			best, bestDist = leaf.loc, dist
		}
	}
	return best, bestDist, !math.IsInf(bestDist, 1)
}

// SnapToNodesWithinRadius returns vertices at most radius km from p, closest
// first. A non positive radius means 300 meter.
func (rs *RoadSnapper) SnapToNodesWithinRadius(p datastructure.Coordinate, radius float64) []datastructure.Coordinate {
	if radius <= 0 {
		radius = minRadius
	}

	upperRightLat, upperRightLon := geo.GetDestinationPoint(p.Lat, p.Lon, 45, radius*math.Sqrt2)
	lowerLeftLat, lowerLeftLon := geo.GetDestinationPoint(p.Lat, p.Lon, 225, radius*math.Sqrt2)

	bound, err := rtreego.NewRectFromPoints(
		rtreego.Point{math.Min(lowerLeftLat, upperRightLat), math.Min(lowerLeftLon, upperRightLon)},
		rtreego.Point{math.Max(lowerLeftLat, upperRightLat), math.Max(lowerLeftLon, upperRightLon)},
	)
	if err != nil {
		return nil
	}

	rs.mu.RLock()
	candidates := rs.rtree.SearchIntersect(bound)
	rs.mu.RUnlock()

	type nearNode struct {
		loc  datastructure.Coordinate
		dist float64
	}
	near := make([]nearNode, 0, len(candidates))
	for _, obj := range candidates {
		leaf, ok := obj.(vertexLeaf)
		if !ok {
			continue
		}
		if dist := geo.HaversineDistance(p, leaf.loc); dist <= radius {
			near = append(near, nearNode{loc: leaf.loc, dist: dist})
		}
	}
	sort.Slice(near, func(i, j int) bool {
		if near[i].dist != near[j].dist {
			return near[i].dist < near[j].dist
		}
		return near[i].loc.Less(near[j].loc)
	})

	nodes := make([]datastructure.Coordinate, 0, len(near))
	for _, n := range near {
		nodes = append(nodes, n.loc)
	}
	return nodes
}
