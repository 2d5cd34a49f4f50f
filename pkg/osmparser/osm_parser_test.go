package osmparser

import (
	"testing"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/roadgraph"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceScanner struct {
	objects []osm.Object
	i       int
}

func (s *sliceScanner) Scan() bool {
	if s.i >= len(s.objects) {
		return false
	}
	s.i++
	return true
}

func (s *sliceScanner) Object() osm.Object {
	return s.objects[s.i-1]
}

func (s *sliceScanner) Err() error {
	return nil
}

func newWay(id osm.WayID, nodes []osm.NodeID, tags ...osm.Tag) *osm.Way {
	wayNodes := make(osm.WayNodes, 0, len(nodes))
	for _, n := range nodes {
		wayNodes = append(wayNodes, osm.WayNode{ID: n})
	}
	return &osm.Way{ID: id, Nodes: wayNodes, Tags: tags}
}

/*
1 ---- 2 ---- 3        main street, two way
       |
       4 ---- 5        side street 2-4-5, oneway
                       footway 5-6 ignored
*/
func testObjects() []osm.Object {
	return []osm.Object{
		&osm.Node{ID: 1, Lat: -7.7600, Lon: 110.3700},
		&osm.Node{ID: 2, Lat: -7.7600, Lon: 110.3710},
		&osm.Node{ID: 3, Lat: -7.7600, Lon: 110.3720},
		&osm.Node{ID: 4, Lat: -7.7610, Lon: 110.3710},
		&osm.Node{ID: 5, Lat: -7.7610, Lon: 110.3720},
		&osm.Node{ID: 6, Lat: -7.7620, Lon: 110.3720},
		newWay(10, []osm.NodeID{1, 2, 3},
			osm.Tag{Key: "highway", Value: "secondary"}, osm.Tag{Key: "name", Value: "Jalan Kaliurang"}),
		newWay(11, []osm.NodeID{2, 4, 5},
			osm.Tag{Key: "highway", Value: "residential"}, osm.Tag{Key: "oneway", Value: "yes"}),
		newWay(12, []osm.NodeID{5, 6},
			osm.Tag{Key: "highway", Value: "footway"}),
	}
}

func TestOsmParserBuild(t *testing.T) {
	p := NewOSMParser()
	require.NoError(t, p.scan(&sliceScanner{objects: testObjects()}))

	g := roadgraph.NewMapGraph()
	summary, err := p.build(g)
	require.NoError(t, err)

	// vertices: 1, 2, 3 (main street split at junction 2) and 2, 5 for the
	// side street; node 4 only bends the road.
	assert.Equal(t, Summary{Ways: 2, Vertices: 4, Edges: 5}, summary)
	assert.Equal(t, 4, g.GetNumVertices())
	assert.False(t, g.HasVertex(datastructure.NewCoordinate(-7.7610, 110.3710)))
	assert.False(t, g.HasVertex(datastructure.NewCoordinate(-7.7620, 110.3720)))

	n2 := datastructure.NewCoordinate(-7.7600, 110.3710)
	n5 := datastructure.NewCoordinate(-7.7610, 110.3720)

	roads, err := g.Neighbors(n2)
	require.NoError(t, err)
	require.Len(t, roads, 3)
	assert.Equal(t, "Jalan Kaliurang", roads[0].Name)
	assert.Equal(t, n5, roads[2].To)
	assert.Equal(t, "residential", roads[2].RoadType)
	// 2 -> 4 -> 5 is two ~111m legs
	assert.InDelta(t, 0.22, roads[2].Length, 0.005)

	roads, err = g.Neighbors(n5)
	require.NoError(t, err)
	assert.Empty(t, roads, "oneway street has no way back")

	res, err := g.Dijkstra(datastructure.NewCoordinate(-7.7600, 110.3700), n5)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 3, len(res.Path))
}

func TestOsmParserMissingNodes(t *testing.T) {
	objects := []osm.Object{
		&osm.Node{ID: 1, Lat: 1, Lon: 1},
		&osm.Node{ID: 3, Lat: 1, Lon: 1.001},
		newWay(10, []osm.NodeID{1, 2, 3}, osm.Tag{Key: "highway", Value: "primary"}),
	}
	p := NewOSMParser()
	require.NoError(t, p.scan(&sliceScanner{objects: objects}))

	g := roadgraph.NewMapGraph()
	summary, err := p.build(g)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Edges, "a way broken by a missing node has no complete segment")
}

func TestGetWayDirection(t *testing.T) {
	cases := []struct {
		name string
		tags osm.Tags
		want wayDirection
	}{
		{name: "two way", tags: osm.Tags{{Key: "highway", Value: "primary"}}, want: wayDirection{forward: true, backward: true}},
		{name: "oneway yes", tags: osm.Tags{{Key: "oneway", Value: "yes"}}, want: wayDirection{forward: true}},
		{name: "oneway reverse", tags: osm.Tags{{Key: "oneway", Value: "-1"}}, want: wayDirection{backward: true}},
		{name: "roundabout", tags: osm.Tags{{Key: "junction", Value: "roundabout"}}, want: wayDirection{forward: true}},
		{name: "roundabout marked two way", tags: osm.Tags{{Key: "junction", Value: "roundabout"}, {Key: "oneway", Value: "no"}},
			want: wayDirection{forward: true, backward: true}},
		{name: "no vehicles forward", tags: osm.Tags{{Key: "vehicle:forward", Value: "no"}}, want: wayDirection{backward: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, getWayDirection(&osm.Way{Tags: tc.tags}))
		})
	}
}

func TestAcceptOsmWay(t *testing.T) {
	assert.True(t, acceptOsmWay(&osm.Way{Tags: osm.Tags{{Key: "highway", Value: "residential"}}}))
	assert.False(t, acceptOsmWay(&osm.Way{Tags: osm.Tags{{Key: "highway", Value: "footway"}}}))
	assert.True(t, acceptOsmWay(&osm.Way{Tags: osm.Tags{{Key: "route", Value: "road"}}}))
	assert.False(t, acceptOsmWay(&osm.Way{Tags: osm.Tags{{Key: "building", Value: "yes"}}}))
}
