package guidance

import (
	"math"
	"testing"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"
	"lintang/roadgraph/pkg/roadgraph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoad struct {
	from, to datastructure.Coordinate
	name     string
	roadType string
}

func newTestNetwork(t *testing.T, roads []testRoad) *roadgraph.MapGraph {
	t.Helper()
	g := roadgraph.NewMapGraph()
	for _, r := range roads {
		g.AddVertex(r.from)
		g.AddVertex(r.to)
		length := geo.HaversineDistance(r.from, r.to)
		require.NoError(t, g.AddEdge(r.from, r.to, r.name, r.roadType, length))
		require.NoError(t, g.AddEdge(r.to, r.from, r.name, r.roadType, length))
	}
	return g
}

/*
	E
	|
	D
	|
A --B-- C
*/
var (
	pointA = datastructure.NewCoordinate(0, 0)
	pointB = datastructure.NewCoordinate(0, 0.001)
	pointC = datastructure.NewCoordinate(0, 0.002)
	pointD = datastructure.NewCoordinate(0.001, 0.001)
	pointE = datastructure.NewCoordinate(0.002, 0.001)
)

func TestGetDrivingInstructions(t *testing.T) {
	cases := []struct {
		name  string
		roads []testRoad
		route []datastructure.Coordinate
		want  []DrivingInstruction
	}{
		{
			name: "turn left into side street",
			roads: []testRoad{
				{pointA, pointB, "Jalan Malioboro", "primary"},
				{pointB, pointC, "Jalan Malioboro", "primary"},
				{pointB, pointD, "Jalan Mataram", "secondary"},
				{pointD, pointE, "Jalan Mataram", "secondary"},
			},
			route: []datastructure.Coordinate{pointA, pointB, pointD, pointE},
			want: []DrivingInstruction{
				{Instruction: "Head East toward Jalan Malioboro", Point: pointA, StreetName: "Jalan Malioboro", Distance: 0.111, ETA: 0.09, TurnType: "START"},
				{Instruction: "Turn left onto Jalan Mataram", Point: pointB, StreetName: "Jalan Mataram", Distance: 0.222, ETA: 0.21, TurnType: "TURN_LEFT"},
				{Instruction: "you have arrived at your destination", Point: pointE, StreetName: "Jalan Mataram", TurnType: "FINISH"},
			},
		},
		{
			name: "road class changes straight ahead",
			roads: []testRoad{
				{pointA, pointB, "Jalan Malioboro", "primary"},
				{pointB, pointC, "Jalan Ahmad Yani", "secondary"},
				{pointB, pointD, "Jalan Mataram", "secondary"},
			},
			route: []datastructure.Coordinate{pointA, pointB, pointC},
			want: []DrivingInstruction{
				{Instruction: "Head East toward Jalan Malioboro", Point: pointA, StreetName: "Jalan Malioboro", Distance: 0.111, ETA: 0.09, TurnType: "START"},
				{Instruction: "Continue onto Jalan Ahmad Yani", Point: pointB, StreetName: "Jalan Ahmad Yani", Distance: 0.111, ETA: 0.1, TurnType: "CONTINUE_ON_STREET"},
				{Instruction: "you have arrived at your destination", Point: pointC, StreetName: "Jalan Ahmad Yani", TurnType: "FINISH"},
			},
		},
		{
			name: "straight through an intersection",
			roads: []testRoad{
				{pointA, pointB, "Jalan Malioboro", "primary"},
				{pointB, pointC, "Jalan Malioboro", "primary"},
				{pointB, pointD, "Jalan Mataram", "secondary"},
			},
			route: []datastructure.Coordinate{pointA, pointB, pointC},
			want: []DrivingInstruction{
				{Instruction: "Head East toward Jalan Malioboro", Point: pointA, StreetName: "Jalan Malioboro", Distance: 0.222, ETA: 0.18, TurnType: "START"},
				{Instruction: "you have arrived at your destination", Point: pointC, StreetName: "Jalan Malioboro", TurnType: "FINISH"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestNetwork(t, tc.roads)
			got, err := NewInstructionsFromEdges(g).GetDrivingInstructions(tc.route)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetDrivingInstructionsErrors(t *testing.T) {
	g := newTestNetwork(t, []testRoad{{pointA, pointB, "Jalan Malioboro", "primary"}})

	_, err := NewInstructionsFromEdges(g).GetDrivingInstructions([]datastructure.Coordinate{pointA})
	assert.ErrorIs(t, err, ErrRouteTooShort)

	_, err = NewInstructionsFromEdges(g).GetDrivingInstructions([]datastructure.Coordinate{pointA, pointC})
	assert.ErrorIs(t, err, ErrRoadNotFound)

	_, err = NewInstructionsFromEdges(g).GetDrivingInstructions([]datastructure.Coordinate{pointE, pointA})
	assert.ErrorIs(t, err, roadgraph.ErrVertexNotFound)
}

func TestGetTurnDirection(t *testing.T) {
	// heading east from (0, 0)
	east := math.Pi / 2
	cases := []struct {
		name     string
		lat, lon float64
		want     int
	}{
		{"straight", 0, 1, CONTINUE_ON_STREET},
		{"almost straight", 0.1, 1, CONTINUE_ON_STREET},
		{"slight left", 0.5, 1, TURN_SLIGHT_LEFT},
		{"slight right", -0.5, 1, TURN_SLIGHT_RIGHT},
		{"left", 1, 0, TURN_LEFT},
		{"right", -1, 0, TURN_RIGHT},
		{"sharp right", -1, -0.5, TURN_SHARP_RIGHT},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, getTurnDirection(0, 0, tc.lat, tc.lon, east))
		})
	}
}

func TestBearingToCompass(t *testing.T) {
	assert.Equal(t, "North", bearingToCompass(0))
	assert.Equal(t, "East", bearingToCompass(90))
	assert.Equal(t, "South West", bearingToCompass(225))
	assert.Equal(t, "North", bearingToCompass(350))
}

func TestRoadTypeMaxSpeed(t *testing.T) {
	assert.Equal(t, 75.0, RoadTypeMaxSpeed("primary"))
	assert.Equal(t, 30.0, RoadTypeMaxSpeed("residential"))
	assert.Equal(t, 40.0, RoadTypeMaxSpeed("footway"))
	assert.InDelta(t, 2.0, travelMinutes(1, "residential"), 1e-9)
}
