package guidance

import (
	"math"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"
	"lintang/roadgraph/pkg/roadgraph"
)

/*
GetAlternativeTurns. get jumlah belokan alternatif yang bisa dilakukan dari baseNode sekarang & bukan currentEdge/prevEdge. Misalkan:

		 |
		 |
	 alternative
		 |
--prev-- B --currentEdge---
		 |
		 |
	alternative
		 |

ada 3 belokan yang bisa dilakukan dari baseNode B. belokan didapat dari outgoing road baseNode
*/ // nolint: gofmt
func (ife *InstructionsFromEdges) GetAlternativeTurns(baseNode, adjNode, prevNode datastructure.Coordinate) (int, []roadgraph.Road, error) {
	alternativeTurns := []roadgraph.Road{}
	roads, err := ife.network.Neighbors(baseNode)
	if err != nil {
		return 0, alternativeTurns, err
	}
	for _, road := range roads {
		if road.To != prevNode && road.To != adjNode {
			alternativeTurns = append(alternativeTurns, road)
		}
	}

	return 1 + len(alternativeTurns), alternativeTurns, nil
}

// isLeavingCurrentStreet reports a change of street name together with a change of road class.
func isLeavingCurrentStreet(prevStreetName, currentStreetName, prevRoadType, currentRoadType string) bool {
	if isSameName(currentStreetName, prevStreetName) {
		return false
	}
	return prevRoadType != currentRoadType
}

/*
getOtherEdgeContinueDirection. get alternative road lain dari baseNode yang arahnya continue. Misalkan

				---- currentEdge-----

--prevEdge-- baseNode

				----alternativeEdge-----

delta bearing antara currentEdge dan alternativeEdge mendekati 0°
*/ // nolint: gofmt
func getOtherEdgeContinueDirection(base datastructure.Coordinate, prevOrientation float64,
	alternativeTurns []roadgraph.Road) (roadgraph.Road, bool) {
	for _, road := range alternativeTurns {
		tmpSign := getTurnDirection(base.Lat, base.Lon, road.To.Lat, road.To.Lon, prevOrientation)
		if abs(tmpSign) <= 1 {
			return road, true
		}
	}
	return roadgraph.Road{}, false
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

const (
	DEGREE_TO_RADIANS = 0.017453292519943295
)

func toRadians(degrees float64) float64 {
	return degrees * DEGREE_TO_RADIANS
}

func alignOrientation(baseOrientation, orientation float64) float64 {
	var resultOrientation float64
	if baseOrientation >= 0 {
		if orientation < -math.Pi+baseOrientation {
			resultOrientation = orientation + 2*math.Pi
		} else {
			resultOrientation = orientation
		}
	} else if orientation > math.Pi+baseOrientation {
		resultOrientation = orientation - 2*math.Pi
	} else {
		resultOrientation = orientation
	}
	return resultOrientation
}

func isSameName(name1, name2 string) bool {
	if name1 == "" || name2 == "" {
		// seringkali di osm, nama street kosong "", better dianggap false
		return false
	}
	return name1 == name2
}

func calcOrientation(lat1, lon1, lat2, lon2 float64) float64 {
	return toRadians(geo.BearingTo(lat1, lon1, lat2, lon2))
}

func calculateOrientationDelta(prevLatitude, prevLongitude, latitude, longitude, prevOrientation float64) float64 {
	orientation := calcOrientation(prevLatitude, prevLongitude, latitude, longitude)
	orientation = alignOrientation(prevOrientation, orientation)
	return orientation - prevOrientation
}

func getTurnDirection(prevLatitude, prevLongitude, latitude, longitude, prevOrientation float64) int {
	delta := calculateOrientationDelta(prevLatitude, prevLongitude, latitude, longitude, prevOrientation)
	absDelta := math.Abs(delta)
	deltaDegree := absDelta * (180 / math.Pi)
	if deltaDegree < 12 {
		return CONTINUE_ON_STREET
	} else if deltaDegree < 40 {
		if delta < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	} else if deltaDegree < 105 {
		if delta < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	} else if delta < 0 {
		return TURN_SHARP_LEFT
	}
	return TURN_SHARP_RIGHT
}

func isMajorRoad(roadClass string) bool {
	return roadClass == "motorway" || roadClass == "trunk" || roadClass == "primary" || roadClass == "secondary" || roadClass == "tertiary"
}
