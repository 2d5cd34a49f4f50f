package guidance

import (
	"errors"
	"fmt"
	"math"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"
	"lintang/roadgraph/pkg/roadgraph"
)

var (
	ErrRouteTooShort = errors.New("route needs at least two points")
	ErrRoadNotFound  = errors.New("no road between consecutive route points")
)

// routeEdge is one traversed segment of a route.
type routeEdge struct {
	from datastructure.Coordinate
	road roadgraph.Road
}

// InstructionsFromEdges turns a route into turn by turn driving instructions.
// It keeps state between segments and serves a single route.
type InstructionsFromEdges struct {
	network               RoadNetwork
	ways                  []*Instruction
	prevEdge              routeEdge
	prevNode              datastructure.Coordinate // base node prevEdge
	prevOrientation       float64                  // bearing prevEdge (radian)
	doublePrevOrientation float64                  // bearing edge sebelum prevEdge
	prevInstruction       *Instruction
	doublePrevStreetName  string // streetname prevPrevEdge
}

func NewInstructionsFromEdges(network RoadNetwork) *InstructionsFromEdges {
	return &InstructionsFromEdges{
		network: network,
		ways:    make([]*Instruction, 0),
	}
}

func GetTurnDescriptions(instructions []*Instruction) []string {
	turnDescriptions := make([]string, 0, len(instructions))
	for _, instr := range instructions {
		turnDescriptions = append(turnDescriptions, instr.GetTurnDescription())
	}
	return turnDescriptions
}

// GetDrivingInstructions walks the route point by point. The road between
// two consecutive points is the shortest outgoing road of the first one
// that ends at the second.
func (ife *InstructionsFromEdges) GetDrivingInstructions(path []datastructure.Coordinate) ([]DrivingInstruction, error) {
	if len(path) < 2 {
		return nil, ErrRouteTooShort
	}

	for i := 0; i+1 < len(path); i++ {
		edge, err := ife.roadBetween(path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		if err := ife.AddInstructionFromEdge(edge); err != nil {
			return nil, err
		}
	}
	ife.Finish()

	drivingInstructions := make([]DrivingInstruction, 0, len(ife.ways))
	for _, ins := range ife.ways {
		drivingInstructions = append(drivingInstructions, NewDrivingInstruction(*ins))
	}
	return drivingInstructions, nil
}

func (ife *InstructionsFromEdges) roadBetween(from, to datastructure.Coordinate) (routeEdge, error) {
	roads, err := ife.network.Neighbors(from)
	if err != nil {
		return routeEdge{}, err
	}
	found := false
	best := roadgraph.Road{Length: math.Inf(1)}
	for _, road := range roads {
		if road.To == to && road.Length < best.Length {
			best = road
			found = true
		}
	}
	if !found {
		return routeEdge{}, fmt.Errorf("%v -> %v: %w", from, to, ErrRoadNotFound)
	}
	return routeEdge{from: from, road: best}, nil
}

func (ife *InstructionsFromEdges) AddInstructionFromEdge(edge routeEdge) error {
	baseNode := edge.from
	adjNode := edge.road.To
	name := edge.road.Name

	if ife.prevInstruction == nil {
		// start point dari shortest path
		newIns := NewInstruction(START, name, baseNode)
		newIns.Heading = geo.BearingTo(baseNode.Lat, baseNode.Lon, adjNode.Lat, adjNode.Lon) // bearing dari titik awal ke edge.To (arah edge)
		ife.prevInstruction = &newIns
		ife.ways = append(ife.ways, ife.prevInstruction)
	} else {
		sign, err := ife.GetTurnSign(edge, name)
		if err != nil {
			return err
		}
		if sign != IGNORE {
			isUTurn, uTurnType := ife.CheckUTurn(sign, name, edge) // check apakah U-TURN, kalau iya, prevInstruction sebelumnya ganti ke U-Turn
			if isUTurn {
				ife.prevInstruction.Sign = uTurnType
				ife.prevInstruction.Name = name
				_, ife.prevInstruction.TurnType = getDirectionDescription(uTurnType)
			} else {
				// bukan U-turn -> continue/right/left
				newIns := NewInstruction(sign, name, baseNode)
				ife.prevInstruction = &newIns
				ife.doublePrevOrientation = ife.prevOrientation
				ife.doublePrevStreetName = ife.prevEdge.road.Name
				ife.ways = append(ife.ways, ife.prevInstruction)
			}
		}
	}

	ife.prevInstruction.Distance += edge.road.Length
	ife.prevInstruction.ETA += travelMinutes(edge.road.Length, edge.road.RoadType)
	ife.prevNode = baseNode
	ife.prevEdge = edge
	return nil
}

/*
CheckUTurn. check jika current edge adalah U-turn. Misalkan:

A --doublePrevEdge-->B
				    |
					|
				PrevEdge
					|
					|
					|
D <--currentEdge---C

jika dari A->B belok kanan, dan dari B->C belok kanan, dan delta bearing antara A->B dan C->D mendekati 180 derajat, maka bisa dianggap U-turn
*/ // nolint: gofmt
func (ife *InstructionsFromEdges) CheckUTurn(sign int, name string, edge routeEdge) (bool, int) {
	isUTurn := false
	uTurnType := U_TURN_UNKNOWN

	if ife.doublePrevOrientation != 0 && (sign > 0) == (ife.prevInstruction.Sign > 0) &&
		(abs(sign) == TURN_SLIGHT_RIGHT || abs(sign) == TURN_RIGHT || abs(sign) == TURN_SHARP_RIGHT) &&
		(abs(ife.prevInstruction.Sign) == TURN_SLIGHT_RIGHT || abs(ife.prevInstruction.Sign) == TURN_RIGHT || abs(ife.prevInstruction.Sign) == TURN_SHARP_RIGHT) &&
		isSameName(ife.doublePrevStreetName, name) {
		currentOrientation := calcOrientation(edge.from.Lat, edge.from.Lon, edge.road.To.Lat, edge.road.To.Lon)
		diff := math.Abs(ife.doublePrevOrientation - currentOrientation)
		diffAngle := diff * (180 / math.Pi)
		if diffAngle > 155 && diffAngle < 205 {
			isUTurn = true
			if sign < 0 {
				uTurnType = U_TURN_LEFT
			} else {
				uTurnType = U_TURN_RIGHT
			}
		}
	}
	return isUTurn, uTurnType
}

/*
Finish. tambah final instruction.
*/
func (ife *InstructionsFromEdges) Finish() {
	last := ife.prevEdge
	finishInstruction := NewInstruction(FINISH, last.road.Name, last.road.To)
	finishInstruction.Heading = geo.BearingTo(last.from.Lat, last.from.Lon, last.road.To.Lat, last.road.To.Lon)
	ife.ways = append(ife.ways, &finishInstruction)
}

/*
GetTurnSign. Medapatkan turn sign dari setiap 2 edge bersebelahan pada shortest path berdasarkan selisih bearing. Misalkan:

prevNode----prevEdge----BaseNode
							|
							|
						currentEdge
							|
							|
						AdjNode

*/ // nolint: gofmt
func (ife *InstructionsFromEdges) GetTurnSign(edge routeEdge, name string) (int, error) {
	base := edge.from
	adj := edge.road.To

	ife.prevOrientation = calcOrientation(ife.prevNode.Lat, ife.prevNode.Lon, base.Lat, base.Lon)
	sign := getTurnDirection(base.Lat, base.Lon, adj.Lat, adj.Lon, ife.prevOrientation)

	alternativeTurnsCount, alternativeTurns, err := ife.GetAlternativeTurns(base, adj, ife.prevNode)
	if err != nil {
		return 0, err
	}

	if alternativeTurnsCount == 1 {
		if abs(sign) > 1 {
			return sign, nil
		}
		return IGNORE, nil
	}

	prevEdgeStreetName := ife.prevEdge.road.Name
	if abs(sign) > 1 {
		if isSameName(name, prevEdgeStreetName) {
			return IGNORE, nil
		}
		return sign, nil
	}

	prevCurrEdgeOrientationDiff := calculateOrientationDelta(base.Lat, base.Lon, adj.Lat, adj.Lon, ife.prevOrientation) // bearing difference antara prevNode->baseNode->adjNode

	// get road lain dari baseNode yang arahnya continue
	otherContinue, ok := getOtherEdgeContinueDirection(base, ife.prevOrientation, alternativeTurns)
	if ok && !isSameName(name, prevEdgeStreetName) {
		roadClass := edge.road.RoadType
		prevRoadClass := ife.prevEdge.road.RoadType
		otherRoadClass := otherContinue.RoadType

		if isMajorRoad(roadClass) && roadClass == prevRoadClass && otherRoadClass != prevRoadClass {
			// current road class == major road class && prevRoadClass sama dg current edge roadClass
			return IGNORE, nil
		}

		if roadClass == "residential" || prevRoadClass == "residential" || (roadClass == "unclassified" && prevRoadClass == "unclassified") {
			// skip roadclass residential untuk mengurangi instructions.
			return IGNORE, nil
		}

		prevOtherEdgeOrientation := calculateOrientationDelta(base.Lat, base.Lon, otherContinue.To.Lat, otherContinue.To.Lon, ife.prevOrientation) // bearing difference antara prevNode->baseNode->otherContinue.To

		/*
			jika dari baseNode ada 2 jalan yang arahnya sama sama lurus/sedikit belok, tambah turn instruction ke currEdge. Misalkan:

					-----currentEdge---------
			baseNode
					-----otherContinueEdge---
		*/ // nolint: gofmt
		if prevCurrEdgeOrientationDiff > prevOtherEdgeOrientation {
			return KEEP_RIGHT, nil
		}
		return KEEP_LEFT, nil
	}

	if isLeavingCurrentStreet(prevEdgeStreetName, name, ife.prevEdge.road.RoadType, edge.road.RoadType) ||
		math.Abs(prevCurrEdgeOrientationDiff)*(180/math.Pi) > 34 {
		return sign, nil
	}
	return IGNORE, nil
}
