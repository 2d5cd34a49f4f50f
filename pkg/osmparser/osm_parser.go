package osmparser

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

type NodeType int

const (
	END_NODE NodeType = iota
	BETWEEN_NODE
	JUNCTION_NODE
)

var (
	skipHighway = map[string]struct{}{
		"footway":                {},
		"construction":           {},
		"cycleway":               {},
		"path":                   {},
		"pedestrian":             {},
		"busway":                 {},
		"steps":                  {},
		"bridleway":              {},
		"corridor":               {},
		"street_lamp":            {},
		"bus_stop":               {},
		"crossing":               {},
		"cyclist_waiting_aid":    {},
		"elevator":               {},
		"emergency_bay":          {},
		"emergency_access_point": {},
		"give_way":               {},
		"phone":                  {},
		"ladder":                 {},
		"milestone":              {},
		"passing_place":          {},
		"platform":               {},
		"speed_camera":           {},
		"track":                  {},
		"bus_guideway":           {},
		"speed_display":          {},
		"stop":                   {},
		"toll_gantry":            {},
		"traffic_mirror":         {},
		"traffic_signals":        {},
		"trailhead":              {},
	}
)

// objectScanner is the part of osmpbf.Scanner the parser reads from.
type objectScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
}

// OsmParser turns OpenStreetMap highways into a road graph whose vertices are
// way endpoints and intersections. Nodes between them are folded into the
// edge length.
type OsmParser struct {
	wayNodeMap      map[int64]NodeType
	acceptedNodeMap map[int64]datastructure.Coordinate
	ways            []*osm.Way
}

func NewOSMParser() *OsmParser {
	return &OsmParser{
		wayNodeMap:      make(map[int64]NodeType),
		acceptedNodeMap: make(map[int64]datastructure.Coordinate),
		ways:            make([]*osm.Way, 0),
	}
}

// ParseOSM reads an .osm.pbf stream into g.
func ParseOSM(ctx context.Context, r io.Reader, g GraphBuilder) (Summary, error) {
	scanner := osmpbf.New(ctx, r, 1)
	// must not be parallel
	defer scanner.Close()

	p := NewOSMParser()
	if err := p.scan(scanner); err != nil {
		return Summary{}, err
	}
	return p.build(g)
}

func (p *OsmParser) scan(scanner objectScanner) error {
	countWays := 0
	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()

		switch o.ObjectID().Type() {
		case osm.TypeWay:
			{
				way := o.(*osm.Way)
				if len(way.Nodes) < 2 || !acceptOsmWay(way) {
					continue
				}
				if (countWays+1)%50000 == 0 {
					log.Printf("reading openstreetmap ways: %d...", countWays+1)
				}
				countWays++

				for i, node := range way.Nodes {
					if _, ok := p.wayNodeMap[int64(node.ID)]; !ok {
						if i == 0 || i == len(way.Nodes)-1 {
							p.wayNodeMap[int64(node.ID)] = END_NODE
						} else {
							p.wayNodeMap[int64(node.ID)] = BETWEEN_NODE
						}
					} else {
						p.wayNodeMap[int64(node.ID)] = JUNCTION_NODE
					}
				}
				p.ways = append(p.ways, way)
			}
		case osm.TypeNode:
			{
				if (countNodes+1)%50000 == 0 {
					log.Printf("reading openstreetmap nodes: %d...", countNodes+1)
				}
				countNodes++
				node := o.(*osm.Node)
				p.acceptedNodeMap[int64(node.ID)] = datastructure.NewCoordinate(node.Lat, node.Lon)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan openstreetmap objects: %w", err)
	}
	return nil
}

type wayDirection struct {
	forward  bool
	backward bool
}

func (p *OsmParser) build(g GraphBuilder) (Summary, error) {
	summary := Summary{Ways: len(p.ways)}
	skipped := 0

	for _, way := range p.ways {
		name := way.Tags.Find("name")
		roadType := way.Tags.Find("highway")
		if roadType == "" {
			roadType = way.Tags.Find("junction")
		}
		direction := getWayDirection(way)

		segment := make([]datastructure.Coordinate, 0, len(way.Nodes))
		for i, wayNode := range way.Nodes {
			coord, ok := p.acceptedNodeMap[int64(wayNode.ID)]
			if !ok {
				// node outside the extract, drop what was collected so far
				segment = segment[:0]
				skipped++
				continue
			}
			segment = append(segment, coord)

			splitHere := i == len(way.Nodes)-1 || p.wayNodeMap[int64(wayNode.ID)] != BETWEEN_NODE
			if !splitHere || len(segment) < 2 {
				continue
			}

			if err := p.addSegment(g, segment, name, roadType, direction, &summary); err != nil {
				return summary, err
			}
			segment = []datastructure.Coordinate{coord}
		}
	}

	if skipped > 0 {
		log.Printf("skipped %d way nodes without coordinates", skipped)
	}
	log.Printf("total vertices: %d, total edges: %d", summary.Vertices, summary.Edges)
	return summary, nil
}

func (p *OsmParser) addSegment(g GraphBuilder, segment []datastructure.Coordinate, name, roadType string,
	direction wayDirection, summary *Summary) error {
	from := segment[0]
	to := segment[len(segment)-1]
	if from == to && len(segment) == 2 {
		return nil
	}

	distance := 0.0 // in km
	for i := 1; i < len(segment); i++ {
		distance += geo.CalculateHaversineDistance(segment[i-1].Lat, segment[i-1].Lon, segment[i].Lat, segment[i].Lon)
	}

	if g.AddVertex(from) {
		summary.Vertices++
	}
	if g.AddVertex(to) {
		summary.Vertices++
	}

	if direction.forward {
		if err := g.AddEdge(from, to, name, roadType, distance); err != nil {
			return fmt.Errorf("add road %q: %w", name, err)
		}
		summary.Edges++
	}
	if direction.backward {
		if err := g.AddEdge(to, from, name, roadType, distance); err != nil {
			return fmt.Errorf("add road %q: %w", name, err)
		}
		summary.Edges++
	}
	return nil
}

func isRestricted(value string) bool {
	if value == "no" || value == "restricted" || value == "military" || value == "emergency" || value == "private" || value == "permit" {
		return true
	}
	return false
}

func getWayDirection(way *osm.Way) wayDirection {
	vehicleForward := isRestricted(way.Tags.Find("vehicle:forward")) || isRestricted(way.Tags.Find("motor_vehicle:forward"))
	vehicleBackward := isRestricted(way.Tags.Find("vehicle:backward")) || isRestricted(way.Tags.Find("motor_vehicle:backward"))

	direction := wayDirection{forward: true, backward: true}
	switch strings.ToLower(way.Tags.Find("oneway")) {
	case "yes", "true", "1":
		direction.backward = false
	case "-1", "reverse":
		direction.forward = false
	case "no", "false", "0":
	default:
		junction := way.Tags.Find("junction")
		if junction == "roundabout" || junction == "circular" || way.Tags.Find("highway") == "motorway" {
			direction.backward = false
		}
	}

	if vehicleForward {
		direction.forward = false
	}
	if vehicleBackward {
		direction.backward = false
	}
	return direction
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := skipHighway[highway]; !ok {
			return true
		}
	} else if way.Tags.Find("route") == "road" {
		return true
	} else if junction != "" {
		return true
	}
	return false
}
