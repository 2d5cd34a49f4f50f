package guidance

// RoadTypeMaxSpeed is the assumed travel speed in km/h for an osm highway value.
func RoadTypeMaxSpeed(roadType string) float64 {
	switch roadType {
	case "motorway":
		return 95
	case "trunk":
		return 85
	case "primary":
		return 75
	case "secondary":
		return 65
	case "tertiary":
		return 50
	case "unclassified":
		return 50
	case "residential":
		return 30
	case "service":
		return 20
	case "motorway_link":
		return 90
	case "trunk_link":
		return 80
	case "primary_link":
		return 70
	case "secondary_link":
		return 60
	case "tertiary_link":
		return 50
	case "living_street":
		return 20
	default:
		return 40
	}
}

// travelMinutes is the time to drive length km on a road of roadType.
func travelMinutes(length float64, roadType string) float64 {
	return length / RoadTypeMaxSpeed(roadType) * 60
}
