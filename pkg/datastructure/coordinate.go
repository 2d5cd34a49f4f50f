package datastructure

import (
	"fmt"
	"math"
)

// Coordinate is a road intersection location. Two coordinates are the same
// vertex only when both components are exactly equal, so the value itself
// works as a map key.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// Distance is the planar straight-line distance to other, in coordinate units.
func (c Coordinate) Distance(other Coordinate) float64 {
	return math.Hypot(c.Lat-other.Lat, c.Lon-other.Lon)
}

// IsValid reports false for NaN or infinite components. An invalid coordinate
// never identifies a vertex.
func (c Coordinate) IsValid() bool {
	return !math.IsNaN(c.Lat) && !math.IsNaN(c.Lon) &&
		!math.IsInf(c.Lat, 0) && !math.IsInf(c.Lon, 0)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lat, c.Lon)
}

// Less orders coordinates by latitude then longitude.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Lat != other.Lat {
		return c.Lat < other.Lat
	}
	return c.Lon < other.Lon
}
