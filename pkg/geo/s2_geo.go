package geo

import (
	"lintang/roadgraph/pkg/datastructure"

	"github.com/golang/geo/s2"
)

func toS2Point(c datastructure.Coordinate) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
}

// GreatCircleDistance is the s2 angular distance between two coordinates, in km.
func GreatCircleDistance(from, to datastructure.Coordinate) float64 {
	angle := s2.LatLngFromDegrees(from.Lat, from.Lon).Distance(s2.LatLngFromDegrees(to.Lat, to.Lon))
	return angle.Radians() * earthRadiusKM
}

// PointLinePerpendicularDistance returns the distance in meters from p to the
// great-circle segment (lineStart, lineEnd).
func PointLinePerpendicularDistance(lineStart, lineEnd, p datastructure.Coordinate) float64 {
	angle := s2.DistanceFromSegment(toS2Point(p), toS2Point(lineStart), toS2Point(lineEnd))
	return angle.Radians() * earthRadiusM
}

// ProjectPointToLineCoord projects snap onto the segment (lineStart, lineEnd).
func ProjectPointToLineCoord(lineStart, lineEnd, snap datastructure.Coordinate) datastructure.Coordinate {
	projection := s2.Project(toS2Point(snap), toS2Point(lineStart), toS2Point(lineEnd))
	projectLatLng := s2.LatLngFromPoint(projection)
	return datastructure.NewCoordinate(projectLatLng.Lat.Degrees(), projectLatLng.Lng.Degrees())
}
