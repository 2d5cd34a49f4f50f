package guidance

import (
	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/roadgraph"
)

type RoadNetwork interface {
	Neighbors(p datastructure.Coordinate) ([]roadgraph.Road, error)
}
