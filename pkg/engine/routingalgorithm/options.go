package routingalgorithm

import "lintang/roadgraph/pkg/datastructure"

// Visitor is called with every point the search dequeues, in dequeue order.
type Visitor func(datastructure.Coordinate)

// Heuristic estimates the remaining weight from a point to the goal. A* only
// returns shortest routes when it never overestimates and is consistent.
type Heuristic func(from, to datastructure.Coordinate) float64

// StraightLine is the planar distance between the two points.
func StraightLine(from, to datastructure.Coordinate) float64 {
	return from.Distance(to)
}

func zeroHeuristic(_, _ datastructure.Coordinate) float64 {
	return 0
}

type Options struct {
	visitor   Visitor
	heuristic Heuristic
	pathCache bool
}

type Option func(*Options)

func WithVisitor(v Visitor) Option {
	return func(o *Options) {
		if v != nil {
			o.visitor = v
		}
	}
}

// WithHeuristic replaces the A* estimate. It has no effect on BFS or Dijkstra.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.heuristic = h
		}
	}
}

// WithPathCache turns A* reads and writes of the node path caches on or off.
func WithPathCache(enabled bool) Option {
	return func(o *Options) {
		o.pathCache = enabled
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		visitor:   func(datastructure.Coordinate) {},
		heuristic: StraightLine,
		pathCache: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
