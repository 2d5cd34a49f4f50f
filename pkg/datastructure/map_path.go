package datastructure

// MapPath is an immutable shortest route found by an earlier search. cum[i]
// holds the route weight from the first point up to point i.
type MapPath struct {
	points  []Coordinate
	cum     []float64
	index   map[Coordinate]int
	version uint64
}

// NewMapPath copies points and cumulative weights. Both slices must have the
// same length; version is the graph topology version the route was found on.
func NewMapPath(points []Coordinate, cum []float64, version uint64) *MapPath {
	p := &MapPath{
		points:  make([]Coordinate, len(points)),
		cum:     make([]float64, len(cum)),
		index:   make(map[Coordinate]int, len(points)),
		version: version,
	}
	copy(p.points, points)
	copy(p.cum, cum)
	for i, c := range p.points {
		if _, ok := p.index[c]; !ok {
			p.index[c] = i
		}
	}
	return p
}

// SubPath is a read-only view over part of a MapPath.
type SubPath struct {
	Points []Coordinate
	cum    []float64
}

// Distance is the weight from the first to the last point of the view.
func (s SubPath) Distance() float64 {
	if len(s.cum) == 0 {
		return 0
	}
	return s.cum[len(s.cum)-1] - s.cum[0]
}

// DistanceAt is the weight from the first point of the view to Points[i].
func (s SubPath) DistanceAt(i int) float64 {
	return s.cum[i] - s.cum[0]
}

// SubPath returns the inclusive run of points from source to dest. ok is
// false unless both appear and source does not come after dest.
func (p *MapPath) SubPath(source, dest Coordinate) (SubPath, bool) {
	sourceIndex, ok := p.index[source]
	if !ok {
		return SubPath{}, false
	}
	destIndex, ok := p.index[dest]
	if !ok || destIndex < sourceIndex {
		return SubPath{}, false
	}
	return SubPath{
		Points: p.points[sourceIndex : destIndex+1 : destIndex+1],
		cum:    p.cum[sourceIndex : destIndex+1 : destIndex+1],
	}, true
}

func (p *MapPath) Points() []Coordinate {
	out := make([]Coordinate, len(p.points))
	copy(out, p.points)
	return out
}

func (p *MapPath) Last() Coordinate {
	if len(p.points) == 0 {
		return Coordinate{}
	}
	return p.points[len(p.points)-1]
}

func (p *MapPath) Distance() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

func (p *MapPath) Len() int {
	return len(p.points)
}

func (p *MapPath) Version() uint64 {
	return p.version
}
