package roadgraph

import (
	"log"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/util"
)

// StronglyConnectedComponents partitions the vertices into groups that can
// all reach each other. A query between two components has a route in at most
// one direction. Runs in O(V+E) under the read lock.
func (g *MapGraph) StronglyConnectedComponents() [][]datastructure.Coordinate {
	g.mu.RLock()
	defer g.mu.RUnlock()

	components := g.kosarajuSCC()
	coords := make([][]datastructure.Coordinate, 0, len(components))
	for _, component := range components {
		locs := make([]datastructure.Coordinate, 0, len(component))
		for _, id := range component {
			locs = append(locs, g.nodes[id].Loc)
		}
		coords = append(coords, locs)
	}
	return coords
}

// ComponentSummary returns the number of strongly connected components and
// the vertex count of the largest one.
func (g *MapGraph) ComponentSummary() (count int, largest int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	components := g.kosarajuSCC()
	for _, component := range components {
		if len(component) > largest {
			largest = len(component)
		}
	}
	return len(components), largest
}

func (g *MapGraph) kosarajuSCC() [][]int32 {
	n := int32(len(g.nodes))
	components := make([][]int32, 0)

	inAdj := make([][]int32, n)
	for _, node := range g.nodes {
		for _, edge := range node.GetEdges() {
			inAdj[edge.To.ID] = append(inAdj[edge.To.ID], node.ID)
		}
	}

	order := make([]int32, 0, n)
	visited := make([]bool, n)

	for i := int32(0); i < n; i++ {
		if !visited[i] {
			g.dfs(i, &order, visited)
		}
	}

	order = util.ReverseG[int32](order)

	// reset visited
	visited = make([]bool, n)

	for _, v := range order {
		if !visited[v] {
			component := make([]int32, 0)
			dfsReversed(v, inAdj, &component, visited)
			components = append(components, component)
		}
	}

	log.Printf("Strongly Connected Components Count: %d\n", len(components))
	return components
}

func (g *MapGraph) dfs(v int32, output *[]int32, visited []bool) {
	visited[v] = true
	for _, next := range g.nodes[v].GetAdjacentNodes() {
		if !visited[next.ID] {
			g.dfs(next.ID, output, visited)
		}
	}
	*output = append(*output, v)
}

func dfsReversed(v int32, inAdj [][]int32, output *[]int32, visited []bool) {
	visited[v] = true
	for _, from := range inAdj[v] {
		if !visited[from] {
			dfsReversed(from, inAdj, output, visited)
		}
	}
	*output = append(*output, v)
}
