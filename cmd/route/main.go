package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/engine/routingalgorithm"
	"lintang/roadgraph/pkg/geo"
	"lintang/roadgraph/pkg/guidance"
	"lintang/roadgraph/pkg/osmparser"
	"lintang/roadgraph/pkg/roadgraph"
	"lintang/roadgraph/pkg/snap"
)

var (
	mapFile   = flag.String("f", "solo_jogja.osm.pbf", "openstreeetmap .pbf file atau road map text file")
	src       = flag.String("src", "", "source coordinate lat,lon")
	dst       = flag.String("dst", "", "destination coordinate lat,lon")
	printPath = flag.Bool("path", false, "print every coordinate of the route")
)

// route compares BFS, Dijkstra and A* on one query, then repeats the A*
// query to show the path cache at work.
//
//	./bin/route -f ucsd.map -src=32.8756538,-117.2435715 -dst=32.8742087,-117.2381344
func main() {
	flag.Parse()

	from, err := parseCoordinate(*src)
	if err != nil {
		log.Fatalf("-src: %v", err)
	}
	to, err := parseCoordinate(*dst)
	if err != nil {
		log.Fatalf("-dst: %v", err)
	}

	g := roadgraph.NewMapGraph()
	summary, err := osmparser.LoadFile(context.Background(), *mapFile, g)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("road network graph loaded: %d vertices, %d edges", summary.Vertices, summary.Edges)

	rs := snap.NewRoadSnapper()
	rs.BuildRoadSnapper(g.GetVertices())
	from, _, _ = rs.SnapToNode(from)
	to, _, _ = rs.SnapToNode(to)
	fmt.Printf("route %v -> %v\n\n", from, to)

	greatCircle := routingalgorithm.WithHeuristic(geo.GreatCircleDistance)
	queries := []struct {
		name string
		run  func() (routingalgorithm.Result, error)
	}{
		{"bfs", func() (routingalgorithm.Result, error) { return g.BFS(from, to) }},
		{"dijkstra", func() (routingalgorithm.Result, error) { return g.Dijkstra(from, to) }},
		{"astar", func() (routingalgorithm.Result, error) { return g.AStarSearch(from, to, greatCircle) }},
		{"astar (cached)", func() (routingalgorithm.Result, error) { return g.AStarSearch(from, to, greatCircle) }},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "algorithm\tfound\tedges\tdistance (km)\tvisited\tsettled\tcache hit")
	var routes [][]datastructure.Coordinate
	for _, q := range queries {
		res, err := q.run()
		if err != nil {
			log.Fatalf("%s: %v", q.name, err)
		}
		fmt.Fprintf(w, "%s\t%v\t%d\t%.4f\t%d\t%d\t%v\n", q.name, res.Found, res.NumEdges(), res.Distance,
			res.Stats.Visited, res.Stats.Settled, res.Stats.CacheHit)
		routes = append(routes, res.Path)
	}
	w.Flush()

	if *printPath {
		for i, q := range queries {
			fmt.Printf("\n%s:\n", q.name)
			for _, p := range routes[i] {
				fmt.Printf("  %v\n", p)
			}
		}
	}

	if astar := routes[2]; len(astar) >= 2 {
		instructions, err := guidance.NewInstructionsFromEdges(g).GetDrivingInstructions(astar)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("\ndriving instructions:")
		for _, ins := range instructions {
			fmt.Printf("  %-50s %.3f km\n", ins.Instruction, ins.Distance)
		}
	}

	components, largest := g.ComponentSummary()
	fmt.Printf("\ncached paths: %d, strongly connected components: %d (largest %d vertices)\n",
		g.CachedPathCount(), components, largest)
}

func parseCoordinate(s string) (datastructure.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return datastructure.Coordinate{}, fmt.Errorf("want lat,lon, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return datastructure.Coordinate{}, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return datastructure.Coordinate{}, err
	}
	p := datastructure.NewCoordinate(lat, lon)
	if !p.IsValid() {
		return datastructure.Coordinate{}, fmt.Errorf("invalid coordinate %q", s)
	}
	return p, nil
}
