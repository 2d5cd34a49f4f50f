package osmparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"
)

var ErrMalformedLine = errors.New("malformed road map line")

// lat1 lon1 lat2 lon2 "road name" roadType
var roadLine = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s+"([^"]*)"\s+(\S+)$`)

// LoadRoadMap reads one directed road segment per line. Both endpoints become
// vertices and the segment length is the great-circle distance in km. Blank
// lines and lines starting with # are skipped.
func LoadRoadMap(r io.Reader, g GraphBuilder) (Summary, error) {
	summary := Summary{}
	sc := bufio.NewScanner(r)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		from, to, name, roadType, err := parseRoadLine(line)
		if err != nil {
			return summary, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if g.AddVertex(from) {
			summary.Vertices++
		}
		if g.AddVertex(to) {
			summary.Vertices++
		}
		length := geo.CalculateHaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon)
		if err := g.AddEdge(from, to, name, roadType, length); err != nil {
			return summary, fmt.Errorf("line %d: %w", lineNo, err)
		}
		summary.Edges++
		summary.Ways++
	}
	if err := sc.Err(); err != nil {
		return summary, fmt.Errorf("read road map: %w", err)
	}
	return summary, nil
}

func parseRoadLine(line string) (from, to datastructure.Coordinate, name, roadType string, err error) {
	m := roadLine.FindStringSubmatch(line)
	if m == nil {
		return from, to, "", "", fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	var nums [4]float64
	for i := range nums {
		nums[i], err = strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return from, to, "", "", fmt.Errorf("%w: %q: %v", ErrMalformedLine, m[i+1], err)
		}
	}
	from = datastructure.NewCoordinate(nums[0], nums[1])
	to = datastructure.NewCoordinate(nums[2], nums[3])
	if !from.IsValid() || !to.IsValid() {
		return from, to, "", "", fmt.Errorf("%w: %q", datastructure.ErrInvalidPoint, line)
	}
	return from, to, m[5], m[6], nil
}
