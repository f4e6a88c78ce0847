package day08

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Point is a junction position in 3D space.
type Point struct {
	X, Y, Z uint64
}

// pair joins two point indices at their squared euclidean distance.
type pair struct {
	a, b int
	dist uint64
}

// ParsePoints reads one <x>,<y>,<z> point per line.
func ParsePoints(r io.Reader) ([]Point, error) {
	var points []Point
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrBadPoint, line)
		}
		var p Point
		for i, dst := range []*uint64{&p.X, &p.Y, &p.Z} {
			v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadPoint, line)
			}
			*dst = v
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("day08: read input: %w", err)
	}

	return points, nil
}

// distance returns the squared euclidean distance between two points.
func distance(p, q Point) uint64 {
	return sqDiff(p.X, q.X) + sqDiff(p.Y, q.Y) + sqDiff(p.Z, q.Z)
}

// sqDiff squares |a-b| without underflowing.
func sqDiff(a, b uint64) uint64 {
	if a < b {
		a, b = b, a
	}
	d := a - b

	return d * d
}

// closestPairs returns the limit closest pairs in ascending distance order.
//
// The list is grown by sorted insertion and truncated to limit, so only a
// small window is ever kept in memory.
func closestPairs(points []Point, limit int) []pair {
	pairs := make([]pair, 0, limit+1)
	for b := 1; b < len(points); b++ {
		for a := 0; a < b; a++ {
			d := distance(points[a], points[b])
			if len(pairs) == limit && d >= pairs[len(pairs)-1].dist {
				continue
			}
			i := sort.Search(len(pairs), func(i int) bool {
				return pairs[i].dist >= d
			})
			pairs = append(pairs, pair{})
			copy(pairs[i+1:], pairs[i:])
			pairs[i] = pair{a: a, b: b, dist: d}
			if len(pairs) > limit {
				pairs = pairs[:limit]
			}
		}
	}

	return pairs
}

// CircuitProduct connects the limit closest pairs and returns the product of
// the sizes of the three largest circuits among the connected points.
func CircuitProduct(points []Point, limit int) uint64 {
	d := newDSU(len(points))
	touched := make(map[int]bool)
	for _, p := range closestPairs(points, limit) {
		d.union(p.a, p.b)
		touched[p.a] = true
		touched[p.b] = true
	}

	sizes := make(map[int]uint64)
	for i := range touched {
		sizes[d.find(i)]++
	}
	circuits := make([]uint64, 0, len(sizes))
	for _, n := range sizes {
		circuits = append(circuits, n)
	}
	sort.Slice(circuits, func(i, j int) bool { return circuits[i] > circuits[j] })

	product := uint64(1)
	for i, n := range circuits {
		if i == 3 {
			break
		}
		product *= n
	}

	return product
}

// LastConnection connects every pair in ascending distance order until all
// points share one circuit, then returns the product of the X coordinates of
// the final pair connected.
func LastConnection(points []Point) (uint64, error) {
	if len(points) < 2 {
		return 0, ErrTooFewPoints
	}

	pairs := make([]pair, 0, len(points)*(len(points)-1)/2)
	for b := 1; b < len(points); b++ {
		for a := 0; a < b; a++ {
			pairs = append(pairs, pair{a: a, b: b, dist: distance(points[a], points[b])})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].dist != pairs[j].dist {
			return pairs[i].dist < pairs[j].dist
		}
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}

		return pairs[i].b < pairs[j].b
	})

	d := newDSU(len(points))
	remaining := len(points)
	for _, p := range pairs {
		if !d.union(p.a, p.b) {
			continue
		}
		remaining--
		if remaining == 1 {
			return points[p.a].X * points[p.b].X, nil
		}
	}

	return 0, ErrTooFewPoints
}

// Solve parses the junction list and returns both answers as strings.
func Solve(r io.Reader, opts ...Option) (part1, part2 string, err error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return "", "", cfg.err
	}

	points, err := ParsePoints(r)
	if err != nil {
		return "", "", err
	}
	last, err := LastConnection(points)
	if err != nil {
		return "", "", err
	}

	return strconv.FormatUint(CircuitProduct(points, cfg.pairLimit), 10),
		strconv.FormatUint(last, 10), nil
}
