package day09

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrBadPoint is returned when a line is not two comma-separated
// non-negative integers.
var ErrBadPoint = errors.New("day09: point must be <x>,<y>")

// Point is a red tile position on the theater floor.
type Point struct {
	X, Y uint64
}

// area returns the inclusive rectangle area spanned by two corners.
func (p Point) area(q Point) uint64 {
	return (absDiff(p.X, q.X) + 1) * (absDiff(p.Y, q.Y) + 1)
}

// otherCorners completes the rectangle spanned by p and q.
func (p Point) otherCorners(q Point) (Point, Point) {
	return Point{X: p.X, Y: q.Y}, Point{X: q.X, Y: p.Y}
}

func absDiff(a, b uint64) uint64 {
	if a < b {
		return b - a
	}

	return a - b
}

// span is an inclusive coordinate range along one axis.
type span struct {
	lo, hi uint64
}

func newSpan(a, b uint64) span {
	if a > b {
		a, b = b, a
	}

	return span{lo: a, hi: b}
}

// contains reports whether v lies on the span, endpoints included.
func (s span) contains(v uint64) bool {
	return s.lo <= v && v <= s.hi
}

// containsMiddle reports whether v lies strictly between the endpoints.
func (s span) containsMiddle(v uint64) bool {
	return s.lo < v && v < s.hi
}

// wall is a straight run of red tiles: a column (at = x, span over y) or a
// row (at = y, span over x).
type wall struct {
	at   uint64
	span span
}

// walls holds the room boundary, split into vertical and horizontal runs
// sorted by their fixed coordinate.
type walls struct {
	xLeft, xRight uint64
	vertical      []wall // columns, span covers rows
	horizontal    []wall // rows, span covers columns
}

// at returns the wall with the given fixed coordinate, if any. At most one
// wall lives per coordinate; a later pair on the same line replaces the
// earlier one.
func at(ws []wall, v uint64) (span, bool) {
	i := sort.Search(len(ws), func(i int) bool { return ws[i].at >= v })
	if i < len(ws) && ws[i].at == v {
		return ws[i].span, true
	}

	return span{}, false
}

// countBetween counts walls with fixed coordinate in [lo, hi) whose span
// covers v.
func countBetween(ws []wall, lo, hi, v uint64) int {
	n := 0
	i := sort.Search(len(ws), func(i int) bool { return ws[i].at >= lo })
	for ; i < len(ws) && ws[i].at < hi; i++ {
		if ws[i].span.contains(v) {
			n++
		}
	}

	return n
}

// cutsBetween reports whether a wall with fixed coordinate in [lo, hi) cuts
// strictly through either of the two given cross coordinates.
func cutsBetween(ws []wall, lo, hi, a, b uint64) bool {
	i := sort.Search(len(ws), func(i int) bool { return ws[i].at >= lo })
	for ; i < len(ws) && ws[i].at < hi; i++ {
		if ws[i].span.containsMiddle(a) || ws[i].span.containsMiddle(b) {
			return true
		}
	}

	return false
}

// isInside reports whether a tile lies inside the room or on a wall.
//
// A point on a wall is inside. Otherwise a ray is cast along the point's row
// and vertical wall crossings are counted: odd means inside. The row's own
// horizontal wall picks the side the ray leaves through, so the ray never
// runs along a wall.
func (w *walls) isInside(p Point) bool {
	if p.X <= w.xLeft || p.X >= w.xRight {
		return false
	}
	if s, ok := at(w.vertical, p.X); ok && s.contains(p.Y) {
		return true
	}

	castLeft := true
	if s, ok := at(w.horizontal, p.Y); ok {
		switch {
		case p.X < s.lo:
			castLeft = true
		case p.X > s.hi:
			castLeft = false
		default:
			return true
		}
	}

	if castLeft {
		return countBetween(w.vertical, w.xLeft, p.X, p.Y)%2 == 1
	}

	return countBetween(w.vertical, p.X, w.xRight, p.Y)%2 == 1
}

// intersectsSegments reports whether a wall cuts through an edge of the
// rectangle spanned by the two corners.
func (w *walls) intersectsSegments(c1, c2 Point) bool {
	minX, maxX := c1.X, c2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := c1.Y, c2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	if minX+1 < maxX && cutsBetween(w.vertical, minX+1, maxX-1, minY, maxY) {
		return true
	}

	return minY+1 < maxY && cutsBetween(w.horizontal, minY+1, maxY-1, minX, maxX)
}

// Grid is the parsed list of red tiles in input order.
type Grid struct {
	points []Point
}

// ParseGrid reads one <x>,<y> point per line.
func ParseGrid(r io.Reader) (*Grid, error) {
	g := &Grid{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadPoint, line)
		}
		var p Point
		for i, dst := range []*uint64{&p.X, &p.Y} {
			v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadPoint, line)
			}
			*dst = v
		}
		g.points = append(g.points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("day09: read input: %w", err)
	}

	return g, nil
}

// MaxArea returns the largest inclusive rectangle area over all tile pairs.
func (g *Grid) MaxArea() uint64 {
	var best uint64
	for i := 0; i < len(g.points); i++ {
		for j := i + 1; j < len(g.points); j++ {
			if a := g.points[i].area(g.points[j]); a > best {
				best = a
			}
		}
	}

	return best
}

// buildWalls pairs tiles sharing a column or row into walls. Each tile can
// close one vertical and one horizontal wall against the most recent unpaired
// tile on its line.
func (g *Grid) buildWalls() *walls {
	pendingX := make(map[uint64]Point)
	pendingY := make(map[uint64]Point)
	vspans := make(map[uint64]span)
	hspans := make(map[uint64]span)

	xLeft := ^uint64(0)
	xRight := uint64(0)
	for _, p := range g.points {
		if p.X < xLeft {
			xLeft = p.X
		}
		if p.X > xRight {
			xRight = p.X
		}

		if other, ok := pendingX[p.X]; ok {
			delete(pendingX, p.X)
			vspans[p.X] = newSpan(p.Y, other.Y)
		} else {
			pendingX[p.X] = p
		}

		if other, ok := pendingY[p.Y]; ok {
			delete(pendingY, p.Y)
			hspans[p.Y] = newSpan(p.X, other.X)
		} else {
			pendingY[p.Y] = p
		}
	}

	w := &walls{xLeft: xLeft - 1, xRight: xRight + 1}
	for x, s := range vspans {
		w.vertical = append(w.vertical, wall{at: x, span: s})
	}
	for y, s := range hspans {
		w.horizontal = append(w.horizontal, wall{at: y, span: s})
	}
	sort.Slice(w.vertical, func(i, j int) bool { return w.vertical[i].at < w.vertical[j].at })
	sort.Slice(w.horizontal, func(i, j int) bool { return w.horizontal[i].at < w.horizontal[j].at })

	return w
}

// MaxAreaInside returns the best rectangle kept fully inside the room: its
// two spanning tiles and the inclusive area. A rectangle qualifies when its
// corners differ in both coordinates, all four corners are inside and no
// wall cuts through an edge.
func (g *Grid) MaxAreaInside() (Point, Point, uint64) {
	w := g.buildWalls()
	var bestP, bestQ Point
	var best uint64
	for i := 0; i < len(g.points); i++ {
		for j := i + 1; j < len(g.points); j++ {
			p, q := g.points[i], g.points[j]
			if p.X == q.X || p.Y == q.Y {
				continue
			}
			a := p.area(q)
			if a <= best {
				continue
			}
			c3, c4 := p.otherCorners(q)
			if w.isInside(p) && w.isInside(q) && w.isInside(c3) && w.isInside(c4) &&
				!w.intersectsSegments(p, q) {
				bestP, bestQ, best = p, q, a
			}
		}
	}

	return bestP, bestQ, best
}

// Solve parses the tile list and returns both answers as strings.
func Solve(r io.Reader) (part1, part2 string, err error) {
	g, err := ParseGrid(r)
	if err != nil {
		return "", "", err
	}
	_, _, inside := g.MaxAreaInside()

	return strconv.FormatUint(g.MaxArea(), 10),
		strconv.FormatUint(inside, 10), nil
}
