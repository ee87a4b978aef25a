package earclip

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a 2D point under a y-down coordinate convention. It is a plain
// [2]float64 array (mgl64.Vec2), so equality is the bit-exact equality the
// rest of the package relies on, and it works directly as a map key.
type Point = mgl64.Vec2

// Triangle is an ordered triple of points.
type Triangle [3]Point

// VertexOrder classifies the winding of a triangle or ring.
type VertexOrder int

const (
	// Clockwise indicates a positive signed area (y-down convention).
	Clockwise VertexOrder = iota
	// CounterClockwise indicates a negative signed area.
	CounterClockwise
	// NoArea indicates the three points are collinear.
	NoArea
)

func (o VertexOrder) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	case NoArea:
		return "no-area"
	default:
		return "invalid"
	}
}

// signedArea is positive for a clockwise (a,b,c) under the y-down
// convention, negative for counter-clockwise, zero for collinear.
func signedArea(a, b, c Point) float64 {
	return (c[1]-b[1])*(a[0]-c[0]) - (c[0]-b[0])*(a[1]-c[1])
}

// TriangleVertexOrder classifies the winding of t. It never fails.
func TriangleVertexOrder(t Triangle) VertexOrder {
	area := signedArea(t[0], t[1], t[2])
	switch {
	case area > 0:
		return Clockwise
	case area < 0:
		return CounterClockwise
	default:
		return NoArea
	}
}

// RingVertexOrder returns the winding of ring, derived from the orientation
// at its topmost (maximum-y) vertex. The topmost vertex of a simple polygon
// is always convex, so its local orientation equals the ring's. Requires at
// least 3 points.
func RingVertexOrder(ring []Point) (VertexOrder, error) {
	if len(ring) < 3 {
		return 0, fmt.Errorf("%w: ring has %d points, need at least 3", ErrInvalidGeometry, len(ring))
	}
	top := 0
	for i := 1; i < len(ring); i++ {
		if ring[i][1] > ring[top][1] {
			top = i
		}
	}
	n := len(ring)
	prev := ring[(top-1+n)%n]
	next := ring[(top+1)%n]
	return TriangleVertexOrder(Triangle{prev, ring[top], next}), nil
}

// ProperIntersects reports whether segments ab and cd cross strictly in
// their interiors. Touching at an endpoint or overlapping collinearly is
// intentionally false.
func ProperIntersects(a, b, c, d Point) bool {
	return signedArea(a, b, c)*signedArea(a, b, d) < 0 &&
		signedArea(c, d, a)*signedArea(c, d, b) < 0
}

// Intersection returns the unique crossing point of line ab and line cd. It
// should only be called when ProperIntersects(a, b, c, d) is true; it
// returns ErrNoIntersection when the lines are parallel (determinant
// exactly zero).
func Intersection(a, b, c, d Point) (Point, error) {
	a1 := b[1] - a[1]
	b1 := a[0] - b[0]
	c1 := a1*a[0] + b1*a[1]

	a2 := d[1] - c[1]
	b2 := c[0] - d[0]
	c2 := a2*c[0] + b2*c[1]

	det := a1*b2 - a2*b1
	if det == 0 {
		return Point{}, fmt.Errorf("%w: segments are parallel", ErrNoIntersection)
	}

	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	return Point{x, y}, nil
}

// AngleRad returns the directed angle, in [0, 2π), from ray b→a to ray b→c.
func AngleRad(a, b, c Point) float64 {
	ax, ay := a[0]-b[0], a[1]-b[1]
	cx, cy := c[0]-b[0], c[1]-b[1]
	angle := math.Atan2(ay, ax) - math.Atan2(cy, cx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// PointStrictlyInTriangle reports whether p lies inside or on an edge of t,
// using the standard same-side-of-all-edges test on signed areas. It is
// false whenever p is exactly one of t's vertices.
func PointStrictlyInTriangle(t Triangle, p Point) bool {
	if p == t[0] || p == t[1] || p == t[2] {
		return false
	}

	d1 := signedArea(p, t[0], t[1])
	d2 := signedArea(p, t[1], t[2])
	d3 := signedArea(p, t[2], t[0])

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// pointLess is the lexicographic order on (x, y): smallest x first, ties
// broken by y. Used to identify the leftmost-lowest node and to order
// collinear split points along a segment.
func pointLess(a, b Point) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}
