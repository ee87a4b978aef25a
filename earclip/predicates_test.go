package earclip_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mischanix/earclip/earclip"
)

func pt(x, y float64) earclip.Point {
	return earclip.Point{x, y}
}

func TestTriangleVertexOrder(t *testing.T) {
	cases := []struct {
		name string
		tri  earclip.Triangle
		want earclip.VertexOrder
	}{
		{"clockwise", earclip.Triangle{pt(0, 0), pt(0, 1), pt(1, 0)}, earclip.Clockwise},
		{"counter-clockwise", earclip.Triangle{pt(0, 0), pt(1, 0), pt(0, 1)}, earclip.CounterClockwise},
		{"collinear", earclip.Triangle{pt(0, 0), pt(1, 1), pt(2, 2)}, earclip.NoArea},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, earclip.TriangleVertexOrder(c.tri))
		})
	}
}

func TestTriangleVertexOrderNegatesOnReversal(t *testing.T) {
	a, b, c := pt(1, 5), pt(4, 1), pt(7, 6)
	order := earclip.TriangleVertexOrder(earclip.Triangle{a, b, c})
	reversed := earclip.TriangleVertexOrder(earclip.Triangle{a, c, b})
	require.NotEqual(t, earclip.NoArea, order)
	switch order {
	case earclip.Clockwise:
		assert.Equal(t, earclip.CounterClockwise, reversed)
	case earclip.CounterClockwise:
		assert.Equal(t, earclip.Clockwise, reversed)
	}
}

func TestRingVertexOrderRequiresThreePoints(t *testing.T) {
	_, err := earclip.RingVertexOrder([]earclip.Point{pt(0, 0), pt(1, 1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, earclip.ErrInvalidGeometry)
}

func TestRingVertexOrderSquare(t *testing.T) {
	square := []earclip.Point{pt(-1, -1), pt(1, -1), pt(1, 1), pt(-1, 1)}
	order, err := earclip.RingVertexOrder(square)
	require.NoError(t, err)
	assert.Equal(t, earclip.CounterClockwise, order)
}

func TestProperIntersectsSymmetric(t *testing.T) {
	a, b := pt(0, 0), pt(1, 1)
	c, d := pt(0, 1), pt(1, 0)
	assert.True(t, earclip.ProperIntersects(a, b, c, d))
	assert.True(t, earclip.ProperIntersects(c, d, a, b))
}

func TestProperIntersectsFalseOnSharedEndpoint(t *testing.T) {
	a, b, c := pt(0, 0), pt(1, 1), pt(1, 0)
	assert.False(t, earclip.ProperIntersects(a, b, a, c))
}

func TestProperIntersectsFalseOnTouchOrOverlap(t *testing.T) {
	// Collinear overlap.
	assert.False(t, earclip.ProperIntersects(pt(0, 0), pt(2, 0), pt(1, 0), pt(3, 0)))
	// Touching endpoint only.
	assert.False(t, earclip.ProperIntersects(pt(0, 0), pt(1, 0), pt(1, 0), pt(1, 1)))
}

func TestIntersectionOfCrossingDiagonals(t *testing.T) {
	p, err := earclip.Intersection(pt(0, 0), pt(1, 1), pt(0, 1), pt(1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p[0], 1e-9)
	assert.InDelta(t, 0.5, p[1], 1e-9)
}

func TestIntersectionParallelFails(t *testing.T) {
	_, err := earclip.Intersection(pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, earclip.ErrNoIntersection)
}

func TestAngleRadIsRotationInvariant(t *testing.T) {
	a, b, c := pt(3, 1), pt(0, 0), pt(-2, 4)
	base := earclip.AngleRad(a, b, c)

	theta := 1.23456
	rotate := func(p earclip.Point) earclip.Point {
		return pt(
			p[0]*math.Cos(theta)-p[1]*math.Sin(theta),
			p[0]*math.Sin(theta)+p[1]*math.Cos(theta),
		)
	}
	rotated := earclip.AngleRad(rotate(a), rotate(b), rotate(c))
	assert.InEpsilon(t, base, rotated, 1e-5)
}

func TestAngleRadRangeAndZero(t *testing.T) {
	b := pt(0, 0)
	angle := earclip.AngleRad(pt(1, 0), b, pt(1, 0))
	assert.InDelta(t, 0, angle, 1e-12)

	angle = earclip.AngleRad(pt(1, 0), b, pt(0, 1))
	assert.GreaterOrEqual(t, angle, 0.0)
	assert.Less(t, angle, 2*math.Pi)
}

func TestPointStrictlyInTriangle(t *testing.T) {
	tri := earclip.Triangle{pt(0, 0), pt(4, 0), pt(0, 4)}

	assert.True(t, earclip.PointStrictlyInTriangle(tri, pt(1, 1)))
	assert.True(t, earclip.PointStrictlyInTriangle(tri, pt(2, 0)))
	assert.False(t, earclip.PointStrictlyInTriangle(tri, pt(5, 5)))

	for _, v := range tri {
		assert.False(t, earclip.PointStrictlyInTriangle(tri, v))
	}
}
