package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectFromPoints(t *testing.T) {
	_, ok := RectFromPoints[float32]()
	assert.False(t, ok, "no points should yield no rectangle")

	p := Vec2[float32](1.5, -2)
	r, ok := RectFromPoints(p)
	require.True(t, ok)
	assert.Equal(t, BoundRect[float32]{Min: p, Max: p}, r)
	assert.True(t, r.Empty(), "single point rect must be empty")

	ri, ok := RectFromPoints(Vec2(3, 1), Vec2(-1, 4), Vec2(2, -2))
	require.True(t, ok)
	assert.Equal(t, RectFromBounds(-1, -2, 3, 4), ri)
	assert.False(t, ri.Empty())
	assert.Equal(t, 4, ri.Dx())
	assert.Equal(t, 6, ri.Dy())
}

func TestRectIntersection(t *testing.T) {
	a := RectFromBounds(0, 0, 10, 10)
	b := RectFromBounds(5, -5, 15, 5)

	assert.Equal(t, RectFromBounds(5, 0, 10, 5), a.Intersection(b))
	assert.Equal(t, a.Intersection(b), b.Intersection(a))
	assert.Equal(t, a, a.Intersection(a))
	assert.Equal(t, b, b.Intersection(b))

	c := RectFromBounds(20, 20, 30, 30)
	assert.True(t, a.Intersection(c).Empty())
	assert.Equal(t, a.Intersection(c), c.Intersection(a))
}

func TestRectEmpty(t *testing.T) {
	assert.False(t, RectFromBounds(0.0, 0.0, 1.0, 1.0).Empty())
	assert.True(t, RectFromBounds(0.0, 0.0, 0.0, 1.0).Empty())
	assert.True(t, RectFromBounds(0.0, 0.0, 1.0, 0.0).Empty())
	assert.True(t, RectFromBounds(2.0, 0.0, 1.0, 1.0).Empty())
}

func TestRectContains(t *testing.T) {
	r := RectFromBounds(0, 0, 2, 2)
	assert.True(t, r.Contains(Vec2(0, 0)))
	assert.True(t, r.Contains(Vec2(1, 1)))
	assert.False(t, r.Contains(Vec2(2, 1)))
	assert.False(t, r.Contains(Vec2(-1, 0)))
}
