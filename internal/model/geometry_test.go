package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxAt_NoMargin(t *testing.T) {
	b := BoxAt(Vector3{X: 1, Y: 2, Z: 0}, Footprint{Width: 2, Depth: 1, Height: 0.5}, 0)

	assert.Equal(t, Vector3{X: 0, Y: 1.5, Z: 0}, b.Min)
	assert.Equal(t, Vector3{X: 2, Y: 2.5, Z: 0.5}, b.Max)
}

func TestBoxAt_MarginInflatesXYOnly(t *testing.T) {
	fp := Footprint{Width: 1, Depth: 1, Height: 1}
	plain := BoxAt(Vector3{}, fp, 0)
	inflated := BoxAt(Vector3{}, fp, 0.5)

	assert.Equal(t, plain.Min.X-0.5, inflated.Min.X)
	assert.Equal(t, plain.Max.Y+0.5, inflated.Max.Y)
	// Vertical extent must not grow
	assert.Equal(t, plain.Min.Z, inflated.Min.Z)
	assert.Equal(t, plain.Max.Z, inflated.Max.Z)
}

func TestAABB_Intersects(t *testing.T) {
	a := AABB{Min: Vector3{0, 0, 0}, Max: Vector3{1, 1, 1}}

	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{"overlapping", AABB{Min: Vector3{0.5, 0.5, 0.5}, Max: Vector3{2, 2, 2}}, true},
		{"contained", AABB{Min: Vector3{0.25, 0.25, 0.25}, Max: Vector3{0.75, 0.75, 0.75}}, true},
		{"disjoint x", AABB{Min: Vector3{2, 0, 0}, Max: Vector3{3, 1, 1}}, false},
		{"disjoint z", AABB{Min: Vector3{0, 0, 2}, Max: Vector3{1, 1, 3}}, false},
		{"touching faces", AABB{Min: Vector3{1, 0, 0}, Max: Vector3{2, 1, 1}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Intersects(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersects(a), "intersection must be symmetric")
		})
	}
}

func TestOverlap_DisjointIsZero(t *testing.T) {
	a := AABB{Min: Vector3{0, 0, 0}, Max: Vector3{1, 1, 1}}
	b := AABB{Min: Vector3{5, 0, 0}, Max: Vector3{6, 1, 1}}

	assert.Equal(t, 0.0, Overlap(a, b))

	// Overlapping on two axes but not the third still scores zero
	c := AABB{Min: Vector3{0.5, 0.5, 2}, Max: Vector3{1.5, 1.5, 3}}
	assert.Equal(t, 0.0, Overlap(a, c))
}

func TestOverlap_ReturnsShallowestAxis(t *testing.T) {
	a := AABB{Min: Vector3{0, 0, 0}, Max: Vector3{2, 2, 2}}
	// Penetrates 0.1 on X, 1.0 on Y, 2.0 on Z
	b := AABB{Min: Vector3{1.9, 1.0, 0}, Max: Vector3{4, 4, 2}}

	assert.InDelta(t, 0.1, Overlap(a, b), 1e-9)
}

func TestOverlap_Symmetry(t *testing.T) {
	pairs := []struct{ a, b AABB }{
		{
			AABB{Min: Vector3{0, 0, 0}, Max: Vector3{2, 1, 1}},
			AABB{Min: Vector3{1, 0.5, 0.2}, Max: Vector3{3, 2, 0.8}},
		},
		{
			AABB{Min: Vector3{-1, -1, 0}, Max: Vector3{1, 1, 1}},
			AABB{Min: Vector3{0.9, 0.9, 0.9}, Max: Vector3{2, 2, 2}},
		},
		{
			AABB{Min: Vector3{0, 0, 0}, Max: Vector3{1, 1, 1}},
			AABB{Min: Vector3{3, 3, 3}, Max: Vector3{4, 4, 4}},
		},
	}

	for _, p := range pairs {
		assert.Equal(t, Overlap(p.a, p.b), Overlap(p.b, p.a))
	}
}

func TestOverlap_BoundedByPenetratingExtents(t *testing.T) {
	a := AABB{Min: Vector3{0, 0, 0}, Max: Vector3{2, 2, 2}}
	b := AABB{Min: Vector3{1, 1.5, 0.5}, Max: Vector3{3, 3, 3}}

	ov := Overlap(a, b)
	assert.Greater(t, ov, 0.0)
	// Penetrating region is 1.0 x 0.5 x 1.5; the score may not exceed the
	// smallest extent.
	assert.LessOrEqual(t, ov, 0.5)
}

func TestContainsXY(t *testing.T) {
	room := AABB{Min: Vector3{-3, -3, 0}, Max: Vector3{3, 3, 3}}

	inside := BoxAt(Vector3{X: 0, Y: 0}, Footprint{Width: 2, Depth: 2, Height: 1}, 0)
	assert.True(t, room.ContainsXY(inside))

	// Taller than the room but within X/Y still counts as contained
	tall := BoxAt(Vector3{X: 0, Y: 0}, Footprint{Width: 1, Depth: 1, Height: 10}, 0)
	assert.True(t, room.ContainsXY(tall))

	sticking := BoxAt(Vector3{X: 2.9, Y: 0}, Footprint{Width: 1, Depth: 1, Height: 1}, 0)
	assert.False(t, room.ContainsXY(sticking))
}

func TestAABB_Center(t *testing.T) {
	b := AABB{Min: Vector3{0, 2, 0}, Max: Vector3{2, 4, 1}}
	assert.Equal(t, Vector3{X: 1, Y: 3, Z: 0.5}, b.Center())
}
