package model

// Vector3 represents a 3D coordinate in meters. The coordinate system is
// Z-up: X is left/right, Y is forward/backward, Z is vertical height.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Footprint holds an object's extents in meters. Width and Depth span the
// X and Y axes; Height is the vertical extent measured from the object's base.
type Footprint struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// Area returns the floor area covered by the footprint.
func (f Footprint) Area() float64 {
	return f.Width * f.Depth
}

// AABB is an axis-aligned bounding box defined by its min and max corners.
type AABB struct {
	Min Vector3 `json:"min"`
	Max Vector3 `json:"max"`
}

// BoxAt builds the AABB of a footprint centered at pos on X/Y, with the base
// of the box resting at pos.Z. The optional margin inflates the box on X and Y
// only; vertical clearance is never enforced.
func BoxAt(pos Vector3, fp Footprint, margin float64) AABB {
	halfW := fp.Width/2 + margin
	halfD := fp.Depth/2 + margin
	return AABB{
		Min: Vector3{X: pos.X - halfW, Y: pos.Y - halfD, Z: pos.Z},
		Max: Vector3{X: pos.X + halfW, Y: pos.Y + halfD, Z: pos.Z + fp.Height},
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Intersects reports whether two boxes overlap. The test is strict on every
// axis, so boxes that merely touch do not intersect.
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}

// ContainsXY reports whether the inner box lies within the outer box on the
// X and Y axes. Used for room containment checks, where the vertical axis is
// bounded by construction.
func (b AABB) ContainsXY(inner AABB) bool {
	return b.Min.X <= inner.Min.X && b.Max.X >= inner.Max.X &&
		b.Min.Y <= inner.Min.Y && b.Max.Y >= inner.Max.Y
}

// Overlap measures the penetration depth between two boxes. It computes the
// positive overlap extent on each axis and, when all three are positive,
// returns the minimum of the three (the shallowest penetrating axis).
// Disjoint boxes score 0.
//
// The value is a scalar proxy for collision severity, not a minimal
// translation vector; severity thresholds downstream are calibrated
// against it.
func Overlap(a, b AABB) float64 {
	ox := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	oy := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	oz := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)

	if ox > 0 && oy > 0 && oz > 0 {
		return min(ox, min(oy, oz))
	}
	return 0
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
