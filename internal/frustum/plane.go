package frustum

import (
	"math"

	"orientkit/internal/mathutil"
)

// PlaneNormal returns the unit normal of the triangle a, b, c (counter-clockwise).
func PlaneNormal(a, b, c mathutil.Vec3) mathutil.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// PlaneFromPoint builds the plane through pt with the given unit normal.
func PlaneFromPoint(normal, pt mathutil.Vec3) mathutil.Vec4 {
	return mathutil.Vec4{normal[0], normal[1], normal[2], -normal.Dot(pt)}
}

// LinePlaneIntersect intersects the line through p0 and p1 with the plane
// n·x + d = 0. ok is false when the line is parallel to the plane.
func LinePlaneIntersect(n mathutil.Vec3, d float64, p0, p1 mathutil.Vec3) (pt mathutil.Vec3, ok bool) {
	dir := p1.Sub(p0)
	denom := n.Dot(dir)
	if math.Abs(denom) < 1e-12 {
		return mathutil.Vec3{}, false
	}
	t := -(n.Dot(p0) + d) / denom
	return p0.Add(dir.Scale(t)), true
}
