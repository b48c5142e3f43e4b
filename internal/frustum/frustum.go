package frustum

import (
	"math"

	"orientkit/internal/mathutil"
)

// Planes holds the six clip planes of a view frustum. Each plane is
// (a, b, c, d) with a unit normal pointing into the frustum.
type Planes struct {
	Left, Right, Top, Bottom, Near, Far mathutil.Vec4
}

// Extract derives the frustum planes of a combined projection × view matrix
// (row-major, applied as M × v).
func Extract(m mathutil.Mat4) Planes {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	return Planes{
		Left:   normalize(add(r3, r0)),
		Right:  normalize(sub(r3, r0)),
		Top:    normalize(sub(r3, r1)),
		Bottom: normalize(add(r3, r1)),
		Near:   normalize(add(r3, r2)),
		Far:    normalize(sub(r3, r2)),
	}
}

func add(a, b mathutil.Vec4) mathutil.Vec4 {
	return mathutil.Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func sub(a, b mathutil.Vec4) mathutil.Vec4 {
	return mathutil.Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func normalize(p mathutil.Vec4) mathutil.Vec4 {
	inv := 1 / math.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2])
	return mathutil.Vec4{p[0] * inv, p[1] * inv, p[2] * inv, p[3] * inv}
}

// PointDist returns the signed distance from pt to plane; positive is the
// side the normal points to.
func PointDist(pt mathutil.Vec3, plane mathutil.Vec4) float64 {
	return plane.Dot3(pt) + plane[3]
}

// all returns the planes in test order.
func (p *Planes) all() [6]mathutil.Vec4 {
	return [6]mathutil.Vec4{p.Near, p.Left, p.Right, p.Top, p.Bottom, p.Far}
}

// SphereOutside reports whether a sphere lies entirely outside the frustum.
func (p *Planes) SphereOutside(center mathutil.Vec3, radius float64) bool {
	for _, plane := range p.all() {
		if radius < -PointDist(center, plane) {
			return true
		}
	}
	return false
}

// effectiveRadius is the extent of an ellipsoid with semi-axes ax, ay, az
// along the plane normal.
func effectiveRadius(plane mathutil.Vec4, ax, ay, az mathutil.Vec3) float64 {
	dx := plane.Dot3(ax)
	dy := plane.Dot3(ay)
	dz := plane.Dot3(az)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// EllipsoidOutside reports whether an ellipsoid centered at center with
// semi-axis vectors ax, ay, az lies entirely outside the frustum.
func (p *Planes) EllipsoidOutside(center, ax, ay, az mathutil.Vec3) bool {
	// near and far are parallel, so they share one effective radius
	rFar := effectiveRadius(p.Far, ax, ay, az)
	if rFar < -PointDist(center, p.Near) || rFar < -PointDist(center, p.Far) {
		return true
	}
	for _, plane := range []mathutil.Vec4{p.Left, p.Right, p.Top, p.Bottom} {
		if effectiveRadius(plane, ax, ay, az) < -PointDist(center, plane) {
			return true
		}
	}
	return false
}
