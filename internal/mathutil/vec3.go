package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

// Unit axes.
var (
	AxisX  = Vec3{1, 0, 0}
	AxisY  = Vec3{0, 1, 0}
	AxisZ  = Vec3{0, 0, 1}
	AxisMX = Vec3{-1, 0, 0}
	AxisMY = Vec3{0, -1, 0}
	AxisMZ = Vec3{0, 0, -1}
)

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns v / |v|, or the zero vector when |v| is below 1e-12.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Lerp blends a toward b by t (GLSL mix).
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return Vec3{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}

// Vec4 is a 4-component vector. Planes are stored as (a, b, c, d) with
// a*x + b*y + c*z + d = 0.
type Vec4 [4]float64

// XYZ drops the fourth component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Dot3 returns the dot product of the first three components with p.
func (v Vec4) Dot3(p Vec3) float64 {
	return v[0]*p[0] + v[1]*p[1] + v[2]*p[2]
}
