package mathutil

import "math"

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float64

// QuatIdentity returns the no-rotation quaternion (0, 0, 0, 1).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle returns the rotation of angle radians around axis.
// The axis must be normalized.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	s, c := math.Sincos(angle * 0.5)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// QuatFromAxis returns the rotation around a principal axis (0=X, 1=Y, 2=Z).
func QuatFromAxis(axis int, angle float64) Quat {
	var q Quat
	s, c := math.Sincos(angle * 0.5)
	q[axis] = s
	q[3] = c
	return q
}

// Mul returns the Hamilton product a × b (apply b first, then a).
func (a Quat) Mul(b Quat) Quat {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return Quat{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

// Conj returns the conjugate, which is the inverse for unit quaternions.
func (q Quat) Conj() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

func (a Quat) Dot(b Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (q Quat) Len() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns q / |q|. A zero quaternion is returned unchanged.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l == 0 {
		return q
	}
	inv := 1 / l
	return Quat{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// Rotate applies the rotation q to v (q must be unit length).
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q[0], q[1], q[2]}
	w := q[3]
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(w)).Add(u.Cross(t))
}

// AxisAngle decomposes q into a unit axis and an angle in radians.
// A rotation of 0 (mod 2π) reports the X axis.
func (q Quat) AxisAngle() (Vec3, float64) {
	sqrLen := q[0]*q[0] + q[1]*q[1] + q[2]*q[2]
	if sqrLen <= 0 {
		return AxisX, 0
	}
	inv := 1 / math.Sqrt(sqrLen)
	return Vec3{q[0] * inv, q[1] * inv, q[2] * inv}, 2 * math.Acos(Clamp(q[3], -1, 1))
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// QuatFromMat3 extracts the rotation of an orthonormal matrix.
func QuatFromMat3(m Mat3) Quat {
	trace := m[0] + m[4] + m[8]
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		return Quat{(m[7] - m[5]) / s, (m[2] - m[6]) / s, (m[3] - m[1]) / s, s / 4}
	case m[0] > m[4] && m[0] > m[8]:
		s := math.Sqrt(1+m[0]-m[4]-m[8]) * 2
		return Quat{s / 4, (m[1] + m[3]) / s, (m[2] + m[6]) / s, (m[7] - m[5]) / s}
	case m[4] > m[8]:
		s := math.Sqrt(1+m[4]-m[0]-m[8]) * 2
		return Quat{(m[1] + m[3]) / s, s / 4, (m[5] + m[7]) / s, (m[2] - m[6]) / s}
	default:
		s := math.Sqrt(1+m[8]-m[0]-m[4]) * 2
		return Quat{(m[2] + m[6]) / s, (m[5] + m[7]) / s, s / 4, (m[3] - m[1]) / s}
	}
}

// Slerp interpolates from a (t=0) to b (t=1) along the shorter arc.
// Nearly parallel inputs fall back to linear interpolation.
func Slerp(a, b Quat, t float64) Quat {
	cosom := a.Dot(b)
	if cosom < 0 {
		cosom = -cosom
		b = Quat{-b[0], -b[1], -b[2], -b[3]}
	}

	scale0, scale1 := 1-t, t
	if 1-cosom > 1e-6 {
		omega := math.Acos(cosom)
		sinom := math.Sin(omega)
		scale0 = math.Sin((1-t)*omega) / sinom
		scale1 = math.Sin(t*omega) / sinom
	}

	return Quat{
		scale0*a[0] + scale1*b[0],
		scale0*a[1] + scale1*b[1],
		scale0*a[2] + scale1*b[2],
		scale0*a[3] + scale1*b[3],
	}
}

// RotationTo returns the shortest rotation taking unit vector a onto unit
// vector b. Opposite vectors rotate by π around an axis perpendicular to a.
func RotationTo(a, b Vec3) Quat {
	dot := a.Dot(b)
	if dot < -0.9999999 {
		axis := AxisX.Cross(a)
		if axis.Len() < 0.000001 {
			axis = AxisY.Cross(a)
		}
		return QuatFromAxisAngle(axis.Normalize(), math.Pi)
	}
	c := a.Cross(b)
	return Quat{c[0], c[1], c[2], 1 + dot}.Normalize()
}

// QuatToDir returns the direction ident is turned into by q.
func QuatToDir(q Quat, ident Vec3) Vec3 {
	return q.Rotate(ident)
}

// DirToQuat returns the rotation turning ident into dir. dir need not be normalized.
func DirToQuat(dir, ident Vec3) Quat {
	return RotationTo(ident, dir.Normalize())
}
