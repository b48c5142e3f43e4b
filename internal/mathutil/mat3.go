package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func Mat3Diag(x, y, z float64) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

// Mat3FromAxes builds a matrix whose columns are the given axes.
func Mat3FromAxes(ax, ay, az Vec3) Mat3 {
	return Mat3{
		ax[0], ay[0], az[0],
		ax[1], ay[1], az[1],
		ax[2], ay[2], az[2],
	}
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := range 3 {
		for c := range 3 {
			m[r*3+c] = a.Row(r).Dot(b.Col(c))
		}
	}
	return m
}

// At returns the element at row r, column c.
func (m Mat3) At(r, c int) float64 {
	return m[r*3+c]
}

// Row returns row r as a vector.
func (m Mat3) Row(r int) Vec3 {
	return Vec3{m[r*3], m[r*3+1], m[r*3+2]}
}

// Col returns column c as a vector.
func (m Mat3) Col(c int) Vec3 {
	return Vec3{m[c], m[3+c], m[6+c]}
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Det is the scalar triple product of the rows.
func (m Mat3) Det() float64 {
	return m.Row(0).Dot(m.Row(1).Cross(m.Row(2)))
}

// Inverse returns the inverse of m. A singular matrix yields identity.
func (m Mat3) Inverse() Mat3 {
	d := m.Det()
	if d == 0 {
		return Mat3Identity()
	}
	r0, r1, r2 := m.Row(0), m.Row(1), m.Row(2)
	inv := 1 / d
	return Mat3FromAxes(r1.Cross(r2).Scale(inv), r2.Cross(r0).Scale(inv), r0.Cross(r1).Scale(inv))
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat3) ApproxEqual(o Mat3, eps float64) bool {
	for i := range m {
		d := m[i] - o[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}
