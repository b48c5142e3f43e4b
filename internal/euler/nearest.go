package euler

import (
	"math"

	"orientkit/internal/mathutil"
)

// singularCY is the cos(y) below which the matrix is treated as gimbal locked.
const singularCY = 0.000001

// EulerToMat3 returns Rz(e[2]) × Ry(e[1]) × Rx(e[0]), the matrix of an
// engine (x, y, z) triple.
func EulerToMat3(e Angles) mathutil.Mat3 {
	return mathutil.Mat3Mul(mathutil.Mat3Mul(mathutil.RotZ(e[2]), mathutil.RotY(e[1])), mathutil.RotX(e[0]))
}

// Mat3Candidates extracts the two engine (x, y, z) triples that produce the
// rotation m. Away from gimbal lock the second triple is the reflection
// (x+π, π-y, z+π) of the first; at gimbal lock only one solution is
// produced, with z fixed to 0, and both results are equal.
func Mat3Candidates(m mathutil.Mat3) (Angles, Angles) {
	r00, r10, r20 := m.At(0, 0), m.At(1, 0), m.At(2, 0)
	cy := math.Hypot(r00, r10)

	if cy > singularCY {
		r21, r22 := m.At(2, 1), m.At(2, 2)
		e1 := Angles{
			math.Atan2(r21, r22),
			math.Atan2(-r20, cy),
			math.Atan2(r10, r00),
		}
		e2 := Angles{
			math.Atan2(-r21, -r22),
			math.Atan2(-r20, -cy),
			math.Atan2(-r10, -r00),
		}
		return e1, e2
	}

	e1 := Angles{
		math.Atan2(-m.At(1, 2), m.At(1, 1)),
		math.Atan2(-r20, cy),
		0,
	}
	return e1, e1
}

// nearest returns whichever candidate is closer to ref; ties keep e1.
func nearest(e1, e2, ref Angles) Angles {
	if e1.Dist(ref) > e2.Dist(ref) {
		return e2
	}
	return e1
}

// QuatToEulerNearest converts q to the engine (x, y, z) triple closest to
// prev. Feeding the previous frame's angles keeps animation curves from
// flipping between the two equivalent solutions.
func QuatToEulerNearest(q mathutil.UnitQuat, prev Angles) Angles {
	e1, e2 := Mat3Candidates(q.Mat3())
	return nearest(e1, e2, prev)
}

// Mat3ToEuler extracts the engine triple of m with the smaller magnitude.
func Mat3ToEuler(m mathutil.Mat3) Angles {
	e1, e2 := Mat3Candidates(m)
	return nearest(e1, e2, Angles{})
}

// RotateEuler applies rotation e and then base, returning the combined
// engine triple.
func RotateEuler(base, e Angles) Angles {
	return Mat3ToEuler(mathutil.Mat3Mul(EulerToMat3(base), EulerToMat3(e)))
}

// CompatibleEuler shifts e by whole turns, and flips single axes by a turn,
// so that it lies as close as possible to old without changing the
// orientation it represents.
func CompatibleEuler(e, old Angles) Angles {
	const (
		piThresh = 5.1
		piX2     = 2 * math.Pi
	)

	var d Angles
	for i := range e {
		d[i] = e[i] - old[i]
		switch {
		case d[i] > piThresh:
			e[i] -= math.Floor(d[i]/piX2+0.5) * piX2
			d[i] = e[i] - old[i]
		case d[i] < -piThresh:
			e[i] += math.Floor(-d[i]/piX2+0.5) * piX2
			d[i] = e[i] - old[i]
		}
	}

	for i := range e {
		j, k := (i+1)%3, (i+2)%3
		if math.Abs(d[i]) > 3.2 && math.Abs(d[j]) < 1.6 && math.Abs(d[k]) < 1.6 {
			if d[i] > 0 {
				e[i] -= piX2
			} else {
				e[i] += piX2
			}
		}
	}
	return e
}
