package mathutil

import "math"

// RotAxis returns the right-handed rotation by a radians about principal
// axis 0=X, 1=Y or 2=Z.
func RotAxis(axis int, a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	i, j, k := axis, (axis+1)%3, (axis+2)%3
	var m Mat3
	m[i*3+i] = 1
	m[j*3+j], m[j*3+k] = c, -s
	m[k*3+j], m[k*3+k] = s, c
	return m
}

func RotX(a float64) Mat3 { return RotAxis(0, a) }
func RotY(a float64) Mat3 { return RotAxis(1, a) }
func RotZ(a float64) Mat3 { return RotAxis(2, a) }

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
