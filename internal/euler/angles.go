package euler

import "math"

// Angles is an Euler angle triple in radians. Its meaning depends on the
// Order it is paired with.
type Angles [3]float64

// Dist returns the L1 distance between two triples.
func (a Angles) Dist(b Angles) float64 {
	return math.Abs(a[0]-b[0]) + math.Abs(a[1]-b[1]) + math.Abs(a[2]-b[2])
}

// Reversed swaps the first and third angles.
func (a Angles) Reversed() Angles {
	return Angles{a[2], a[1], a[0]}
}

// Degrees converts each angle to degrees.
func (a Angles) Degrees() [3]float64 {
	return [3]float64{a[0] * 180 / math.Pi, a[1] * 180 / math.Pi, a[2] * 180 / math.Pi}
}

// FromDegrees builds a triple from degrees.
func FromDegrees(x, y, z float64) Angles {
	return Angles{x * math.Pi / 180, y * math.Pi / 180, z * math.Pi / 180}
}
