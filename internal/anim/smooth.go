package anim

import (
	"math"

	"orientkit/internal/mathutil"
)

// Smooth applies exponential smoothing: the result moves from last toward
// curr with time constant period. A zero period returns curr.
func Smooth(curr, last, delta, period float64) float64 {
	if period == 0 {
		return curr
	}
	e := math.Exp(-delta / period)
	return (1-e)*curr + e*last
}

// SmoothVec3 is Smooth applied per component.
func SmoothVec3(curr, last mathutil.Vec3, delta, period float64) mathutil.Vec3 {
	if period == 0 {
		return curr
	}
	e := math.Exp(-delta / period)
	return curr.Lerp(last, e)
}

// SmoothQuat is Smooth for rotations, blending along the great arc.
func SmoothQuat(curr, last mathutil.Quat, delta, period float64) mathutil.Quat {
	if period == 0 {
		return curr
	}
	return mathutil.Slerp(curr, last, math.Exp(-delta/period))
}
