package mathutil

import "math"

// AngleDist returns the shortest angular distance between two angles in degrees (0–180).
func AngleDist(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		return 360 - d
	}
	return d
}

// AngleWrapPeriodic maps angle into [from, to).
func AngleWrapPeriodic(angle, from, to float64) float64 {
	rel := angle - from
	period := to - from
	return from + (rel - math.Floor(rel/period)*period)
}

// AngleWrap0To2Pi maps angle into [0, 2π).
func AngleWrap0To2Pi(angle float64) float64 {
	return AngleWrapPeriodic(angle, 0, 2*math.Pi)
}

// ReturningAngle returns the signed rotation that brings angle back into the
// arc [minAngle, maxAngle] (counter-clockwise from min to max) by the shorter
// way, or 0 when it is already inside.
func ReturningAngle(angle, minAngle, maxAngle float64) float64 {
	if minAngle == maxAngle {
		return maxAngle - angle
	}

	angle = AngleWrap0To2Pi(angle)
	minAngle = AngleWrap0To2Pi(minAngle)
	maxAngle = AngleWrap0To2Pi(maxAngle)

	// rotate so that minAngle lands on 0
	rotation := 2*math.Pi - minAngle
	maxAngle = AngleWrap0To2Pi(maxAngle + rotation)
	angle = AngleWrap0To2Pi(angle + rotation)

	if angle > maxAngle {
		toMax := maxAngle - angle
		toMin := 2*math.Pi - angle
		if -toMax > toMin {
			return toMin
		}
		return toMax
	}
	return 0
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// Lerp returns from + t*(to-from).
func Lerp(t, from, to float64) float64 {
	return from + t*(to-from)
}

// SmoothStep evaluates t²(3-2t) after clamping t to [lo, hi] when both are finite.
func SmoothStep(t, lo, hi float64) float64 {
	if !math.IsInf(lo, 0) && !math.IsInf(hi, 0) {
		t = Clamp(t, lo, hi)
	}
	return t * t * (3 - 2*t)
}
