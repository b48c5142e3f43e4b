package euler

import (
	"math"

	"orientkit/internal/mathutil"
)

// gimbalTest is where YZX and ZYX snap to the ±π/2 degenerate solution.
// Kept just under 0.5 so values that round short of it still take the branch.
const gimbalTest = 0.499999

// ToQuat converts an ordered angle triple to a quaternion using the closed
// forms of NASA TM X-74839, Appendix A. The result is unit length for finite
// input and is not renormalized. An invalid order panics.
func ToQuat(a Angles, o Order) mathutil.Quat {
	o.mustBeValid()

	alpha, beta, gamma := a[0], a[1], a[2]

	s1, c1 := math.Sincos(alpha / 2)
	s2, c2 := math.Sincos(beta / 2)
	s3, c3 := math.Sincos(gamma / 2)

	if o.Proper() {
		s13, c13 := math.Sincos((alpha + gamma) / 2)
		s1_3, c1_3 := math.Sincos((alpha - gamma) / 2)
		s3_1, c3_1 := math.Sincos((gamma - alpha) / 2)

		switch o {
		case XYX:
			return mathutil.Quat{c2 * s13, s2 * c1_3, s2 * s1_3, c2 * c13}
		case YZY:
			return mathutil.Quat{s2 * s1_3, c2 * s13, s2 * c1_3, c2 * c13}
		case ZXZ:
			return mathutil.Quat{s2 * c1_3, s2 * s1_3, c2 * s13, c2 * c13}
		case XZX:
			return mathutil.Quat{c2 * s13, s2 * s3_1, s2 * c3_1, c2 * c13}
		case YXY:
			return mathutil.Quat{s2 * c3_1, c2 * s13, s2 * s3_1, c2 * c13}
		default: // ZYZ
			return mathutil.Quat{s2 * s3_1, s2 * c3_1, c2 * s13, c2 * c13}
		}
	}

	switch o {
	case XYZ:
		return mathutil.Quat{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case YZX:
		return mathutil.Quat{
			c1*c2*s3 + s1*s2*c3,
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*c3 - s1*s2*s3,
		}
	case ZXY:
		return mathutil.Quat{
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			s1*c2*c3 + c1*s2*s3,
			c1*c2*c3 - s1*s2*s3,
		}
	case XZY:
		return mathutil.Quat{
			s1*c2*c3 - c1*s2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*c3 + s1*s2*s3,
		}
	case YXZ:
		return mathutil.Quat{
			c1*s2*c3 + s1*c2*s3,
			s1*c2*c3 - c1*s2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	default: // ZYX
		return mathutil.Quat{
			c1*c2*s3 - s1*s2*c3,
			c1*s2*c3 + s1*c2*s3,
			s1*c2*c3 - c1*s2*s3,
			c1*c2*c3 + s1*s2*s3,
		}
	}
}

// FromQuat recovers one angle triple for q in the given order.
//
// Proper orders return the middle angle in [0, π], Tait-Bryan orders in
// [-π/2, π/2]. Only YZX and ZYX resolve gimbal lock explicitly; the other
// ten orders are not guarded and lose precision near their singularities
// (middle angle 0 or π for proper orders, ±π/2 for Tait-Bryan).
func FromQuat(q mathutil.UnitQuat, o Order) Angles {
	return quatToAngles(q.Quat(), o)
}

// quatToAngles assumes q is unit length. Non-unit input yields NaN where the
// acos/asin argument leaves [-1, 1].
func quatToAngles(q mathutil.Quat, o Order) Angles {
	o.mustBeValid()

	x, y, z, w := q[0], q[1], q[2], q[3]

	switch o {
	case XYX:
		return Angles{
			math.Atan2(x*y+z*w, y*w-x*z),
			math.Acos(1 - 2*(y*y+z*z)),
			math.Atan2(x*y-z*w, x*z+y*w),
		}
	case YZY:
		return Angles{
			math.Atan2(x*w+y*z, z*w-x*y),
			math.Acos(1 - 2*(x*x+z*z)),
			math.Atan2(y*z-x*w, x*y+z*w),
		}
	case ZXZ:
		return Angles{
			math.Atan2(x*z+y*w, x*w-y*z),
			math.Acos(1 - 2*(x*x+y*y)),
			math.Atan2(x*z-y*w, x*w+y*z),
		}
	case XZX:
		return Angles{
			math.Atan2(x*z-y*w, x*y+z*w),
			math.Acos(1 - 2*(y*y+z*z)),
			math.Atan2(x*z+y*w, z*w-x*y),
		}
	case YXY:
		return Angles{
			math.Atan2(x*y-z*w, x*w+y*z),
			math.Acos(1 - 2*(x*x+z*z)),
			math.Atan2(x*y+z*w, x*w-y*z),
		}
	case ZYZ:
		return Angles{
			math.Atan2(y*z-x*w, x*z+y*w),
			math.Acos(1 - 2*(x*x+y*y)),
			math.Atan2(x*w+y*z, y*w-x*z),
		}
	case XYZ:
		return Angles{
			math.Atan2(2*(x*w-y*z), 1-2*(x*x+y*y)),
			math.Asin(2 * (x*z + y*w)),
			math.Atan2(2*(z*w-x*y), 1-2*(y*y+z*z)),
		}
	case YZX:
		test := x*y + z*w
		switch {
		case test > gimbalTest:
			return Angles{0, math.Pi / 2, 2 * math.Atan2(x, w)}
		case test < -gimbalTest:
			return Angles{0, -math.Pi / 2, -2 * math.Atan2(x, w)}
		}
		return Angles{
			math.Atan2(2*(y*w-x*z), 1-2*(y*y+z*z)),
			math.Asin(2 * (x*y + z*w)),
			math.Atan2(2*(x*w-y*z), 1-2*(x*x+z*z)),
		}
	case ZXY:
		return Angles{
			math.Atan2(2*(z*w-x*y), 1-2*(x*x+z*z)),
			math.Asin(2 * (x*w + y*z)),
			math.Atan2(2*(y*w-x*z), 1-2*(x*x+y*y)),
		}
	case XZY:
		return Angles{
			math.Atan2(2*(x*w+y*z), 1-2*(x*x+z*z)),
			math.Asin(2 * (z*w - x*y)),
			math.Atan2(2*(x*z+y*w), 1-2*(y*y+z*z)),
		}
	case YXZ:
		return Angles{
			math.Atan2(2*(x*z+y*w), 1-2*(x*x+y*y)),
			math.Asin(2 * (x*w - y*z)),
			math.Atan2(2*(x*y+z*w), 1-2*(x*x+z*z)),
		}
	default: // ZYX
		test := y*w - x*z
		switch {
		case test > gimbalTest:
			return Angles{0, math.Pi / 2, -2 * math.Atan2(z, w)}
		case test < -gimbalTest:
			return Angles{0, -math.Pi / 2, 2 * math.Atan2(z, w)}
		}
		return Angles{
			math.Atan2(2*(x*y+z*w), 1-2*(y*y+z*z)),
			math.Asin(2 * (y*w - x*z)),
			math.Atan2(2*(x*w+y*z), 1-2*(x*x+y*y)),
		}
	}
}
