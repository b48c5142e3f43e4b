package euler

import "orientkit/internal/mathutil"

// EngineOrder is the intrinsic sequence the engine stores rotations in.
// Authoring tools hand over (x, y, z) triples that are applied Z first, so
// the triple is reversed before and after conversion.
const EngineOrder = ZYX

// EulerToQuat converts an authoring-tool (x, y, z) triple to a quaternion.
func EulerToQuat(e Angles) mathutil.Quat {
	return ToQuat(e.Reversed(), EngineOrder)
}

// QuatToEuler is the inverse of EulerToQuat.
func QuatToEuler(q mathutil.UnitQuat) Angles {
	return FromQuat(q, EngineOrder).Reversed()
}
