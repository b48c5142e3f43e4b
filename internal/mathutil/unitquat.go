package mathutil

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrZeroQuat is returned when a quaternion is too short to normalize.
	ErrZeroQuat = errors.New("mathutil: zero-length quaternion")
	// ErrNonFinite is returned when a quaternion holds NaN or Inf.
	ErrNonFinite = errors.New("mathutil: non-finite quaternion")
)

// UnitQuat is a quaternion known to have unit length. The only way to obtain
// one outside this package is NewUnitQuat or MustUnitQuat, both of which
// normalize their input.
type UnitQuat struct {
	q Quat
}

// NewUnitQuat normalizes q.
func NewUnitQuat(q Quat) (UnitQuat, error) {
	for _, c := range q {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return UnitQuat{}, fmt.Errorf("%w: %v", ErrNonFinite, q)
		}
	}
	l := q.Len()
	if l < 1e-12 {
		return UnitQuat{}, fmt.Errorf("%w: %v", ErrZeroQuat, q)
	}
	return UnitQuat{q: Quat{q[0] / l, q[1] / l, q[2] / l, q[3] / l}}, nil
}

// MustUnitQuat is NewUnitQuat for values known to be valid. It panics otherwise.
func MustUnitQuat(q Quat) UnitQuat {
	u, err := NewUnitQuat(q)
	if err != nil {
		panic(err)
	}
	return u
}

// UnitIdentity is the identity rotation.
func UnitIdentity() UnitQuat {
	return UnitQuat{q: QuatIdentity()}
}

// Quat returns the underlying components. The zero UnitQuat reports identity.
func (u UnitQuat) Quat() Quat {
	if u.q == (Quat{}) {
		return QuatIdentity()
	}
	return u.q
}

// Mat3 returns the rotation matrix of u.
func (u UnitQuat) Mat3() Mat3 {
	return QuatToMat3(u.Quat())
}

func (u UnitQuat) String() string {
	q := u.Quat()
	return fmt.Sprintf("(%.6f, %.6f, %.6f, %.6f)", q[0], q[1], q[2], q[3])
}
