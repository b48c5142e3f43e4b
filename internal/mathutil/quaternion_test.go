package mathutil_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gquat "gonum.org/v1/gonum/num/quat"

	"orientkit/internal/mathutil"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func toGonum(q mathutil.Quat) gquat.Number {
	return gquat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

func fromGonum(n gquat.Number) mathutil.Quat {
	return mathutil.Quat{n.Imag, n.Jmag, n.Kmag, n.Real}
}

func TestQuatMulMatchesGonum(t *testing.T) {
	a := mathutil.Quat{0.1, -0.4, 0.7, 0.2}
	b := mathutil.Quat{-0.3, 0.5, 0.05, 0.9}
	want := fromGonum(gquat.Mul(toGonum(a), toGonum(b)))
	if diff := cmp.Diff(want, a.Mul(b), approx); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestQuatRotateMatchesMatrix(t *testing.T) {
	q := mathutil.QuatFromAxisAngle(mathutil.Vec3{1, 2, -1}.Normalize(), 1.3)
	v := mathutil.Vec3{0.5, -2, 3}
	want := mathutil.QuatToMat3(q).MulVec3(v)
	if diff := cmp.Diff(want, q.Rotate(v), approx); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestQuatFromAxis(t *testing.T) {
	for axis, v := range []mathutil.Vec3{mathutil.AxisX, mathutil.AxisY, mathutil.AxisZ} {
		assert.Equal(t, mathutil.QuatFromAxisAngle(v, 0.9), mathutil.QuatFromAxis(axis, 0.9))
		assert.True(t, mathutil.QuatToMat3(mathutil.QuatFromAxis(axis, 0.9)).ApproxEqual(mathutil.RotAxis(axis, 0.9), 1e-12))
	}
}

func TestQuatMat3RoundTrip(t *testing.T) {
	// one rotation per extraction branch: trace > 0, then x, y, z dominant
	for _, q := range []mathutil.Quat{
		mathutil.QuatFromAxisAngle(mathutil.Vec3{0.2, 0.3, 0.9}.Normalize(), 0.5),
		mathutil.QuatFromAxisAngle(mathutil.AxisX, 3.0),
		mathutil.QuatFromAxisAngle(mathutil.AxisY, 3.0),
		mathutil.QuatFromAxisAngle(mathutil.AxisZ, 3.0),
	} {
		got := mathutil.QuatFromMat3(mathutil.QuatToMat3(q))
		if got.Dot(q) < 0 {
			got = mathutil.Quat{-got[0], -got[1], -got[2], -got[3]}
		}
		if diff := cmp.Diff(q, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestAxisAngle(t *testing.T) {
	axis := mathutil.Vec3{0, 0.6, 0.8}
	gotAxis, gotAngle := mathutil.QuatFromAxisAngle(axis, 1.1).AxisAngle()
	assert.InDelta(t, 1.1, gotAngle, 1e-12)
	if diff := cmp.Diff(axis, gotAxis, approx); diff != "" {
		t.Fatalf("axis mismatch (-want +got):\n%s", diff)
	}

	gotAxis, gotAngle = mathutil.QuatIdentity().AxisAngle()
	assert.Equal(t, mathutil.AxisX, gotAxis)
	assert.Equal(t, 0.0, gotAngle)
}

func TestSlerp(t *testing.T) {
	a := mathutil.QuatIdentity()
	b := mathutil.QuatFromAxisAngle(mathutil.AxisZ, 1.0)

	assert.Equal(t, a, mathutil.Slerp(a, b, 0))
	if diff := cmp.Diff(b, mathutil.Slerp(a, b, 1), approx); diff != "" {
		t.Fatalf("t=1 (-want +got):\n%s", diff)
	}
	want := mathutil.QuatFromAxisAngle(mathutil.AxisZ, 0.25)
	if diff := cmp.Diff(want, mathutil.Slerp(a, b, 0.25), approx); diff != "" {
		t.Fatalf("t=0.25 (-want +got):\n%s", diff)
	}

	// the negated endpoint is the same rotation and takes the same path
	nb := mathutil.Quat{-b[0], -b[1], -b[2], -b[3]}
	if diff := cmp.Diff(want, mathutil.Slerp(a, nb, 0.25), approx); diff != "" {
		t.Fatalf("negated (-want +got):\n%s", diff)
	}
}

func TestRotationTo(t *testing.T) {
	tests := []struct {
		name string
		a, b mathutil.Vec3
	}{
		{"orthogonal", mathutil.AxisX, mathutil.AxisY},
		{"oblique", mathutil.Vec3{1, 1, 0}.Normalize(), mathutil.Vec3{0, 0.6, -0.8}},
		{"opposite", mathutil.AxisX, mathutil.AxisMX},
		{"opposite y", mathutil.AxisY, mathutil.AxisMY},
		{"same", mathutil.AxisZ, mathutil.AxisZ},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := mathutil.RotationTo(tc.a, tc.b)
			assert.InDelta(t, 1, q.Len(), 1e-12)
			if diff := cmp.Diff(tc.b, q.Rotate(tc.a), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDirQuat(t *testing.T) {
	dir := mathutil.Vec3{3, 0, 4}
	q := mathutil.DirToQuat(dir, mathutil.AxisMZ)
	got := mathutil.QuatToDir(q, mathutil.AxisMZ)
	if diff := cmp.Diff(dir.Normalize(), got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNewUnitQuat(t *testing.T) {
	u, err := mathutil.NewUnitQuat(mathutil.Quat{0, 0, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, mathutil.Quat{0, 0, 0.6, 0.8}, u.Quat())
	assert.InDelta(t, 1, gquat.Abs(toGonum(u.Quat())), 1e-15)

	_, err = mathutil.NewUnitQuat(mathutil.Quat{})
	assert.ErrorIs(t, err, mathutil.ErrZeroQuat)

	_, err = mathutil.NewUnitQuat(mathutil.Quat{math.NaN(), 0, 0, 1})
	assert.ErrorIs(t, err, mathutil.ErrNonFinite)

	_, err = mathutil.NewUnitQuat(mathutil.Quat{0, math.Inf(1), 0, 1})
	assert.ErrorIs(t, err, mathutil.ErrNonFinite)

	assert.Panics(t, func() { mathutil.MustUnitQuat(mathutil.Quat{}) })
}

func TestUnitQuatZeroValueIsIdentity(t *testing.T) {
	var u mathutil.UnitQuat
	assert.Equal(t, mathutil.QuatIdentity(), u.Quat())
	assert.Equal(t, mathutil.UnitIdentity(), mathutil.MustUnitQuat(mathutil.QuatIdentity()))
	assert.Equal(t, mathutil.Mat3Identity(), u.Mat3())
}
