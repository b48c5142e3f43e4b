package frustum_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orientkit/internal/frustum"
	"orientkit/internal/mathutil"
)

// 90° square frustum looking down -Z, near 1, far 10.
func testPlanes() frustum.Planes {
	return frustum.Extract(mathutil.Perspective(math.Pi/2, 1, 1, 10))
}

func TestExtractPlanes(t *testing.T) {
	p := testPlanes()
	approx := cmpopts.EquateApprox(0, 1e-9)
	s := math.Sqrt2 / 2

	for name, tc := range map[string]struct{ want, got mathutil.Vec4 }{
		"near":   {mathutil.Vec4{0, 0, -1, -1}, p.Near},
		"far":    {mathutil.Vec4{0, 0, 1, 10}, p.Far},
		"left":   {mathutil.Vec4{s, 0, -s, 0}, p.Left},
		"right":  {mathutil.Vec4{-s, 0, -s, 0}, p.Right},
		"bottom": {mathutil.Vec4{0, s, -s, 0}, p.Bottom},
		"top":    {mathutil.Vec4{0, -s, -s, 0}, p.Top},
	} {
		if diff := cmp.Diff(tc.want, tc.got, approx); diff != "" {
			t.Errorf("%s plane (-want +got):\n%s", name, diff)
		}
	}
}

func TestSphereOutside(t *testing.T) {
	p := testPlanes()
	tests := []struct {
		name   string
		center mathutil.Vec3
		radius float64
		out    bool
	}{
		{"inside", mathutil.Vec3{0, 0, -5}, 0.5, false},
		{"behind camera", mathutil.Vec3{0, 0, 5}, 1, true},
		{"beyond far", mathutil.Vec3{0, 0, -20}, 1, true},
		{"straddles far", mathutil.Vec3{0, 0, -10.5}, 1, false},
		{"far right", mathutil.Vec3{10, 0, -5}, 1, true},
		{"touching right", mathutil.Vec3{6, 0, -5}, 1, false},
		{"above", mathutil.Vec3{0, 9, -5}, 2, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, p.SphereOutside(tc.center, tc.radius))
		})
	}
}

func TestEllipsoidOutside(t *testing.T) {
	p := testPlanes()

	// long thin ellipsoid along X reaches into the frustum from the right
	long := mathutil.Vec3{8, 0, 0}
	thin := mathutil.Vec3{0, 0.1, 0}
	depth := mathutil.Vec3{0, 0, 0.1}
	assert.False(t, p.EllipsoidOutside(mathutil.Vec3{10, 0, -5}, long, thin, depth))

	// same ellipsoid turned along Y stays outside
	assert.True(t, p.EllipsoidOutside(mathutil.Vec3{10, 0, -5}, mathutil.Vec3{0.1, 0, 0}, mathutil.Vec3{0, 8, 0}, depth))

	// a sphere written as an ellipsoid agrees with SphereOutside
	r := mathutil.Vec3{1, 0, 0}
	for _, c := range []mathutil.Vec3{{0, 0, -5}, {0, 0, 5}, {10, 0, -5}} {
		assert.Equal(t, p.SphereOutside(c, 1), p.EllipsoidOutside(c, r, mathutil.Vec3{0, 1, 0}, mathutil.Vec3{0, 0, 1}), "%v", c)
	}
}

func TestPlaneHelpers(t *testing.T) {
	n := frustum.PlaneNormal(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0})
	assert.Equal(t, mathutil.AxisZ, n)

	plane := frustum.PlaneFromPoint(n, mathutil.Vec3{0, 0, 2})
	assert.Equal(t, 1.0, frustum.PointDist(mathutil.Vec3{5, 5, 3}, plane))

	pt, ok := frustum.LinePlaneIntersect(n, plane[3], mathutil.Vec3{1, 1, 0}, mathutil.Vec3{1, 1, 1})
	require.True(t, ok)
	assert.Equal(t, mathutil.Vec3{1, 1, 2}, pt)

	_, ok = frustum.LinePlaneIntersect(n, plane[3], mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 0, 0})
	assert.False(t, ok)
}
