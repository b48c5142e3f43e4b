package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
)

func TestInputForms(t *testing.T) {
	want := mathutil.QuatFromAxisAngle(mathutil.AxisY, math.Pi/4)

	for name, tc := range map[string]struct {
		parse    func() (source, error)
		hasOrder bool
	}{
		"angles": {func() (source, error) { return input("xyz", "0, 45, 0", "", "", false) }, true},
		"quat":   {func() (source, error) { return input("", "", "0,0.7653669,0,1.8477591", "", false) }, false},
		"engine": {func() (source, error) { return input("", "", "", "0,0.7853981633974483,0", true) }, false},
	} {
		got, err := tc.parse()
		require.NoError(t, err, name)
		for i := range want {
			assert.InDelta(t, want[i], got.quat.Quat()[i], 1e-6, "%s [%d]", name, i)
		}
		assert.Equal(t, tc.hasOrder, got.hasOrder, name)
	}
}

func TestInputKeepsSourceOrder(t *testing.T) {
	src, err := input("zxz", "10,20,30", "", "", false)
	require.NoError(t, err)
	require.True(t, src.hasOrder)
	assert.Equal(t, euler.ZXZ, src.order)
}

func TestInputErrors(t *testing.T) {
	_, err := input("XYZ", "", "", "", false)
	assert.Error(t, err)

	_, err = input("XYZ", "1,2,3", "0,0,0,1", "", false)
	assert.Error(t, err)

	_, err = input("XQZ", "1,2,3", "", "", false)
	assert.ErrorIs(t, err, euler.ErrUnknownOrder)

	_, err = input("", "", "0,0,0,0", "", false)
	assert.ErrorIs(t, err, mathutil.ErrZeroQuat)

	_, err = input("XYZ", "1,2", "", "", false)
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	a := euler.FromDegrees(10, -20, 30)
	assert.Equal(t, "10.0000, -20.0000, 30.0000", format(a, false))
	assert.Equal(t, "0.1000, 0.2000, 0.3000", format(euler.Angles{0.1, 0.2, 0.3}, true))
}
