package euler_test

import (
	"math"
	"testing"

	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
)

// angleDiff returns |a-b| folded into [0, π].
func angleDiff(a, b float64) float64 {
	return math.Abs(math.Remainder(a-b, 2*math.Pi))
}

func requireAnglesNear(t *testing.T, want, got euler.Angles, eps float64) {
	t.Helper()
	for i := range want {
		if d := angleDiff(want[i], got[i]); d > eps {
			t.Fatalf("angle[%d]: want %.9f, got %.9f (diff %.3g)", i, want[i], got[i], d)
		}
	}
}

// sameRotation compares quaternions up to sign.
func sameRotation(a, b mathutil.Quat, eps float64) bool {
	var dp, dm float64
	for i := range a {
		dp = math.Max(dp, math.Abs(a[i]-b[i]))
		dm = math.Max(dm, math.Abs(a[i]+b[i]))
	}
	return math.Min(dp, dm) <= eps
}

// middleGrid returns middle angles away from the singularities of o.
func middleGrid(o euler.Order) []float64 {
	if o.Proper() {
		return []float64{0.3, 1.1, 2.0, 2.8}
	}
	return []float64{-1.2, -0.4, 0.5, 1.3}
}

var outerGrid = []float64{-2.5, -1.0, 0.3, 1.7, 3.0}
