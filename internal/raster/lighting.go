package raster

import (
	"math"

	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
)

// Light is a directional light in camera space. Dir points from the surface
// toward the light.
type Light struct {
	Dir       mathutil.Vec3
	Intensity float64
}

// AimLight places a light by engine Euler angles in degrees, turning the
// camera-facing axis (+Z) onto the light direction.
func AimLight(deg [3]float64, intensity float64) Light {
	q := euler.EulerToQuat(euler.FromDegrees(deg[0], deg[1], deg[2]))
	return Light{
		Dir:       mathutil.QuatToDir(q, mathutil.Vec3{0, 0, 1}).Normalize(),
		Intensity: intensity,
	}
}

// LightConfig is the light rig. It lives in camera space, so it stays put
// while the object turns.
type LightConfig struct {
	Key      Light
	Rim      Light
	Ambient  float64
	Hemi     float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64

	half mathutil.Vec3 // Blinn-Phong half vector of Key and the view axis
}

// NewLightConfig builds a rig from a key and a rim light.
func NewLightConfig(key, rim Light) LightConfig {
	return LightConfig{
		Key:      key,
		Rim:      rim,
		Ambient:  0.35,
		Hemi:     0.30,
		SpecInt:  0.30,
		SpecPow:  16.0,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
		half:     key.Dir.Add(mathutil.Vec3{0, 0, 1}).Normalize(),
	}
}

// DefaultLightConfig returns a key light from the upper right, a cool rim
// from behind and a soft hemisphere fill.
func DefaultLightConfig() LightConfig {
	return NewLightConfig(
		AimLight([3]float64{-40, 35, 0}, 0.90),
		AimLight([3]float64{-25, 145, 0}, 0.35),
	)
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
// Faces are lit from both sides.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	key := math.Abs(normal.Dot(lc.Key.Dir)) * lc.Key.Intensity
	rim := math.Abs(normal.Dot(lc.Rim.Dir)) * lc.Rim.Intensity

	// sky/ground fill peaks on vertical faces
	hemi := ((1.0-math.Abs(normal[1]))*0.5 + 0.5) * lc.Hemi

	spec := math.Pow(math.Max(normal.Dot(lc.half), 0), lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemi + key + rim + spec
}

// Shade maps an sRGB texel through linear-space lighting, ACES tone mapping
// and back to sRGB.
func (lc *LightConfig) Shade(c uint8, shade float64) float64 {
	v := ACESTonemap(srgbToLinear[c] * shade * lc.Exposure)
	return math.Pow(v, lc.InvGamma) * 255
}

var srgbToLinear = func() (t [256]float64) {
	for i := range t {
		t[i] = math.Pow(float64(i)/255.0, 2.2)
	}
	return t
}()

// ACESTonemap applies the ACES filmic curve to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
