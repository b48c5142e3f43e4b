// Package viewmatrix frames posed meshes for the preview camera and projects
// their vertices to screen space.
package viewmatrix

import (
	"math"

	"orientkit/internal/euler"
	"orientkit/internal/frustum"
	"orientkit/internal/mathutil"
	"orientkit/internal/mesh"
)

// DefaultFOV is the default vertical field of view in degrees.
const DefaultFOV = 35.0

// fill is the fraction of the half-image the framing sphere reaches.
const fill = 0.85

// Camera describes how the scene is looked at.
type Camera struct {
	View   mathutil.Mat3 // world → camera rotation
	FOV    float64       // vertical, degrees; <= 0 is orthographic
	Center mathutil.Vec3 // framing center, used when Radius > 0
	Radius float64       // framing radius; 0 fits all meshes
}

// NewCamera builds a camera whose view rotation is given as engine Euler
// angles in degrees.
func NewCamera(deg [3]float64, fov float64) Camera {
	a := euler.FromDegrees(deg[0], deg[1], deg[2])
	return Camera{View: euler.EulerToMat3(a), FOV: fov}
}

// Projection is a camera fitted to one set of meshes at one render size.
type Projection struct {
	View   mathutil.Mat3
	Center mathutil.Vec3 // framing center in view space
	Dist   float64       // camera distance from Center
	Focal  float64       // pixels per unit (orthographic) or per unit at depth 1
	Half   float64
	Persp  bool
	Planes frustum.Planes
}

// Frame fits the camera to meshes for a square image of renderSize pixels.
func (c Camera) Frame(meshes []mesh.Mesh, renderSize int) Projection {
	view := c.View
	if view == (mathutil.Mat3{}) {
		view = mathutil.Mat3Identity()
	}

	center, radius := c.Center, c.Radius
	if radius <= 0 {
		center, radius = mesh.BoundingSphere(meshes)
	}
	if radius < 0.001 {
		radius = 0.001
	}

	p := Projection{
		View:   view,
		Center: view.MulVec3(center),
		Half:   float64(renderSize) / 2,
		Persp:  c.FOV > 0,
	}

	if p.Persp {
		halfFOV := mathutil.Deg2Rad(c.FOV / 2)
		p.Dist = radius / math.Sin(halfFOV)
		p.Focal = fill * p.Half / math.Tan(halfFOV)
		near := p.Dist * 0.01
		far := p.Dist * 100
		// widen the clip volume to the visible image, not the framing fill
		clipFOV := 2 * math.Atan(math.Tan(halfFOV)/fill)
		p.Planes = frustum.Extract(mathutil.Perspective(clipFOV, 1, near, far))
	} else {
		p.Dist = 4 * radius
		p.Focal = fill * p.Half / radius
		e := radius / fill
		p.Planes = frustum.Extract(mathutil.Ortho(-e, e, -e, e, 0, 100*radius))
	}
	return p
}

// toCamera maps a world point into camera space: camera at the origin
// looking down -Z.
func (p *Projection) toCamera(v mathutil.Vec3) mathutil.Vec3 {
	t := p.View.MulVec3(v).Sub(p.Center)
	t[2] -= p.Dist
	return t
}

// Visible reports whether a world-space sphere can touch the image.
func (p *Projection) Visible(center mathutil.Vec3, radius float64) bool {
	return !p.Planes.SphereOutside(p.toCamera(center), radius)
}

// ProjectVertices transforms 3D vertices to 2D screen coordinates.
// Returns px, py, pz slices (screen X, screen Y, depth; larger is nearer).
func (p *Projection) ProjectVertices(verts [][3]float32) ([]float64, []float64, []float64) {
	n := len(verts)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)

	for i := range verts {
		v := mathutil.Vec3{float64(verts[i][0]), float64(verts[i][1]), float64(verts[i][2])}
		t := p.toCamera(v)

		scale := p.Focal
		if p.Persp {
			scale /= math.Max(-t[2], 1e-6)
		}
		px[i] = t[0]*scale + p.Half
		py[i] = -t[1]*scale + p.Half
		pz[i] = t[2]
	}

	return px, py, pz
}
