// Package mesh holds the triangle geometry the preview renderer draws.
package mesh

import (
	"math"

	"orientkit/internal/mathutil"
)

// Triangle holds polygon type and index tuples into vertex/texcoord arrays.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Triangle struct {
	Polygon int
	VI      [4]int16
	TI      [4]int16
}

// Mesh holds geometry for one drawable part.
type Mesh struct {
	Name     string
	Verts    [][3]float32
	Nodes    []int16 // joint index per vertex, -1 = not skinned
	UVs      [][2]float32
	Tris     []Triangle
	TexName  string
	Color    [4]uint8 // used when the mesh has no texture
	Additive bool     // blend on top without depth test
}

// Clone returns a copy whose vertex positions can be modified freely.
// Topology slices are shared.
func (m Mesh) Clone() Mesh {
	c := m
	c.Verts = make([][3]float32, len(m.Verts))
	copy(c.Verts, m.Verts)
	return c
}

// Bind attaches every vertex to one joint.
func (m *Mesh) Bind(joint int) {
	m.Nodes = make([]int16, len(m.Verts))
	for i := range m.Nodes {
		m.Nodes[i] = int16(joint)
	}
}

// TriangleCount counts rasterized triangles, quads counting twice.
func (m Mesh) TriangleCount() int {
	n := 0
	for _, t := range m.Tris {
		if t.Polygon == 4 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// BoundingSphere returns the vertex centroid and the largest distance from
// it. Both follow the mesh rigidly when it rotates about its centroid, which
// keeps framing steady across an orientation sweep.
func BoundingSphere(meshes []Mesh) (center mathutil.Vec3, radius float64) {
	n := 0
	for _, m := range meshes {
		for _, v := range m.Verts {
			center = center.Add(vec(v))
			n++
		}
	}
	if n == 0 {
		return center, 0
	}
	center = center.Scale(1 / float64(n))
	for _, m := range meshes {
		for _, v := range m.Verts {
			radius = math.Max(radius, vec(v).Sub(center).Len())
		}
	}
	return center, radius
}

func vec(v [3]float32) mathutil.Vec3 {
	return mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
