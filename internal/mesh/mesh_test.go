package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orientkit/internal/mathutil"
	"orientkit/internal/mesh"
)

func TestCube(t *testing.T) {
	c := mesh.Cube(2)
	require.Len(t, c.Verts, 24)
	require.Len(t, c.UVs, 24)
	require.Len(t, c.Tris, 6)
	assert.Equal(t, 12, c.TriangleCount())

	for _, v := range c.Verts {
		for k := 0; k < 3; k++ {
			assert.Contains(t, []float32{-1, 1}, v[k])
		}
	}

	center, radius := mesh.BoundingSphere([]mesh.Mesh{c})
	assert.InDelta(t, 0, center.Len(), 1e-12)
	assert.InDelta(t, 1.7320508075688772, radius, 1e-6)
}

func TestBoxFacesPointOutward(t *testing.T) {
	b := mesh.Box("b", mathutil.Vec3{-1, -2, -3}, mathutil.Vec3{1, 2, 3})
	for i, tri := range b.Tris {
		p := func(j int) mathutil.Vec3 {
			v := b.Verts[tri.VI[j]]
			return mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
		}
		n := p(1).Sub(p(0)).Cross(p(2).Sub(p(0)))
		mid := p(0).Add(p(2)).Scale(0.5)
		assert.Greater(t, n.Dot(mid), 0.0, "face %d", i)
	}
}

func TestAxes(t *testing.T) {
	axes := mesh.Axes(3, 0.2)
	require.Len(t, axes, 3)
	assert.Equal(t, mesh.ColorX, axes[0].Color)
	assert.Empty(t, axes[2].UVs)

	// the Z bar reaches z = 3 and nothing else does
	var maxZ float32
	for _, v := range axes[2].Verts {
		if v[2] > maxZ {
			maxZ = v[2]
		}
	}
	assert.Equal(t, float32(3), maxZ)
}

func TestCloneAndBind(t *testing.T) {
	c := mesh.Cube(1)
	cl := c.Clone()
	cl.Verts[0][0] = 42
	assert.NotEqual(t, float32(42), c.Verts[0][0])

	cl.Bind(2)
	require.Len(t, cl.Nodes, 24)
	assert.Equal(t, int16(2), cl.Nodes[23])
	assert.Nil(t, c.Nodes)
}

func TestBoundingSphereEmpty(t *testing.T) {
	center, radius := mesh.BoundingSphere(nil)
	assert.Equal(t, mathutil.Vec3{}, center)
	assert.Equal(t, 0.0, radius)
}
