package raster

import (
	"image"

	"orientkit/internal/mathutil"
	"orientkit/internal/mesh"
	"orientkit/internal/texture"
	"orientkit/internal/viewmatrix"
)

// Stats counts what one Render call drew.
type Stats struct {
	Meshes    int
	Culled    int
	Triangles int
}

// Render draws posed meshes through cam into a square NRGBA image of
// size*supersample pixels. Meshes whose bounding sphere lies outside the
// view frustum are skipped. Additive meshes are drawn after opaque ones.
func Render(
	meshes []mesh.Mesh,
	cam viewmatrix.Camera,
	texResolver texture.Resolver,
	size int,
	supersample int,
) (*image.NRGBA, Stats) {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	proj := cam.Frame(meshes, renderSize)
	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	var st Stats
	var deferred []int
	for pass := 0; pass < 2; pass++ {
		list := deferred
		if pass == 0 {
			list = make([]int, len(meshes))
			for i := range list {
				list[i] = i
			}
		}
		for _, mi := range list {
			m := &meshes[mi]
			if len(m.Verts) == 0 {
				continue
			}
			if pass == 0 && m.Additive {
				deferred = append(deferred, mi)
				continue
			}

			c, r := mesh.BoundingSphere(meshes[mi : mi+1])
			if !proj.Visible(c, r) {
				st.Culled++
				continue
			}
			st.Meshes++
			st.Triangles += drawMesh(fb, &proj, m, texResolver, &lc)
		}
	}

	return fb.Image(), st
}

func drawMesh(fb *FrameBuffer, proj *viewmatrix.Projection, m *mesh.Mesh, texResolver texture.Resolver, lc *LightConfig) int {
	px, py, pz := proj.ProjectVertices(m.Verts)

	mat := Material{Default: m.Color, Additive: m.Additive}
	if texResolver != nil && m.TexName != "" {
		mat.Tex = texResolver.Resolve(m.TexName)
	}
	if mat.Default[3] == 0 {
		// no flat color: use the texture average, or neutral grey
		mat.Default = [4]uint8{160, 160, 170, 255}
		if mat.Tex != nil {
			mat.Default = averageColor(mat.Tex)
		}
	}

	drawn := 0
	draw := func(vi, ti [3]int) {
		shade, ok := faceShade(proj.View, m.Verts, vi, lc)
		if !ok {
			return
		}
		RasterizeTriangle(fb, px, py, pz, m.UVs, vi, ti, &mat, shade, lc)
		drawn++
	}

	for _, tri := range m.Tris {
		vi := [3]int{int(tri.VI[0]), int(tri.VI[1]), int(tri.VI[2])}
		ti := [3]int{int(tri.TI[0]), int(tri.TI[1]), int(tri.TI[2])}
		draw(vi, ti)

		// Quad: second triangle
		if tri.Polygon == 4 {
			vi2 := [3]int{int(tri.VI[0]), int(tri.VI[2]), int(tri.VI[3])}
			ti2 := [3]int{int(tri.TI[0]), int(tri.TI[2]), int(tri.TI[3])}
			draw(vi2, ti2)
		}
	}
	return drawn
}

// faceShade lights a face by its camera-space normal.
func faceShade(view mathutil.Mat3, verts [][3]float32, vi [3]int, lc *LightConfig) (float64, bool) {
	var p [3]mathutil.Vec3
	for k, i := range vi {
		if i < 0 || i >= len(verts) {
			return 0, false
		}
		v := verts[i]
		p[k] = view.MulVec3(mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])})
	}
	n := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
	if n.Len() < 1e-12 {
		return 0, false
	}
	return lc.ComputeShade(n.Normalize()), true
}

func averageColor(tex *image.NRGBA) [4]uint8 {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return [4]uint8{160, 160, 170, 255}
	}

	var sumR, sumG, sumB float64
	stride := tex.Stride
	for y := 0; y < h; y++ {
		off := y * stride
		for x := 0; x < w; x++ {
			i := off + x*4
			sumR += float64(tex.Pix[i])
			sumG += float64(tex.Pix[i+1])
			sumB += float64(tex.Pix[i+2])
		}
	}
	n := float64(w * h)
	return [4]uint8{uint8(sumR/n + 0.5), uint8(sumG/n + 0.5), uint8(sumB/n + 0.5), 255}
}
