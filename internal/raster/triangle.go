package raster

import (
	"image"
	"math"
)

// Material is what a triangle is filled with: a texture when it has UVs,
// otherwise a flat color.
type Material struct {
	Tex      *image.NRGBA
	Default  [4]uint8
	Additive bool
}

// triSetup is the per-triangle state shared by the opaque and additive
// rasterizers.
type triSetup struct {
	x, y, z                [3]float64
	u, v                   [3]float64
	hasUV                  bool
	minX, maxX, minY, maxY int
	invDet                 float64
	dy12, dx21, dy20, dx02 float64
}

func setupTriangle(fb *FrameBuffer, px, py, pz []float64, uvs [][2]float32, vi, ti [3]int, textured bool) (triSetup, bool) {
	var s triSetup
	nv := len(px)
	for k, i := range vi {
		if i < 0 || i >= nv {
			return s, false
		}
		s.x[k], s.y[k], s.z[k] = px[i], py[i], pz[i]
	}

	s.hasUV = textured
	for _, i := range ti {
		if i < 0 || i >= len(uvs) {
			s.hasUV = false
			break
		}
	}
	if s.hasUV {
		for k, i := range ti {
			s.u[k], s.v[k] = float64(uvs[i][0]), float64(uvs[i][1])
		}
	}

	// Bounding box clipped to the buffer
	s.minX = max(int(math.Min(math.Min(s.x[0], s.x[1]), s.x[2])), 0)
	s.maxX = min(int(math.Max(math.Max(s.x[0], s.x[1]), s.x[2]))+1, fb.Width-1)
	s.minY = max(int(math.Min(math.Min(s.y[0], s.y[1]), s.y[2])), 0)
	s.maxY = min(int(math.Max(math.Max(s.y[0], s.y[1]), s.y[2]))+1, fb.Height-1)
	if s.minX >= s.maxX || s.minY >= s.maxY {
		return s, false
	}

	// Barycentric setup
	det := (s.y[1]-s.y[2])*(s.x[0]-s.x[2]) + (s.x[2]-s.x[1])*(s.y[0]-s.y[2])
	if det > -1e-8 && det < 1e-8 {
		return s, false
	}
	s.invDet = 1.0 / det
	s.dy12 = s.y[1] - s.y[2]
	s.dx21 = s.x[2] - s.x[1]
	s.dy20 = s.y[2] - s.y[0]
	s.dx02 = s.x[0] - s.x[2]
	return s, true
}

// weights returns the barycentric coordinates of a pixel center, or false
// when the pixel lies outside the triangle.
func (s *triSetup) weights(sx, sy int) (w0, w1, w2 float64, ok bool) {
	dsx := float64(sx) - s.x[2]
	dsy := float64(sy) - s.y[2]
	w0 = (s.dy12*dsx + s.dx21*dsy) * s.invDet
	w1 = (s.dy20*dsx + s.dx02*dsy) * s.invDet
	w2 = 1.0 - w0 - w1
	if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
		return 0, 0, 0, false
	}
	return w0, w1, w2, true
}

func (s *triSetup) texel(m *Material, w0, w1, w2 float64) (r, g, b, a uint8) {
	if !s.hasUV {
		return m.Default[0], m.Default[1], m.Default[2], m.Default[3]
	}
	u := w0*s.u[0] + w1*s.u[1] + w2*s.u[2]
	v := w0*s.v[0] + w1*s.v[1] + w2*s.v[2]
	return SampleTexture(m.Tex, u, v)
}

// RasterizeTriangle rasterizes a single triangle with texture mapping,
// z-buffer, sRGB color space, the given flat shade and ACES tone mapping.
// Additive materials go through the additive path instead.
//
// This is the HOT PATH; the inner loop does not allocate.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float32,
	vi, ti [3]int,
	m *Material,
	shade float64,
	lc *LightConfig,
) {
	s, ok := setupTriangle(fb, px, py, pz, uvs, vi, ti, m.Tex != nil)
	if !ok {
		return
	}
	if m.Additive {
		rasterizeAdditive(fb, &s, m, shade, lc)
		return
	}

	for sy := s.minY; sy <= s.maxY; sy++ {
		rowOff := sy * fb.Width
		for sx := s.minX; sx <= s.maxX; sx++ {
			w0, w1, w2, inside := s.weights(sx, sy)
			if !inside {
				continue
			}

			z := w0*s.z[0] + w1*s.z[1] + w2*s.z[2]
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := s.texel(m, w0, w1, w2)
			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(lc.Shade(cr, shade))
			fb.Color[pxIdx+1] = clamp255(lc.Shade(cg, shade))
			fb.Color[pxIdx+2] = clamp255(lc.Shade(cb, shade))
			fb.Color[pxIdx+3] = ca
		}
	}
}

// rasterizeAdditive adds the shaded color to the framebuffer without
// testing or writing depth. Used for glow overlays such as the axis gizmo.
func rasterizeAdditive(fb *FrameBuffer, s *triSetup, m *Material, shade float64, lc *LightConfig) {
	for sy := s.minY; sy <= s.maxY; sy++ {
		rowOff := sy * fb.Width
		for sx := s.minX; sx <= s.maxX; sx++ {
			w0, w1, w2, inside := s.weights(sx, sy)
			if !inside {
				continue
			}

			cr, cg, cb, ca := s.texel(m, w0, w1, w2)
			if ca < 8 {
				continue
			}

			fr := lc.Shade(cr, shade)
			fg := lc.Shade(cg, shade)
			ffb := lc.Shade(cb, shade)

			pxIdx := (rowOff + sx) * 4
			fb.Color[pxIdx] = clamp255(float64(fb.Color[pxIdx]) + fr)
			fb.Color[pxIdx+1] = clamp255(float64(fb.Color[pxIdx+1]) + fg)
			fb.Color[pxIdx+2] = clamp255(float64(fb.Color[pxIdx+2]) + ffb)
			// Alpha: use brightness of added color (dark pixels stay transparent)
			lum := fr*0.299 + fg*0.587 + ffb*0.114
			if a := clamp255(lum); a > fb.Color[pxIdx+3] {
				fb.Color[pxIdx+3] = a
			}
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
