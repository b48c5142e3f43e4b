package raster

import "image"

// SampleTexture performs bilinear filtering with UV wrapping.
// Returns RGBA as uint8. Accesses tex.Pix directly for performance.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	fx := wrap01(u) * float64(w-1)
	fy := wrap01(v) * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	// Four texels and their weights
	off := [4]int{
		y0*tex.Stride + x0*4,
		y0*tex.Stride + x1*4,
		y1*tex.Stride + x0*4,
		y1*tex.Stride + x1*4,
	}
	wt := [4]float64{
		(1 - dx) * (1 - dy),
		dx * (1 - dy),
		(1 - dx) * dy,
		dx * dy,
	}

	var out [4]uint8
	for c := 0; c < 4; c++ {
		var sum float64
		for k := 0; k < 4; k++ {
			sum += float64(tex.Pix[off[k]+c]) * wt[k]
		}
		out[c] = uint8(sum + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}

// wrap01 maps a texture coordinate into [0, 1).
func wrap01(t float64) float64 {
	t -= float64(int(t))
	if t < 0 {
		t += 1.0
	}
	return t
}
