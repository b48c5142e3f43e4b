// Package postprocess resamples and composes rendered frames.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled square render to targetSize with
// CatmullRom filtering. The scaler reads NRGBA sources premultiplied, so
// transparent edges do not bleed dark halos into the result.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return unpremultiply(dst)
}

// unpremultiply converts src to straight alpha. The kernel overshoots near
// hard edges, so channels are clamped to alpha first.
func unpremultiply(src *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		a := src.Pix[i+3]
		out.Pix[i+3] = a
		if a == 0 {
			continue
		}
		for c := range 3 {
			v := min(src.Pix[i+c], a)
			out.Pix[i+c] = uint8((uint32(v)*255 + uint32(a)/2) / uint32(a))
		}
	}
	return out
}
