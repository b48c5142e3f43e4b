package raster

import (
	"image"
	"math"
)

// FrameBuffer is the render target. Color aliases the pixels of an NRGBA
// image so finishing a frame needs no copy.
type FrameBuffer struct {
	Width, Height int
	Color         []uint8   // RGBA interleaved, W*H*4
	ZBuf          []float64 // camera-space depth, larger is nearer
	img           *image.NRGBA
}

// NewFrameBuffer returns a transparent buffer with every depth at -inf.
func NewFrameBuffer(w, h int) *FrameBuffer {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  img.Pix,
		ZBuf:   make([]float64, w*h),
		img:    img,
	}
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
	}
	return fb
}

// Image returns the rendered image. It shares memory with the buffer.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return fb.img
}
