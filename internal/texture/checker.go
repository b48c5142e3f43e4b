package texture

import "image"

// Checker builds a size×size checkerboard of cells×cells squares. It is the
// fallback texture when no image file is configured, and makes the
// orientation of each cube face easy to read.
func Checker(size, cells int, a, b [4]uint8) *image.NRGBA {
	if cells < 1 {
		cells = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x*cells/size+y*cells/size)%2 == 1 {
				c = b
			}
			copy(img.Pix[img.PixOffset(x, y):], c[:])
		}
	}
	return img
}
