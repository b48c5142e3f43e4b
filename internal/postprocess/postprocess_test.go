package postprocess_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orientkit/internal/postprocess"
)

func solid(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func assertNear(t *testing.T, want, got color.NRGBA) {
	t.Helper()
	assert.InDelta(t, int(want.R), int(got.R), 1, "R of %v", got)
	assert.InDelta(t, int(want.G), int(got.G), 1, "G of %v", got)
	assert.InDelta(t, int(want.B), int(got.B), 1, "B of %v", got)
	assert.InDelta(t, int(want.A), int(got.A), 1, "A of %v", got)
}

func TestDownsample(t *testing.T) {
	src := solid(64, color.NRGBA{200, 100, 50, 255})
	out := postprocess.Downsample(src, 16)
	require.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())

	c := out.NRGBAAt(8, 8)
	assert.InDelta(t, 200, int(c.R), 1)
	assert.InDelta(t, 100, int(c.G), 1)
	assert.InDelta(t, 50, int(c.B), 1)
	assert.Equal(t, uint8(255), c.A)

	// already small enough: returned as is
	assert.Same(t, out, postprocess.Downsample(out, 16))
}

func TestDownsampleNoDarkHalo(t *testing.T) {
	// left half transparent black, right half opaque white
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 16; x < 32; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	out := postprocess.Downsample(src, 8)
	for x := 0; x < 8; x++ {
		c := out.NRGBAAt(x, 4)
		if c.A > 16 {
			assert.GreaterOrEqual(t, int(c.R), 250, "x=%d %v", x, c)
		}
	}
}

func TestSheet(t *testing.T) {
	bg := color.NRGBA{10, 20, 30, 255}
	frames := []*image.NRGBA{
		solid(8, color.NRGBA{255, 0, 0, 255}),
		solid(8, color.NRGBA{0, 255, 0, 255}),
		solid(8, color.NRGBA{0, 0, 0, 0}),
	}
	sheet := postprocess.Sheet(frames, nil, 2, 16, bg)
	require.Equal(t, image.Rect(0, 0, 32, 32), sheet.Bounds())

	assertNear(t, color.NRGBA{255, 0, 0, 255}, sheet.NRGBAAt(8, 8))
	assertNear(t, color.NRGBA{0, 255, 0, 255}, sheet.NRGBAAt(24, 8))
	// transparent frame and the empty fourth cell show the background
	assert.Equal(t, bg, sheet.NRGBAAt(8, 24))
	assert.Equal(t, bg, sheet.NRGBAAt(24, 24))
}

func TestSheetLabels(t *testing.T) {
	bg := color.NRGBA{0, 0, 0, 255}
	frames := []*image.NRGBA{nil}
	plain := postprocess.Sheet(frames, nil, 4, 32, bg)
	labeled := postprocess.Sheet(frames, []string{"#0"}, 4, 32, bg)
	require.Equal(t, image.Rect(0, 0, 32, 32), labeled.Bounds())
	assert.NotEqual(t, plain.Pix, labeled.Pix)
}
