package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Sheet lays frames out left to right, top to bottom in a grid of cols
// columns, each scaled into a cell×cell square over bg. labels, when given,
// are drawn in the top-left corner of the matching cell.
func Sheet(frames []*image.NRGBA, labels []string, cols, cell int, bg color.NRGBA) *image.NRGBA {
	if cols < 1 {
		cols = 1
	}
	if cols > len(frames) && len(frames) > 0 {
		cols = len(frames)
	}
	rows := (len(frames) + cols - 1) / cols

	canvas := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.NRGBA{235, 235, 235, 255}),
		Face: basicfont.Face7x13,
	}

	for i, f := range frames {
		x := (i % cols) * cell
		y := (i / cols) * cell
		dstRect := image.Rect(x, y, x+cell, y+cell)
		if f != nil {
			draw.CatmullRom.Scale(canvas, dstRect, f, f.Bounds(), draw.Over, nil)
		}
		if i < len(labels) && labels[i] != "" {
			d.Dot = fixed.P(x+3, y+basicfont.Face7x13.Ascent+2)
			d.DrawString(labels[i])
		}
	}

	return unpremultiply(canvas)
}
