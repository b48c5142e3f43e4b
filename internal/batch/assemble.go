package batch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"orientkit/internal/postprocess"

	"github.com/HugoSmits86/nativewebp"
)

// Output names written by Assemble.
const (
	AnimationFile = "sequence.webp"
	SheetFile     = "sheet.webp"
)

// ErrNoFrames is returned by Assemble when no frame rendered successfully.
var ErrNoFrames = errors.New("batch: no rendered frames kept")

// AssembleOptions selects the combined outputs.
type AssembleOptions struct {
	Animate    bool
	FrameDelay time.Duration
	SheetCols  int // 0 skips the contact sheet
	SheetCell  int // cell size in pixels; 0 uses the frame size
}

// Assemble writes an animated WebP of all successful frames and/or a
// labelled contact sheet. It needs results from a Run with Config.Keep set.
func Assemble(outputDir string, results []Result, opts AssembleOptions) error {
	var imgs []*image.NRGBA
	var labels []string
	for _, r := range results {
		if r.Success && r.img != nil {
			imgs = append(imgs, r.img)
			labels = append(labels, fmt.Sprintf("#%d", r.Frame.Index))
		}
	}
	if len(imgs) == 0 {
		return ErrNoFrames
	}

	if opts.Animate {
		ani := &nativewebp.Animation{
			Images:    make([]image.Image, len(imgs)),
			Durations: make([]uint, len(imgs)),
			Disposals: make([]uint, len(imgs)),
		}
		delay := uint(opts.FrameDelay / time.Millisecond)
		for i, img := range imgs {
			ani.Images[i] = img
			ani.Durations[i] = delay
			ani.Disposals[i] = 1
		}
		if err := writeAnimation(filepath.Join(outputDir, AnimationFile), ani); err != nil {
			return fmt.Errorf("batch: animation: %w", err)
		}
	}

	if opts.SheetCols > 0 {
		cell := opts.SheetCell
		if cell <= 0 {
			cell = imgs[0].Bounds().Dx()
		}
		sheet := postprocess.Sheet(imgs, labels, opts.SheetCols, cell, color.NRGBA{24, 24, 28, 255})
		if err := writeWebP(filepath.Join(outputDir, SheetFile), sheet); err != nil {
			return fmt.Errorf("batch: sheet: %w", err)
		}
	}
	return nil
}

func writeAnimation(path string, ani *nativewebp.Animation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nativewebp.EncodeAll(f, ani, nil); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
