// Package batch renders sampled orientation frames in parallel and writes
// them out as WebP images.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"orientkit/internal/anim"
	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
	"orientkit/internal/mesh"
	"orientkit/internal/postprocess"
	"orientkit/internal/raster"
	"orientkit/internal/skeleton"
	"orientkit/internal/texture"
	"orientkit/internal/viewmatrix"

	"github.com/HugoSmits86/nativewebp"
)

// FramesDir is the subdirectory of OutputDir that holds per-frame images.
const FramesDir = "frames"

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Meshes      []mesh.Mesh
	Joints      []skeleton.Joint
	Driven      int // joint whose rotation each frame replaces; -1 turns the camera instead
	Camera      viewmatrix.Camera
	TexResolver texture.Resolver
	RenderSize  int
	Supersample int
	Workers     int
	Order       euler.Order // order of the per-frame angles in the manifest
	Keep        bool        // keep rendered images in Result for Assemble
	Quiet       bool        // no progress output
}

// Result holds the outcome of processing one frame.
type Result struct {
	Frame   anim.Frame
	Image   string // path relative to OutputDir
	Stats   raster.Stats
	Success bool
	Error   string

	img *image.NRGBA
}

// Run renders all frames using a worker pool.
func Run(cfg Config, frames []anim.Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64
	workers := max(cfg.Workers, 1)

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 && !cfg.Quiet {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// pose places the scene for one frame and returns the meshes and camera to
// render it with.
func pose(cfg Config, f anim.Frame) ([]mesh.Mesh, viewmatrix.Camera) {
	cam := cfg.Camera
	if cfg.Driven < 0 || cfg.Driven >= len(cfg.Joints) {
		view := cam.View
		if view == (mathutil.Mat3{}) {
			view = mathutil.Mat3Identity()
		}
		cam.View = mathutil.Mat3Mul(view, f.Rot)
		return skeleton.Pose(cfg.Meshes, cfg.Joints), cam
	}

	joints := make([]skeleton.Joint, len(cfg.Joints))
	copy(joints, cfg.Joints)
	joints[cfg.Driven].Rotation = f.Quat
	return skeleton.Pose(cfg.Meshes, joints), cam
}

func processFrame(cfg Config, f anim.Frame) Result {
	res := Result{
		Frame: f,
		Image: filepath.ToSlash(filepath.Join(FramesDir, fmt.Sprintf("%04d.webp", f.Index))),
	}

	meshes, cam := pose(cfg, f)
	img, st := raster.Render(meshes, cam, cfg.TexResolver, cfg.RenderSize, cfg.Supersample)
	res.Stats = st

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, filepath.FromSlash(res.Image))
	if err := writeWebP(outPath, img); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.Keep {
		res.img = img
	}
	res.Success = true
	return res
}

func writeWebP(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("WebP encode: %w", err)
	}
	return f.Close()
}
