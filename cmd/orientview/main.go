package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"orientkit/internal/batch"
	"orientkit/internal/config"
	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
	"orientkit/internal/mesh"
	"orientkit/internal/skeleton"
	"orientkit/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: orient-renders)")
	texPath := flag.String("texture", "", "Cube texture (.tga, .bmp, .png, .jpg); default: checkerboard")
	order := flag.String("order", "", "Rotation order for manifest angles (default: XYZ)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 256)")
	frames := flag.Int("frames", 0, "Number of frames to sample (default: 36)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 35)")
	animate := flag.Bool("animate", false, "Also write an animated sequence.webp")
	sheet := flag.Int("sheet", 0, "Also write a contact sheet with this many columns")
	gizmo := flag.Bool("gizmo", false, "Draw world axes")
	plotAngles := flag.Bool("plot", false, "Also write angles.png charting the per-frame angles")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Texture:   *texPath,
		Order:     *order,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
		FOV:       *fov,
	})
	cfg.Animate = cfg.Animate || *animate
	cfg.Gizmo = cfg.Gizmo || *gizmo
	if *sheet > 0 {
		cfg.SheetCols = *sheet
	}

	outOrder, err := cfg.OutputOrder()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	track, err := cfg.Track()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sampled, err := track.Frames(cfg.Frames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Scene: a cube on one joint, optional fixed world axes
	cube := mesh.Cube(cfg.CubeSize)
	cube.Bind(0)
	var texResolver texture.Resolver
	if cfg.Texture != "" {
		texIndex := texture.BuildIndex(filepath.Dir(cfg.Texture))
		texResolver = texture.NewCache(texIndex, func(path string, err error) {
			fmt.Fprintf(os.Stderr, "Warning: texture %s: %v\n", path, err)
		})
		cube.TexName = filepath.Base(cfg.Texture)
		fmt.Printf("Textures: %d indexed\n", texIndex.Len())
	} else {
		cube.TexName = "checker"
		texResolver = texture.Map{
			"checker": texture.Checker(64, 4, [4]uint8{235, 225, 200, 255}, [4]uint8{70, 90, 120, 255}),
		}
	}

	meshes := []mesh.Mesh{cube}
	if cfg.Gizmo {
		meshes = append(meshes, mesh.Axes(cfg.CubeSize*1.2, cfg.CubeSize*0.04)...)
	}
	body, err := skeleton.NewJoint("body", -1, mathutil.Vec3{}, euler.Angles{}, euler.XYZ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	fmt.Printf("Orientation preview → WebP\n")
	fmt.Printf("Keys: %d, Frames: %d, Workers: %d, Order: %s\n", len(track.Keys()), len(sampled), cfg.Workers, outOrder)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Meshes:      meshes,
		Joints:      []skeleton.Joint{body},
		Driven:      0,
		Camera:      cfg.ViewCamera(),
		TexResolver: texResolver,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Order:       outOrder,
		Keep:        cfg.Animate || cfg.SheetCols > 0,
	}

	results := batch.Run(batchCfg, sampled)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(sampled))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors[:min(len(errors), 20)] {
			fmt.Printf("  frame %d: %s\n", e.Frame.Index, e.Error)
		}
	}

	if batchCfg.Keep {
		err := batch.Assemble(cfg.OutputDir, results, batch.AssembleOptions{
			Animate:    cfg.Animate,
			FrameDelay: time.Duration(cfg.FrameDelay) * time.Millisecond,
			SheetCols:  cfg.SheetCols,
			SheetCell:  min(cfg.RenderSize, 128),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	os.MkdirAll(cfg.OutputDir, 0755)

	if *plotAngles {
		plotPath := filepath.Join(cfg.OutputDir, "angles.png")
		if err := batch.PlotAngles(plotPath, outOrder, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("Plot: %s\n", plotPath)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, outOrder, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
