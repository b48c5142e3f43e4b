package batch_test

import (
	"encoding/json"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orientkit/internal/anim"
	"orientkit/internal/batch"
	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
	"orientkit/internal/mesh"
	"orientkit/internal/skeleton"
	"orientkit/internal/viewmatrix"
)

func frames(t *testing.T, n int) []anim.Frame {
	t.Helper()
	track, err := anim.NewTrack([]anim.Key{
		{Time: 0, Order: euler.XYZ},
		{Time: 1, Angles: euler.Angles{0, math.Pi / 2, 0}, Order: euler.XYZ},
	})
	require.NoError(t, err)
	fr, err := track.Frames(n)
	require.NoError(t, err)
	return fr
}

func scene(t *testing.T) ([]mesh.Mesh, []skeleton.Joint) {
	t.Helper()
	cube := mesh.Cube(1)
	cube.Bind(0)
	root, err := skeleton.NewJoint("body", -1, mathutil.Vec3{}, euler.Angles{}, euler.XYZ)
	require.NoError(t, err)
	return append([]mesh.Mesh{cube}, mesh.Axes(1.2, 0.05)...), []skeleton.Joint{root}
}

func TestRunWritesFramesAndManifest(t *testing.T) {
	dir := t.TempDir()
	meshes, joints := scene(t)
	cfg := batch.Config{
		OutputDir:   dir,
		Meshes:      meshes,
		Joints:      joints,
		Driven:      0,
		Camera:      viewmatrix.NewCamera([3]float64{-20, 30, 0}, viewmatrix.DefaultFOV),
		RenderSize:  24,
		Supersample: 2,
		Workers:     2,
		Order:       euler.YXZ,
		Keep:        true,
		Quiet:       true,
	}

	results := batch.Run(cfg, frames(t, 5))
	require.Len(t, results, 5)
	for i, r := range results {
		require.True(t, r.Success, "frame %d: %s", i, r.Error)
		assert.Equal(t, i, r.Frame.Index)
		assert.Equal(t, 4, r.Stats.Meshes)

		f, err := os.Open(filepath.Join(dir, filepath.FromSlash(r.Image)))
		require.NoError(t, err)
		img, err := nativewebp.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 24, img.Bounds().Dx())
	}

	path := filepath.Join(dir, "manifest.json")
	require.NoError(t, batch.WriteManifest(path, cfg.Order, results))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []batch.ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, "frames/0004.webp", entries[4].Image)
	assert.Equal(t, "YXZ", entries[4].Order)
	// a quarter turn about Y ends the sweep
	assert.InDelta(t, 90, entries[4].Angles[0], 1e-6)
	assert.InDelta(t, 90, entries[4].Euler[1], 1e-6)

	require.NoError(t, batch.Assemble(dir, results, batch.AssembleOptions{
		Animate:    true,
		FrameDelay: 50 * time.Millisecond,
		SheetCols:  3,
	}))
	for _, name := range []string{batch.AnimationFile, batch.SheetFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	f, err := os.Open(filepath.Join(dir, batch.SheetFile))
	require.NoError(t, err)
	defer f.Close()
	sheet, err := nativewebp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 72, sheet.Bounds().Dx())
	assert.Equal(t, 48, sheet.Bounds().Dy())
}

func TestRunTurnsCameraWithoutJoints(t *testing.T) {
	dir := t.TempDir()
	cfg := batch.Config{
		OutputDir:  dir,
		Meshes:     []mesh.Mesh{mesh.Cube(1)},
		Driven:     -1,
		RenderSize: 16,
		Workers:    1,
		Order:      euler.ZYX,
		Quiet:      true,
	}
	results := batch.Run(cfg, frames(t, 2))
	for _, r := range results {
		require.True(t, r.Success, r.Error)
	}

	// nothing was kept
	require.ErrorIs(t, batch.Assemble(dir, results, batch.AssembleOptions{Animate: true}), batch.ErrNoFrames)
}

func TestRunReportsWriteErrors(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	cfg := batch.Config{
		OutputDir:  blocker,
		Meshes:     []mesh.Mesh{mesh.Cube(1)},
		Driven:     -1,
		RenderSize: 8,
		Workers:    1,
		Quiet:      true,
	}
	results := batch.Run(cfg, frames(t, 1))
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)

	entries := batch.Entries(euler.XYZ, results)
	assert.Empty(t, entries[0].Image)
	assert.Equal(t, results[0].Error, entries[0].Error)
}

func TestPlotAnglesWritesPNG(t *testing.T) {
	results := make([]batch.Result, 0, 4)
	for _, f := range frames(t, 4) {
		results = append(results, batch.Result{Frame: f})
	}

	path := filepath.Join(t.TempDir(), "angles.png")
	require.NoError(t, batch.PlotAngles(path, euler.ZXZ, results))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())

	assert.Error(t, batch.PlotAngles(path, euler.ZXZ, nil))
}
