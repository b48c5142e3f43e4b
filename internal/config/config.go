// Package config loads orientview settings from JSON with CLI overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"orientkit/internal/anim"
	"orientkit/internal/euler"
	"orientkit/internal/viewmatrix"
)

// ErrNoKeyframes is returned by Track when the config has no keyframes.
var ErrNoKeyframes = errors.New("config: no keyframes")

// Keyframe is one orientation key as written in the config file.
type Keyframe struct {
	Time   float64    `json:"time"`
	Angles [3]float64 `json:"angles_deg"`
	Order  string     `json:"order"`
}

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	OutputDir string `json:"output_dir"`
	Texture   string `json:"texture"`

	// Render settings
	RenderSize  int        `json:"render_size"`
	Supersample int        `json:"supersample"`
	Workers     int        `json:"workers"`
	FOV         float64    `json:"fov"` // degrees; negative selects orthographic
	Camera      [3]float64 `json:"camera_deg"`
	CubeSize    float64    `json:"cube_size"`
	Gizmo       bool       `json:"gizmo"`

	// Sequence
	Frames     int        `json:"frames"`
	FrameDelay int        `json:"frame_delay_ms"`
	Order      string     `json:"order"`
	Animate    bool       `json:"animate"`
	SheetCols  int        `json:"sheet_cols"`
	Keyframes  []Keyframe `json:"keyframes"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Texture   string
	Order     string
	Size      int
	Frames    int
	Workers   int
	FOV       float64
}

// DefaultKeyframes is a turntable with a tilt through pitch ±30°, given as
// ZYX (yaw, pitch, roll) angles.
func DefaultKeyframes() []Keyframe {
	return []Keyframe{
		{Time: 0, Angles: [3]float64{0, 0, 0}, Order: "ZYX"},
		{Time: 1, Angles: [3]float64{120, 30, 0}, Order: "ZYX"},
		{Time: 2, Angles: [3]float64{240, -30, 0}, Order: "ZYX"},
		{Time: 3, Angles: [3]float64{360, 0, 0}, Order: "ZYX"},
	}
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Order != "" {
		c.Order = flags.Order
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "orient-renders")
	} else if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
	}
	if c.Texture != "" && !filepath.IsAbs(c.Texture) {
		c.Texture = filepath.Join(c.BaseDir, c.Texture)
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FOV < 0 {
		c.FOV = 0
	} else if c.FOV == 0 {
		c.FOV = viewmatrix.DefaultFOV
	}
	if c.CubeSize <= 0 {
		c.CubeSize = 1
	}

	// Defaults for the sequence
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.FrameDelay <= 0 {
		c.FrameDelay = 80
	}
	if c.Order == "" {
		c.Order = "XYZ"
	}
	if len(c.Keyframes) == 0 {
		c.Keyframes = DefaultKeyframes()
	}
}

// OutputOrder parses Order.
func (c *Config) OutputOrder() (euler.Order, error) {
	o, err := euler.ParseOrder(c.Order)
	if err != nil {
		return 0, fmt.Errorf("config: order: %w", err)
	}
	return o, nil
}

// Track converts the keyframes into an animation track.
func (c *Config) Track() (*anim.Track, error) {
	if len(c.Keyframes) == 0 {
		return nil, ErrNoKeyframes
	}
	keys := make([]anim.Key, len(c.Keyframes))
	for i, k := range c.Keyframes {
		o, err := euler.ParseOrder(k.Order)
		if err != nil {
			return nil, fmt.Errorf("config: keyframe %d: %w", i, err)
		}
		keys[i] = anim.Key{
			Time:   k.Time,
			Angles: euler.FromDegrees(k.Angles[0], k.Angles[1], k.Angles[2]),
			Order:  o,
		}
	}
	return anim.NewTrack(keys)
}

// ViewCamera builds the preview camera.
func (c *Config) ViewCamera() viewmatrix.Camera {
	return viewmatrix.NewCamera(c.Camera, c.FOV)
}
