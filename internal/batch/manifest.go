package batch

import (
	"encoding/json"
	"os"

	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index int        `json:"index"`
	Time  float64    `json:"time"`
	Image string     `json:"image,omitempty"`
	Error string     `json:"error,omitempty"`
	Quat  [4]float64 `json:"quat"`      // x, y, z, w
	Euler [3]float64 `json:"euler_deg"` // engine convention, continuous across frames
	Order string     `json:"order"`
	// Angles are the same rotation in Order, degrees.
	Angles    [3]float64 `json:"angles_deg"`
	Meshes    int        `json:"meshes"`
	Culled    int        `json:"culled,omitempty"`
	Triangles int        `json:"triangles"`
}

// Entries builds manifest entries for results, expressing each orientation
// in order as well as in the engine convention.
func Entries(order euler.Order, results []Result) []ManifestEntry {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		f := r.Frame
		e := ManifestEntry{
			Index:     f.Index,
			Time:      f.Time,
			Error:     r.Error,
			Quat:      f.Quat,
			Euler:     f.Euler.Degrees(),
			Order:     order.String(),
			Angles:    euler.FromQuat(mathutil.MustUnitQuat(f.Quat), order).Degrees(),
			Meshes:    r.Stats.Meshes,
			Culled:    r.Stats.Culled,
			Triangles: r.Stats.Triangles,
		}
		if r.Success {
			e.Image = r.Image
		}
		entries[i] = e
	}
	return entries
}

// WriteManifest writes manifest.json to path.
func WriteManifest(path string, order euler.Order, results []Result) error {
	data, err := json.MarshalIndent(Entries(order, results), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
