// Command inspect audits an orientview manifest.json: it re-derives every
// frame's rotation from the stored angles and reports round-trip error and
// frame-to-frame jumps of the engine Euler curves.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"orientkit/internal/batch"
	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
)

func main() {
	maxStep := flag.Float64("max-step", 30, "Report engine angle steps above this many degrees (L1)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-max-step deg] manifest.json")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	var entries []batch.ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error: parse manifest: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Frames: %d\n", len(entries))

	var worstOrder, worstEngine, worstStep float64
	jumps := 0
	for i, e := range entries {
		q, err := mathutil.NewUnitQuat(mathutil.Quat(e.Quat))
		if err != nil {
			fmt.Printf("  frame %d: bad quaternion: %v\n", e.Index, err)
			continue
		}

		if o, err := euler.ParseOrder(e.Order); err == nil {
			a := euler.FromDegrees(e.Angles[0], e.Angles[1], e.Angles[2])
			worstOrder = math.Max(worstOrder, quatError(q, euler.ToQuat(a, o)))
		} else {
			fmt.Printf("  frame %d: %v\n", e.Index, err)
		}

		eng := euler.FromDegrees(e.Euler[0], e.Euler[1], e.Euler[2])
		worstEngine = math.Max(worstEngine, quatError(q, euler.EulerToQuat(eng)))

		if i > 0 {
			p := entries[i-1].Euler
			step := euler.Angles(e.Euler).Dist(euler.Angles(p))
			worstStep = math.Max(worstStep, step)
			if step > *maxStep {
				jumps++
				fmt.Printf("  frame %d: engine angles jump %.1f° (%.1f, %.1f, %.1f) → (%.1f, %.1f, %.1f)\n",
					e.Index, step, p[0], p[1], p[2], e.Euler[0], e.Euler[1], e.Euler[2])
			}
		}
	}

	fmt.Printf("Max round-trip error: order angles %.2e, engine angles %.2e\n", worstOrder, worstEngine)
	fmt.Printf("Max engine step: %.2f°\n", worstStep)
	if jumps > 0 {
		fmt.Printf("Jumps over %.1f°: %d\n", *maxStep, jumps)
		os.Exit(1)
	}
}

// quatError is the largest component difference, taking q and -q as equal.
func quatError(u mathutil.UnitQuat, b mathutil.Quat) float64 {
	a := u.Quat()
	if a.Dot(b) < 0 {
		b = mathutil.Quat{-b[0], -b[1], -b[2], -b[3]}
	}
	var d float64
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}
	return d
}
