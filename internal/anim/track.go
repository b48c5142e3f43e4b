// Package anim samples rotation keyframes and turns them into Euler curves
// that stay continuous from frame to frame.
package anim

import (
	"errors"
	"fmt"
	"sort"

	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
)

var (
	// ErrEmptyTrack is returned when a track has no keyframes.
	ErrEmptyTrack = errors.New("anim: track has no keyframes")
	// ErrBadFrameCount is returned for a frame count below 1.
	ErrBadFrameCount = errors.New("anim: frame count must be positive")
)

// Key is one keyframe: an angle triple in its own rotation order.
type Key struct {
	Time   float64      `json:"time"`
	Angles euler.Angles `json:"angles"`
	Order  euler.Order  `json:"order"`
}

// Track is a keyframed rotation. Keys are kept sorted by time.
type Track struct {
	keys  []Key
	quats []mathutil.Quat
}

// NewTrack sorts keys by time and converts each to a quaternion. Adjacent
// quaternions are flipped into the same hemisphere so sampling always takes
// the short way round.
func NewTrack(keys []Key) (*Track, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyTrack
	}
	for i, k := range keys {
		if !k.Order.Valid() {
			return nil, fmt.Errorf("anim: key %d: %w: %d", i, euler.ErrUnknownOrder, uint8(k.Order))
		}
	}

	sorted := append([]Key(nil), keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	quats := make([]mathutil.Quat, len(sorted))
	for i, k := range sorted {
		q := euler.ToQuat(k.Angles, k.Order)
		if i > 0 && q.Dot(quats[i-1]) < 0 {
			q = mathutil.Quat{-q[0], -q[1], -q[2], -q[3]}
		}
		quats[i] = q
	}
	return &Track{keys: sorted, quats: quats}, nil
}

// Keys returns the sorted keyframes.
func (t *Track) Keys() []Key {
	return t.keys
}

// Span returns the first and last key times.
func (t *Track) Span() (start, end float64) {
	return t.keys[0].Time, t.keys[len(t.keys)-1].Time
}

// Sample returns the orientation at time tm. Times outside the track clamp to
// the first or last key.
func (t *Track) Sample(tm float64) mathutil.UnitQuat {
	n := len(t.keys)
	if tm <= t.keys[0].Time {
		return mathutil.MustUnitQuat(t.quats[0])
	}
	if tm >= t.keys[n-1].Time {
		return mathutil.MustUnitQuat(t.quats[n-1])
	}

	i := sort.Search(n, func(i int) bool { return t.keys[i].Time > tm })
	k0, k1 := t.keys[i-1], t.keys[i]
	f := (tm - k0.Time) / (k1.Time - k0.Time)
	return mathutil.MustUnitQuat(mathutil.Slerp(t.quats[i-1], t.quats[i], f))
}

// Frame is one sampled orientation.
type Frame struct {
	Index int           `json:"index"`
	Time  float64       `json:"time"`
	Quat  mathutil.Quat `json:"quat"`
	Euler euler.Angles  `json:"euler"`
	Rot   mathutil.Mat3 `json:"-"`
}

// Frames samples n evenly spaced frames over the track and converts each to
// engine Euler angles. Each frame's angles are picked nearest to the previous
// frame's and then shifted by whole turns toward them, so curves do not jump
// even when the rotation passes through gimbal lock.
func (t *Track) Frames(n int) ([]Frame, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadFrameCount, n)
	}

	start, end := t.Span()
	frames := make([]Frame, n)
	var prev euler.Angles
	for i := range frames {
		tm := start
		if n > 1 {
			tm = start + (end-start)*float64(i)/float64(n-1)
		}
		q := t.Sample(tm)

		var e euler.Angles
		if i == 0 {
			e = euler.QuatToEuler(q)
		} else {
			e = euler.CompatibleEuler(euler.QuatToEulerNearest(q, prev), prev)
		}
		prev = e

		frames[i] = Frame{
			Index: i,
			Time:  tm,
			Quat:  q.Quat(),
			Euler: e,
			Rot:   q.Mat3(),
		}
	}
	return frames, nil
}
