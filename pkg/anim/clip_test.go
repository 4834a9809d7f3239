package anim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func riseTrack() *Track {
	return vecTrack("rise", []string{"root.position"}, []float32{0, 1}, [][3]float32{{0, 0, 0}, {0, 10, 0}})
}

func TestClipDefaults(t *testing.T) {
	c := NewClip("rise", riseTrack())

	require.Equal(t, "rise", c.Name())
	require.Equal(t, float32(1), c.Weight())
	require.Equal(t, float32(1), c.Speed())
	require.Equal(t, float32(0), c.Time())
	require.True(t, c.Playing())
	require.False(t, c.Loop())
}

func TestClipAddTimeClampsAtEnd(t *testing.T) {
	c := NewClip("rise", riseTrack())

	c.AddTime(0.4)
	require.InDelta(t, 0.4, c.Time(), 1e-6)

	c.AddTime(2)
	require.InDelta(t, 1.0, c.Time(), 1e-6)

	c.AddTime(-5)
	require.InDelta(t, 0.0, c.Time(), 1e-6)
}

func TestClipSingleKeyTrackClampsTime(t *testing.T) {
	// A one-key track has zero duration; the clock must pin to it
	// instead of growing with every frame.
	c := NewClip("hold", constVecTrack("hold", "root.position", [3]float32{1, 2, 3}))

	c.AddTime(5)
	require.InDelta(t, 0.0, c.Time(), 1e-6)

	c.AddTime(-5)
	require.InDelta(t, 0.0, c.Time(), 1e-6)

	// Looping a zero-duration track behaves the same way.
	c.SetLoop(true)
	c.AddTime(5)
	require.InDelta(t, 0.0, c.Time(), 1e-6)
}

func TestClipAddTimeLoopWraps(t *testing.T) {
	c := NewClip("rise", riseTrack())
	c.SetLoop(true)

	c.AddTime(1.25)
	require.InDelta(t, 0.25, c.Time(), 1e-6)

	c.AddTime(-0.5)
	require.InDelta(t, 0.75, c.Time(), 1e-6)
}

func TestClipSpeedScalesDelta(t *testing.T) {
	c := NewClip("rise", riseTrack())
	c.SetSpeed(2)

	c.AddTime(0.25)
	require.InDelta(t, 0.5, c.Time(), 1e-6)

	c.SetSpeed(-1)
	c.AddTime(0.1)
	require.InDelta(t, 0.4, c.Time(), 1e-6)
}

func TestClipSetTimeResamples(t *testing.T) {
	r := newFakeResolver()
	tgt := r.add("root.position", KindVector, false)

	e := NewEvaluator(r)
	c := NewClip("rise", riseTrack())
	e.AddClip(c)

	c.SetTime(0.8)
	c.Pause()
	e.Update(1)

	// The committed pose comes from the seeked time, not from playback.
	require.InDelta(t, 8.0, tgt.value.Data[1], 1e-5)
}

func TestClipWeightClamped(t *testing.T) {
	c := NewClip("rise", riseTrack())

	c.SetWeight(4)
	require.Equal(t, float32(1), c.Weight())

	c.SetWeight(-2)
	require.Equal(t, float32(0), c.Weight())
}

func TestClipStopAndResume(t *testing.T) {
	c := NewClip("rise", riseTrack())

	c.Stop()
	require.False(t, c.Playing())
	require.Equal(t, float32(0), c.effectiveWeight())

	c.Resume()
	require.True(t, c.Playing())
	require.Equal(t, float32(1), c.effectiveWeight())
}
