package anim

// Clip is a playable instance of a Track with its own playback state.
// A clip is owned by exactly one Evaluator once added.
type Clip struct {
	name    string
	track   *Track
	time    float32
	speed   float32
	weight  float32
	order   int
	loop    bool
	playing bool
	stopped bool

	// snapshot holds one sampled-value buffer per curve, refreshed by
	// AddTime. Buffers are only valid after the clip's time has been
	// advanced for the current frame.
	snapshot [][]float32
}

// NewClip creates a playing clip over track with full weight and
// unit speed.
func NewClip(name string, track *Track) *Clip {
	c := &Clip{
		name:    name,
		track:   track,
		speed:   1,
		weight:  1,
		playing: true,
	}
	c.snapshot = make([][]float32, len(track.Curves))
	for i := range track.Curves {
		c.snapshot[i] = make([]float32, track.Stride(i))
	}
	c.resample()
	return c
}

// Name returns the clip's human-readable name.
func (c *Clip) Name() string { return c.name }

// Track returns the shared track this clip plays.
func (c *Clip) Track() *Track { return c.track }

// Time returns the current playback time in seconds.
func (c *Clip) Time() float32 { return c.time }

// SetTime seeks to t and refreshes the snapshot without advancing.
func (c *Clip) SetTime(t float32) {
	c.time = t
	c.AddTime(0)
}

// Speed returns the playback speed multiplier.
func (c *Clip) Speed() float32 { return c.speed }

// SetSpeed sets the playback speed multiplier.
func (c *Clip) SetSpeed(s float32) { c.speed = s }

// Weight returns the clip's blend weight.
func (c *Clip) Weight() float32 { return c.weight }

// SetWeight sets the blend weight, clamped to [0, 1].
func (c *Clip) SetWeight(w float32) {
	if w < 0 {
		w = 0
	} else if w > 1 {
		w = 1
	}
	c.weight = w
}

// BlendOrder returns the sort key used to order simultaneous clips.
func (c *Clip) BlendOrder() int { return c.order }

// SetBlendOrder sets the blend-order sort key. Lower orders contribute
// first; ties keep insertion order.
func (c *Clip) SetBlendOrder(order int) { c.order = order }

// Loop reports whether playback wraps at the end of the track.
func (c *Clip) Loop() bool { return c.loop }

// SetLoop sets loop wrap-around behavior.
func (c *Clip) SetLoop(loop bool) { c.loop = loop }

// Playing reports whether the clip's clock advances on update.
func (c *Clip) Playing() bool { return c.playing }

// Pause freezes the clip's clock. The clip keeps contributing its
// current pose at its blend weight.
func (c *Clip) Pause() { c.playing = false }

// Resume restarts the clip's clock after Pause or Stop.
func (c *Clip) Resume() {
	c.playing = true
	c.stopped = false
}

// Stop halts the clip and removes its contribution: its weight is
// treated as zero on the next evaluator pass.
func (c *Clip) Stop() {
	c.playing = false
	c.stopped = true
}

// effectiveWeight is the weight the evaluator blends with. Stopped
// clips contribute nothing.
func (c *Clip) effectiveWeight() float32 {
	if c.stopped {
		return 0
	}
	return c.weight
}

// AddTime advances playback by delta * speed, wrapping when looping and
// clamping at the track end otherwise, then refreshes the snapshot
// buffers at the new time. A zero delta forces a resample.
func (c *Clip) AddTime(delta float32) {
	c.time += delta * c.speed
	dur := c.track.Duration()
	if c.loop && dur > 0 {
		for c.time > dur {
			c.time -= dur
		}
		for c.time < 0 {
			c.time += dur
		}
	} else {
		if c.time > dur {
			c.time = dur
		}
		if c.time < 0 {
			c.time = 0
		}
	}
	c.resample()
}

func (c *Clip) resample() {
	for i := range c.track.Curves {
		c.track.sample(i, c.time, c.snapshot[i])
	}
}
