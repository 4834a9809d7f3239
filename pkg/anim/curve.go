package anim

// Interpolation selects how a curve is sampled between bracketing keys.
type Interpolation uint8

const (
	// InterpStep holds the left key until the next key time.
	InterpStep Interpolation = iota
	// InterpLinear interpolates components linearly between keys.
	InterpLinear
	// InterpCubic evaluates a cubic Hermite spline. Output samples are
	// in-tangent / value / out-tangent triplets per key.
	InterpCubic
)

// Curve links one or more target paths to an input/output sample-array
// pair inside a Track. Curves are immutable once authored and are shared
// read-only by every clip instantiated from the same track.
type Curve struct {
	// Paths are the target paths this curve drives. A curve may drive
	// several paths, e.g. mirrored bones.
	Paths []string
	// Input is the index of the time-key array in the track samples.
	Input int
	// Output is the index of the value array in the track samples.
	Output int
	// Interp is the interpolation mode used when sampling.
	Interp Interpolation
}
