// Package library loads animation tracks from YAML clip-set files and
// can watch them for changes during development.
package library

// SetSpec is the on-disk form of a clip set.
type SetSpec struct {
	Name   string      `yaml:"name"`
	Tracks []TrackSpec `yaml:"tracks"`
}

// TrackSpec describes one track: a named, ordered list of curves.
type TrackSpec struct {
	Name   string      `yaml:"name"`
	Curves []CurveSpec `yaml:"curves"`
}

// CurveSpec describes one curve. Input holds the key times; Output
// holds the flattened per-key components (for cubic curves, in-tangent
// / value / out-tangent triplets per key).
type CurveSpec struct {
	Paths         []string  `yaml:"paths"`
	Interpolation string    `yaml:"interpolation"`
	Input         []float32 `yaml:"input"`
	Output        []float32 `yaml:"output"`
}
