package library

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/calenhad/poseblend/pkg/anim"
)

// Library holds the tracks decoded from one clip-set file, keyed by
// track name. It is not safe for concurrent use; reload from the same
// goroutine that evaluates.
type Library struct {
	path   string
	name   string
	tracks map[string]*anim.Track
}

// Load reads and validates a clip-set file.
func Load(path string) (*Library, error) {
	l := &Library{path: path}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads the library's file. On failure the previously loaded
// tracks are kept.
func (l *Library) Reload() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("reading clip set %s: %w", l.path, err)
	}

	var spec SetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("parsing clip set %s: %w", l.path, err)
	}

	tracks := make(map[string]*anim.Track, len(spec.Tracks))
	for i := range spec.Tracks {
		track, err := buildTrack(&spec.Tracks[i])
		if err != nil {
			return fmt.Errorf("clip set %s: %w", l.path, err)
		}
		tracks[track.Name] = track
	}

	l.name = spec.Name
	l.tracks = tracks
	return nil
}

// Name returns the clip set's declared name.
func (l *Library) Name() string { return l.name }

// Path returns the file the library was loaded from.
func (l *Library) Path() string { return l.path }

// Track returns the named track.
func (l *Library) Track(name string) (*anim.Track, bool) {
	t, ok := l.tracks[name]
	return t, ok
}

// Names returns the track names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.tracks))
	for name := range l.tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildTrack validates a track spec and converts it to the evaluator's
// immutable form. Each curve gets its own input and output sample
// arrays appended to the track.
func buildTrack(spec *TrackSpec) (*anim.Track, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("track with no name")
	}

	track := &anim.Track{Name: spec.Name}
	for ci := range spec.Curves {
		c := &spec.Curves[ci]
		if len(c.Paths) == 0 {
			return nil, fmt.Errorf("track %s: curve %d drives no paths", spec.Name, ci)
		}
		if len(c.Input) == 0 {
			return nil, fmt.Errorf("track %s: curve %d has no keys", spec.Name, ci)
		}

		interp, err := parseInterpolation(c.Interpolation)
		if err != nil {
			return nil, fmt.Errorf("track %s: curve %d: %w", spec.Name, ci, err)
		}

		per := len(c.Output) / len(c.Input)
		if per == 0 || len(c.Output)%len(c.Input) != 0 {
			return nil, fmt.Errorf("track %s: curve %d: %d output samples do not divide evenly over %d keys",
				spec.Name, ci, len(c.Output), len(c.Input))
		}
		if interp == anim.InterpCubic && per%3 != 0 {
			return nil, fmt.Errorf("track %s: curve %d: cubic output needs tangent/value/tangent triplets per key",
				spec.Name, ci)
		}

		in := len(track.Samples)
		track.Samples = append(track.Samples, c.Input)
		out := len(track.Samples)
		track.Samples = append(track.Samples, c.Output)

		track.Curves = append(track.Curves, anim.Curve{
			Paths:  c.Paths,
			Input:  in,
			Output: out,
			Interp: interp,
		})
	}
	return track, nil
}

func parseInterpolation(s string) (anim.Interpolation, error) {
	switch s {
	case "step":
		return anim.InterpStep, nil
	case "linear", "":
		return anim.InterpLinear, nil
	case "cubic":
		return anim.InterpCubic, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %q", s)
	}
}
