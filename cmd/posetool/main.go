// posetool is a CLI utility for inspecting and playing poseblend clip sets.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/calenhad/poseblend/internal/config"
	"github.com/calenhad/poseblend/internal/library"
	"github.com/calenhad/poseblend/internal/logger"
	"github.com/calenhad/poseblend/internal/scene"
	"github.com/calenhad/poseblend/pkg/anim"
)

var flagTrack = flag.String("track", "", "Play only the named track")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "play":
		cmdPlay(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`posetool - poseblend clip-set utility

Usage:
  posetool <command> [options] <file.yaml>

Commands:
  info <set.yaml>                   Show clip-set contents
  play [options] <set.yaml>         Evaluate a clip set frame by frame

Play options:
  -track <name>   Play only the named track
  -frames <n>     Number of frames to evaluate
  -dt <seconds>   Fixed frame delta
  -speed <mult>   Clip playback speed multiplier
  -watch          Hot-reload the clip set on change
  -debug          Enable debug logging
  -config <path>  Explicit config file

Examples:
  posetool info clips/hero.yaml
  posetool play -frames 120 -dt 0.016 clips/hero.yaml
  posetool play -track walk -watch clips/hero.yaml`)
}

func setup(args []string) (*config.Config, []string) {
	if err := config.ParseArgs(args); err != nil {
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, config.Args()
}

func cmdInfo(args []string) {
	_, rest := setup(args)
	defer logger.Sync()
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: posetool info <set.yaml>")
		os.Exit(1)
	}

	lib, err := library.Load(rest[0])
	if err != nil {
		logger.Fatal("loading clip set", zap.Error(err))
	}

	fmt.Printf("Clip set: %s (%s)\n", lib.Name(), lib.Path())
	for _, name := range lib.Names() {
		track, _ := lib.Track(name)
		fmt.Printf("  %-20s %5.2fs  %d curve(s)\n", name, track.Duration(), len(track.Curves))
		for ci := range track.Curves {
			c := &track.Curves[ci]
			fmt.Printf("    [%s] %s (%d keys, %d comps)\n",
				interpName(c.Interp),
				strings.Join(c.Paths, ", "),
				len(track.Samples[c.Input]),
				track.Stride(ci))
		}
	}
}

func cmdPlay(args []string) {
	cfg, rest := setup(args)
	defer logger.Sync()
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: posetool play [options] <set.yaml>")
		os.Exit(1)
	}

	lib, err := library.Load(rest[0])
	if err != nil {
		logger.Fatal("loading clip set", zap.Error(err))
	}

	// Build a scene skeleton from the paths the curves drive, then
	// bind clips against it.
	root := buildScene(lib)
	resolver := scene.NewResolver(root)
	eval := anim.NewEvaluator(resolver)
	addClips(eval, lib, cfg)

	var watcher *library.Watcher
	if cfg.Library.HotReload {
		watcher, err = library.NewWatcher(filepath.Dir(lib.Path()))
		if err != nil {
			logger.Fatal("starting clip-set watcher", zap.Error(err))
		}
		defer watcher.Close()
		logger.Info("watching for clip-set changes", zap.String("dir", filepath.Dir(lib.Path())))
	}

	paths := drivenPaths(lib)
	logger.Info("playing clip set",
		zap.String("set", lib.Name()),
		zap.Int("clips", eval.ClipCount()),
		zap.Int("frames", cfg.Playback.Frames),
		zap.Float64("dt", float64(cfg.Playback.FixedDelta)))

	for frame := 0; frame < cfg.Playback.Frames; frame++ {
		if watcher != nil {
			select {
			case changed := <-watcher.Events:
				if changed == lib.Path() {
					reload(eval, lib, cfg)
				}
			case werr := <-watcher.Errors:
				logger.Warn("clip-set watcher", zap.Error(werr))
			default:
			}
		}

		eval.Update(cfg.Playback.FixedDelta)
		printFrame(frame, resolver, paths)
	}
}

// buildScene creates a node for every node path the library's curves
// reference.
func buildScene(lib *library.Library) *scene.Node {
	root := scene.NewNode("root")
	for _, path := range drivenPaths(lib) {
		if dot := strings.IndexByte(path, '.'); dot > 0 {
			root.Ensure(path[:dot])
		}
	}
	return root
}

func addClips(eval *anim.Evaluator, lib *library.Library, cfg *config.Config) {
	for _, name := range lib.Names() {
		if *flagTrack != "" && name != *flagTrack {
			continue
		}
		track, _ := lib.Track(name)
		clip := anim.NewClip(name, track)
		clip.SetLoop(true)
		clip.SetSpeed(cfg.Playback.Speed)
		eval.AddClip(clip)
	}
	if eval.ClipCount() == 0 {
		logger.Fatal("no tracks matched", zap.String("track", *flagTrack))
	}
}

// reload swaps the evaluator's clips for freshly loaded tracks while
// keeping the scene bindings coherent.
func reload(eval *anim.Evaluator, lib *library.Library, cfg *config.Config) {
	if err := lib.Reload(); err != nil {
		logger.Warn("reload failed, keeping previous tracks", zap.Error(err))
		return
	}
	eval.RemoveClips()
	addClips(eval, lib, cfg)
	eval.Rebind()
	logger.Info("clip set reloaded", zap.String("set", lib.Name()))
}

func drivenPaths(lib *library.Library) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, name := range lib.Names() {
		track, _ := lib.Track(name)
		for ci := range track.Curves {
			for _, p := range track.Curves[ci].Paths {
				if !seen[p] {
					seen[p] = true
					paths = append(paths, p)
				}
			}
		}
	}
	return paths
}

func printFrame(frame int, resolver *scene.Resolver, paths []string) {
	fmt.Printf("frame %4d", frame)
	for _, path := range paths {
		h, ok := resolver.Resolve(path)
		if !ok {
			continue
		}
		v := h.Get()
		switch v.Kind {
		case anim.KindScalar:
			fmt.Printf("  %s=%.3f", path, v.Float())
		case anim.KindVector:
			vec := v.Vec3()
			fmt.Printf("  %s=(%.3f %.3f %.3f)", path, vec.X, vec.Y, vec.Z)
		case anim.KindQuaternion:
			q := v.Quat()
			fmt.Printf("  %s=(%.3f %.3f %.3f %.3f)", path, q.X, q.Y, q.Z, q.W)
		}
	}
	fmt.Println()
}

func interpName(i anim.Interpolation) string {
	switch i {
	case anim.InterpStep:
		return "step"
	case anim.InterpCubic:
		return "cubic"
	default:
		return "linear"
	}
}
