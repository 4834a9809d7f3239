package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagDelta  = flag.Float64("dt", 0, "Fixed frame delta in seconds")
	flagFrames = flag.Int("frames", 0, "Number of frames to evaluate")
	flagSpeed  = flag.Float64("speed", 0, "Clip playback speed multiplier")
	flagWatch  = flag.Bool("watch", false, "Watch clip sets and hot reload")
)

// ParseArgs parses command-line flags from args. Call this before Load.
func ParseArgs(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the positional arguments left after ParseArgs.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDelta > 0 {
		cfg.Playback.FixedDelta = float32(*flagDelta)
	}
	if *flagFrames > 0 {
		cfg.Playback.Frames = *flagFrames
	}
	if *flagSpeed != 0 {
		cfg.Playback.Speed = float32(*flagSpeed)
	}
	if *flagWatch {
		cfg.Library.HotReload = true
	}
}
