// Package config handles tool configuration loading and management.
package config

// Config holds all poseblend settings.
type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	Library  LibraryConfig  `yaml:"library"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PlaybackConfig holds evaluation loop settings.
type PlaybackConfig struct {
	// FixedDelta is the simulated frame duration in seconds.
	FixedDelta float32 `yaml:"fixed_delta"`
	// Frames is the default number of frames the play command runs.
	Frames int `yaml:"frames"`
	// Speed is the default clip playback speed multiplier.
	Speed float32 `yaml:"speed"`
}

// LibraryConfig holds clip-set loading settings.
type LibraryConfig struct {
	// Paths are directories searched for clip-set files.
	Paths []string `yaml:"paths"`
	// HotReload enables watching clip-set files for changes.
	HotReload bool `yaml:"hot_reload"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			FixedDelta: 1.0 / 60.0,
			Frames:     60,
			Speed:      1,
		},
		Library: LibraryConfig{
			Paths:     []string{"./clips"},
			HotReload: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
