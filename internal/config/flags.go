package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile    = flag.String("log-file", "", "Log file path")
	flagNoDefer    = flag.Bool("no-defer", false, "Disable deferred height sync")
	flagIterations = flag.Int("smooth-iterations", -1, "Smoothing iterations after height edits")
	flagStrength   = flag.Float64("smooth-strength", -1, "Smoothing strength in [0,1]")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagNoDefer {
		cfg.Sculpt.DeferredSync = false
	}
	if *flagIterations >= 0 {
		cfg.Sculpt.SmoothIterations = *flagIterations
	}
	if *flagStrength >= 0 {
		cfg.Sculpt.SmoothStrength = float32(*flagStrength)
	}
}
