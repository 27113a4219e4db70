package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagDataset  = flag.String("dataset", "", "Path to dataset YAML")
	flagOutput   = flag.String("out", "", "Output directory for exported meshes")
	flagWidth    = flag.Int("width", 0, "Terrain grid width in cells")
	flagDepth    = flag.Int("depth", 0, "Terrain grid depth in cells")
	flagParallel = flag.Bool("parallel", false, "Tick skyline entities in parallel")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments after ParseFlags.
func Args() []string {
	return flag.Args()
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
	if *flagDataset != "" {
		cfg.Data.Dataset = *flagDataset
	}
	if *flagOutput != "" {
		cfg.Data.OutputDir = *flagOutput
	}
	if *flagWidth > 0 {
		cfg.Terrain.Width = *flagWidth
	}
	if *flagDepth > 0 {
		cfg.Terrain.Depth = *flagDepth
	}
	if *flagParallel {
		cfg.Skyline.Parallel = true
	}
}
