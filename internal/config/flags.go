package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagWireframe  = flag.Bool("wireframe", false, "Render the water surface as wireframe")
	flagAnimate    = flag.Bool("animate", false, "Animate the water surface")
	flagSeed       = flag.Int64("seed", 0, "Wave field random seed (0 = time-based)")
	flagExport     = flag.String("export-textures", "", "Directory to write baked textures as PNGs")
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
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagWireframe {
		cfg.Graphics.Wireframe = true
	}
	if *flagAnimate {
		cfg.Ocean.Animated = true
	}
	if *flagSeed != 0 {
		cfg.Ocean.Seed = *flagSeed
	}
	if *flagExport != "" {
		cfg.Bake.ExportDir = *flagExport
	}
}
