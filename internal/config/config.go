// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Ocean    OceanConfig    `yaml:"ocean"`
	Bake     BakeConfig     `yaml:"bake"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Wireframe  bool   `yaml:"wireframe"`
}

// OceanConfig holds the wave field parameters.
type OceanConfig struct {
	CenterX      float32 `yaml:"center_x"`
	CenterZ      float32 `yaml:"center_z"`
	Width        float32 `yaml:"width"`
	Length       float32 `yaml:"length"`
	Cols         int     `yaml:"cols"`
	Rows         int     `yaml:"rows"`
	MaxAmplitude float32 `yaml:"max_amplitude"`
	WaveCount    int     `yaml:"wave_count"`
	Variant      string  `yaml:"variant"`
	Animated     bool    `yaml:"animated"`

	// Seed for the wave component draws; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`

	// CorrectedSpeedBias rescales phase speeds against the speed bound
	// instead of reproducing the original frequency-bound bias.
	CorrectedSpeedBias bool `yaml:"corrected_speed_bias"`
}

// BakeConfig holds caustic texture baking settings.
type BakeConfig struct {
	Size int `yaml:"size"` // square texture resolution

	// ExportDir, when set, writes the baked textures there as PNGs.
	ExportDir string `yaml:"export_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the original demo tuning: a 700x700
// window over a 50x50 patch of calm water sampled on a 500x500 grid.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:  "Caustica",
			Width:  700,
			Height: 700,
			VSync:  true,
		},
		Ocean: OceanConfig{
			Width:        50,
			Length:       50,
			Cols:         500,
			Rows:         500,
			MaxAmplitude: 0.1,
			WaveCount:    20,
			Variant:      "directional-rounded",
		},
		Bake: BakeConfig{
			Size: 500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
