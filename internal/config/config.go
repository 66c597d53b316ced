// Package config handles terrain sculpting tool configuration.
package config

// Config holds all sculpting tool settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Sculpt  SculptConfig  `yaml:"sculpt"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig describes the surface the tool operates on.
type TerrainConfig struct {
	SizeX            float32 `yaml:"size_x"`            // footprint extent in world units
	SizeY            float32 `yaml:"size_y"`            // vertical height range
	SizeZ            float32 `yaml:"size_z"`            // footprint extent in world units
	HeightResolution int     `yaml:"height_resolution"` // height grid cells per axis
	AlphaResolution  int     `yaml:"alpha_resolution"`  // blend-weight grid cells per axis
	AlphaLayers      int     `yaml:"alpha_layers"`      // ground-texture layer count
	DetailResolution int     `yaml:"detail_resolution"` // density grid cells per axis
	DetailLayers     int     `yaml:"detail_layers"`     // vegetation layer count
}

// SculptConfig holds brush engine settings.
type SculptConfig struct {
	SmoothIterations int           `yaml:"smooth_iterations"`
	SmoothStrength   float32       `yaml:"smooth_strength"`
	DeferredSync     bool          `yaml:"deferred_sync"`
	Brushes          []BrushPreset `yaml:"brushes"`
}

// BrushPreset is a named brush the controller can pick by name.
type BrushPreset struct {
	Name     string  `yaml:"name"`
	RadiusX  float32 `yaml:"radius_x"` // world units
	RadiusZ  float32 `yaml:"radius_z"`
	Amount   float32 `yaml:"amount"`   // signed normalized height delta
	Stamp    string  `yaml:"stamp"`    // optional PNG stamp path
	Rotation float32 `yaml:"rotation"` // stamp rotation in radians
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			SizeX:            500,
			SizeY:            600,
			SizeZ:            500,
			HeightResolution: 513,
			AlphaResolution:  512,
			AlphaLayers:      4,
			DetailResolution: 256,
			DetailLayers:     3,
		},
		Sculpt: SculptConfig{
			SmoothIterations: 2,
			SmoothStrength:   0.3,
			DeferredSync:     true,
			Brushes: []BrushPreset{
				{Name: "raise", RadiusX: 20, RadiusZ: 20, Amount: 0.02},
				{Name: "lower", RadiusX: 20, RadiusZ: 20, Amount: -0.02},
				{Name: "spike", RadiusX: 6, RadiusZ: 6, Amount: 0.1},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
