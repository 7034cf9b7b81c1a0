// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	World    WorldConfig    `yaml:"world"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // Vertical field of view in degrees
}

// WorldConfig holds chunk streaming settings.
type WorldConfig struct {
	Seed           int64  `yaml:"seed"`
	RenderDistance int    `yaml:"render_distance"` // Load radius in chunks
	Mesher         string `yaml:"mesher"`          // "greedy" or "faces"
}

// TerrainConfig holds procedural generation settings.
type TerrainConfig struct {
	Scale       float64 `yaml:"scale"`       // Horizontal noise scale
	Octaves     int     `yaml:"octaves"`     // FBM octave count
	Persistence float64 `yaml:"persistence"` // FBM amplitude decay per octave
	BaseHeight  int     `yaml:"base_height"` // Mean surface elevation
	Amplitude   int     `yaml:"amplitude"`   // Max height variation above/below base
	WaterLevel  int     `yaml:"water_level"` // Columns below this get water fill
}

// DataConfig holds asset file paths.
type DataConfig struct {
	AtlasMeta  string `yaml:"atlas_meta"`  // Atlas UV metadata (JSON)
	AtlasImage string `yaml:"atlas_image"` // Atlas texture (PNG)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        70,
		},
		World: WorldConfig{
			Seed:           1337,
			RenderDistance: 8,
			Mesher:         "greedy",
		},
		Terrain: TerrainConfig{
			Scale:       0.05,
			Octaves:     4,
			Persistence: 0.5,
			BaseHeight:  32,
			Amplitude:   32,
			WaterLevel:  28,
		},
		Data: DataConfig{
			AtlasMeta:  "resources/textures/atlas.json",
			AtlasImage: "resources/textures/atlas.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
