// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Well     WellConfig     `yaml:"well"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// WellConfig holds the play-volume dimensions and cube styling. The grid
// dimensions are fixed for the lifetime of a game.
type WellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`

	CubeSize float32 `yaml:"cube_size"`
	CubeGap  float32 `yaml:"cube_gap"`

	GhostAlpha float32 `yaml:"ghost_alpha"`

	Sticker      bool    `yaml:"sticker"`
	StickerInset float32 `yaml:"sticker_inset"`

	LineColor string  `yaml:"line_color"` // #RRGGBB
	LineWidth float32 `yaml:"line_width"`

	StrokeColor string  `yaml:"stroke_color"` // #RRGGBB
	StrokeWidth float32 `yaml:"stroke_width"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	ShowFPS   bool  `yaml:"show_fps"`
	ShowHints bool  `yaml:"show_hints"`
	Seed      int64 `yaml:"seed"` // 0 seeds from the clock
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
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Well: WellConfig{
			Width:        6,
			Height:       14,
			Depth:        6,
			CubeSize:     30,
			CubeGap:      2,
			GhostAlpha:   0.3,
			Sticker:      true,
			StickerInset: 0.12,
			LineColor:    "#4A5568",
			LineWidth:    1,
			StrokeColor:  "#1A202C",
			StrokeWidth:  1,
		},
		Game: GameConfig{
			ShowFPS:   false,
			ShowHints: false,
			Seed:      0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
