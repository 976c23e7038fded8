package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	SWAPI   SWAPIConfig   `mapstructure:"swapi"`
	UI      UIConfig      `mapstructure:"ui"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SWAPIConfig holds the films API connection details
type SWAPIConfig struct {
	URL string `mapstructure:"url"`
	// Timeout of 0 leaves requests unbounded.
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig contains interactive mode settings
type UIConfig struct {
	AutoFetch bool `mapstructure:"auto_fetch"`
	AltScreen bool `mapstructure:"alt_screen"`
}

// OutputConfig contains plain output settings
type OutputConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
	Color       bool `mapstructure:"color"`
}

// FilterConfig contains filter definitions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
	// File receives logs while the interactive UI owns the terminal.
	File string `mapstructure:"file"`
}
