package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/swfilms/swapi"
)

// EnvPrefix is the prefix for environment overrides, e.g. SWFILMS_SWAPI_URL.
const EnvPrefix = "SWFILMS"

// Load loads the configuration. A missing config file is not an error since
// every setting has a default.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".swfilms"))
		}

		v.AddConfigPath("/etc/swfilms/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit --config path that does not exist is still an error
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("swapi.url", swapi.DefaultBaseURL)
	v.SetDefault("swapi.timeout", "0s")

	v.SetDefault("ui.auto_fetch", false)
	v.SetDefault("ui.alt_screen", true)

	v.SetDefault("output.show_details", false)
	v.SetDefault("output.color", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.file", "")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	url := strings.TrimSpace(cfg.SWAPI.URL)
	if url == "" {
		return fmt.Errorf("swapi.url is required")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("swapi.url must be an http(s) URL: %s", url)
	}

	if cfg.SWAPI.Timeout < 0 {
		return fmt.Errorf("swapi.timeout must not be negative: %s", cfg.SWAPI.Timeout)
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter.presets.%s has an empty expression", name)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
