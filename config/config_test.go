package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		SWAPI: SWAPIConfig{URL: "https://swapi.dev/api"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing url",
			mutate:  func(cfg *Config) { cfg.SWAPI.URL = "" },
			wantErr: "swapi.url is required",
		},
		{
			name:    "url without scheme",
			mutate:  func(cfg *Config) { cfg.SWAPI.URL = "swapi.dev/api" },
			wantErr: "must be an http(s) URL",
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *Config) { cfg.SWAPI.Timeout = -time.Second },
			wantErr: "swapi.timeout",
		},
		{
			name:    "empty preset",
			mutate:  func(cfg *Config) { cfg.Filter.Presets = map[string]string{"old": " "} },
			wantErr: "filter.presets.old",
		},
		{
			name:    "invalid level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "trace" },
			wantErr: "invalid logging level: trace",
		},
		{
			name:    "invalid format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://swapi.dev/api", cfg.SWAPI.URL)
	assert.Zero(t, cfg.SWAPI.Timeout)
	assert.False(t, cfg.UI.AutoFetch)
	assert.True(t, cfg.UI.AltScreen)
	assert.False(t, cfg.Output.ShowDetails)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "swfilms.yaml")
	content := `
swapi:
  url: http://localhost:9999/api
  timeout: 15s
ui:
  auto_fetch: true
output:
  show_details: true
filter:
  presets:
    originals: Year < 1990
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api", cfg.SWAPI.URL)
	assert.Equal(t, 15*time.Second, cfg.SWAPI.Timeout)
	assert.True(t, cfg.UI.AutoFetch)
	assert.True(t, cfg.Output.ShowDetails)
	assert.Equal(t, map[string]string{"originals": "Year < 1990"}, cfg.Filter.Presets)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  auto_fetch: true\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.UI.AutoFetch)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SWFILMS_SWAPI_URL", "http://127.0.0.1:8080/api")
	t.Setenv("SWFILMS_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/api", cfg.SWAPI.URL)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("logging:\n  level: loud\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}
