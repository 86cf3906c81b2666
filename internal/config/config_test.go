package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Marco", cfg.Item.DefaultName)
	assert.Equal(t, "counter", cfg.Item.IDStrategy)
	assert.Equal(t, "New Item", cfg.UI.ButtonLabel)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[item]
default_name = "Polo"
id_strategy = "uuid"

[dispatcher]
trace = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Polo", cfg.Item.DefaultName)
	assert.Equal(t, "uuid", cfg.Item.IDStrategy)
	assert.True(t, cfg.Dispatcher.Trace)
	// Untouched sections keep defaults.
	assert.Equal(t, "Items", cfg.UI.Title)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
ui:
  title: Crew
  button_label: Add
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Crew", cfg.UI.Title)
	assert.Equal(t, "Add", cfg.UI.ButtonLabel)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Marco", cfg.Item.DefaultName)
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "unknown_toml_key",
			file:    "c.toml",
			content: "[item]\ncolour = \"red\"\n",
			check: func(t *testing.T, err error) {
				var pe *ParseError
				assert.ErrorAs(t, err, &pe)
			},
		},
		{
			name:    "malformed_toml",
			file:    "c.toml",
			content: "[item\n",
			check: func(t *testing.T, err error) {
				var pe *ParseError
				assert.ErrorAs(t, err, &pe)
			},
		},
		{
			name:    "unknown_yaml_key",
			file:    "c.yaml",
			content: "ui:\n  colour: red\n",
			check: func(t *testing.T, err error) {
				var pe *ParseError
				assert.ErrorAs(t, err, &pe)
			},
		},
		{
			name:    "unsupported_extension",
			file:    "c.json",
			content: "{}",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()

	err := cfg.ApplyEnv(envMap(map[string]string{
		"FLUXLIST_ITEM_NAME":    "Polo",
		"FLUXLIST_LOG_LEVEL":    "debug",
		"FLUXLIST_METRICS":      "true",
		"FLUXLIST_TRACE":        "0",
		"FLUXLIST_UNRELATED":    "ignored",
		"FLUXLIST_BUTTON_LABEL": "",
	}))
	require.NoError(t, err)

	assert.Equal(t, "Polo", cfg.Item.DefaultName)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Dispatcher.Metrics)
	assert.False(t, cfg.Dispatcher.Trace)
	assert.Equal(t, "", cfg.UI.ButtonLabel)
}

func TestApplyEnv_BadBool(t *testing.T) {
	cfg := Default()

	err := cfg.ApplyEnv(envMap(map[string]string{"FLUXLIST_METRICS": "maybe"}))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad_level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad_strategy", func(c *Config) { c.Item.IDStrategy = "snowflake" }},
		{"empty_name", func(c *Config) { c.Item.DefaultName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestResolve_ExplicitPath(t *testing.T) {
	path := writeFile(t, "config.toml", "[item]\ndefault_name = \"Polo\"\n")
	t.Setenv("FLUXLIST_TITLE", "From env")

	cfg, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "Polo", cfg.Item.DefaultName)
	assert.Equal(t, "From env", cfg.UI.Title)
}

func TestResolve_InvalidEnv(t *testing.T) {
	t.Setenv("FLUXLIST_LOG_LEVEL", "loud")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := Resolve("")
	assert.ErrorIs(t, err, ErrInvalid)
}
