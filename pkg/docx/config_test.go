package docx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Strict)
	assert.Equal(t, DocumentPartPattern, cfg.DocumentPattern)
	assert.True(t, cfg.IncludeHeadersFooters)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("DOCXKIND_LOG_LEVEL", "debug")
	t.Setenv("DOCXKIND_STRICT", "yes")
	t.Setenv("DOCXKIND_DOCUMENT_PATTERN", "word/main.xml")
	t.Setenv("DOCXKIND_HEADERS_FOOTERS", "off")

	cfg := ConfigFromEnvironment()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "word/main.xml", cfg.DocumentPattern)
	assert.False(t, cfg.IncludeHeadersFooters)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnvironment_UpperCaseLevel(t *testing.T) {
	t.Setenv("DOCXKIND_LOG_LEVEL", "DEBUG")

	cfg := ConfigFromEnvironment()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ParseLogLevel("debug"), ParseLogLevel(cfg.LogLevel))
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docxkind.toml")
	require.NoError(t, os.WriteFile(path, []byte("strict = true\nlog_level = \"warn\"\n"), 0o644))

	cfg, err := LoadConfigFile(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DocumentPartPattern, cfg.DocumentPattern)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("strict = \n"), 0o644))
	_, err = LoadConfigFile(bad, nil)
	assert.Error(t, err)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.toml"), nil)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"off level", func(c *Config) { c.LogLevel = "off" }, false},
		{"upper-case level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"empty pattern", func(c *Config) { c.DocumentPattern = "" }, true},
		{"bad pattern", func(c *Config) { c.DocumentPattern = "word/[" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
