package docx

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
)

// Config contains the options for detection and scanning
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `toml:"log_level"`
	// Strict additionally requires [Content_Types].xml to declare a
	// word-processing main part.
	Strict bool `toml:"strict"`
	// DocumentPattern is the glob that main document parts must match.
	DocumentPattern string `toml:"document_pattern"`
	// IncludeHeadersFooters makes PackageScanner.Scan also scan header and footer parts.
	IncludeHeadersFooters bool `toml:"include_headers_footers"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:              "info",
		Strict:                false,
		DocumentPattern:       DocumentPartPattern,
		IncludeHeadersFooters: true,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DOCXKIND_LOG_LEVEL
	if val := os.Getenv("DOCXKIND_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// DOCXKIND_STRICT
	if val := os.Getenv("DOCXKIND_STRICT"); val != "" {
		config.Strict = parseBool(val)
	}

	// DOCXKIND_DOCUMENT_PATTERN
	if val := os.Getenv("DOCXKIND_DOCUMENT_PATTERN"); val != "" {
		config.DocumentPattern = val
	}

	// DOCXKIND_HEADERS_FOOTERS
	if val := os.Getenv("DOCXKIND_HEADERS_FOOTERS"); val != "" {
		config.IncludeHeadersFooters = parseBool(val)
	}

	return config
}

// LoadConfigFile reads a TOML file on top of base. Keys absent from the file
// keep base's values. A missing file is an error.
func LoadConfigFile(path string, base *Config) (*Config, error) {
	if base == nil {
		base = DefaultConfig()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := *base
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.DocumentPattern == "" {
		return errors.New("document pattern cannot be empty")
	}
	if !doublestar.ValidatePattern(c.DocumentPattern) {
		return errors.New("invalid document pattern: " + c.DocumentPattern)
	}

	return nil
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
