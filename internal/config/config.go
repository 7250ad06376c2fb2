// Package config loads YAML configuration for page generation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits. Generous, but bounded so a malformed config cannot
// push megabytes into the page head.
const (
	MaxTitleLength = 200  // <title> text
	MaxHrefLength  = 2048 // browser URL limit
	MaxStyleLength = 50   // chroma style name
	MaxPathLength  = 4096 // filesystem limit on common platforms
)

// Config holds all configuration for page generation.
type Config struct {
	Page  PageConfig  `yaml:"page"`
	Style StyleConfig `yaml:"style"`
	Input InputConfig `yaml:"input"`
}

// PageConfig defines default page metadata.
type PageConfig struct {
	Title    string `yaml:"title"`    // Default page title (empty = no <title>)
	CSS      string `yaml:"css"`      // Default stylesheet href (empty = no <link>)
	EmbedCSS string `yaml:"embedCss"` // Default CSS file to inline (empty = none)
}

// StyleConfig defines rendering options.
type StyleConfig struct {
	Code string `yaml:"code"` // Chroma style for fenced code blocks (empty = library default)
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultFile string `yaml:"defaultFile"` // Fallback source file (empty = must specify)
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and values.
func (c *Config) Validate() error {
	if err := validateFieldLength("page.title", c.Page.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.css", c.Page.CSS, MaxHrefLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.embedCss", c.Page.EmbedCSS, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.code", c.Style.Code, MaxStyleLength); err != nil {
		return err
	}
	return validateFieldLength("input.defaultFile", c.Input.DefaultFile, MaxPathLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from an explicit file path.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyConfigName
	}
	return loadFile(path)
}

// LoadDefaultConfig searches standard locations and loads the first config
// found. A missing config is not an error: the defaults are returned.
func LoadDefaultConfig() (*Config, error) {
	for _, path := range DefaultSearchPaths() {
		if fileExists(path) {
			return loadFile(path)
		}
	}
	return DefaultConfig(), nil
}

// DefaultSearchPaths returns the locations probed by LoadDefaultConfig,
// in order: current directory, then the user config directory.
func DefaultSearchPaths() []string {
	paths := []string{"md2html.yaml", "md2html.yml"}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(userConfigDir, "md2html", "config.yaml"),
			filepath.Join(userConfigDir, "md2html", "config.yml"),
		)
	}
	return paths
}

// loadFile reads and parses a single config file.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Describe returns a short human-readable summary of the search locations,
// for help output.
func Describe() string {
	return strings.Join(DefaultSearchPaths(), ", ")
}
