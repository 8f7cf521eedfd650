package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/dateutil"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/templates"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxNameLength      = 100
	MaxStyleNameLength = 50
	MaxWorkers         = 64
)

// appDir is the directory under the user config dir searched by LoadConfig.
const appDir = "go-md2docx"

// Config holds all configuration for report generation.
type Config struct {
	Media     MediaConfig     `yaml:"media"`
	Templates TemplatesConfig `yaml:"templates"`
	Output    OutputConfig    `yaml:"output"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Date      DateConfig      `yaml:"date"`
	Data      DataConfig      `yaml:"data"`
	Render    RenderConfig    `yaml:"render"`
}

// MediaConfig locates uploaded files referenced by report data.
type MediaConfig struct {
	Root string `yaml:"root"` // Empty = current directory
}

// TemplatesConfig defines where report templates are looked up.
type TemplatesConfig struct {
	Dir     string `yaml:"dir"`     // Empty = built-in templates only
	Default string `yaml:"default"` // Template used when none is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the data file
}

// MarkdownConfig defines markdown conversion options.
type MarkdownConfig struct {
	Highlight string `yaml:"highlight"` // Chroma style for fenced code, empty = off
}

// DateConfig defines the format_date default.
type DateConfig struct {
	Format string `yaml:"format"` // Layout or preset, empty = YYYY-MM-DD
}

// DataConfig defines report data validation.
type DataConfig struct {
	Schema string `yaml:"schema"` // JSON schema path, empty = built-in
}

// RenderConfig defines batch rendering options.
type RenderConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct{ name, value string }{
		{"media.root", c.Media.Root},
		{"templates.dir", c.Templates.Dir},
		{"output.defaultDir", c.Output.DefaultDir},
		{"data.schema", c.Data.Schema},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Templates.Default != "" {
		if err := validateFieldLength("templates.default", c.Templates.Default, MaxNameLength); err != nil {
			return err
		}
		if err := templates.ValidateName(c.Templates.Default); err != nil {
			return fmt.Errorf("%w: templates.default: %v", ErrInvalidValue, err)
		}
	}

	if err := validateFieldLength("markdown.highlight", c.Markdown.Highlight, MaxStyleNameLength); err != nil {
		return err
	}

	if err := validateFieldLength("date.format", c.Date.Format, dateutil.MaxDateFormatLength); err != nil {
		return err
	}
	if c.Date.Format != "" {
		if err := dateutil.Validate(c.Date.Format); err != nil {
			return fmt.Errorf("%w: date.format: %v", ErrInvalidValue, err)
		}
	}

	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: render.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Render.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration using built-in templates and no highlighting.
func DefaultConfig() *Config {
	return &Config{
		Templates: TemplatesConfig{Default: templates.DefaultName},
		Date:      DateConfig{Format: dateutil.DefaultDateFormat},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2docx/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
