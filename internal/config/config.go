// Package config loads optional yaml2pdf settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-yaml2pdf/internal/dateutil"
	"github.com/alnah/go-yaml2pdf/internal/fileutil"
	"github.com/alnah/go-yaml2pdf/internal/validutil"
	"github.com/alnah/go-yaml2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Accepted values, compared after lowercasing.
var (
	PageSizes    = []any{"a4", "letter", "legal"}
	Orientations = []any{"portrait", "landscape"}
	FontFamilies = []any{"arial", "helvetica", "times", "courier"}
)

// MaxMargin bounds each page margin in millimeters.
const MaxMargin = 100.0

// userConfigDirName is the directory searched under os.UserConfigDir.
const userConfigDirName = "yaml2pdf"

// Config holds all optional settings for report generation.
// Zero values mean "use the built-in default".
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Page     PageConfig     `yaml:"page"`
	Style    StyleConfig    `yaml:"style"`
	Document DocumentConfig `yaml:"document"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = working directory
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string        `yaml:"size"`        // "a4", "letter", "legal" (default: "a4")
	Orientation string        `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margins     MarginsConfig `yaml:"margins"`
}

// MarginsConfig holds page margins in millimeters. Zero keeps the default.
type MarginsConfig struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// StyleConfig defines typography options.
type StyleConfig struct {
	FontFamily string `yaml:"fontFamily"` // Core PDF font (default: "arial")
}

// DocumentConfig defines defaults applied to every rendered document.
type DocumentConfig struct {
	DateFormat string `yaml:"dateFormat"` // strftime pattern or preset, used when the document has none
}

// Validate normalizes enumerated fields to lowercase and checks all values.
// Called automatically by LoadConfig, but available for callers who build
// a Config from other sources (environment, flags).
func (c *Config) Validate() error {
	if err := c.Page.Validate(); err != nil {
		return fmt.Errorf("%w: page: %w", ErrConfigInvalid, err)
	}
	if err := c.Style.Validate(); err != nil {
		return fmt.Errorf("%w: style: %w", ErrConfigInvalid, err)
	}
	if err := c.Document.Validate(); err != nil {
		return fmt.Errorf("%w: document: %w", ErrConfigInvalid, err)
	}
	return nil
}

// Validate validates the page configuration.
func (c *PageConfig) Validate() error {
	c.Size = strings.ToLower(c.Size)
	c.Orientation = strings.ToLower(c.Orientation)

	if err := validation.ValidateStruct(c,
		validation.Field(&c.Size, validation.In(PageSizes...)),
		validation.Field(&c.Orientation, validation.In(Orientations...)),
	); err != nil {
		return err
	}
	return c.Margins.Validate()
}

// Validate validates the margins configuration.
func (c *MarginsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Left, validation.Min(0.0), validation.Max(MaxMargin)),
		validation.Field(&c.Right, validation.Min(0.0), validation.Max(MaxMargin)),
		validation.Field(&c.Top, validation.Min(0.0), validation.Max(MaxMargin)),
		validation.Field(&c.Bottom, validation.Min(0.0), validation.Max(MaxMargin)),
	)
}

// Validate validates the style configuration.
func (c *StyleConfig) Validate() error {
	c.FontFamily = strings.ToLower(c.FontFamily)
	return validation.ValidateStruct(c,
		validation.Field(&c.FontFamily, validation.In(FontFamilies...)),
	)
}

// Validate validates the document configuration.
func (c *DocumentConfig) Validate() error {
	return validutil.ValidateStruct(c,
		validation.Field(&c.DateFormat, validation.By(validDateFormat)),
	)
}

func validDateFormat(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	return dateutil.Validate(dateutil.ResolvePreset(s))
}

// DefaultConfig returns a configuration where every field falls back to
// the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the locations tried for a config name, in order:
// current directory, then the user config directory, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
