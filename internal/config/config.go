package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxEngineName  = 20   // "goldmark", "gomarkdown"
	MaxStyleLength = 50   // chroma style names
)

// Preview engine names accepted in preview.engine.
const (
	EngineGoldmark   = "goldmark"
	EngineGomarkdown = "gomarkdown"
)

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// Config holds the optional settings read from a YAML file.
// Zero values mean "use the built-in default".
type Config struct {
	Template string        `yaml:"template"` // Template name or path (empty = "default")
	Quiet    bool          `yaml:"quiet"`    // Suppress the success message
	Preview  PreviewConfig `yaml:"preview"`
}

// PreviewConfig defines server-side preview options.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Engine  string `yaml:"engine"` // "goldmark" (default) or "gomarkdown"
	Style   string `yaml:"style"`  // chroma style for highlighted code blocks
}

// NotFoundError reports a config name that matched no file.
// It carries the searched paths so callers can suggest one.
type NotFoundError struct {
	Name  string
	Paths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Paths, ", "))
}

// Is makes errors.Is(err, ErrConfigNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("template", c.Template, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.engine", c.Preview.Engine, MaxEngineName); err != nil {
		return err
	}
	if err := validateFieldLength("preview.style", c.Preview.Style, MaxStyleLength); err != nil {
		return err
	}

	if c.Preview.Engine != "" {
		switch strings.ToLower(c.Preview.Engine) {
		case EngineGoldmark, EngineGomarkdown:
			// valid
		default:
			return fmt.Errorf("%w: preview.engine %q (must be %s or %s)",
				ErrInvalidConfig, c.Preview.Engine, EngineGoldmark, EngineGomarkdown)
		}
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

// DefaultConfig returns a configuration with every feature at its default.
func DefaultConfig() *Config {
	return &Config{
		Template: "",
		Preview:  PreviewConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path
// relative to workDir. Otherwise, it's treated as a config name and searched
// in standard locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(workDir, nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = fileutil.Resolve(workDir, nameOrPath)
	} else {
		configPath, err = resolveConfigPath(workDir, nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Name: nameOrPath, Paths: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: workDir, <user config dir>/go-md2html/
func resolveConfigPath(workDir, name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := fileutil.Resolve(workDir, name+ext)
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	dir, err := userConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(dir, "go-md2html", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Paths: triedPaths}
}
