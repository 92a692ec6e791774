package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and the
// user config dir.
const FileName = ".pspec.yaml"

// Output formats.
const (
	FormatUTF8      = "utf8"
	FormatPlaintext = "plaintext"
)

// Color modes.
const (
	ColorYes  = "yes"
	ColorNo   = "no"
	ColorAuto = "auto"
)

// Defaults.
const (
	DefaultFormat   = FormatUTF8
	DefaultColor    = ColorAuto
	DefaultLogLevel = "warn"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	Format     string
	Color      string
	LogLevel   string

	// Flags to track if they were explicitly set by the user
	FormatSet   bool
	ColorSet    bool
	LogLevelSet bool
}

// AppConfig represents the contents of .pspec.yaml.
type AppConfig struct {
	Format    string   `yaml:"pspec_format"`
	Color     string   `yaml:"color"`
	LogLevel  string   `yaml:"log_level"`
	Files     []string `yaml:"files"`
	Functions []string `yaml:"functions"`
	Classes   []string `yaml:"classes"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Format:    DefaultFormat,
		Color:     DefaultColor,
		LogLevel:  DefaultLogLevel,
		Files:     []string{"*_test.go", "*_test"},
		Functions: []string{"Test*"},
		Classes:   []string{"Test*"},
	}
}

// LoadConfig loads the configuration at path, or searches for .pspec.yaml
// when path is empty. A missing file yields the defaults; an explicit path
// that cannot be read is an error.
func LoadConfig(path string) (*AppConfig, error) {
	appCfg := DefaultConfig()

	if path == "" {
		path = getConfigPath()
		if path == "" {
			return appCfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Merge YAML settings onto the defaults. Pattern lists replace the
	// defaults when present, so an explicit empty list disables stripping.
	if fileCfg.Format != "" {
		appCfg.Format = fileCfg.Format
	}
	if fileCfg.Color != "" {
		appCfg.Color = fileCfg.Color
	}
	if fileCfg.LogLevel != "" {
		appCfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Files != nil {
		appCfg.Files = fileCfg.Files
	}
	if fileCfg.Functions != nil {
		appCfg.Functions = fileCfg.Functions
	}
	if fileCfg.Classes != nil {
		appCfg.Classes = fileCfg.Classes
	}
	appCfg.Path = path
	return appCfg, nil
}

// getConfigPath tries to find the .pspec.yaml configuration file.
// It checks the local directory first, then the XDG user config dir.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty path or "/" is not suitable for XDG path construction.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "pspec", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	} else if !errors.Is(err, os.ErrNotExist) {
		// Unreadable: surface it when LoadConfig reads the file.
		return xdgPath
	}
	return ""
}
