package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/pspec/pkg/model"
)

// Resolution sources, recorded per value for debugging.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// ResolvedConfig holds the final configuration after applying all priority
// rules.
type ResolvedConfig struct {
	Format   string
	Color    string
	LogLevel log.Level
	Patterns model.PatternConfig

	// Resolution metadata
	ConfigPath     string
	FormatSource   string
	ColorSource    string
	LogLevelSource string
}

// ResolveConfig resolves configuration from all sources with explicit
// priority order: CLI > environment > file > defaults.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg, err := LoadConfig(cliFlags.ConfigPath)
	if err != nil {
		return nil, err
	}

	fileSource := SourceDefault
	if appCfg.Path != "" {
		fileSource = SourceFile
	}

	format, formatSource := resolve(cliFlags.Format, cliFlags.FormatSet, appCfg.Format, fileSource, "PSPEC_FORMAT")
	color, colorSource := resolve(cliFlags.Color, cliFlags.ColorSet, appCfg.Color, fileSource, "PSPEC_COLOR")
	if !cliFlags.ColorSet && colorSource != SourceEnv && os.Getenv("NO_COLOR") != "" {
		color, colorSource = ColorNo, SourceEnv
	}
	level, levelSource := resolve(cliFlags.LogLevel, cliFlags.LogLevelSet, appCfg.LogLevel, fileSource, "PSPEC_LOG_LEVEL")

	resolved := &ResolvedConfig{
		Format: format,
		Color:  color,
		Patterns: model.PatternConfig{
			Files:     appCfg.Files,
			Functions: appCfg.Functions,
			Classes:   appCfg.Classes,
		},
		ConfigPath:     appCfg.Path,
		FormatSource:   formatSource,
		ColorSource:    colorSource,
		LogLevelSource: levelSource,
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: invalid log_level %q (%s): %w", level, levelSource, err)
	}
	resolved.LogLevel = parsed

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// UseColor reports whether ANSI colour should be emitted for an output
// that is (or is not) a terminal.
func (c *ResolvedConfig) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorYes:
		return true
	case ColorNo:
		return false
	default:
		return isTerminal
	}
}

// resolve picks a string value by priority and reports where it came from.
func resolve(cli string, cliSet bool, file, fileSource, envKey string) (string, string) {
	if cliSet {
		return cli, SourceCLI
	}
	if v := os.Getenv(envKey); v != "" {
		return v, SourceEnv
	}
	return file, fileSource
}

// validateResolvedConfig returns an error for values outside their domain.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	switch cfg.Format {
	case FormatUTF8, FormatPlaintext:
	default:
		return fmt.Errorf("invalid pspec_format value: %s (must be: %s, %s)", cfg.Format, FormatUTF8, FormatPlaintext)
	}

	switch cfg.Color {
	case ColorYes, ColorNo, ColorAuto:
	default:
		return fmt.Errorf("invalid color value: %s (must be: %s, %s, %s)", cfg.Color, ColorYes, ColorNo, ColorAuto)
	}
	return nil
}
