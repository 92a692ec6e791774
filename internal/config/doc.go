// Package config handles configuration loading and resolution for pspec.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--format, --color, --log-level)
//  2. Environment variables (PSPEC_FORMAT, PSPEC_COLOR, NO_COLOR, PSPEC_LOG_LEVEL)
//  3. YAML config file (.pspec.yaml in the working directory or
//     ~/.config/pspec/.pspec.yaml)
//  4. Hardcoded defaults
//
// # Keys
//
//   - pspec_format: "utf8" (default) or "plaintext"
//   - color: "auto" (default), "yes" or "no"
//   - log_level: debug, info, warn (default) or error
//   - files, functions, classes: naming patterns stripped from module,
//     test and class names. A pattern is "prefix*", "*suffix",
//     "head*tail" or a literal prefix.
//
// # Environment Variables
//
//   - PSPEC_FORMAT, PSPEC_COLOR, PSPEC_LOG_LEVEL override the file.
//   - NO_COLOR set to any non-empty value is equivalent to color: no,
//     unless PSPEC_COLOR is also set.
package config
