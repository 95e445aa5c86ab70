// Package config holds runtime configuration: defaults, the TOML config file,
// BATCHRENAME_* environment overrides, CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// --- Enum types for validated string fields ---

// CaseMode selects how destination names are compared for collisions.
type CaseMode string

const (
	CaseAuto        CaseMode = "auto"        // Probe the root filesystem (default).
	CaseSensitive   CaseMode = "sensitive"   // "A.txt" and "a.txt" are distinct.
	CaseInsensitive CaseMode = "insensitive" // "A.txt" and "a.txt" collide.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultPruneDirs are directory names the walker never descends into.
// User-supplied names extend this list; they never replace it.
var DefaultPruneDirs = []string{
	".git",
	"node_modules",
	".venv",
	"venv",
	"env",
	"__pycache__",
	"dist",
	"build",
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by the config file, the environment and CLI flags (in that order of
// increasing precedence) before being passed by pointer to the pipeline.
type Config struct {
	// Root directory (positional arg, default ".").
	Root string

	// Transformation pipeline.
	Pattern            string // --regex; empty disables substitution.
	Replacement        string // --to; may reference groups (\1, \g<name>, $1).
	Slugify            bool
	Lowercase          bool
	SpacesToUnderscore bool
	Prefix             string
	Suffix             string
	KeepExtension      bool // Default: true. Cleared by --no-keep-extension.

	// Scope.
	Recursive     bool
	IncludeFiles  bool // Neither IncludeFiles nor IncludeDirs set means both.
	IncludeDirs   bool
	IncludeHidden bool
	PruneDirs     []string // Default: DefaultPruneDirs.

	// Execution.
	DryRun   bool
	Yes      bool     // Apply without asking; required for any mutation.
	CaseMode CaseMode // Default: "auto".

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	CheckOnly  bool      // Run --check diagnostics and exit.
	ConfigFile string    // Path of the TOML file that was loaded, if any.
}

// DefaultConfig returns a Config with every default applied. Used as the
// base before file, env and flag overrides.
func DefaultConfig() Config {
	return Config{
		Root:          ".",
		KeepExtension: true,
		PruneDirs:     append([]string(nil), DefaultPruneDirs...),
		CaseMode:      CaseAuto,
		ColorMode:     ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ParseCSVList splits a comma-separated list, trimming blanks and dropping
// empty items.
func ParseCSVList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AddPruneDirs appends names to PruneDirs, skipping blanks and duplicates.
func (c *Config) AddPruneDirs(names ...string) {
	seen := make(map[string]bool, len(c.PruneDirs))
	for _, n := range c.PruneDirs {
		seen[n] = true
	}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		c.PruneDirs = append(c.PruneDirs, n)
	}
}

// Validate checks enum fields and the substitution pattern, and derives the
// include defaults. An invalid pattern is a configuration error: it is
// reported here, before anything is scanned.
func (c *Config) Validate() error {
	switch c.CaseMode {
	case CaseAuto, CaseSensitive, CaseInsensitive:
		// valid
	default:
		return errors.New("invalid case mode (use 'auto', 'sensitive' or 'insensitive')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Pattern != "" {
		if _, err := regexp.Compile(c.Pattern); err != nil {
			return fmt.Errorf("invalid regex %q: %w", c.Pattern, err)
		}
	}

	if !c.IncludeFiles && !c.IncludeDirs {
		c.IncludeFiles = true
		c.IncludeDirs = true
	}

	if c.Root == "" {
		c.Root = "."
	}
	return nil
}
