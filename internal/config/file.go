package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config in TOML form. Pointer bools distinguish "unset"
// from an explicit false.
type FileConfig struct {
	Root string `toml:"root"`

	Pattern            string `toml:"regex"`
	Replacement        string `toml:"to"`
	Slugify            *bool  `toml:"slugify"`
	Lowercase          *bool  `toml:"lower"`
	SpacesToUnderscore *bool  `toml:"spaces_to_underscore"`
	Prefix             string `toml:"prefix"`
	Suffix             string `toml:"suffix"`
	KeepExtension      *bool  `toml:"keep_extension"`

	Recursive     *bool    `toml:"recursive"`
	IncludeFiles  *bool    `toml:"include_files"`
	IncludeDirs   *bool    `toml:"include_dirs"`
	IncludeHidden *bool    `toml:"include_hidden"`
	PruneDirs     []string `toml:"prune_dirs"`

	DryRun   *bool  `toml:"dry_run"`
	CaseMode string `toml:"case_mode"`

	Verbose   *bool  `toml:"verbose"`
	ColorMode string `toml:"color"`
	LogFile   string `toml:"log_file"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.batchrename/config.toml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".batchrename", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping any whose flag was
// explicitly set. Prune dirs always extend the current list. --yes has no
// file key.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	if fc.Root != "" && !changed["root"] {
		cfg.Root = NormalizeDirArg(fc.Root)
	}

	s.setString("regex", fc.Pattern, &cfg.Pattern)
	s.setString("to", fc.Replacement, &cfg.Replacement)
	s.setBool("slugify", fc.Slugify, &cfg.Slugify)
	s.setBool("lower", fc.Lowercase, &cfg.Lowercase)
	s.setBool("spaces-to-underscore", fc.SpacesToUnderscore, &cfg.SpacesToUnderscore)
	s.setString("prefix", fc.Prefix, &cfg.Prefix)
	s.setString("suffix", fc.Suffix, &cfg.Suffix)
	s.setBool("no-keep-extension", fc.KeepExtension, &cfg.KeepExtension)

	s.setBool("recursive", fc.Recursive, &cfg.Recursive)
	s.setBool("include-files", fc.IncludeFiles, &cfg.IncludeFiles)
	s.setBool("include-dirs", fc.IncludeDirs, &cfg.IncludeDirs)
	s.setBool("include-hidden", fc.IncludeHidden, &cfg.IncludeHidden)
	cfg.AddPruneDirs(fc.PruneDirs...)

	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)
	s.setCaseMode("case-mode", fc.CaseMode, &cfg.CaseMode)

	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
	s.setColorMode(fc.ColorMode, &cfg.ColorMode)
	s.setString("log", fc.LogFile, &cfg.LogFile)
}

// FileExists reports whether a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
