package config

// This file binds CLI flags onto a Config and resolves the final settings.
// Flags are grouped into transformation, scope, execution and display.
// Negated flags (e.g. --no-keep-extension) are applied after the config file
// and environment so Config defaults hold unless the user passes the flag.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds flag values that cannot be bound straight onto Config fields.
type Flags struct {
	neg        negatedFlags
	extraPrune []string
	configPath string
}

// negatedFlags holds boolean flags that are applied after file and env
// config. They either invert a default or pick between two exclusive modes.
type negatedFlags struct {
	noKeepExtension bool
	forceColor      bool
	noColor         bool
}

// BindFlags registers every batchrename flag on fs, writing directly into
// cfg where possible. Call [Flags.Resolve] after parsing.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{}
	defineTransformFlags(fs, cfg, &f.neg)
	defineScopeFlags(fs, cfg, f)
	defineExecutionFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, f)
	return f
}

// defineTransformFlags registers --regex/--to, slug and case options,
// prefix/suffix and --no-keep-extension.
func defineTransformFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.StringVar(&cfg.Pattern, "regex", "", `Regex substituted over the name, e.g. "IMG_(\d+)"`)
	fs.StringVar(&cfg.Replacement, "to", "", `Replacement text; may use groups, e.g. "foto-\1"`)
	fs.BoolVar(&cfg.Slugify, "slugify", false, "Strip accents and characters outside [A-Za-z0-9._-]")
	fs.BoolVar(&cfg.Lowercase, "lower", false, "Force lowercase (also applies inside --slugify)")
	fs.BoolVar(&cfg.SpacesToUnderscore, "spaces-to-underscore", false, "Replace spaces with '_'")
	fs.StringVar(&cfg.Prefix, "prefix", "", "Prefix added to every new name")
	fs.StringVar(&cfg.Suffix, "suffix", "", "Suffix added to every new name (before the extension)")
	fs.BoolVar(&n.noKeepExtension, "no-keep-extension", false, "Transform the whole file name, extension included")
}

// defineScopeFlags registers recursion, include selection, hidden and prune options.
func defineScopeFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.BoolVarP(&cfg.Recursive, "recursive", "r", false, "Walk subdirectories")
	fs.BoolVar(&cfg.IncludeFiles, "include-files", false, "Rename files (default: files and dirs)")
	fs.BoolVar(&cfg.IncludeDirs, "include-dirs", false, "Rename directories (default: files and dirs)")
	fs.BoolVar(&cfg.IncludeHidden, "include-hidden", false, "Include entries whose name starts with '.'")
	fs.StringSliceVar(&f.extraPrune, "prune-dirs", nil, "Extra directory names never descended into (CSV)")
}

// defineExecutionFlags registers dry-run, confirmation and case mode.
func defineExecutionFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Show the plan only; rename nothing")
	fs.BoolVarP(&cfg.Yes, "yes", "y", false, "Apply the plan without asking")
	fs.Var(&caseModeValue{&cfg.CaseMode}, "case-mode", "Collision case handling: auto | sensitive | insensitive")
}

// defineDisplayFlags registers --config, --color, --no-color, verbose, --log and --check.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.StringVar(&f.configPath, "config", "", "Config file (default: $HOME/.batchrename/config.toml)")
	fs.BoolVar(&f.neg.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.neg.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run root diagnostics and exit")
}

// Resolve layers config file and environment under the parsed flags, then
// applies negated flags and the positional root. Precedence, lowest first:
// defaults, config file, BATCHRENAME_* env, flags.
func (f *Flags) Resolve(fs *pflag.FlagSet, cfg *Config, args []string) error {
	changed := ChangedFlags(fs)

	if err := parsePositionalArgs(args, cfg, changed); err != nil {
		return err
	}

	path := f.configPath
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path != "" {
		switch {
		case FileExists(path):
			fc, err := LoadFileConfig(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ApplyFileConfig(cfg, fc, changed)
			cfg.ConfigFile = path
		case explicit:
			return fmt.Errorf("config file not found: %s", path)
		}
	}

	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &f.neg)
	cfg.AddPruneDirs(f.extraPrune...)
	return nil
}

// ChangedFlags returns the set of flag names the user passed explicitly.
func ChangedFlags(fs *pflag.FlagSet) map[string]bool {
	changed := map[string]bool{}
	fs.Visit(func(fl *pflag.Flag) { changed[fl.Name] = true })
	return changed
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noKeepExtension {
		cfg.KeepExtension = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Root from the optional positional arg and marks
// it as changed so file and env values cannot override it.
func parsePositionalArgs(args []string, cfg *Config, changed map[string]bool) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.Root = NormalizeDirArg(args[0])
		changed["root"] = true
		return nil
	default:
		return fmt.Errorf("expected at most one root directory, got %d", len(args))
	}
}

// pflag.Value adapter so CaseMode can be used with fs.Var.

type caseModeValue struct{ p *CaseMode }

func (c *caseModeValue) String() string { return string(*c.p) }
func (c *caseModeValue) Type() string   { return "mode" }
func (c *caseModeValue) Set(s string) error {
	switch m := CaseMode(strings.ToLower(s)); m {
	case CaseAuto, CaseSensitive, CaseInsensitive:
		*c.p = m
	default:
		return fmt.Errorf("invalid case mode %q (use 'auto', 'sensitive' or 'insensitive')", s)
	}
	return nil
}
