package config

import "os"

// EnvPrefix prefixes every environment variable read by [ApplyEnvConfig].
const EnvPrefix = "BATCHRENAME_"

// ApplyEnvConfig applies BATCHRENAME_* variables. They override the config
// file but not explicitly set flags. Only scope, execution and display
// settings are read from the environment; the transformation pipeline comes
// from flags or the config file.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if v := os.Getenv(EnvPrefix + "ROOT"); v != "" && !changed["root"] {
		cfg.Root = NormalizeDirArg(v)
	}
	cfg.AddPruneDirs(ParseCSVList(os.Getenv(EnvPrefix + "PRUNE_DIRS"))...)

	if err := s.setBoolFromString("recursive", os.Getenv(EnvPrefix+"RECURSIVE"), &cfg.Recursive); err != nil {
		return err
	}
	if err := s.setBoolFromString("include-hidden", os.Getenv(EnvPrefix+"INCLUDE_HIDDEN"), &cfg.IncludeHidden); err != nil {
		return err
	}
	if err := s.setBoolFromString("dry-run", os.Getenv(EnvPrefix+"DRY_RUN"), &cfg.DryRun); err != nil {
		return err
	}
	if err := s.setBoolFromString("verbose", os.Getenv(EnvPrefix+"VERBOSE"), &cfg.Verbose); err != nil {
		return err
	}

	s.setCaseMode("case-mode", os.Getenv(EnvPrefix+"CASE_MODE"), &cfg.CaseMode)
	s.setColorMode(os.Getenv(EnvPrefix+"COLOR"), &cfg.ColorMode)
	s.setString("log", os.Getenv(EnvPrefix+"LOG_FILE"), &cfg.LogFile)
	return nil
}
