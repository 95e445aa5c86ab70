package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse binds flags on a fresh FlagSet, parses argv and resolves the result
// with HOME pointed at an empty dir so no user config leaks into the test.
func parse(t *testing.T, argv ...string) (Config, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("batchrename", pflag.ContinueOnError)
	f := BindFlags(fs, &cfg)
	if err := fs.Parse(argv); err != nil {
		return cfg, err
	}
	err := f.Resolve(fs, &cfg, fs.Args())
	return cfg, err
}

func TestResolve_Defaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
	assert.True(t, cfg.KeepExtension)
	assert.Equal(t, DefaultPruneDirs, cfg.PruneDirs)
	assert.Empty(t, cfg.ConfigFile)
}

func TestResolve_TransformAndScopeFlags(t *testing.T) {
	cfg, err := parse(t,
		"--regex", `IMG_(\d+)`, "--to", `foto-\1`,
		"--slugify", "--lower", "--spaces-to-underscore",
		"--prefix", "2025_", "--suffix", "_old",
		"--no-keep-extension",
		"-r", "--include-dirs", "--include-hidden",
		"--prune-dirs", "target,out",
		"-n", "-y", "--case-mode", "Insensitive",
		"photos/",
	)
	require.NoError(t, err)

	assert.Equal(t, `IMG_(\d+)`, cfg.Pattern)
	assert.Equal(t, `foto-\1`, cfg.Replacement)
	assert.True(t, cfg.Slugify)
	assert.True(t, cfg.Lowercase)
	assert.True(t, cfg.SpacesToUnderscore)
	assert.Equal(t, "2025_", cfg.Prefix)
	assert.Equal(t, "_old", cfg.Suffix)
	assert.False(t, cfg.KeepExtension)
	assert.True(t, cfg.Recursive)
	assert.False(t, cfg.IncludeFiles)
	assert.True(t, cfg.IncludeDirs)
	assert.True(t, cfg.IncludeHidden)
	assert.Contains(t, cfg.PruneDirs, "target")
	assert.Contains(t, cfg.PruneDirs, "out")
	assert.Contains(t, cfg.PruneDirs, ".git")
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Yes)
	assert.Equal(t, CaseInsensitive, cfg.CaseMode)
	assert.Equal(t, "photos", cfg.Root)
}

func TestResolve_InvalidCaseMode(t *testing.T) {
	_, err := parse(t, "--case-mode", "smart")
	assert.Error(t, err)
}

func TestResolve_TooManyRoots(t *testing.T) {
	_, err := parse(t, "a", "b")
	assert.ErrorContains(t, err, "at most one root")
}

func TestResolve_ColorFlags(t *testing.T) {
	cfg, err := parse(t, "--color")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.ColorMode)

	cfg, err = parse(t, "--color", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.ColorMode, "--no-color wins over --color")
}

func TestResolve_MissingExplicitConfig(t *testing.T) {
	_, err := parse(t, "--config", filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestResolve_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
root = "/from/file"
prefix = "file_"
case_mode = "sensitive"
color = "always"
prune_dirs = ["vendor"]
keep_extension = false
`), 0o644))

	t.Setenv(EnvPrefix+"CASE_MODE", "insensitive")
	t.Setenv(EnvPrefix+"PRUNE_DIRS", "tmp")

	cfg, err := parse(t, "--config", path, "--prefix", "flag_", "--no-color")
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "/from/file", cfg.Root, "file sets root when no positional arg")
	assert.Equal(t, "flag_", cfg.Prefix, "flag beats file")
	assert.Equal(t, CaseInsensitive, cfg.CaseMode, "env beats file")
	assert.Equal(t, ColorNever, cfg.ColorMode, "flag beats file")
	assert.False(t, cfg.KeepExtension)
	assert.Contains(t, cfg.PruneDirs, "vendor")
	assert.Contains(t, cfg.PruneDirs, "tmp")
}

func TestResolve_PositionalRootBeatsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`root = "/from/file"`), 0o644))
	t.Setenv(EnvPrefix+"ROOT", "/from/env")

	cfg, err := parse(t, "--config", path, "here")
	require.NoError(t, err)
	assert.Equal(t, "here", cfg.Root)
}
