package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/batchrename/internal/pipeline"
)

// isolate points HOME at an empty dir so no user config file is loaded.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
}

func TestRun_DryRun(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "My File.txt"), nil, 0o644))

	var out bytes.Buffer
	code := run([]string{root, "--spaces-to-underscore", "--dry-run", "--no-color"}, &out)

	assert.Equal(t, pipeline.ExitOK, code)
	assert.FileExists(t, filepath.Join(root, "My File.txt"))
}

func TestRun_Apply(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "My File.txt"), nil, 0o644))

	var out bytes.Buffer
	code := run([]string{root, "--spaces-to-underscore", "--yes", "--case-mode", "sensitive", "--no-color"}, &out)

	assert.Equal(t, pipeline.ExitOK, code)
	assert.FileExists(t, filepath.Join(root, "My_File.txt"))
}

func TestRun_ConfigErrors(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	cases := []struct {
		name string
		args []string
	}{
		{"invalid regex", []string{root, "--regex", "("}},
		{"two roots", []string{root, root}},
		{"unknown flag", []string{"--nope"}},
		{"bad case mode", []string{root, "--case-mode", "maybe"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, pipeline.ExitConfig, run(tc.args, &out))
		})
	}
}

func TestRun_Check(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	assert.Equal(t, pipeline.ExitOK, run([]string{t.TempDir(), "--check", "--no-color"}, &out))
	assert.Equal(t, pipeline.ExitAborted, run([]string{filepath.Join(t.TempDir(), "missing"), "--check", "--no-color"}, &out))
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, pipeline.ExitOK, run([]string{"--version"}, &out))
	assert.Contains(t, out.String(), version)
}
