// Package check provides root validation for every run (CheckRoot), the
// filesystem case-sensitivity probe, and the --check diagnostics report.
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/naming"
)

// Sentinel errors returned by CheckRoot.
var (
	ErrRootNotFound = errors.New("root directory not found")
	ErrRootNotDir   = errors.New("root is not a directory")
)

var errNoProbeName = errors.New("no path component with letters to probe")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// CheckRoot resolves root to an absolute path and verifies it is an
// existing directory.
func CheckRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", abs, ErrRootNotFound)
	}
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%s: %w", abs, ErrRootNotDir)
	}
	return abs, nil
}

// ProbeCaseInsensitive reports whether the filesystem holding dir folds
// case. It looks up the nearest path component that contains letters under
// its case-swapped spelling: if that resolves to the same directory, the
// filesystem is case-insensitive. Nothing is written.
func ProbeCaseInsensitive(dir string) (bool, error) {
	p, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}
	for {
		base := filepath.Base(p)
		if swapped := swapCase(base); swapped != base {
			orig, err := os.Stat(p)
			if err != nil {
				return false, err
			}
			alt, err := os.Stat(filepath.Join(filepath.Dir(p), swapped))
			if errors.Is(err, fs.ErrNotExist) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			return os.SameFile(orig, alt), nil
		}
		parent := filepath.Dir(p)
		if parent == p {
			return false, errNoProbeName
		}
		p = parent
	}
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// RunCheck runs the --check flow: it reports the resolved root, whether it
// can be written, the filesystem case behavior, the pattern and the
// walk filters. Returns false when the root itself is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	root, err := CheckRoot(cfg.Root)
	if err != nil {
		log.Error("Root: %v", err)
		return false
	}
	log.Success("Root: %s", root)

	checkWritable(root, log)
	checkCase(cfg, root, log)
	checkPattern(cfg, log)

	if cfg.ConfigFile != "" {
		log.Info("Config file: %s", cfg.ConfigFile)
	}
	log.Info("Prune dirs: %s", strings.Join(cfg.PruneDirs, ", "))
	log.Info("Include hidden: %v", cfg.IncludeHidden)
	return true
}

// checkWritable creates and removes a temporary file in root.
func checkWritable(root string, log Logger) {
	f, err := os.CreateTemp(root, ".batchrename-check-*")
	if err != nil {
		log.Warn("Root is not writable: %v", err)
		return
	}
	name := f.Name()
	_ = f.Close()
	if err := os.Remove(name); err != nil {
		log.Warn("Could not remove probe file %s: %v", name, err)
		return
	}
	log.Success("Root is writable")
}

func checkCase(cfg *config.Config, root string, log Logger) {
	insensitive, err := ProbeCaseInsensitive(root)
	switch {
	case err != nil:
		log.Warn("Case probe failed (%v); auto mode assumes case-sensitive", err)
	case insensitive:
		log.Info("Filesystem is case-insensitive")
	default:
		log.Info("Filesystem is case-sensitive")
	}
	log.Debug("Configured case mode: %s", cfg.CaseMode)
}

func checkPattern(cfg *config.Config, log Logger) {
	if cfg.Pattern == "" {
		log.Info("No regex configured")
		return
	}
	if _, err := naming.New(naming.Options{Pattern: cfg.Pattern, Replacement: cfg.Replacement}); err != nil {
		log.Error("%v", err)
		return
	}
	log.Success("Regex %q compiles", cfg.Pattern)
}
