// Package walk implements the filtered directory walk shared by the
// repository tools: it yields the files and directories under a root,
// honoring hidden-name and prune-name exclusion rules.
package walk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind discriminates files from directories.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is one observed filesystem entry below the root.
type Entry struct {
	Path  string // absolute path
	Name  string // final path component
	Kind  Kind
	Depth int // path segments below the root: root/x = 1, root/x/y = 2
}

// Options configures the walk.
type Options struct {
	Recursive     bool     // descend below the immediate children of root
	IncludeHidden bool     // yield and descend into names starting with "."
	PruneDirs     []string // recursive only: directory names never yielded nor descended into

	// OnSkip, when set, is told about every path below the root that
	// could not be read. The walk carries on past it.
	OnSkip func(path string, err error)
}

// IsHidden reports whether name is a dot-name.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Walk returns every entry under root that passes the filters, sorted by
// path. root is made absolute first; the root itself is never yielded.
// Symlinked directories are yielded as directories but never descended.
// Only an unreadable root is an error; unreadable paths below it are
// reported to opts.OnSkip and left out.
func Walk(root string, opts Options) ([]Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	prune := make(map[string]bool, len(opts.PruneDirs))
	for _, n := range opts.PruneDirs {
		prune[n] = true
	}

	var entries []Entry
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == abs {
				return err
			}
			if opts.OnSkip != nil {
				opts.OnSkip(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == abs {
			return nil
		}

		name := d.Name()
		isDir := d.IsDir()
		if !opts.IncludeHidden && IsHidden(name) {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		pruned := opts.Recursive && prune[name]
		if isDir && pruned {
			return filepath.SkipDir
		}

		kind := KindFile
		if isDir || (d.Type()&fs.ModeSymlink != 0 && isDirTarget(path)) {
			kind = KindDir
		}
		if kind == KindDir && !isDir && pruned {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Path:  path,
			Name:  name,
			Kind:  kind,
			Depth: len(strings.Split(rel, string(filepath.Separator))),
		})

		if isDir && !opts.Recursive {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// isDirTarget reports whether the symlink at path resolves to a directory.
func isDirTarget(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
