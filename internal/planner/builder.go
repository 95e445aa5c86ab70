package planner

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/batchrename/internal/walk"
)

// Namer computes an entry's new base name. *naming.Transformer satisfies it.
type Namer interface {
	NewName(name string, kind walk.Kind) string
}

// Scope selects which walked entries are candidates.
type Scope struct {
	Recursive    bool
	IncludeFiles bool
	IncludeDirs  bool
}

// Build applies namer to every selected entry under root. Entries whose name
// does not change produce no plan. Entries that resolve outside root, or
// whose new name would move them to another directory, are reported as
// warnings and never planned.
//
// Plans are sorted by source path, case-insensitively, for display; the
// execution order comes from Order.
func Build(root string, entries []walk.Entry, namer Namer, scope Scope) ([]Plan, []Warning) {
	canonRoot, err := canonical(root)
	if err != nil {
		canonRoot = root
	}

	var plans []Plan
	var warnings []Warning
	for _, e := range entries {
		if !scope.Recursive && e.Depth != 1 {
			continue
		}
		if e.Kind == walk.KindFile && !scope.IncludeFiles {
			continue
		}
		if e.Kind == walk.KindDir && !scope.IncludeDirs {
			continue
		}

		if reason := outsideRoot(canonRoot, e.Path); reason != "" {
			warnings = append(warnings, Warning{Path: e.Path, Reason: reason})
			continue
		}

		newName := namer.NewName(e.Name, e.Kind)
		if newName == e.Name {
			continue
		}
		if relocates(newName) {
			warnings = append(warnings, Warning{
				Path:   e.Path,
				Reason: "new name " + quote(newName) + " would move the entry out of its directory",
			})
			continue
		}

		plans = append(plans, Plan{
			Source:      e.Path,
			Destination: filepath.Join(filepath.Dir(e.Path), newName),
			Kind:        e.Kind,
			Depth:       e.Depth,
		})
	}

	sort.SliceStable(plans, func(i, j int) bool { return foldLess(plans[i].Source, plans[j].Source) })
	return plans, warnings
}

// canonical returns the absolute, symlink-free form of path.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// outsideRoot returns a non-empty reason when path cannot be proven to live
// under canonRoot once symlinks are resolved.
func outsideRoot(canonRoot, path string) string {
	resolved, err := canonical(path)
	if err != nil {
		return "cannot resolve path: " + err.Error()
	}
	rel, err := filepath.Rel(canonRoot, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "resolves outside root (" + resolved + ")"
	}
	return ""
}

func relocates(name string) bool {
	return name == "." || name == ".." ||
		strings.ContainsRune(name, '/') ||
		strings.ContainsRune(name, filepath.Separator)
}

func quote(s string) string { return `"` + s + `"` }

// foldLess orders a before b case-insensitively, falling back to a
// byte-wise comparison so the order is total.
func foldLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
