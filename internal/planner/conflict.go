package planner

import (
	"os"
	"path/filepath"
	"strings"
)

// Detector finds plans that must not run. With CaseInsensitive set,
// destinations that differ only by case are treated as the same path.
type Detector struct {
	CaseInsensitive bool
}

// Detect checks plans for destination collisions (two sources claiming one
// canonical destination) and target-exists collisions (the destination is
// already occupied by something that is not the plan's own source).
// Conflicts are reported in plan order.
func (d Detector) Detect(plans []Plan) Report {
	var report Report
	owners := make(map[string]string, len(plans)) // destination key → first source

	for _, p := range plans {
		key := d.destinationKey(p.Destination)
		if owner, ok := owners[key]; ok && owner != p.Source {
			report = append(report, Conflict{
				Kind:        ConflictDestination,
				Source:      p.Source,
				Other:       owner,
				Destination: p.Destination,
			})
		} else if !ok {
			owners[key] = p.Source
		}

		if occupied(p) {
			report = append(report, Conflict{
				Kind:        ConflictTargetExists,
				Source:      p.Source,
				Destination: p.Destination,
			})
		}
	}
	return report
}

// destinationKey is the canonical parent joined with the new base name,
// folded to lower case in case-insensitive mode.
func (d Detector) destinationKey(dest string) string {
	parent := filepath.Dir(dest)
	if c, err := canonical(parent); err == nil {
		parent = c
	}
	key := filepath.Join(parent, filepath.Base(dest))
	if d.CaseInsensitive {
		key = strings.ToLower(key)
	}
	return key
}

// occupied reports whether p.Destination exists and is not p.Source itself.
// A case-only rename on a case-insensitive filesystem finds its own source
// at the destination and is not a conflict.
func occupied(p Plan) bool {
	dst, err := os.Lstat(p.Destination)
	if err != nil {
		return false
	}
	src, err := os.Lstat(p.Source)
	if err != nil {
		return true
	}
	return !os.SameFile(src, dst)
}
