package planner

import (
	"sort"

	"github.com/backmassage/batchrename/internal/walk"
)

// Order returns plans in execution order: every file before any directory,
// directories deepest first, ties broken by case-insensitive source path.
// Renaming descendants before their ancestors keeps each pending source
// path valid. The input slice is not modified.
func Order(plans []Plan) []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind == walk.KindFile
		}
		if a.Kind == walk.KindDir && a.Depth != b.Depth {
			return a.Depth > b.Depth
		}
		return foldLess(a.Source, b.Source)
	})
	return out
}
