package display

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/batchrename/internal/executor"
	"github.com/backmassage/batchrename/internal/planner"
)

// RelPath returns path relative to root, or path unchanged when it is not
// below root.
func RelPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// PlanLine renders one plan as "[kind] rel/source -> newname".
func PlanLine(root string, p planner.Plan) string {
	return fmt.Sprintf("[%s] %s -> %s", p.Kind, RelPath(root, p.Source), filepath.Base(p.Destination))
}

// OutcomeLine renders one execution outcome. Failures carry the classified
// reason and the underlying error.
func OutcomeLine(root string, o executor.Outcome) string {
	line := fmt.Sprintf("%s %s -> %s", o.Status, RelPath(root, o.Plan.Source), filepath.Base(o.Plan.Destination))
	if o.Status == executor.StatusFailed {
		line += fmt.Sprintf(": %s (%v)", o.Reason, o.Err)
	}
	return line
}

// ConflictLine renders a conflict with root-relative paths.
func ConflictLine(root string, c planner.Conflict) string {
	c.Source = RelPath(root, c.Source)
	c.Destination = RelPath(root, c.Destination)
	if c.Other != "" {
		c.Other = RelPath(root, c.Other)
	}
	return c.String()
}

// WarningLine renders a scope warning with a root-relative path.
func WarningLine(root string, w planner.Warning) string {
	w.Path = RelPath(root, w.Path)
	return w.String()
}

// Plural returns "1 item" or "N items".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
