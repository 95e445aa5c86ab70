package executor

import (
	"fmt"
	"os"

	"github.com/backmassage/batchrename/internal/planner"
)

// Renamer performs a single rename.
type Renamer interface {
	Rename(oldpath, newpath string) error
}

// OSRenamer renames on the local filesystem with os.Rename.
type OSRenamer struct{}

func (OSRenamer) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

// Status is the result of one rename attempt.
type Status int

const (
	StatusRenamed Status = iota
	StatusFailed
)

func (s Status) String() string {
	if s == StatusFailed {
		return "failed"
	}
	return "renamed"
}

// Outcome records what happened to one plan. Reason and Err are set only
// for failures.
type Outcome struct {
	Plan   planner.Plan
	Status Status
	Reason string
	Err    error
}

// Summary aggregates outcomes.
type Summary struct {
	Renamed int
	Failed  int
}

// OK reports whether every rename succeeded.
func (s Summary) OK() bool { return s.Failed == 0 }

// Execute renames each plan in the given order, one at a time. A failure is
// recorded and the remaining plans still run. Plans must already be
// validated and ordered (see planner.Order).
func Execute(plans []planner.Plan, r Renamer) []Outcome {
	outcomes := make([]Outcome, 0, len(plans))
	for _, p := range plans {
		outcomes = append(outcomes, execute(p, r))
	}
	return outcomes
}

func execute(p planner.Plan, r Renamer) Outcome {
	err := checkDestination(p)
	if err == nil {
		err = r.Rename(p.Source, p.Destination)
	}
	if err != nil {
		return Outcome{Plan: p, Status: StatusFailed, Reason: Classify(err), Err: err}
	}
	return Outcome{Plan: p, Status: StatusRenamed}
}

// checkDestination refuses to clobber a destination that appeared after
// validation. The plan's own source found at the destination (a case-only
// rename on a case-insensitive filesystem) is allowed.
func checkDestination(p planner.Plan) error {
	dst, err := os.Lstat(p.Destination)
	if err != nil {
		return nil
	}
	if src, err := os.Lstat(p.Source); err == nil && os.SameFile(src, dst) {
		return nil
	}
	return fmt.Errorf("%s: %w", p.Destination, ErrDestinationExists)
}

// Summarize counts renamed and failed outcomes.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		if o.Status == StatusFailed {
			s.Failed++
		} else {
			s.Renamed++
		}
	}
	return s
}
