package pipeline

import "github.com/backmassage/batchrename/internal/executor"

// State is the run's position in Planned → Validated → (Aborted | Executing)
// → Completed.
type State int

const (
	StatePlanned State = iota
	StateValidated
	StateAborted
	StateExecuting
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StatePlanned:
		return "planned"
	case StateValidated:
		return "validated"
	case StateAborted:
		return "aborted"
	case StateExecuting:
		return "executing"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Abort records why a run stopped before executing.
type Abort int

const (
	AbortNone        Abort = iota
	AbortRoot              // Root missing or not a directory.
	AbortConfig            // Pipeline could not be compiled.
	AbortWalk              // Directory walk failed.
	AbortConflicts         // Conflict report was non-empty.
	AbortDryRun            // Plan shown, never executed.
	AbortUnconfirmed       // Mutation requested without --yes.
	AbortInterrupted       // Context cancelled before execution.
)

func (a Abort) String() string {
	switch a {
	case AbortNone:
		return "none"
	case AbortRoot:
		return "root error"
	case AbortConfig:
		return "configuration error"
	case AbortWalk:
		return "walk error"
	case AbortConflicts:
		return "conflicts"
	case AbortDryRun:
		return "dry run"
	case AbortUnconfirmed:
		return "unconfirmed"
	case AbortInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Process exit codes.
const (
	ExitOK        = 0
	ExitAborted   = 1
	ExitConfig    = 2
	ExitConflicts = 3
	ExitFailures  = 4
)

// RunStats tracks the outcome of one run.
type RunStats struct {
	State State
	Abort Abort
	Err   error // set for root, config and walk aborts

	Entries   int // entries yielded by the walk
	Planned   int // plans after no-op and scope filtering
	Warnings  int // scope warnings and unreadable paths
	Conflicts int
	Renamed   int
	Failed    int

	Outcomes []executor.Outcome
}

// ExitCode maps the final state to the process exit status.
func (s *RunStats) ExitCode() int {
	if s.State == StateCompleted {
		if s.Failed > 0 {
			return ExitFailures
		}
		return ExitOK
	}
	switch s.Abort {
	case AbortDryRun:
		return ExitOK
	case AbortConfig:
		return ExitConfig
	case AbortConflicts:
		return ExitConflicts
	default:
		return ExitAborted
	}
}

func (s *RunStats) abort(reason Abort, err error) RunStats {
	s.State = StateAborted
	s.Abort = reason
	s.Err = err
	return *s
}
