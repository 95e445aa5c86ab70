package planner

import (
	"fmt"

	"github.com/backmassage/batchrename/internal/walk"
)

// Plan is one pending rename. Destination always shares Source's parent
// directory and never equals Source.
type Plan struct {
	Source      string
	Destination string
	Kind        walk.Kind
	Depth       int
}

// Warning is an entry excluded from the plan for scope reasons.
type Warning struct {
	Path   string
	Reason string
}

func (w Warning) String() string { return w.Path + ": " + w.Reason }

// ConflictKind classifies a blocking conflict.
type ConflictKind int

const (
	// ConflictDestination: two sources map to the same destination.
	ConflictDestination ConflictKind = iota
	// ConflictTargetExists: the destination is already occupied by
	// something other than the plan's own source.
	ConflictTargetExists
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictDestination:
		return "destination collision"
	case ConflictTargetExists:
		return "target exists"
	default:
		return "unknown"
	}
}

// Conflict is one reason the plan cannot run. Other is the first source
// that claimed Destination (destination collisions only).
type Conflict struct {
	Kind        ConflictKind
	Source      string
	Other       string
	Destination string
}

func (c Conflict) String() string {
	if c.Kind == ConflictDestination {
		return fmt.Sprintf("%s: %s and %s both map to %s", c.Kind, c.Other, c.Source, c.Destination)
	}
	return fmt.Sprintf("%s: %s -> %s (destination already exists)", c.Kind, c.Source, c.Destination)
}

// Report lists every conflict found. Any non-empty report blocks execution.
type Report []Conflict

// Blocking reports whether the report forbids execution.
func (r Report) Blocking() bool { return len(r) > 0 }
