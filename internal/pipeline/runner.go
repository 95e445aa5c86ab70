package pipeline

import (
	"context"

	"github.com/backmassage/batchrename/internal/check"
	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/display"
	"github.com/backmassage/batchrename/internal/executor"
	"github.com/backmassage/batchrename/internal/naming"
	"github.com/backmassage/batchrename/internal/planner"
	"github.com/backmassage/batchrename/internal/walk"
)

// Logger is the logging surface the pipeline needs; *logging.Logger
// satisfies it.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Run is the top-level entry point. It compiles the name pipeline, walks
// the root, builds and validates the plan, and renames in execution order
// unless the run is a dry run, unconfirmed, cancelled, or blocked by
// conflicts. cfg must already be validated.
//
// ctx is only consulted before the first rename; once execution starts
// the batch always runs to the end.
func Run(ctx context.Context, cfg *config.Config, log Logger) RunStats {
	return run(ctx, cfg, log, executor.OSRenamer{})
}

func run(ctx context.Context, cfg *config.Config, log Logger, r executor.Renamer) RunStats {
	stats := RunStats{State: StatePlanned}

	// --- Compile pipeline ---
	tr, err := naming.New(TransformOptions(cfg))
	if err != nil {
		log.Error("%v", err)
		return stats.abort(AbortConfig, err)
	}

	// --- Walk ---
	root, err := check.CheckRoot(cfg.Root)
	if err != nil {
		log.Error("%v", err)
		return stats.abort(AbortRoot, err)
	}
	entries, err := walk.Walk(root, walk.Options{
		Recursive:     cfg.Recursive,
		IncludeHidden: cfg.IncludeHidden,
		PruneDirs:     cfg.PruneDirs,
		OnSkip: func(path string, err error) {
			stats.Warnings++
			log.Warn("Skipped %s: unreadable (%v)", display.RelPath(root, path), err)
		},
	})
	if err != nil {
		log.Error("Walk failed: %v", err)
		return stats.abort(AbortWalk, err)
	}
	stats.Entries = len(entries)
	log.Debug("Walked %s under %s", display.Plural(len(entries), "entry", "entries"), root)

	// --- Plan ---
	plans, warnings := planner.Build(root, entries, tr, planner.Scope{
		Recursive:    cfg.Recursive,
		IncludeFiles: cfg.IncludeFiles,
		IncludeDirs:  cfg.IncludeDirs,
	})
	stats.Planned = len(plans)
	stats.Warnings += len(warnings)
	for _, w := range warnings {
		log.Warn("Skipped %s", display.WarningLine(root, w))
	}
	if len(plans) == 0 {
		log.Info("Nothing to rename")
		stats.State = StateCompleted
		return stats
	}

	// --- Validate ---
	detector := planner.Detector{CaseInsensitive: caseInsensitive(cfg.CaseMode, root, log)}
	report := detector.Detect(plans)
	stats.Conflicts = len(report)
	if report.Blocking() {
		for _, c := range report {
			log.Error("%s", display.ConflictLine(root, c))
		}
		log.Error("Aborted: %s, nothing renamed", display.Plural(len(report), "conflict", "conflicts"))
		return stats.abort(AbortConflicts, nil)
	}
	stats.State = StateValidated

	ordered := planner.Order(plans)
	log.Info("Plan: %s", display.Plural(len(ordered), "rename", "renames"))
	for _, p := range ordered {
		log.Info("  %s", display.PlanLine(root, p))
	}

	switch {
	case cfg.DryRun:
		log.Success("Dry run: no changes made")
		return stats.abort(AbortDryRun, nil)
	case !cfg.Yes:
		log.Warn("Not applied: re-run with --yes to rename, or --dry-run to preview")
		return stats.abort(AbortUnconfirmed, nil)
	case ctx.Err() != nil:
		log.Warn("Interrupted before renaming, nothing changed")
		return stats.abort(AbortInterrupted, ctx.Err())
	}

	// --- Execute ---
	stats.State = StateExecuting
	stats.Outcomes = executor.Execute(ordered, r)
	for _, o := range stats.Outcomes {
		if o.Status == executor.StatusFailed {
			log.Error("%s", display.OutcomeLine(root, o))
		} else {
			log.Debug("%s", display.OutcomeLine(root, o))
		}
	}
	sum := executor.Summarize(stats.Outcomes)
	stats.Renamed = sum.Renamed
	stats.Failed = sum.Failed
	stats.State = StateCompleted

	logSummary(log, sum)
	return stats
}

// TransformOptions extracts the naming pipeline from cfg.
func TransformOptions(cfg *config.Config) naming.Options {
	return naming.Options{
		Pattern:            cfg.Pattern,
		Replacement:        cfg.Replacement,
		Slugify:            cfg.Slugify,
		Lowercase:          cfg.Lowercase,
		SpacesToUnderscore: cfg.SpacesToUnderscore,
		Prefix:             cfg.Prefix,
		Suffix:             cfg.Suffix,
		KeepExtension:      cfg.KeepExtension,
	}
}

// caseInsensitive resolves the case mode. Auto probes the root and falls
// back to case-sensitive comparison when the probe fails.
func caseInsensitive(mode config.CaseMode, root string, log Logger) bool {
	switch mode {
	case config.CaseInsensitive:
		return true
	case config.CaseSensitive:
		return false
	}
	insensitive, err := check.ProbeCaseInsensitive(root)
	if err != nil {
		log.Warn("Case probe failed (%v); comparing names case-sensitively", err)
		return false
	}
	log.Debug("Case probe: insensitive=%v", insensitive)
	return insensitive
}

func logSummary(log Logger, sum executor.Summary) {
	log.Info("==============================")
	if !sum.OK() {
		log.Warn("Done: %d renamed, %d failed", sum.Renamed, sum.Failed)
		return
	}
	log.Success("Done: %d renamed", sum.Renamed)
}
