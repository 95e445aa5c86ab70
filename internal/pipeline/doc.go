// Package pipeline orchestrates one batch rename run: compile the name
// pipeline, walk the root, build and validate the plan, then execute it in
// dependency-safe order.
//
// Types:
//   - RunStats (State, Abort reason, counters, per-item outcomes; ExitCode)
//
// Functions:
//   - Run(ctx, cfg, log) → RunStats
//     Planned → Validated → (Aborted | Executing) → Completed. Conflicts,
//     dry runs, missing --yes and cancellation all abort before the first
//     rename; a failed rename never stops the batch.
package pipeline
