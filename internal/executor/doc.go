// Package executor performs the renames of a validated, ordered plan.
//
// Execution is strictly sequential and never stops early: each plan yields
// an [Outcome], and a failed rename is classified ([Classify]) and recorded
// while the rest of the batch continues.
package executor
