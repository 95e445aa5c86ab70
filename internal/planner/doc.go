// Package planner turns walked entries into a validated, ordered rename
// plan.
//
//   - Build: entries + naming pipeline → plans and scope warnings (builder.go)
//   - Detector.Detect: destination and target-exists collisions (conflict.go)
//   - Order: files first, then directories deepest first (order.go)
//
// Nothing in this package renames anything; the executor package consumes
// the ordered plans.
package planner
