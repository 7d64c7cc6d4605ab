// Package services provides domain services that work across the company,
// order and progress aggregates.
//
// The package includes:
//   - ProgressTracker: derives the completion percentage and stage of an order
//     from its steps, and plans the step snapshot of a newly created order
package services
