// Package company provides the Company aggregate: the manufacturer that owns
// orders and defines the ordered sequence of production steps.
//
// Key business rules:
//   - A company belongs to exactly one owner identity and an owner has at most one company
//   - Name and contact e-mail are required
//   - The process step list is never empty; its order is the canonical step sequence
//   - Editing the step list affects only orders created afterwards
package company
