// Package order provides the Order aggregate: a customer's purchase tracked
// through the production steps of the company that received it.
//
// The package includes:
//   - Order: the aggregate root holding the order number, customer and product data
//   - Customer: the customer contact value object
//   - Status: the coarse order status (pending, in_progress, completed, cancelled)
//
// Key business rules:
//   - An order belongs to exactly one company
//   - The order number is required and is the external lookup key
//   - The coarse status is set manually; it is not derived from step progress
//   - The optional amount is never negative
package order
