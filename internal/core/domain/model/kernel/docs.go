// Package kernel provides the shared value objects of the order tracking domain.
//
// The package includes:
//   - UUID: identity of companies, orders, progress steps and owners
//   - Email: a validated contact address used by companies and customers
//
// Both are immutable; their zero values are invalid and report an error from Validate.
package kernel
