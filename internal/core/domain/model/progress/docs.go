// Package progress provides the ProgressStep entity: one production step of a
// single order, copied from the company's step list when the order was created.
//
// Every step follows the same state machine:
//
//	pending --start--> in_progress --complete--> completed
//
// No transition skips a state and none goes backwards. Starting stamps the
// start time; completing stamps the completion time and keeps the start time.
package progress
