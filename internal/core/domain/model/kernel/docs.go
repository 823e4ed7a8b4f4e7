// Package kernel provides the value objects shared by the order desk domain:
//   - UUID: identifier of an order
//   - Money: non-negative decimal amount with explicit rounding points
//
// Both are immutable and have an invalid zero value, so a value that skipped
// its constructor is caught by Validate.
package kernel
