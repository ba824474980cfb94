// Package warehouse holds the destination-side fixture types.
package warehouse

// Order is the warehouse view of a store order.
type Order struct {
	ID       int64
	Customer string
	Lines    []Line
}

// Line is a warehouse order line.
type Line struct {
	SKU      string
	Quantity int
}

// Failure is a warehouse error type that embeds the error interface.
type Failure interface {
	error
	Retryable() bool
}
