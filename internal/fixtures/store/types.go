// Package store holds fixture types that mapping files in tests refer to
// as Go classes.
package store

import "time"

// Entity carries the identity shared by persisted store records.
type Entity struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Customer is the user placing orders.
type Customer struct {
	Entity

	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Address  *string `json:"address"`
}

// Order is a transaction made by a customer.
type Order struct {
	*Entity

	CustomerID int64             `json:"customer_id"`
	Status     OrderStatus       `json:"status"`
	Items      []OrderItem       `json:"items"`
	Attributes map[string]string `json:"attributes"`
}

// OrderItem is a product line within an order.
type OrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderStatus is a named string type.
type OrderStatus string

// Exception is the root of the fixture failure hierarchy.
type Exception struct {
	Message string
}

// RuntimeException is an unchecked failure.
type RuntimeException struct {
	Exception
}

// StateException signals an illegal state; it is unchecked.
type StateException struct {
	RuntimeException
}

// IOException is a checked failure.
type IOException struct {
	Exception
}

// Converter is implemented by custom converters.
type Converter interface {
	Convert(dst, src any) (any, error)
}

// MoneyConverter converts between cents and decimal amounts.
type MoneyConverter struct{}

// Convert implements Converter.
func (MoneyConverter) Convert(dst, src any) (any, error) { return src, nil }
