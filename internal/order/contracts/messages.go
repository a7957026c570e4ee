// Package contracts holds the wire-facing message and result shapes for the
// order context. They are deliberately dumb: translation into domain types
// happens in the translate package, never here.
package contracts

// OrderItemMsg is one requested item as it arrives on the wire.
type OrderItemMsg struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateOrderMsg is the inbound create-order message.
type CreateOrderMsg struct {
	TableNo string         `json:"tableNumber"`
	Items   []OrderItemMsg `json:"items"`
}

// OrderItemResult mirrors a persisted item in responses.
type OrderItemResult struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderResult is the view of a created order returned to callers.
type OrderResult struct {
	ID      string            `json:"id"`
	TableNo string            `json:"tableNumber"`
	Status  string            `json:"status"`
	Items   []OrderItemResult `json:"items"`
}
