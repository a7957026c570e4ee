package models

import (
	"time"

	"github.com/google/uuid"
)

// Event type values as they appear on the bus.
const (
	EventOrderCreated = "order.created"
)

// DomainEvent is an immutable record of something that happened to an
// aggregate, emitted for external consumption after persistence.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// OrderCreated is emitted once per successful Order creation. The payload is
// forwarded verbatim to the event sink.
type OrderCreated struct {
	ID        string      `json:"event_id"`
	OrderID   string      `json:"orderId"`
	TableNo   string      `json:"tableNumber"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewOrderCreated captures the creation facts of the given order.
func NewOrderCreated(order *Order) OrderCreated {
	return OrderCreated{
		ID:        uuid.NewString(),
		OrderID:   order.ID.String(),
		TableNo:   order.TableNo,
		Items:     append([]OrderItem(nil), order.Items...),
		CreatedAt: order.ID.CreatedAt,
	}
}

func (e OrderCreated) EventID() string       { return e.ID }
func (e OrderCreated) EventType() string     { return EventOrderCreated }
func (e OrderCreated) AggregateID() string   { return e.OrderID }
func (e OrderCreated) OccurredAt() time.Time { return e.CreatedAt }
