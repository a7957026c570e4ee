// Package models holds the order aggregate and its owned value objects. All
// mutation goes through the aggregate root; collaborators observe state and
// pull recorded events.
package models

import (
	"coffeeshop/pkg/domain"
	pkgerrors "coffeeshop/pkg/errors"
)

// OrderStatus enumerates the order lifecycle. Orders are born INITIAL; later
// transitions (acceptance, fulfillment) belong to the barista context.
type OrderStatus string

const (
	StatusInitial OrderStatus = "INITIAL"
)

// OrderItem is a value object owned by its Order. It has no lifecycle of its
// own.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateOrder is the immutable command consumed exactly once to construct an
// Order.
type CreateOrder struct {
	ID      domain.OrderID
	TableNo string
	Status  OrderStatus
	Items   []OrderItem
}

// Order is the aggregate root and consistency boundary. An Order never exists
// with zero items.
type Order struct {
	ID      domain.OrderID
	TableNo string
	Status  OrderStatus
	Items   []OrderItem

	events []DomainEvent
}

// Create validates the command and constructs the aggregate. It records a
// single OrderCreated event; persistence is a separate responsibility.
func Create(cmd CreateOrder) (*Order, error) {
	if len(cmd.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidOrder, "order must contain at least one item")
	}
	for i, item := range cmd.Items {
		if item.Quantity <= 0 {
			return nil, pkgerrors.Newf(pkgerrors.CodeInvalidOrder, "item %d (%s): quantity must be positive, got %d", i, item.ProductID, item.Quantity)
		}
		if item.Price < 0 {
			return nil, pkgerrors.Newf(pkgerrors.CodeInvalidOrder, "item %d (%s): price must not be negative, got %v", i, item.ProductID, item.Price)
		}
	}

	order := &Order{
		ID:      cmd.ID,
		TableNo: cmd.TableNo,
		Status:  StatusInitial,
		Items:   append([]OrderItem(nil), cmd.Items...),
	}
	order.record(NewOrderCreated(order))
	return order, nil
}

// Reconstitute rebuilds an aggregate from persisted state. No validation and
// no events: the stored state already passed creation once.
func Reconstitute(id domain.OrderID, tableNo string, status OrderStatus, items []OrderItem) *Order {
	return &Order{
		ID:      id,
		TableNo: tableNo,
		Status:  status,
		Items:   append([]OrderItem(nil), items...),
	}
}

func (o *Order) record(event DomainEvent) {
	o.events = append(o.events, event)
}

// DomainEvents returns the events recorded since the last extraction without
// clearing them.
func (o *Order) DomainEvents() []DomainEvent {
	return append([]DomainEvent(nil), o.events...)
}

// PullEvents hands the recorded events to the caller and clears the buffer.
// Only the publisher should pull; the aggregate never re-clears mid-flight.
func (o *Order) PullEvents() []DomainEvent {
	events := o.events
	o.events = nil
	return events
}
