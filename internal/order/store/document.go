// Package store defines the document shape order adapters persist. Keeping
// one serialization here means the memory, redis and postgres backends all
// round-trip identically.
package store

import (
	"coffeeshop/internal/order/models"
	"coffeeshop/pkg/domain"
)

// Document is the storage representation of an order aggregate. Runtime-only
// state (pending domain events) is deliberately absent.
type Document struct {
	ID      string             `json:"id"`
	TableNo string             `json:"tableNumber"`
	Status  string             `json:"status"`
	Items   []models.OrderItem `json:"items"`
}

// ToDocument snapshots an aggregate for persistence.
func ToDocument(order *models.Order) Document {
	return Document{
		ID:      order.ID.String(),
		TableNo: order.TableNo,
		Status:  string(order.Status),
		Items:   append([]models.OrderItem(nil), order.Items...),
	}
}

// FromDocument rebuilds the aggregate from its stored form. Fails only if the
// stored identity token has been corrupted.
func FromDocument(doc Document) (*models.Order, error) {
	id, err := domain.ParseOrderID(doc.ID)
	if err != nil {
		return nil, err
	}
	return models.Reconstitute(id, doc.TableNo, models.OrderStatus(doc.Status), doc.Items), nil
}
