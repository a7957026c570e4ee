// Package memory provides an in-process event sink for tests and local runs
// without a broker.
package memory

import (
	"context"
	"sync"

	"coffeeshop/internal/order/models"
)

type Sink struct {
	mu     sync.Mutex
	events []models.DomainEvent

	// Fail, when set, makes every Forward call return this error.
	Fail error
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Forward(_ context.Context, event models.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	s.events = append(s.events, event)
	return nil
}

// Events returns the forwarded events in arrival order.
func (s *Sink) Events() []models.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DomainEvent(nil), s.events...)
}
