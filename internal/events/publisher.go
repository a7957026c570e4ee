// Package events forwards recorded domain events to an external sink. The
// publisher must only run after the owning aggregate's persistence has
// committed; it never rolls persistence back on failure.
package events

import (
	"context"
	"log"

	"coffeeshop/internal/order/models"
	pkgerrors "coffeeshop/pkg/errors"
)

// Sink ships a single event to the external event bus.
type Sink interface {
	Forward(ctx context.Context, event models.DomainEvent) error
}

// Source is an aggregate that accumulated events since its last extraction.
// Pulling clears the aggregate's buffer; the publisher is the only reader.
type Source interface {
	PullEvents() []models.DomainEvent
}

// Publisher drains an aggregate's recorded events into the sink, in order.
// The pull happens up front, so a mid-sequence sink failure drops the
// remaining events of that batch; the caller sees the error but persisted
// state stays untouched. Orders record a single event today, so a partial
// batch cannot occur yet.
type Publisher struct {
	sink Sink
	log  *log.Logger
}

func NewPublisher(sink Sink, log *log.Logger) *Publisher {
	return &Publisher{sink: sink, log: log}
}

func (p *Publisher) Publish(ctx context.Context, source Source) error {
	for _, event := range source.PullEvents() {
		if err := p.sink.Forward(ctx, event); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodePublish, "forward "+event.EventType()+" "+event.EventID(), err)
		}
		p.log.Printf("published %s for %s", event.EventType(), event.AggregateID())
	}
	return nil
}
