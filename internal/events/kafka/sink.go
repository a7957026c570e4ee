// Package kafka ships domain events to a Kafka topic. Producing is
// synchronous so the application service learns about sink failures within
// the request that caused them.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"coffeeshop/internal/order/models"
)

// Sink is a Kafka-backed event sink. Records are keyed by aggregate ID so
// one order's events stay on one partition.
type Sink struct {
	client *kgo.Client
	topic  string
}

// NewSink connects a producer to the given brokers and topic.
func NewSink(brokers []string, topic string) (*Sink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.LeaderAck()),
		kgo.DisableIdempotentWrite(),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer: %w", err)
	}
	return &Sink{client: client, topic: topic}, nil
}

func (s *Sink) Forward(ctx context.Context, event models.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventType(), err)
	}

	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.AggregateID()),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte(event.EventType())},
			{Key: "event_id", Value: []byte(event.EventID())},
		},
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce %s: %w", event.EventType(), err)
	}
	return nil
}

func (s *Sink) Close() {
	s.client.Close()
}
