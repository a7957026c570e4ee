// Package redis is the document-store order adapter. Each aggregate is one
// JSON document keyed by its identity token; specification queries scan the
// keyspace and filter client-side, so no query syntax leaks into the domain.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"coffeeshop/internal/order/models"
	"coffeeshop/internal/order/store"
	"coffeeshop/pkg/domain"
	"coffeeshop/pkg/platform/sentinel"
)

var saveDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "coffeeshop_order_save_duration_ms",
	Help:    "Latency of order document writes in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

const orderKeyPrefix = "order:"

type Store struct {
	client *redis.Client
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock substitutes the wall clock used for identity generation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(client *redis.Client, opts ...Option) *Store {
	s := &Store{client: client, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// NewOrderID derives the sequence number from the current epoch second.
// Identities generated within the same second collide; the scheme documents
// this weakness rather than hiding it.
func (s *Store) NewOrderID(_ context.Context) (domain.OrderID, error) {
	now := s.now().UTC()
	return domain.NewOrderID(now.Unix(), now), nil
}

// Save upserts the order document under its identity key.
func (s *Store) Save(ctx context.Context, order *models.Order) error {
	start := time.Now()
	defer func() {
		saveDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	doc := store.ToDocument(order)
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal order document: %w", err)
	}
	if err := s.client.Set(ctx, orderKeyPrefix+doc.ID, payload, 0).Err(); err != nil {
		return fmt.Errorf("write order document: %w", err)
	}
	return nil
}

func (s *Store) GetBy(ctx context.Context, id domain.OrderID) (*models.Order, error) {
	payload, err := s.client.Get(ctx, orderKeyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read order document: %w", err)
	}

	var doc store.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode order document: %w", err)
	}
	return store.FromDocument(doc)
}

func (s *Store) Get(ctx context.Context, spec domain.Specification[*models.Order], pageNo, pageSize int) ([]*models.Order, error) {
	var docs []store.Document

	iter := s.client.Scan(ctx, 0, orderKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		payload, err := s.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read order document %s: %w", iter.Val(), err)
		}
		var doc store.Document
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("decode order document %s: %w", iter.Val(), err)
		}
		docs = append(docs, doc)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan order keys: %w", err)
	}

	return store.FilterPage(docs, spec, pageNo, pageSize)
}
