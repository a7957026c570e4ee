// Package memory is the in-process order store used by tests and local runs.
package memory

import (
	"context"
	"sync"
	"time"

	"coffeeshop/internal/order/models"
	"coffeeshop/internal/order/store"
	"coffeeshop/pkg/domain"
	"coffeeshop/pkg/platform/sentinel"
)

type Store struct {
	mu     sync.RWMutex
	orders map[string]store.Document
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock substitutes the wall clock; tests use it to pin identity
// generation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		orders: make(map[string]store.Document),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// NewOrderID derives the sequence number from the current epoch second, as
// the identity scheme prescribes. Two calls within the same second therefore
// collide; that weakness is part of the scheme, not this store.
func (s *Store) NewOrderID(_ context.Context) (domain.OrderID, error) {
	now := s.now().UTC()
	return domain.NewOrderID(now.Unix(), now), nil
}

// Save upserts by identity. Repeated saves of the same content are no-ops.
func (s *Store) Save(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := store.ToDocument(order)
	s.orders[doc.ID] = doc
	return nil
}

func (s *Store) GetBy(_ context.Context, id domain.OrderID) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.orders[id.String()]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return store.FromDocument(doc)
}

func (s *Store) Get(_ context.Context, spec domain.Specification[*models.Order], pageNo, pageSize int) ([]*models.Order, error) {
	s.mu.RLock()
	docs := make([]store.Document, 0, len(s.orders))
	for _, doc := range s.orders {
		docs = append(docs, doc)
	}
	s.mu.RUnlock()

	return store.FilterPage(docs, spec, pageNo, pageSize)
}
