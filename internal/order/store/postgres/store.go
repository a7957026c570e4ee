// Package postgres persists order documents in a single JSONB-backed table.
// The relational engine is treated as a document store: the specification
// filter runs client-side over loaded documents, same as the other adapters.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/order/models"
	"coffeeshop/internal/order/store"
	"coffeeshop/pkg/domain"
	"coffeeshop/pkg/platform/sentinel"
)

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock substitutes the wall clock used for identity generation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// EnsureSchema creates the orders table if missing. The sample has no
// migration tooling, so adapters own their schema.
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS orders (
			id         TEXT PRIMARY KEY,
			table_no   TEXT NOT NULL,
			status     TEXT NOT NULL,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}
	return nil
}

// NewOrderID derives the sequence number from the current epoch second; see
// the identity scheme's documented same-second collision weakness.
func (s *Store) NewOrderID(_ context.Context) (domain.OrderID, error) {
	now := s.now().UTC()
	return domain.NewOrderID(now.Unix(), now), nil
}

// Save upserts by identity token.
func (s *Store) Save(ctx context.Context, order *models.Order) error {
	doc := store.ToDocument(order)
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal order document: %w", err)
	}

	query := `
		INSERT INTO orders (id, table_no, status, document, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET table_no = EXCLUDED.table_no,
		    status = EXCLUDED.status,
		    document = EXCLUDED.document,
		    updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, doc.ID, doc.TableNo, doc.Status, payload, time.Now()); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}
	return nil
}

func (s *Store) GetBy(ctx context.Context, id domain.OrderID) (*models.Order, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT document FROM orders WHERE id = $1`, id.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}

	var doc store.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode order document: %w", err)
	}
	return store.FromDocument(doc)
}

func (s *Store) Get(ctx context.Context, spec domain.Specification[*models.Order], pageNo, pageSize int) ([]*models.Order, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT document FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var docs []store.Document
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		var doc store.Document
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("decode order document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return store.FilterPage(docs, spec, pageNo, pageSize)
}
