// Package service orchestrates the order use cases. It owns no business
// rules: validation lives in the aggregate, mapping in translators, storage
// behind the Repository port.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Repository,Publisher

import (
	"context"
	"errors"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"coffeeshop/internal/events"
	"coffeeshop/internal/order/contracts"
	"coffeeshop/internal/order/models"
	ordertranslate "coffeeshop/internal/order/translate"
	"coffeeshop/internal/platform/metrics"
	"coffeeshop/pkg/domain"
	pkgerrors "coffeeshop/pkg/errors"
	"coffeeshop/pkg/platform/sentinel"
	"coffeeshop/pkg/translate"
)

// Repository is the persistence port for order aggregates. Identity
// generation lives here so the storage layer owns sequence derivation.
type Repository interface {
	NewOrderID(ctx context.Context) (domain.OrderID, error)
	Save(ctx context.Context, order *models.Order) error
	GetBy(ctx context.Context, id domain.OrderID) (*models.Order, error)
	Get(ctx context.Context, spec domain.Specification[*models.Order], pageNo, pageSize int) ([]*models.Order, error)
}

// Publisher drains an aggregate's recorded events after its save committed.
type Publisher interface {
	Publish(ctx context.Context, source events.Source) error
}

// CreateOrderSvc is the create-order application service. All collaborators
// are passed explicitly; there is no ambient lookup.
type CreateOrderSvc struct {
	repo      Repository
	items     translate.Translator[[]contracts.OrderItemMsg, []models.OrderItem]
	ids       translate.Translator[string, domain.OrderID]
	publisher Publisher
	log       *log.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

func New(repo Repository, publisher Publisher, log *log.Logger, m *metrics.Metrics) *CreateOrderSvc {
	return &CreateOrderSvc{
		repo:      repo,
		items:     ordertranslate.Items(),
		ids:       ordertranslate.OrderID(),
		publisher: publisher,
		log:       log,
		metrics:   m,
		tracer:    otel.Tracer("coffeeshop/order"),
	}
}

// EstablishOrder runs the create-order sequence: generate identity, translate
// items, create the aggregate, persist it, then publish its events. A publish
// failure is returned to the caller but does not undo the save.
func (s *CreateOrderSvc) EstablishOrder(ctx context.Context, msg contracts.CreateOrderMsg) (contracts.OrderResult, error) {
	ctx, span := s.tracer.Start(ctx, "EstablishOrder")
	defer span.End()

	start := time.Now()
	result, err := s.establishOrder(ctx, msg)
	s.metrics.EstablishLatency.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		s.metrics.OrderFailures.WithLabelValues(string(pkgerrors.CodeOf(err))).Inc()
		return contracts.OrderResult{}, err
	}
	s.metrics.OrdersCreated.Inc()
	return result, nil
}

func (s *CreateOrderSvc) establishOrder(ctx context.Context, msg contracts.CreateOrderMsg) (contracts.OrderResult, error) {
	id, err := s.repo.NewOrderID(ctx)
	if err != nil {
		return contracts.OrderResult{}, pkgerrors.Wrap(pkgerrors.CodePersistence, "generate order identity", err)
	}

	items, err := s.items.Translate(msg.Items)
	if err != nil {
		return contracts.OrderResult{}, err
	}

	order, err := models.Create(models.CreateOrder{
		ID:      id,
		TableNo: msg.TableNo,
		Status:  models.StatusInitial,
		Items:   items,
	})
	if err != nil {
		return contracts.OrderResult{}, err
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return contracts.OrderResult{}, pkgerrors.Wrap(pkgerrors.CodePersistence, "save order "+order.ID.String(), err)
	}
	s.log.Printf("order %s saved for table %s", order.ID, order.TableNo)

	if err := s.publisher.Publish(ctx, order); err != nil {
		// The save stays committed; the caller learns the events did not
		// all reach the bus.
		s.metrics.PublishFailures.Inc()
		return contracts.OrderResult{}, err
	}

	return toResult(order), nil
}

// GetOrder loads one order by its identity token.
func (s *CreateOrderSvc) GetOrder(ctx context.Context, token string) (contracts.OrderResult, error) {
	id, err := s.ids.Translate(token)
	if err != nil {
		return contracts.OrderResult{}, err
	}

	order, err := s.repo.GetBy(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return contracts.OrderResult{}, pkgerrors.Newf(pkgerrors.CodeNotFound, "order %s not found", token)
	}
	if err != nil {
		return contracts.OrderResult{}, pkgerrors.Wrap(pkgerrors.CodePersistence, "load order "+token, err)
	}
	return toResult(order), nil
}

// ListOrders pages through orders matching the optional table and status
// filters, combined as a conjunction.
func (s *CreateOrderSvc) ListOrders(ctx context.Context, tableNo, status string, pageNo, pageSize int) ([]contracts.OrderResult, error) {
	specs := []domain.Specification[*models.Order]{}
	if tableNo != "" {
		specs = append(specs, models.ByTable(tableNo))
	}
	if status != "" {
		specs = append(specs, models.ByStatus(models.OrderStatus(status)))
	}

	orders, err := s.repo.Get(ctx, domain.And(specs...), pageNo, pageSize)
	if err != nil {
		var ae *pkgerrors.AggregateError
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, "list orders", err)
	}

	results := make([]contracts.OrderResult, 0, len(orders))
	for _, order := range orders {
		results = append(results, toResult(order))
	}
	return results, nil
}

func toResult(order *models.Order) contracts.OrderResult {
	items := make([]contracts.OrderItemResult, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, contracts.OrderItemResult{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return contracts.OrderResult{
		ID:      order.ID.String(),
		TableNo: order.TableNo,
		Status:  string(order.Status),
		Items:   items,
	}
}
