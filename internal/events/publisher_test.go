package events_test

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/internal/events"
	"coffeeshop/internal/events/memory"
	"coffeeshop/internal/order/models"
	"coffeeshop/pkg/domain"
	pkgerrors "coffeeshop/pkg/errors"
)

func newOrder(t *testing.T) *models.Order {
	t.Helper()
	order, err := models.Create(models.CreateOrder{
		ID:      domain.NewOrderID(123, time.Date(2023, 5, 15, 11, 30, 15, 0, time.UTC)),
		TableNo: "5",
		Status:  models.StatusInitial,
		Items:   []models.OrderItem{{ProductID: "latte", Quantity: 2, Price: 4.50}},
	})
	require.NoError(t, err)
	return order
}

func TestPublish_ForwardsInOrderAndClearsAggregate(t *testing.T) {
	sink := memory.NewSink()
	pub := events.NewPublisher(sink, log.New(os.Stdout, "", log.LstdFlags))

	order := newOrder(t)
	require.NoError(t, pub.Publish(context.Background(), order))

	forwarded := sink.Events()
	require.Len(t, forwarded, 1)
	assert.Equal(t, models.EventOrderCreated, forwarded[0].EventType())
	assert.Equal(t, order.ID.String(), forwarded[0].AggregateID())

	// Aggregate buffer drained; a second publish is a no-op.
	require.NoError(t, pub.Publish(context.Background(), order))
	assert.Len(t, sink.Events(), 1)
}

func TestPublish_SinkFailureIsPublishCoded(t *testing.T) {
	sink := memory.NewSink()
	sink.Fail = errors.New("broker down")
	pub := events.NewPublisher(sink, log.New(os.Stdout, "", log.LstdFlags))

	err := pub.Publish(context.Background(), newOrder(t))
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodePublish))
}
