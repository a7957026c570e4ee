//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"coffeeshop/internal/order/models"
	"coffeeshop/pkg/domain"
	"coffeeshop/pkg/testutil/containers"
)

func TestKafkaSink_Integration(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)
	ctx := context.Background()

	const topic = "coffeeshop.order.events"

	admClient, err := kgo.NewClient(kgo.SeedBrokers(rp.Broker))
	require.NoError(t, err)
	defer admClient.Close()

	adm := kadm.NewClient(admClient)
	_, err = adm.CreateTopics(ctx, 1, 1, nil, topic)
	require.NoError(t, err)

	sink, err := NewSink([]string{rp.Broker}, topic)
	require.NoError(t, err)
	defer sink.Close()

	order, err := models.Create(models.CreateOrder{
		ID:      domain.NewOrderID(1684150215, time.Date(2023, 5, 15, 11, 30, 15, 0, time.UTC)),
		TableNo: "5",
		Status:  models.StatusInitial,
		Items:   []models.OrderItem{{ProductID: "latte", Quantity: 2, Price: 4.50}},
	})
	require.NoError(t, err)

	event := order.PullEvents()[0]
	require.NoError(t, sink.Forward(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, order.ID.String(), string(record.Key))

	var payload models.OrderCreated
	require.NoError(t, json.Unmarshal(record.Value, &payload))
	assert.Equal(t, order.ID.String(), payload.OrderID)
	assert.Equal(t, "5", payload.TableNo)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, 2, payload.Items[0].Quantity)

	var eventType string
	for _, h := range record.Headers {
		if h.Key == "event_type" {
			eventType = string(h.Value)
		}
	}
	assert.Equal(t, models.EventOrderCreated, eventType)
}
