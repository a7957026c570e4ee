//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/internal/order/models"
	"coffeeshop/pkg/domain"
	"coffeeshop/pkg/platform/sentinel"
	"coffeeshop/pkg/testutil/containers"
)

func seedOrder(t *testing.T, seqNo int64, tableNo string) *models.Order {
	t.Helper()
	order, err := models.Create(models.CreateOrder{
		ID:      domain.NewOrderID(seqNo, time.Unix(seqNo, 0).UTC()),
		TableNo: tableNo,
		Status:  models.StatusInitial,
		Items:   []models.OrderItem{{ProductID: "latte", Quantity: 2, Price: 4.50}},
	})
	require.NoError(t, err)
	return order
}

func TestRedisStore_Integration(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	store := New(rc.Client)
	ctx := context.Background()

	t.Run("save and load round-trips the document", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))

		order := seedOrder(t, 1684150215, "5")
		require.NoError(t, store.Save(ctx, order))

		found, err := store.GetBy(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID.String(), found.ID.String())
		assert.Equal(t, "5", found.TableNo)
		assert.Equal(t, models.StatusInitial, found.Status)
		assert.Equal(t, order.Items, found.Items)
	})

	t.Run("save is idempotent", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))

		order := seedOrder(t, 1684150215, "5")
		require.NoError(t, store.Save(ctx, order))
		require.NoError(t, store.Save(ctx, order))

		page, err := store.Get(ctx, models.All(), 1, 10)
		require.NoError(t, err)
		assert.Len(t, page, 1)
	})

	t.Run("unknown identity is ErrNotFound", func(t *testing.T) {
		_, err := store.GetBy(ctx, domain.NewOrderID(1, time.Now()))
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("specification query paginates consistently", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))

		for seq := int64(100); seq < 105; seq++ {
			table := "5"
			if seq%2 == 0 {
				table = "9"
			}
			require.NoError(t, store.Save(ctx, seedOrder(t, seq, table)))
		}

		nine, err := store.Get(ctx, models.ByTable("9"), 1, 10)
		require.NoError(t, err)
		assert.Len(t, nine, 3)

		first, err := store.Get(ctx, models.All(), 1, 2)
		require.NoError(t, err)
		second, err := store.Get(ctx, models.All(), 2, 2)
		require.NoError(t, err)
		require.Len(t, first, 2)
		require.Len(t, second, 2)
		assert.Less(t, first[1].ID.String(), second[0].ID.String())
	})
}
