package translate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/internal/order/contracts"
	"coffeeshop/internal/order/models"
	pkgerrors "coffeeshop/pkg/errors"
)

func TestItems_MapsWireItems(t *testing.T) {
	items, err := Items().Translate([]contracts.OrderItemMsg{
		{ProductID: "latte", Quantity: 2, Price: 4.50},
		{ProductID: "espresso", Quantity: 1, Price: 2.00},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.OrderItem{
		{ProductID: "latte", Quantity: 2, Price: 4.50},
		{ProductID: "espresso", Quantity: 1, Price: 2.00},
	}, items)
}

func TestItems_EmptyListMapsToEmptyList(t *testing.T) {
	// The translator is shape-only; the aggregate rejects empty orders.
	items, err := Items().Translate(nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItems_MissingProductID(t *testing.T) {
	_, err := Items().Translate([]contracts.OrderItemMsg{
		{ProductID: "latte", Quantity: 2, Price: 4.50},
		{Quantity: 1, Price: 2.00},
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeInvalidInput))
	assert.Contains(t, err.Error(), "item 1")
}

func TestOrderID_DelegatesToCodec(t *testing.T) {
	id, err := OrderID().Translate("ord-20230515113015-123")
	require.NoError(t, err)
	assert.Equal(t, int64(123), id.SeqNo)
	assert.True(t, id.CreatedAt.Equal(time.Date(2023, 5, 15, 11, 30, 15, 0, time.UTC)))

	_, err = OrderID().Translate("badformat")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeMalformedIdentity))
}
