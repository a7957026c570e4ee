// Package translate instantiates the generic mapping capability for the order
// context: wire item lists into domain items, and identity tokens into order
// identities.
package translate

import (
	"coffeeshop/internal/order/contracts"
	"coffeeshop/internal/order/models"
	"coffeeshop/pkg/domain"
	pkgerrors "coffeeshop/pkg/errors"
	"coffeeshop/pkg/translate"
)

// Items maps wire items to domain items. It only checks shape (required
// fields present); quantity and price invariants belong to the aggregate.
func Items() translate.Translator[[]contracts.OrderItemMsg, []models.OrderItem] {
	return translate.Func[[]contracts.OrderItemMsg, []models.OrderItem](func(in []contracts.OrderItemMsg) ([]models.OrderItem, error) {
		out := make([]models.OrderItem, 0, len(in))
		for i, item := range in {
			if item.ProductID == "" {
				return nil, pkgerrors.Newf(pkgerrors.CodeInvalidInput, "item %d: productId is required", i)
			}
			out = append(out, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}
		return out, nil
	})
}

// OrderID maps an identity token to an OrderID by delegating to the codec.
func OrderID() translate.Translator[string, domain.OrderID] {
	return translate.Func[string, domain.OrderID](domain.ParseOrderID)
}
