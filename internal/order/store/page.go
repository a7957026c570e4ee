package store

import (
	"math"
	"sort"

	"coffeeshop/internal/order/models"
	"coffeeshop/pkg/domain"
	pkgerrors "coffeeshop/pkg/errors"
)

// FilterPage applies a specification and 1-based pagination to loaded
// documents. Documents sort by identity token, which orders them by creation
// time; that keeps result pages consistent across calls absent mutation.
func FilterPage(docs []Document, spec domain.Specification[*models.Order], pageNo, pageSize int) ([]*models.Order, error) {
	if pageNo < 1 || pageSize < 1 {
		return nil, pkgerrors.Newf(pkgerrors.CodeInvalidInput, "pageNo and pageSize must be >= 1, got %d/%d", pageNo, pageSize)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	var matched []*models.Order
	for _, doc := range docs {
		order, err := FromDocument(doc)
		if err != nil {
			return nil, err
		}
		if spec.IsSatisfiedBy(order) {
			matched = append(matched, order)
		}
	}

	// Guard the multiplication: a huge pageNo would overflow into a negative
	// start index. Any page that far in is past the data anyway.
	if pageNo-1 > (math.MaxInt-1)/pageSize {
		return nil, nil
	}
	start := (pageNo - 1) * pageSize
	if start >= len(matched) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}
