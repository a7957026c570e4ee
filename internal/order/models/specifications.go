package models

import "coffeeshop/pkg/domain"

// Concrete specifications the repository query path supports. Adapters filter
// loaded documents through these, keeping the domain contract storage-agnostic.

// ByStatus matches orders in the given status.
func ByStatus(status OrderStatus) domain.Specification[*Order] {
	return domain.SpecFunc[*Order](func(o *Order) bool {
		return o.Status == status
	})
}

// ByTable matches orders taken at the given table.
func ByTable(tableNo string) domain.Specification[*Order] {
	return domain.SpecFunc[*Order](func(o *Order) bool {
		return o.TableNo == tableNo
	})
}

// All matches every order.
func All() domain.Specification[*Order] {
	return domain.SpecFunc[*Order](func(*Order) bool { return true })
}
