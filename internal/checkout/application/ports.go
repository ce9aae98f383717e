package application

import (
	"context"

	"github.com/omerlior/storefront/internal/checkout/domain"
)

// OrderWriter persists one order record. A record must be all-or-nothing: a
// later read never observes a partial order.
type OrderWriter interface {
	WriteOrder(ctx context.Context, o domain.Order) error
}

// CustomerRepository persists and looks up customer records by buyer id.
// Find reports a missing record with domain.ErrCustomerNotFound.
type CustomerRepository interface {
	Save(ctx context.Context, b domain.Buyer) error
	Find(ctx context.Context, id string) (domain.Buyer, error)
}
