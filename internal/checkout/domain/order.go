package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/omerlior/storefront/internal/store"
)

// Order is the record written at checkout: the buyer's shipping fields plus
// a snapshot of the cart lines and the settled total.
type Order struct {
	ID       string
	FullName string
	Address  string
	Lines    []store.CartLine
	Total    float64
	PlacedAt time.Time
}

func NewOrder(buyer Buyer, lines []store.CartLine, total float64) Order {
	return Order{
		ID:       uuid.NewString(),
		FullName: buyer.FullName,
		Address:  buyer.Address,
		Lines:    lines,
		Total:    total,
		PlacedAt: time.Now().UTC(),
	}
}
