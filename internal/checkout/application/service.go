package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/omerlior/storefront/internal/checkout/domain"
	"github.com/omerlior/storefront/internal/store"
)

// ErrEmptyCart rejects a checkout attempt with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// Service orchestrates checkout: buyer validation, order and customer record
// writes, then the atomic cart settlement on the store.
type Service struct {
	log       *slog.Logger
	store     *store.Store
	orders    OrderWriter
	customers CustomerRepository
}

func NewService(log *slog.Logger, st *store.Store, orders OrderWriter, customers CustomerRepository) *Service {
	return &Service{log: log, store: st, orders: orders, customers: customers}
}

// PlaceOrder validates the buyer, writes the order record (and the customer
// record when saveDetails is set), then settles the cart: stock decremented,
// cart cleared, mode advanced to the thank-you screen. Validation and write
// failures are also recorded on the store for the presentation driver to
// show once.
func (s *Service) PlaceOrder(ctx context.Context, buyer domain.Buyer, saveDetails bool) (domain.Order, error) {
	if err := buyer.Validate(); err != nil {
		s.store.SetLastError(err.Error())
		return domain.Order{}, err
	}

	lines := s.store.CartSnapshot()
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.NewOrder(buyer, lines, store.Total(lines))
	if err := s.orders.WriteOrder(ctx, order); err != nil {
		s.store.SetLastError("Could not save your order. Please try again.")
		return domain.Order{}, fmt.Errorf("write order: %w", err)
	}

	if saveDetails {
		if err := s.customers.Save(ctx, buyer); err != nil {
			// order is already placed, losing the saved details is not fatal
			s.log.Error("customer save failed", "customer_id", buyer.ID, "err", err)
		}
	}

	s.store.Checkout()
	s.log.Info("order placed", "order_id", order.ID, "total", order.Total, "lines", len(order.Lines))
	return order, nil
}

// LoadCustomer fetches a saved customer record to prefill the checkout form.
// A missing record becomes a user-visible store error, not an escalation.
func (s *Service) LoadCustomer(ctx context.Context, id string) (domain.Buyer, error) {
	b, err := s.customers.Find(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			s.store.SetLastError("Customer not found.")
		}
		return domain.Buyer{}, err
	}
	return b, nil
}
