package file

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/omerlior/storefront/internal/checkout/domain"
)

// OrderStore writes order records under a directory, one file per order.
type OrderStore struct {
	log *slog.Logger
	dir string
}

func NewOrderStore(log *slog.Logger, dir string) *OrderStore {
	return &OrderStore{log: log, dir: dir}
}

// WriteOrder renders the order as a text record and writes it atomically.
func (s *OrderStore) WriteOrder(ctx context.Context, o domain.Order) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Full Name: %s\n", o.FullName)
	fmt.Fprintf(&buf, "Address: %s\n", o.Address)
	buf.WriteString("Items:\n")
	for _, line := range o.Lines {
		lineTotal := decimal.NewFromFloat(line.Product.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		fmt.Fprintf(&buf, "%s x %d - $%s\n", line.Product.Title, line.Quantity, lineTotal.StringFixed(2))
	}
	fmt.Fprintf(&buf, "Total Price: $%s\n", decimal.NewFromFloat(o.Total).StringFixed(2))

	path := filepath.Join(s.dir, "order-"+o.ID+".txt")
	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write order record: %w", err)
	}
	s.log.Info("order saved", "path", path)
	return nil
}
