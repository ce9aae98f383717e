package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/omerlior/storefront/internal/checkout/domain"
)

// CustomerStore keeps one key-value text record per customer, named by the
// buyer id.
type CustomerStore struct {
	log *slog.Logger
	dir string
}

func NewCustomerStore(log *slog.Logger, dir string) *CustomerStore {
	return &CustomerStore{log: log, dir: dir}
}

func (s *CustomerStore) path(id string) string {
	return filepath.Join(s.dir, id+".txt")
}

// Save writes the customer record atomically, replacing any previous one.
func (s *CustomerStore) Save(ctx context.Context, b domain.Buyer) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "ID: %s\n", b.ID)
	fmt.Fprintf(&buf, "Full Name: %s\n", b.FullName)
	fmt.Fprintf(&buf, "Address: %s\n", b.Address)
	fmt.Fprintf(&buf, "Credit Card: %s\n", b.CreditCard)
	fmt.Fprintf(&buf, "Expiry: %s\n", b.Expiry)
	fmt.Fprintf(&buf, "CVV: %s\n", b.CVV)

	if err := writeAtomic(s.path(b.ID), buf.Bytes()); err != nil {
		return fmt.Errorf("write customer record: %w", err)
	}
	s.log.Info("customer saved", "customer_id", b.ID)
	return nil
}

// Find reads the customer record for the id. A missing file maps to
// domain.ErrCustomerNotFound; unknown keys in the record are ignored.
func (s *CustomerStore) Find(ctx context.Context, id string) (domain.Buyer, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Buyer{}, domain.ErrCustomerNotFound
		}
		return domain.Buyer{}, fmt.Errorf("read customer record: %w", err)
	}

	b := domain.Buyer{ID: id}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "Full Name":
			b.FullName = value
		case "Address":
			b.Address = value
		case "Credit Card":
			b.CreditCard = value
		case "Expiry":
			b.Expiry = value
		case "CVV":
			b.CVV = value
		}
	}
	return b, nil
}
