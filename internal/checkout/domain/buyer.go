package domain

import (
	"errors"
	"regexp"
)

// ErrCustomerNotFound is reported when a customer record lookup misses. It
// surfaces as a user-visible condition, never as a process failure.
var ErrCustomerNotFound = errors.New("customer not found")

var (
	idPattern     = regexp.MustCompile(`^[0-9]{9}$`)
	namePattern   = regexp.MustCompile(`^[A-Za-z ]+$`)
	cardPattern   = regexp.MustCompile(`^[0-9]{16}$`)
	expiryPattern = regexp.MustCompile(`^[0-9]{4}$`)
	cvvPattern    = regexp.MustCompile(`^[0-9]{3}$`)
)

// Buyer carries the checkout form fields. The same shape is persisted as a
// customer record when the buyer opts in.
type Buyer struct {
	ID         string
	FullName   string
	Address    string
	CreditCard string
	Expiry     string // MMYY
	CVV        string
}

// Validate checks the fixed field patterns and returns the first violation
// as a user-facing message.
func (b Buyer) Validate() error {
	switch {
	case !idPattern.MatchString(b.ID):
		return errors.New("invalid ID: must be exactly 9 digits")
	case !namePattern.MatchString(b.FullName):
		return errors.New("invalid name: must contain only letters")
	case b.Address == "":
		return errors.New("address must not be empty")
	case !cardPattern.MatchString(b.CreditCard):
		return errors.New("invalid credit card: must be exactly 16 digits")
	case !expiryPattern.MatchString(b.Expiry):
		return errors.New("invalid expiry: must be exactly 4 digits")
	case !cvvPattern.MatchString(b.CVV):
		return errors.New("invalid CVV: must be exactly 3 digits")
	}
	return nil
}
