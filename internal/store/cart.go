package store

import "github.com/shopspring/decimal"

// Cart mutations. All of them serialize on the store mutex, including
// AddToCart: the cart is reachable from both the presentation driver and
// future callers, so there is no unlocked path.

// AddToCart adds requestedQty of the product to the cart. If a line for the
// product already exists its quantity grows, clamped to the product's stock;
// otherwise a new line is appended. Clamping is silent: callers never see an
// error from cart mutation. A product with zero stock still yields a line
// with quantity 0, which callers should guard against.
func (s *Store) AddToCart(p Product, requestedQty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == p.ID {
			q := s.cart[i].Quantity + requestedQty
			if q > p.Stock {
				q = p.Stock
			}
			s.cart[i].Quantity = q
			return
		}
	}
	q := requestedQty
	if q > p.Stock {
		q = p.Stock
	}
	s.cart = append(s.cart, CartLine{Product: cloneProduct(p), Quantity: q})
}

// RemoveFromCart removes the line for the product id. Absent id is a no-op.
func (s *Store) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// DecreaseQuantityInCart lowers the line quantity by one, removing the line
// when it reaches zero. Absent id is a no-op.
func (s *Store) DecreaseQuantityInCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			if s.cart[i].Quantity > 1 {
				s.cart[i].Quantity--
			} else {
				s.cart = append(s.cart[:i], s.cart[i+1:]...)
			}
			return
		}
	}
}

// CartSnapshot returns a deep copy of the cart in insertion order.
func (s *Store) CartSnapshot() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.cart)
}

// CartSize returns the number of lines in the cart.
func (s *Store) CartSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart)
}

// TotalPrice returns the current cart total.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Total(s.cart)
}

// Total sums price times quantity over the lines. Prices come off the wire
// as floats, so the sum goes through decimals to keep cents exact.
func Total(lines []CartLine) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		line := decimal.NewFromFloat(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
		sum = sum.Add(line)
	}
	f, _ := sum.Float64()
	return f
}

// Checkout settles the cart in one atomic step: each line's quantity is
// subtracted from the matching catalog product's stock (lines whose product
// left the catalog are skipped), the cart is cleared and the mode advances
// to the thank-you screen. Returns the settled total.
func (s *Store) Checkout() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := Total(s.cart)
	for _, line := range s.cart {
		if i := s.indexOf(line.Product.ID); i >= 0 {
			s.products[i].Stock -= line.Quantity
		}
	}
	s.cart = nil
	s.mode = ModeThankYou
	s.selectedID = NoSelection
	return total
}
