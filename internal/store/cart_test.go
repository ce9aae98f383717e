package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omerlior/storefront/internal/store"
)

func widget() store.Product {
	return store.Product{ID: 1, Title: "Widget", Price: 10.0, Stock: 5}
}

func gadget() store.Product {
	return store.Product{ID: 2, Title: "Gadget", Price: 5.0, Stock: 3}
}

func TestAddToCartInsertsNewLine(t *testing.T) {
	s := store.New()
	s.AddToCart(widget(), 3)

	lines := s.CartSnapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Product.ID)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAddToCartClampsToStock(t *testing.T) {
	s := store.New()
	s.AddToCart(widget(), 10)

	lines := s.CartSnapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddToCartAccumulatesAndClamps(t *testing.T) {
	s := store.New()
	s.AddToCart(widget(), 2)
	s.AddToCart(widget(), 2)

	lines := s.CartSnapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)

	s.AddToCart(widget(), 2)
	lines = s.CartSnapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity, "clamped at stock, line kept")
}

func TestAddToCartAtMostOneLinePerProduct(t *testing.T) {
	s := store.New()
	for i := 0; i < 10; i++ {
		s.AddToCart(widget(), 1)
	}
	assert.Equal(t, 1, s.CartSize())
}

func TestAddToCartZeroStockInsertsZeroQuantityLine(t *testing.T) {
	s := store.New()
	p := widget()
	p.Stock = 0
	s.AddToCart(p, 2)

	lines := s.CartSnapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 0, lines[0].Quantity)
}

func TestAddToCartPreservesInsertionOrder(t *testing.T) {
	s := store.New()
	s.AddToCart(widget(), 1)
	s.AddToCart(gadget(), 1)
	s.AddToCart(widget(), 1)

	lines := s.CartSnapshot()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Product.ID)
	assert.Equal(t, 2, lines[1].Product.ID)
}

func TestRemoveFromCart(t *testing.T) {
	s := store.New()
	s.AddToCart(widget(), 1)
	s.AddToCart(gadget(), 1)

	s.RemoveFromCart(1)
	lines := s.CartSnapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Product.ID)
}

func TestRemoveFromCartAbsentIDIsNoOp(t *testing.T) {
	s := store.New()
	s.AddToCart(widget(), 2)

	s.RemoveFromCart(99)
	lines := s.CartSnapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestDecreaseQuantityInCart(t *testing.T) {
	s := store.New()
	s.AddToCart(widget(), 3)

	s.DecreaseQuantityInCart(1)
	require.Equal(t, 2, s.CartSnapshot()[0].Quantity)

	s.DecreaseQuantityInCart(1)
	s.DecreaseQuantityInCart(1)
	assert.Equal(t, 0, s.CartSize(), "line removed once quantity hits zero")

	// further decreases on the absent id are no-ops
	s.DecreaseQuantityInCart(1)
	assert.Equal(t, 0, s.CartSize())
}

func TestTotal(t *testing.T) {
	lines := []store.CartLine{
		{Product: store.Product{ID: 1, Price: 10.0}, Quantity: 2},
		{Product: store.Product{ID: 2, Price: 5.0}, Quantity: 1},
	}
	assert.Equal(t, 25.0, store.Total(lines))
	assert.Equal(t, 0.0, store.Total(nil))
}

func TestTotalKeepsCentsExact(t *testing.T) {
	lines := []store.CartLine{
		{Product: store.Product{ID: 1, Price: 0.1}, Quantity: 3},
	}
	assert.Equal(t, 0.3, store.Total(lines))
}

func TestCheckout(t *testing.T) {
	s := store.New()
	s.SetCatalog([]store.Product{widget(), gadget()})
	a, _ := s.Product(1)
	b, _ := s.Product(2)
	s.AddToCart(a, 2)
	s.AddToCart(b, 1)

	total := s.Checkout()

	assert.Equal(t, 25.0, total)
	assert.Equal(t, 0, s.CartSize())
	assert.Equal(t, store.ModeThankYou, s.Mode())

	a, _ = s.Product(1)
	b, _ = s.Product(2)
	assert.Equal(t, 3, a.Stock)
	assert.Equal(t, 2, b.Stock)
}

func TestCheckoutSkipsLinesMissingFromCatalog(t *testing.T) {
	s := store.New()
	s.SetCatalog([]store.Product{widget()})
	s.AddToCart(widget(), 1)
	s.AddToCart(gadget(), 1) // not in the catalog

	total := s.Checkout()

	assert.Equal(t, 15.0, total)
	assert.Equal(t, 0, s.CartSize())
	p, ok := s.Product(1)
	require.True(t, ok)
	assert.Equal(t, 4, p.Stock)
}

func TestCartLinesAreSnapshots(t *testing.T) {
	s := store.New()
	s.SetCatalog([]store.Product{widget()})
	p, _ := s.Product(1)
	s.AddToCart(p, 2)

	before := s.CartSnapshot()
	s.Checkout() // mutates catalog stock

	assert.Equal(t, 5, before[0].Product.Stock, "line holds an independent copy")
}

func TestConcurrentCartMutationStaysConsistent(t *testing.T) {
	s := store.New()
	p := store.Product{ID: 7, Title: "Hot Item", Price: 1.0, Stock: 50}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				switch (g + i) % 3 {
				case 0:
					s.AddToCart(p, 1)
				case 1:
					s.DecreaseQuantityInCart(p.ID)
				case 2:
					s.RemoveFromCart(p.ID)
				}
			}
		}(g)
	}
	wg.Wait()

	lines := s.CartSnapshot()
	require.LessOrEqual(t, len(lines), 1, "at most one line per product id")
	if len(lines) == 1 {
		assert.Equal(t, p.ID, lines[0].Product.ID)
		assert.GreaterOrEqual(t, lines[0].Quantity, 1)
		assert.LessOrEqual(t, lines[0].Quantity, p.Stock)
	}
}
