package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omerlior/storefront/internal/store"
)

func TestNewStoreStartsEmptyInCatalogMode(t *testing.T) {
	s := store.New()
	assert.Equal(t, store.ModeCatalog, s.Mode())
	assert.Equal(t, store.NoSelection, s.SelectedID())
	assert.False(t, s.DataReady())
	assert.False(t, s.FetchPending())
	assert.Empty(t, s.Catalog())
	assert.Empty(t, s.CartSnapshot())
}

func TestShowProductSetsModeSelectionAndFetchFlag(t *testing.T) {
	s := store.New()
	s.ShowProduct(7)

	assert.Equal(t, store.ModeProductDetail, s.Mode())
	assert.Equal(t, 7, s.SelectedID())
	assert.True(t, s.FetchPending())
}

func TestShowCartNeedsNoFetch(t *testing.T) {
	s := store.New()
	s.ShowCart()

	assert.Equal(t, store.ModeCart, s.Mode())
	assert.Equal(t, store.NoSelection, s.SelectedID())
	assert.False(t, s.FetchPending())
}

func TestAwaitFetchRequestObservesSelection(t *testing.T) {
	s := store.New()
	s.SetCatalog([]store.Product{{ID: 7, Title: "Hot Item", Stock: 2, Images: []string{"a", "b"}}})

	type result struct {
		task store.FetchTask
		ok   bool
	}
	got := make(chan result, 1)
	go func() {
		task, ok := s.AwaitFetchRequest()
		got <- result{task, ok}
	}()

	s.ShowProduct(7)

	select {
	case r := <-got:
		require.True(t, r.ok)
		task := r.task
		assert.Equal(t, store.ModeProductDetail, task.Mode)
		require.True(t, task.HasProduct)
		assert.Equal(t, 7, task.Product.ID)
		assert.Equal(t, []string{"a", "b"}, task.Product.Images)
	case <-time.After(2 * time.Second):
		t.Fatal("worker never woke up")
	}
}

func TestAwaitFetchRequestReturnsFalseOnExit(t *testing.T) {
	s := store.New()

	done := make(chan bool, 1)
	go func() {
		_, ok := s.AwaitFetchRequest()
		done <- ok
	}()

	s.RequestExit()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("worker never woke up on exit")
	}
	assert.True(t, s.Exiting())
}

func TestExitWinsOverPendingFetch(t *testing.T) {
	s := store.New()
	s.ShowCatalog()
	s.RequestExit()

	_, ok := s.AwaitFetchRequest()
	assert.False(t, ok, "exit must be observed instead of the queued fetch")
}

func TestFinishFetchClearsFlag(t *testing.T) {
	s := store.New()
	s.ShowCatalog()
	require.True(t, s.FetchPending())

	s.FinishFetch()
	assert.False(t, s.FetchPending())
}

func TestDataReadyLatches(t *testing.T) {
	s := store.New()
	s.SetCatalog([]store.Product{{ID: 1}})
	require.True(t, s.DataReady())

	// an empty replacement never clears the latch
	s.SetCatalog(nil)
	assert.True(t, s.DataReady())
}

func TestSetCatalogWithNothingDoesNotLatch(t *testing.T) {
	s := store.New()
	s.SetCatalog(nil)
	assert.False(t, s.DataReady())
}

func TestProductLookupIsByID(t *testing.T) {
	s := store.New()
	s.SetCatalog([]store.Product{{ID: 30}, {ID: 10}, {ID: 20}})

	p, ok := s.Product(10)
	require.True(t, ok)
	assert.Equal(t, 10, p.ID)

	_, ok = s.Product(99)
	assert.False(t, ok)
}

func TestCatalogReturnsCopies(t *testing.T) {
	s := store.New()
	s.SetCatalog([]store.Product{{ID: 1, Tags: []string{"sale"}}})

	got := s.Catalog()
	got[0].Tags[0] = "mutated"
	got[0].Stock = 99

	p, _ := s.Product(1)
	assert.Equal(t, "sale", p.Tags[0])
	assert.Equal(t, 0, p.Stock)
}

func TestAssetCache(t *testing.T) {
	s := store.New()
	assert.False(t, s.HasAsset(1, "image_1_0.png"))

	s.AddAsset(1, "image_1_0.png")
	s.AddAsset(1, "image_1_1.png")

	assert.True(t, s.HasAsset(1, "image_1_0.png"))
	assert.False(t, s.HasAsset(2, "image_1_0.png"), "cache is per product")
	assert.Equal(t, []string{"image_1_0.png", "image_1_1.png"}, s.Assets(1))
}

func TestConsumeLastErrorClearsAfterOneRead(t *testing.T) {
	s := store.New()

	_, ok := s.ConsumeLastError()
	require.False(t, ok)

	s.SetLastError("Customer not found.")
	msg, ok := s.ConsumeLastError()
	require.True(t, ok)
	assert.Equal(t, "Customer not found.", msg)

	_, ok = s.ConsumeLastError()
	assert.False(t, ok, "message shown once, then cleared")
}
