package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/omerlior/storefront/internal/store"
)

// Worker is the background fetch loop. It sleeps on the store's fetch
// signal, snapshots the mode and selection under the store lock, performs
// all network I/O outside the lock and writes results back through the
// store's accessors. One worker runs for the process lifetime.
type Worker struct {
	log     *slog.Logger
	store   *store.Store
	catalog CatalogFetcher
	assets  AssetFetcher
}

func NewWorker(log *slog.Logger, st *store.Store, catalog CatalogFetcher, assets AssetFetcher) *Worker {
	return &Worker{log: log, store: st, catalog: catalog, assets: assets}
}

// Run loops until the store's exit flag is raised. A failed fetch leaves the
// store in its last-known-good state; the next user-triggered request is the
// retry mechanism, there is no backoff.
func (w *Worker) Run(ctx context.Context) {
	for {
		task, ok := w.store.AwaitFetchRequest()
		if !ok {
			w.log.Info("fetch worker stopping")
			return
		}

		switch task.Mode {
		case store.ModeCatalog:
			w.refreshCatalog(ctx)
		case store.ModeProductDetail:
			if task.HasProduct {
				w.fetchProductAssets(ctx, task.Product)
			}
		default:
			// other screens need no network action
		}

		w.store.FinishFetch()
	}
}

func (w *Worker) refreshCatalog(ctx context.Context) {
	products, err := w.catalog.FetchCatalog(ctx)
	if err != nil {
		w.log.Error("catalog fetch failed", "err", err)
		w.store.SetLastError("Could not load the product catalog. Please try again.")
		return
	}
	w.store.SetCatalog(products)
	w.log.Info("catalog refreshed", "products", len(products))
}

func (w *Worker) fetchProductAssets(ctx context.Context, p store.Product) {
	for i, url := range p.Images {
		key := AssetKey(p.ID, i)
		if w.store.HasAsset(p.ID, key) {
			continue
		}
		if err := w.assets.FetchAsset(ctx, url, key); err != nil {
			w.log.Error("image download failed", "product_id", p.ID, "url", url, "err", err)
			continue
		}
		w.store.AddAsset(p.ID, key)
		w.log.Info("image downloaded", "product_id", p.ID, "asset", key)
	}
}

// AssetKey names the downloaded copy of a product image. The key is
// deterministic in the product id and the image's position in the reference
// list, so repeated detail views hit the store's asset cache.
func AssetKey(productID, position int) string {
	return fmt.Sprintf("image_%d_%d.png", productID, position)
}
