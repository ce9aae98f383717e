package application

import (
	"context"

	"github.com/omerlior/storefront/internal/store"
)

// CatalogFetcher fetches a bounded page of products with their reviews from
// the remote catalog service.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) ([]store.Product, error)
}

// AssetFetcher downloads the bytes behind url and persists them under the
// given asset name.
type AssetFetcher interface {
	FetchAsset(ctx context.Context, url, name string) error
}
