package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	catalogapp "github.com/omerlior/storefront/internal/catalog/application"
	cataloghttp "github.com/omerlior/storefront/internal/catalog/infrastructure/http"
	checkoutapp "github.com/omerlior/storefront/internal/checkout/application"
	checkoutfile "github.com/omerlior/storefront/internal/checkout/infrastructure/file"
	"github.com/omerlior/storefront/internal/store"
	"github.com/omerlior/storefront/internal/ui"
	"github.com/omerlior/storefront/pkg/logging"
	"github.com/omerlior/storefront/pkg/shutdown"
)

func main() {
	_ = godotenv.Load()
	log := logging.New("storefront")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Configuration
	catalogURL := env("CATALOG_URL", "https://dummyjson.com")
	assetDir := env("ASSET_DIR", "assets")
	ordersDir := env("ORDERS_DIR", "orders")
	customersDir := env("CUSTOMERS_DIR", "customers")
	pageLimit := envInt("CATALOG_PAGE_LIMIT", 50)

	// Orders do not survive a restart; customers do.
	if err := clearDir(ordersDir); err != nil {
		log.Error("clearing orders dir failed", "dir", ordersDir, "err", err)
	}

	st := store.New()

	// Fetch worker and its collaborators
	catalog := cataloghttp.NewCatalogClient(log, catalogURL, pageLimit)
	assets := cataloghttp.NewAssetClient(log, assetDir)
	worker := catalogapp.NewWorker(log, st, catalog, assets)

	// Checkout service and file persistence
	orders := checkoutfile.NewOrderStore(log, ordersDir)
	customers := checkoutfile.NewCustomerStore(log, customersDir)
	checkout := checkoutapp.NewService(log, st, orders, customers)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Run(ctx)
	}()
	go func() {
		<-ctx.Done()
		st.RequestExit()
	}()

	// The store starts in catalog mode; request the initial fetch.
	st.ShowCatalog()

	driver := ui.NewDriver(log, st, checkout, os.Stdin, os.Stdout)
	driver.Run(ctx)

	st.RequestExit()
	<-workerDone
	log.Info("storefront shutdown complete")
}

func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
