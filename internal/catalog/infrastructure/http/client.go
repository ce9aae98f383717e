// Package http implements the catalog and asset fetch collaborators against
// a dummyjson-shaped product API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/omerlior/storefront/internal/store"
)

// CatalogClient fetches the product list from the remote catalog endpoint.
// No per-request timeout is set: a hung request only delays the next store
// update, and the worker has no concurrent fetches to starve.
type CatalogClient struct {
	log     *slog.Logger
	baseURL string
	limit   int
	client  *http.Client
}

func NewCatalogClient(log *slog.Logger, baseURL string, limit int) *CatalogClient {
	return &CatalogClient{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		limit:   limit,
		client:  &http.Client{},
	}
}

type reviewRecord struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Date          string `json:"date"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
}

type productRecord struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	ReturnPolicy string         `json:"returnPolicy"`
	Price        float64        `json:"price"`
	Rating       float64        `json:"rating"`
	Stock        int            `json:"stock"`
	Tags         []string       `json:"tags"`
	Images       []string       `json:"images"`
	Thumbnail    string         `json:"thumbnail"`
	Reviews      []reviewRecord `json:"reviews"`
}

type productPage struct {
	Products []productRecord `json:"products"`
}

func (r productRecord) toDomain() store.Product {
	reviews := make([]store.Review, 0, len(r.Reviews))
	for _, rv := range r.Reviews {
		reviews = append(reviews, store.Review{
			Rating:        rv.Rating,
			Comment:       rv.Comment,
			Date:          rv.Date,
			ReviewerName:  rv.ReviewerName,
			ReviewerEmail: rv.ReviewerEmail,
		})
	}
	return store.Product{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		ReturnPolicy: r.ReturnPolicy,
		Price:        r.Price,
		Rating:       r.Rating,
		Stock:        r.Stock,
		Tags:         r.Tags,
		Images:       r.Images,
		Thumbnail:    r.Thumbnail,
		Reviews:      reviews,
	}
}

// FetchCatalog requests one bounded page of products with nested reviews.
func (c *CatalogClient) FetchCatalog(ctx context.Context) ([]store.Product, error) {
	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}
	var page productPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	out := make([]store.Product, 0, len(page.Products))
	for _, rec := range page.Products {
		out = append(out, rec.toDomain())
	}
	return out, nil
}
