package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/shopify"
)

// ErrProductNotFound is returned by GetBySlug when no product matches.
var ErrProductNotFound = errors.New("product not found")

// catalogFetcher is the slice of the Shopify client the catalog needs.
type catalogFetcher interface {
	QueryProducts(ctx context.Context) ([]shopify.RemoteProduct, error)
}

// CatalogService fetches and normalizes the product catalog. Products are
// retrieved fresh per call; there is no cache.
type CatalogService struct {
	client   catalogFetcher
	degraded bool
	logger   *zap.Logger
}

func NewCatalogService(client catalogFetcher, cfg config.CatalogConfig, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		client:   client,
		degraded: cfg.Degraded,
		logger:   logger,
	}
}

// List returns the normalized catalog. Configuration errors always surface:
// they indicate a deployment defect, not a transient outage. Transport and
// API failures surface too unless degraded mode is on, in which case the
// seed catalog is served and the failure is logged.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	remote, err := s.client.QueryProducts(ctx)
	if err != nil {
		var cfgErr *shopify.ConfigError
		if errors.As(err, &cfgErr) {
			// Deployment defect: never masked by degraded mode.
			return nil, err
		}
		if !s.degraded {
			return nil, fmt.Errorf("failed to fetch catalog: %w", err)
		}
		s.logger.Warn("serving seed catalog, remote fetch failed", zap.Error(err))
		return SeedProducts(), nil
	}

	products := make([]domain.Product, 0, len(remote))
	for _, r := range remote {
		products = append(products, NormalizeProduct(r))
	}
	return products, nil
}

// GetBySlug looks a product up by its routing slug: remote catalog first,
// then the seed catalog, so demo product pages resolve even with a live
// store configured.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.Slug == slug {
			return p, nil
		}
	}
	for _, p := range SeedProducts() {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}
