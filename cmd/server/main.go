package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api"
	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/service"
	"github.com/jafarshop/storefront/internal/shopify"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := shopify.NewClient(cfg.Shopify, logger)

	svcs := api.Services{
		Catalog:  service.NewCatalogService(client, cfg.Catalog, logger),
		Checkout: service.NewCheckoutService(client, logger),
		Carts:    cart.NewManager(),
	}

	router := api.NewRouter(cfg, svcs, logger)

	logger.Info("starting storefront bridge",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.Bool("catalog_degraded", cfg.Catalog.Degraded),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
