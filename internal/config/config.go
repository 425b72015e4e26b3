package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Shopify     ShopifyConfig
	Catalog     CatalogConfig
	LogLevel    string
}

type ShopifyConfig struct {
	StoreDomain string
	AccessToken string
	// APIVersions is walked newest-first by the catalog fetch.
	APIVersions []string
}

type CatalogConfig struct {
	// Degraded makes the product listing fall back to the built-in seed
	// catalog when the upstream fetch fails, instead of returning an error.
	// Configuration errors still surface either way.
	Degraded bool
}

const defaultAPIVersions = "2024-10,2024-07,2024-04,2024-01"

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHOPIFY_API_VERSIONS", defaultAPIVersions)
	viper.SetDefault("CATALOG_DEGRADED", "false")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Shopify: ShopifyConfig{
			// Missing credentials are not fatal here: the storefront client
			// reports them as a configuration error per request, so the
			// service can still boot and serve the seed catalog.
			StoreDomain: getEnvOrViper("SHOPIFY_STORE_DOMAIN", ""),
			AccessToken: getEnvOrViper("SHOPIFY_STOREFRONT_ACCESS_TOKEN", ""),
			APIVersions: splitVersions(getEnvOrViper("SHOPIFY_API_VERSIONS", defaultAPIVersions)),
		},
		Catalog: CatalogConfig{
			Degraded: getEnvOrViper("CATALOG_DEGRADED", "false") == "true",
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	if len(cfg.Shopify.APIVersions) == 0 {
		return nil, fmt.Errorf("SHOPIFY_API_VERSIONS must list at least one version")
	}

	return cfg, nil
}

func splitVersions(raw string) []string {
	parts := strings.Split(raw, ",")
	versions := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			versions = append(versions, v)
		}
	}
	return versions
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
