package shopify

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// RemoteProduct is the raw Storefront product shape: edge/node wrappers
// intact, exactly as the API returns it. The service layer flattens it.
type RemoteProduct struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle"`
	Description string `json:"description"`
	Images      struct {
		Edges []struct {
			Node struct {
				URL     string `json:"url"`
				AltText string `json:"altText"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node RemoteVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
	Options    []RemoteOption     `json:"options"`
	Metafields []*RemoteMetafield `json:"metafields"`
}

type RemoteVariant struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currencyCode"`
	} `json:"price"`
	AvailableForSale bool `json:"availableForSale"`
	SelectedOptions  []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"selectedOptions"`
}

type RemoteOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// RemoteMetafield entries arrive as a sparse list: identifiers that do not
// exist on the product come back as null, hence the pointer slice above.
type RemoteMetafield struct {
	Key       string `json:"key"`
	Namespace string `json:"namespace"`
	Value     string `json:"value"`
	Reference *struct {
		Image *struct {
			URL     string `json:"url"`
			AltText string `json:"altText"`
		} `json:"image"`
	} `json:"reference"`
}

// QueryProducts retrieves the raw catalog, walking the configured API
// versions newest-first. Transport and API failures on one version fall
// through to the next; only the last failure surfaces if every version is
// exhausted. Configuration errors surface immediately.
func (c *Client) QueryProducts(ctx context.Context) ([]RemoteProduct, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	var lastErr error
	for _, version := range c.apiVersions {
		resp, err := c.execute(ctx, version, ProductsQuery, nil)
		if err != nil {
			c.logger.Warn("catalog query attempt failed",
				zap.String("api_version", version),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		var result struct {
			Products struct {
				Edges []struct {
					Node RemoteProduct `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		}
		if err := json.Unmarshal(resp.Data, &result); err != nil {
			lastErr = &TransportError{Version: version, Err: fmt.Errorf("failed to parse catalog response: %w", err)}
			continue
		}

		// A well-formed response with no products is an answer, not a
		// version mismatch: stop here rather than probing older versions.
		products := make([]RemoteProduct, 0, len(result.Products.Edges))
		for _, edge := range result.Products.Edges {
			products = append(products, edge.Node)
		}

		c.logger.Info("fetched catalog from Shopify",
			zap.String("api_version", version),
			zap.Int("products", len(products)),
		)
		return products, nil
	}

	if lastErr == nil {
		lastErr = &ConfigError{Msg: "no Shopify API versions configured"}
	}
	return nil, lastErr
}
