package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/config"
)

// requestTimeout bounds each version attempt so the fallback walk cannot
// hang on a single dead endpoint.
const requestTimeout = 15 * time.Second

// Client talks to the Shopify Storefront GraphQL API.
type Client struct {
	shopDomain  string
	accessToken string
	apiVersions []string
	baseURL     string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a new Storefront GraphQL client. The shop domain is
// normalized here; credential validation happens per call so that missing
// configuration surfaces as a ConfigError rather than a construction panic.
func NewClient(cfg config.ShopifyConfig, logger *zap.Logger) *Client {
	shopDomain := NormalizeShopDomain(cfg.StoreDomain)

	return &Client{
		shopDomain:  shopDomain,
		accessToken: cfg.AccessToken,
		apiVersions: cfg.APIVersions,
		baseURL:     "https://" + shopDomain,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// NormalizeShopDomain strips whitespace, a leading http(s) scheme, and a
// trailing slash from a configured store domain.
func NormalizeShopDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimSuffix(domain, "/")
	return domain
}

// checkConfig validates that the client has usable credentials. Called at
// the top of every operation.
func (c *Client) checkConfig() error {
	if c.shopDomain == "" || c.accessToken == "" {
		return &ConfigError{Msg: "SHOPIFY_STORE_DOMAIN and SHOPIFY_STOREFRONT_ACCESS_TOKEN must be set"}
	}
	if !strings.Contains(c.shopDomain, ".") {
		return &ConfigError{Msg: fmt.Sprintf("store domain %q does not look like a hostname (expected e.g. my-store.myshopify.com)", c.shopDomain)}
	}
	return nil
}

// graphQLRequest is the JSON body posted to the Storefront endpoint.
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// execute posts a GraphQL document against one API version and classifies
// the outcome: non-JSON responses become a TransportError, non-2xx statuses
// and GraphQL error lists become an APIError.
func (c *Client) execute(ctx context.Context, version, query string, variables map[string]interface{}) (*graphQLResponse, error) {
	url := fmt.Sprintf("%s/api/%s/graphql.json", c.baseURL, version)

	jsonData, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Version: version, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Version: version, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		// An HTML body here almost always means a bad domain, API version,
		// or access token rather than a GraphQL-level failure.
		return nil, &TransportError{
			Version: version,
			Hint:    fmt.Sprintf("non-JSON response (content type %q) - check store domain, API version and access token", ct),
		}
	}

	var graphQLResp graphQLResponse
	if err := json.Unmarshal(body, &graphQLResp); err != nil {
		return nil, &TransportError{Version: version, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}

	if len(graphQLResp.Errors) > 0 {
		msgs := make([]string, 0, len(graphQLResp.Errors))
		for _, e := range graphQLResp.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, &APIError{Version: version, Msg: strings.Join(msgs, "; ")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Version: version, Msg: fmt.Sprintf("status %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))}
	}

	return &graphQLResp, nil
}
