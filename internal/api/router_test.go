package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api/handlers"
	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/service"
	"github.com/jafarshop/storefront/internal/shopify"
)

type fakeFetcher struct {
	products []shopify.RemoteProduct
	err      error
}

func (f *fakeFetcher) QueryProducts(ctx context.Context) ([]shopify.RemoteProduct, error) {
	return f.products, f.err
}

type fakeCheckout struct {
	url string
	err error
}

func (f *fakeCheckout) CreateCheckout(ctx context.Context, lineItems []domain.LineItem) (string, error) {
	return f.url, f.err
}

func testRouter(t *testing.T, fetcher *fakeFetcher, checkout *fakeCheckout) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	cfg := &config.Config{Environment: "production"}
	svcs := Services{
		Catalog:  service.NewCatalogService(fetcher, config.CatalogConfig{}, logger),
		Checkout: service.NewCheckoutService(checkout, logger),
		Carts:    cart.NewManager(),
	}
	return NewRouter(cfg, svcs, logger)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func remoteFixture(t *testing.T) []shopify.RemoteProduct {
	t.Helper()
	var p shopify.RemoteProduct
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "gid://shopify/Product/7",
		"title": "Perla Dress",
		"handle": "perla-dress",
		"variants": {"edges": [{"node": {
			"id": "gid://shopify/ProductVariant/70",
			"price": {"amount": "150.00", "currencyCode": "USD"}
		}}]}
	}`), &p))
	return []shopify.RemoteProduct{p}
}

func TestHealth(t *testing.T) {
	router := testRouter(t, &fakeFetcher{}, &fakeCheckout{})
	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListProducts(t *testing.T) {
	router := testRouter(t, &fakeFetcher{products: remoteFixture(t)}, &fakeCheckout{})
	w := doJSON(t, router, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Perla Dress", products[0].Name)
	assert.Equal(t, "150", products[0].Price)
}

func TestListProductsUpstreamFailure(t *testing.T) {
	router := testRouter(t, &fakeFetcher{err: &shopify.APIError{Msg: "boom"}}, &fakeCheckout{})
	w := doJSON(t, router, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetProductBySlug(t *testing.T) {
	router := testRouter(t, &fakeFetcher{products: remoteFixture(t)}, &fakeCheckout{})

	w := doJSON(t, router, http.MethodGet, "/api/products/perla-dress", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/products/unknown-slug", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCheckout(t *testing.T) {
	router := testRouter(t, &fakeFetcher{}, &fakeCheckout{url: "https://shop/checkout/1"})

	w := doJSON(t, router, http.MethodPost, "/api/checkout",
		`{"lineItems": [{"variantId": "gid://shopify/ProductVariant/70", "quantity": 2}]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://shop/checkout/1", resp.CheckoutURL)
}

func TestCreateCheckoutRejectsBadPayloads(t *testing.T) {
	router := testRouter(t, &fakeFetcher{}, &fakeCheckout{url: "https://shop/checkout/1"})

	for _, body := range []string{
		`{}`,
		`{"lineItems": []}`,
		`{"lineItems": [{"quantity": 1}]}`,
		`{"lineItems": [{"variantId": "gid://shopify/ProductVariant/70", "quantity": 0}]}`,
	} {
		w := doJSON(t, router, http.MethodPost, "/api/checkout", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestCreateCheckoutUpstreamFailure(t *testing.T) {
	router := testRouter(t, &fakeFetcher{}, &fakeCheckout{err: &shopify.APIError{Msg: "variant is sold out"}})

	w := doJSON(t, router, http.MethodPost, "/api/checkout",
		`{"lineItems": [{"variantId": "gid://shopify/ProductVariant/70", "quantity": 1}]}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "variant is sold out")
}

func cartSession(w *httptest.ResponseRecorder) http.Header {
	h := http.Header{}
	h.Set(handlers.SessionHeader, w.Header().Get(handlers.SessionHeader))
	return h
}

func TestCartFlow(t *testing.T) {
	router := testRouter(t, &fakeFetcher{}, &fakeCheckout{})

	// First touch mints a session.
	w := doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"productId": "p1", "name": "Bella Skirt", "price": "90", "size": "M", "variantId": "gid://shopify/ProductVariant/1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := cartSession(w)
	require.NotEmpty(t, session.Get(handlers.SessionHeader))

	// Repeat add aggregates.
	w = doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"productId": "p1", "name": "Bella Skirt", "price": "90", "size": "M", "variantId": "gid://shopify/ProductVariant/1"}`, session)
	require.Equal(t, http.StatusOK, w.Code)

	var view handlers.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 180.0, view.Total)
	assert.Equal(t, 2, view.ItemCount)

	// Quantity update.
	itemID := view.Items[0].ID
	w = doJSON(t, router, http.MethodPatch, "/api/cart/items/"+itemID, `{"quantity": 5}`, session)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 5, view.ItemCount)

	// Quantity zero removes.
	w = doJSON(t, router, http.MethodPatch, "/api/cart/items/"+itemID, `{"quantity": 0}`, session)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Empty(t, view.Items)
}

func TestCartCheckoutClearsOnlyOnSuccess(t *testing.T) {
	checkout := &fakeCheckout{err: &shopify.APIError{Msg: "boom"}}
	router := testRouter(t, &fakeFetcher{}, checkout)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"productId": "p1", "name": "Bella Skirt", "price": "90", "variantId": "gid://shopify/ProductVariant/1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := cartSession(w)

	// Failed checkout keeps the cart.
	w = doJSON(t, router, http.MethodPost, "/api/cart/checkout", "", session)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var view handlers.CartResponse
	w = doJSON(t, router, http.MethodGet, "/api/cart", "", session)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 1, view.ItemCount)

	// Successful checkout clears it.
	checkout.err = nil
	checkout.url = "https://shop/checkout/1"
	w = doJSON(t, router, http.MethodPost, "/api/cart/checkout", "", session)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/cart", "", session)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 0, view.ItemCount)
}

func TestCartCheckoutEmptyCart(t *testing.T) {
	router := testRouter(t, &fakeFetcher{}, &fakeCheckout{url: "https://shop/checkout/1"})

	w := doJSON(t, router, http.MethodPost, "/api/cart/checkout", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
