package shopify

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
)

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// checkoutResult covers both mutation response shapes: the current
// cartCreate and the legacy checkoutCreate.
type checkoutResult struct {
	CartCreate *struct {
		Cart *struct {
			ID          string `json:"id"`
			CheckoutURL string `json:"checkoutUrl"`
		} `json:"cart"`
		UserErrors []userError `json:"userErrors"`
	} `json:"cartCreate"`
	CheckoutCreate *struct {
		Checkout *struct {
			ID     string `json:"id"`
			WebURL string `json:"webUrl"`
		} `json:"checkout"`
		CheckoutUserErrors []userError `json:"checkoutUserErrors"`
	} `json:"checkoutCreate"`
}

// CreateCheckout submits the line items as a cartCreate mutation and
// returns the hosted checkout URL. The response is probed shape-by-shape in
// priority order: cartCreate first, then the legacy checkoutCreate. Unlike
// the catalog fetch, a remote-reported error here is terminal.
func (c *Client) CreateCheckout(ctx context.Context, lineItems []domain.LineItem) (string, error) {
	if err := c.checkConfig(); err != nil {
		return "", err
	}
	if len(lineItems) == 0 {
		return "", &ValidationError{Msg: "cannot create checkout with empty cart"}
	}
	for _, item := range lineItems {
		if item.VariantID == "" || item.Quantity <= 0 {
			return "", &ValidationError{Msg: "each line item needs a variantId and a quantity > 0"}
		}
	}

	lines := make([]CartLineInput, 0, len(lineItems))
	for _, item := range lineItems {
		lines = append(lines, CartLineInput{
			MerchandiseID: item.VariantID,
			Quantity:      item.Quantity,
		})
	}

	variables := map[string]interface{}{
		"input": CartInput{Lines: lines},
	}

	version := c.apiVersions[0]
	resp, err := c.execute(ctx, version, CartCreateMutation, variables)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout: %w", err)
	}

	var result checkoutResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return "", fmt.Errorf("failed to parse checkout response: %w", err)
	}

	if cc := result.CartCreate; cc != nil {
		if len(cc.UserErrors) > 0 {
			return "", &APIError{Msg: cc.UserErrors[0].Message}
		}
		if cc.Cart != nil && cc.Cart.CheckoutURL != "" {
			c.logger.Info("created checkout",
				zap.String("api_version", version),
				zap.Int("line_items", len(lineItems)),
			)
			return cc.Cart.CheckoutURL, nil
		}
	}

	if cc := result.CheckoutCreate; cc != nil {
		if len(cc.CheckoutUserErrors) > 0 {
			return "", &APIError{Msg: cc.CheckoutUserErrors[0].Message}
		}
		if cc.Checkout != nil && cc.Checkout.WebURL != "" {
			return cc.Checkout.WebURL, nil
		}
	}

	return "", &APIError{Msg: "no checkout URL returned"}
}
