package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/shopify"
)

type checkoutCreator interface {
	CreateCheckout(ctx context.Context, lineItems []domain.LineItem) (string, error)
}

// CheckoutService turns selected variants into a hosted checkout URL. It
// never touches cart state: clearing the cart after a successful checkout
// is the caller's job, so a failed checkout keeps the cart intact.
type CheckoutService struct {
	client checkoutCreator
	logger *zap.Logger
}

func NewCheckoutService(client checkoutCreator, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{client: client, logger: logger}
}

// Create validates the line items and requests a checkout session.
func (s *CheckoutService) Create(ctx context.Context, lineItems []domain.LineItem) (string, error) {
	if len(lineItems) == 0 {
		return "", &shopify.ValidationError{Msg: "line items are required"}
	}
	for _, item := range lineItems {
		if item.VariantID == "" || item.Quantity <= 0 {
			return "", &shopify.ValidationError{Msg: "each line item needs a variantId and a quantity > 0"}
		}
	}
	return s.client.CreateCheckout(ctx, lineItems)
}

// CreateFromCart builds line items from cart contents and requests a
// checkout. Items without a variant GID (seed/demo products) cannot be
// checked out remotely and are rejected up front.
func (s *CheckoutService) CreateFromCart(ctx context.Context, items []domain.CartItem) (string, error) {
	if len(items) == 0 {
		return "", &shopify.ValidationError{Msg: "cart is empty"}
	}

	lineItems := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		if item.VariantID == "" {
			s.logger.Warn("cart item has no variant id, cannot check out",
				zap.String("item_id", item.ID),
				zap.String("product_id", item.ProductID),
			)
			return "", &shopify.ValidationError{Msg: "cart contains an item that is not available for online checkout"}
		}
		lineItems = append(lineItems, domain.LineItem{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	return s.Create(ctx, lineItems)
}
