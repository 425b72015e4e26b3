package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/service"
	"github.com/jafarshop/storefront/internal/shopify"
)

// CheckoutRequest is the checkout payload from the storefront.
type CheckoutRequest struct {
	LineItems []LineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}

type LineItemRequest struct {
	VariantID string `json:"variantId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CheckoutResponse carries the hosted checkout URL to redirect to.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// HandleCreateCheckout converts the posted line items into a hosted
// checkout session.
func HandleCreateCheckout(checkout *service.CheckoutService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line items"})
			return
		}

		lineItems := make([]domain.LineItem, 0, len(req.LineItems))
		for _, item := range req.LineItems {
			lineItems = append(lineItems, domain.LineItem{
				VariantID: item.VariantID,
				Quantity:  item.Quantity,
			})
		}

		url, err := checkout.Create(c.Request.Context(), lineItems)
		if err != nil {
			status := checkoutErrorStatus(err)
			if status >= http.StatusInternalServerError {
				logger.Error("Failed to create checkout", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, CheckoutResponse{CheckoutURL: url})
	}
}

// checkoutErrorStatus maps the error taxonomy onto HTTP statuses: caller
// mistakes are 400, everything else (config defects, upstream failures) is 500.
func checkoutErrorStatus(err error) int {
	var validationErr *shopify.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
