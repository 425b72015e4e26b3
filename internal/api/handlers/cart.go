package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/service"
)

// SessionHeader carries the cart session id. The server mints one on first
// use and echoes it back on every cart response.
const SessionHeader = "X-Cart-Session"

// CartResponse is the cart view returned by every cart endpoint: items plus
// the derived aggregates, so callers never recompute them.
type CartResponse struct {
	SessionID string            `json:"sessionId"`
	Items     []domain.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"itemCount"`
}

// AddCartItemRequest adds one unit of a product (and optional size) to the
// session cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Price     string `json:"price" binding:"required"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	VariantID string `json:"variantId"`
}

// UpdateCartItemRequest sets an item's quantity. Zero and below remove the
// item, so the field is a pointer to tell "0" apart from "absent".
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func sessionCart(c *gin.Context, carts *cart.Manager) (string, *cart.Store) {
	id, store := carts.Session(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, id)
	return id, store
}

func cartView(sessionID string, store *cart.Store) CartResponse {
	return CartResponse{
		SessionID: sessionID,
		Items:     store.Items(),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
	}
}

// HandleGetCart returns the session cart.
func HandleGetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, store := sessionCart(c, carts)
		c.JSON(http.StatusOK, cartView(id, store))
	}
}

// HandleAddCartItem adds a product to the session cart.
func HandleAddCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId, name and price are required"})
			return
		}

		id, store := sessionCart(c, carts)
		store.AddItem(req.ProductID, req.Name, req.Price, req.Image, req.Size, req.VariantID)
		c.JSON(http.StatusOK, cartView(id, store))
	}
}

// HandleUpdateCartItem sets a cart item's quantity.
func HandleUpdateCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
			return
		}

		id, store := sessionCart(c, carts)
		store.UpdateQuantity(c.Param("id"), *req.Quantity)
		c.JSON(http.StatusOK, cartView(id, store))
	}
}

// HandleRemoveCartItem removes a cart item. Removing an unknown item is a
// no-op, not an error.
func HandleRemoveCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, store := sessionCart(c, carts)
		store.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, cartView(id, store))
	}
}

// HandleClearCart empties the session cart.
func HandleClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, store := sessionCart(c, carts)
		store.Clear()
		c.JSON(http.StatusOK, cartView(id, store))
	}
}

// HandleCartCheckout creates a checkout from the session cart's contents.
// The cart is cleared only after the checkout URL comes back, so a failed
// checkout never loses the shopper's cart.
func HandleCartCheckout(carts *cart.Manager, checkout *service.CheckoutService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, store := sessionCart(c, carts)

		url, err := checkout.CreateFromCart(c.Request.Context(), store.Items())
		if err != nil {
			status := checkoutErrorStatus(err)
			if status >= http.StatusInternalServerError {
				logger.Error("Failed to create checkout from cart",
					zap.String("session_id", id),
					zap.Error(err),
				)
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		store.Clear()
		c.JSON(http.StatusOK, CheckoutResponse{CheckoutURL: url})
	}
}
