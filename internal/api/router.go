package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/api/handlers"
	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/service"
)

// Services bundles the dependencies the router wires into handlers.
type Services struct {
	Catalog  *service.CatalogService
	Checkout *service.CheckoutService
	Carts    *cart.Manager
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svcs Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/products", handlers.HandleListProducts(svcs.Catalog, logger))
		api.GET("/products/:slug", handlers.HandleGetProduct(svcs.Catalog, logger))
		api.POST("/checkout", handlers.HandleCreateCheckout(svcs.Checkout, logger))

		cartRoutes := api.Group("/cart")
		{
			cartRoutes.GET("", handlers.HandleGetCart(svcs.Carts))
			cartRoutes.DELETE("", handlers.HandleClearCart(svcs.Carts))
			cartRoutes.POST("/items", handlers.HandleAddCartItem(svcs.Carts))
			cartRoutes.PATCH("/items/:id", handlers.HandleUpdateCartItem(svcs.Carts))
			cartRoutes.DELETE("/items/:id", handlers.HandleRemoveCartItem(svcs.Carts))
			cartRoutes.POST("/checkout", handlers.HandleCartCheckout(svcs.Carts, svcs.Checkout, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
