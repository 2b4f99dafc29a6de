package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vkvijay314/cloud-cart-backend/config"
	paymentControllers "github.com/vkvijay314/cloud-cart-backend/controllers/payment"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, payment *paymentControllers.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// User routes (JWT-protected): profile, cart, product browsing
	SetupUserRoutes(r, db, cfg)

	// Checkout routes
	SetupPaymentRoutes(r, cfg, payment)

	// Order routes
	SetupOrderRoutes(r, db, cfg)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db, cfg)
}
