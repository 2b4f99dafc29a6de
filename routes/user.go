package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vkvijay314/cloud-cart-backend/config"
	cartControllers "github.com/vkvijay314/cloud-cart-backend/controllers/cart"
	productcontroller "github.com/vkvijay314/cloud-cart-backend/controllers/product"
	userControllers "github.com/vkvijay314/cloud-cart-backend/controllers/user"
	"github.com/vkvijay314/cloud-cart-backend/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers profile, cart and product-browsing endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public browsing
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWT.Secret))
	{
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))
	}

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(cfg.JWT.Secret))
	{
		cartGroup.GET("/", cartControllers.GetUserCart(db))
		cartGroup.POST("/", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
	}
}
