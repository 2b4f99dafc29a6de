package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vkvijay314/cloud-cart-backend/config"
	adminControllers "github.com/vkvijay314/cloud-cart-backend/controllers/admin"
	productcontroller "github.com/vkvijay314/cloud-cart-backend/controllers/product"
	"github.com/vkvijay314/cloud-cart-backend/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints, gated to the
// admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg.JWT.Secret), middleware.RequireAdmin())
	{
		adminGroup.GET("/users", adminControllers.GetAllUsers(db))
		adminGroup.GET("/orders/export", adminControllers.ExportOrdersToExcel(db))

		products := adminGroup.Group("/products")
		{
			products.POST("/", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
