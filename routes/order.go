package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vkvijay314/cloud-cart-backend/config"
	orderControllers "github.com/vkvijay314/cloud-cart-backend/controllers/order"
	"github.com/vkvijay314/cloud-cart-backend/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken(cfg.JWT.Secret))
	{
		// Place a cash-on-delivery order
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))

		// Orders for the authenticated user
		orders.GET("/my", orderControllers.GetMyOrdersHandler(db))

		admin := orders.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/", orderControllers.GetAllOrdersHandler(db))

			// websocket endpoint for real-time order updates
			admin.GET("/ws", orderControllers.OrderWebSocketHandler)

			admin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			admin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
		}
	}
}
