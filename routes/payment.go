package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vkvijay314/cloud-cart-backend/config"
	paymentControllers "github.com/vkvijay314/cloud-cart-backend/controllers/payment"
	"github.com/vkvijay314/cloud-cart-backend/middleware"
)

func SetupPaymentRoutes(r *gin.Engine, cfg *config.Config, payment *paymentControllers.Handler) {
	paymentGroup := r.Group("/payment")
	paymentGroup.Use(middleware.ValidateToken(cfg.JWT.Secret))
	{
		paymentGroup.POST("/create-order", payment.CreateOrder)
		paymentGroup.POST("/verify", payment.VerifyPayment)
	}
}
