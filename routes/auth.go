package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vkvijay314/cloud-cart-backend/auth"
	"github.com/vkvijay314/cloud-cart-backend/config"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db, cfg.JWT.Secret))
		authGroup.POST("/login", auth.LoginHandler(db, cfg.JWT.Secret))
		authGroup.POST("/google", auth.GoogleLoginHandler(db, cfg.JWT.Secret, cfg.Google.ClientID))
	}
}
