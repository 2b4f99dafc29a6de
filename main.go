package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vkvijay314/cloud-cart-backend/config"
	paymentControllers "github.com/vkvijay314/cloud-cart-backend/controllers/payment"
	"github.com/vkvijay314/cloud-cart-backend/gateway"
	"github.com/vkvijay314/cloud-cart-backend/models"
	"github.com/vkvijay314/cloud-cart-backend/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.CheckoutSession{},
		&models.CheckoutItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	r := gin.Default()

	// CORS: single registration from the configured allow-list
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Checkout dependencies are constructed once here and injected;
	// no hidden gateway singleton.
	razorpay := gateway.NewRazorpayClient(&cfg.Razorpay)
	payment := paymentControllers.NewHandler(
		paymentControllers.NewGormStore(db),
		razorpay,
		cfg.Razorpay.KeySecret,
	)

	routes.SetupRoutes(r, db, cfg, payment)

	log.Printf("🚀 Server running on port %s...", cfg.HTTP.Port)
	if err := r.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
