package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPServer
	Database Database
	JWT      JWT
	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	Google   Google
	CORS     CORS
}

type HTTPServer struct {
	Port string `env:"PORT" envDefault:"8080"`
}

type Database struct {
	// Full DSN wins over the individual parts when set.
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"cloudcart"`
}

type JWT struct {
	Secret string `env:"JWT_SECRET,notEmpty"`
}

type Razorpay struct {
	KeyID          string `env:"KEY_ID,notEmpty"`
	KeySecret      string `env:"KEY_SECRET,notEmpty"`
	APIURL         string `env:"API_URL" envDefault:"https://api.razorpay.com"`
	TimeoutSeconds int    `env:"TIMEOUT_SECONDS" envDefault:"15"`
}

type Google struct {
	ClientID string `env:"GOOGLE_CLIENT_ID"`
}

type CORS struct {
	// Explicit allow-list; registered exactly once in main.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://cloud-cart-frontend1.vercel.app"`
}

// Load reads .env (if present) and parses the environment into Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN builds the postgres connection string from the configured parts.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}
