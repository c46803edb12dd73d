package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the services read from the environment at startup.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
	KafkaBroker  string
	StoreBackend string
	LogMode      string
}

// Load reads configuration from a .env file (if present) and the environment.
// It never fails: missing values stay empty and each service decides how to
// degrade.
func Load() Config {
	// Try to load env file but don't fail if it's not found
	_ = godotenv.Load(".env")

	cfg := Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Port:         os.Getenv("PORT"),
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		StoreBackend: os.Getenv("STORE_BACKEND"),
		LogMode:      os.Getenv("LOG_MODE"),
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "spareparts_shop"
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	return cfg
}
