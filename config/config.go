package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	CatalogXLSX     string
	DefaultExchange float64
	StrictAuth      bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	fx, err := strconv.ParseFloat(get("DEFAULT_EXCHANGE_RATE", "1.0"), 64)
	if err != nil || fx <= 0 {
		fx = 1.0
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Asia/Kolkata"),
		DBPath:          get("DB_PATH", "tripkit.db"),
		CatalogXLSX:     get("CATALOG_XLSX", ""),
		DefaultExchange: fx,
		StrictAuth:      get("STRICT_AUTH", "false") == "true",
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
