package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv             string
	Port               string
	DataDir            string
	CatalogProductsURL string
	CatalogPricesURL   string
	JWTSecret          string
	JWTExpiry          string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("APP_PORT", getEnv("PORT", "8082")),
		DataDir:            getEnv("DATA_DIR", "./data"),
		CatalogProductsURL: getEnv("CATALOG_PRODUCTS_URL", "http://web.chlitoral.com.br:8081/datasnap/rest/TCHAPI/Produto/00000000000001/1/True/True"),
		CatalogPricesURL:   getEnv("CATALOG_PRICES_URL", "http://web.chlitoral.com.br:8081/datasnap/rest/TCHAPI/VendaProduto/00000000000001/1"),
		JWTSecret:          getEnv("JWT_SECRET", "secret"),
		JWTExpiry:          getEnv("JWT_EXPIRY", "24h"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
