package main

import (
	"context"
	"log"

	"litoral-shop/config"
	_ "litoral-shop/docs"
	"litoral-shop/middleware"
	"litoral-shop/models"
	"litoral-shop/repositories"
	"litoral-shop/routes"
	"litoral-shop/services"

	"github.com/gin-gonic/gin"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	store, err := repositories.NewStore(config.AppConfig.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize state store: %v", err)
	}

	catalog := services.NewCatalogService(
		config.AppConfig.CatalogProductsURL,
		config.AppConfig.CatalogPricesURL,
	)

	// Warm the catalog before serving, the way the storefront blocks on its
	// sync screen. A dead upstream just means demo mode.
	products, live := catalog.Load(context.Background())
	log.Printf("Catalog loaded: %d products (live source: %v)", len(products), live)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, store, catalog)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
