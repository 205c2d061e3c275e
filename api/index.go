package api

import (
	"net/http"
	"sync"

	"litoral-shop/config"
	_ "litoral-shop/docs"
	"litoral-shop/middleware"
	"litoral-shop/models"
	"litoral-shop/repositories"
	"litoral-shop/routes"
	"litoral-shop/services"

	"github.com/gin-gonic/gin"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitRedis()

		store, err := repositories.NewStore(config.AppConfig.DataDir)
		if err != nil {
			initErr = err
			return
		}

		catalog := services.NewCatalogService(
			config.AppConfig.CatalogProductsURL,
			config.AppConfig.CatalogPricesURL,
		)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, store, catalog)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
