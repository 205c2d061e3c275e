package routes

import (
	"litoral-shop/controllers"
	"litoral-shop/middleware"
	"litoral-shop/repositories"
	"litoral-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, store *repositories.Store, catalog *services.CatalogService) {
	userRepo := repositories.NewUserRepository(store)
	neighborhoodRepo := repositories.NewNeighborhoodRepository(store)
	orderRepo := repositories.NewOrderRepository(store)
	cartRepo := repositories.NewCartRepository(store)

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo))
	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	neighborhoodService := services.NewNeighborhoodService(neighborhoodRepo)
	neighborhoodCtrl := controllers.NewNeighborhoodController(neighborhoodService)
	catalogCtrl := controllers.NewCatalogController(catalog, neighborhoodService)
	cartCtrl := controllers.NewCartController(services.NewCartService(cartRepo, catalog))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, cartRepo, neighborhoodRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Storefront: browsing and checkout need no account.
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/products", catalogCtrl.GetProducts)
	router.GET("/categories", catalogCtrl.GetCategories)
	router.GET("/stores", catalogCtrl.GetStores)
	router.GET("/neighborhoods", catalogCtrl.GetNeighborhoods)

	router.POST("/carts", cartCtrl.CreateCart)
	router.GET("/carts/:id", cartCtrl.GetCart)
	router.POST("/carts/:id/items", cartCtrl.AddItem)
	router.PATCH("/carts/:id/items", cartCtrl.AdjustItem)
	router.DELETE("/carts/:id", cartCtrl.ClearCart)

	router.POST("/orders", orderCtrl.SubmitOrder)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
	}

	// Production panel: order triage for staff.
	production := router.Group("/")
	production.Use(middleware.AuthMiddleware(), middleware.ProductionMiddleware())
	{
		production.GET("/orders", orderCtrl.GetAllOrders)
		production.GET("/orders/:id", orderCtrl.GetOrderByID)
		production.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		production.PATCH("/orders/:id/printed", orderCtrl.MarkPrinted)
		production.GET("/orders/:id/receipt", orderCtrl.GetReceipt)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", orderCtrl.GetDashboard)

		admin.GET("/neighborhoods", neighborhoodCtrl.GetAllNeighborhoods)
		admin.POST("/neighborhoods", neighborhoodCtrl.CreateNeighborhood)
		admin.DELETE("/neighborhoods/:id", neighborhoodCtrl.DeleteNeighborhood)

		admin.GET("/users", userCtrl.GetAllUsers)
		admin.POST("/users", userCtrl.CreateUser)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/catalog/refresh", catalogCtrl.RefreshCatalog)
	}
}
