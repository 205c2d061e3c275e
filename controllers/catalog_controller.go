package controllers

import (
	"net/http"
	"strings"

	"litoral-shop/models"
	"litoral-shop/services"

	"github.com/gin-gonic/gin"
)

// pickupStores is the fixed list of stores a pickup order can name.
var pickupStores = []string{
	"Loja Centro - Av. Principal, 100",
	"Loja Shopping - Piso L2",
	"Loja Litoral - Orla da Praia, 500",
}

type CatalogController struct {
	catalogService      *services.CatalogService
	neighborhoodService *services.NeighborhoodService
}

func NewCatalogController(catalogService *services.CatalogService, neighborhoodService *services.NeighborhoodService) *CatalogController {
	return &CatalogController{
		catalogService:      catalogService,
		neighborhoodService: neighborhoodService,
	}
}

// GetProducts godoc
// @Summary Get the product catalog
// @Description List catalog products, optionally filtered by category and search term. meta.live_source is false when the demo catalog is being served.
// @Tags Catalog
// @Produce json
// @Param category query string false "Filter by category label"
// @Param search query string false "Search in product descriptions"
// @Success 200 {object} models.CatalogResponse
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	products, live := ctrl.catalogService.Products(c.Request.Context())

	category := strings.TrimSpace(c.Query("category"))
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "TODOS" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	c.JSON(http.StatusOK, models.CatalogResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    filtered,
		Meta: models.CatalogMeta{
			Count:      len(filtered),
			LiveSource: live,
		},
	})
}

// GetCategories godoc
// @Summary Get catalog categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	categories := ctrl.catalogService.Categories(c.Request.Context())

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// GetStores godoc
// @Summary Get pickup store locations
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /stores [get]
func (ctrl *CatalogController) GetStores(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Stores retrieved successfully",
		Data:    pickupStores,
	})
}

// GetNeighborhoods godoc
// @Summary Get delivery neighborhoods and fees
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /neighborhoods [get]
func (ctrl *CatalogController) GetNeighborhoods(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Neighborhoods retrieved successfully",
		Data:    ctrl.neighborhoodService.GetAll(),
	})
}

// RefreshCatalog godoc
// @Summary Reload the catalog from the live source
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.CatalogResponse
// @Router /admin/catalog/refresh [post]
func (ctrl *CatalogController) RefreshCatalog(c *gin.Context) {
	products, live := ctrl.catalogService.Refresh(c.Request.Context())

	c.JSON(http.StatusOK, models.CatalogResponse{
		Success: true,
		Message: "Catalog reloaded",
		Data:    products,
		Meta: models.CatalogMeta{
			Count:      len(products),
			LiveSource: live,
		},
	})
}
