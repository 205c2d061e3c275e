package controllers

import (
	"net/http"

	"litoral-shop/models"
	"litoral-shop/services"

	"github.com/gin-gonic/gin"
)

type NeighborhoodController struct {
	neighborhoodService *services.NeighborhoodService
}

func NewNeighborhoodController(neighborhoodService *services.NeighborhoodService) *NeighborhoodController {
	return &NeighborhoodController{neighborhoodService: neighborhoodService}
}

// GetAllNeighborhoods godoc
// @Summary Get the neighborhood fee list
// @Tags Admin - Neighborhoods
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/neighborhoods [get]
func (ctrl *NeighborhoodController) GetAllNeighborhoods(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Neighborhoods retrieved successfully",
		Data:    ctrl.neighborhoodService.GetAll(),
	})
}

// CreateNeighborhood godoc
// @Summary Add a neighborhood fee entry
// @Tags Admin - Neighborhoods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddNeighborhoodRequest true "Neighborhood data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/neighborhoods [post]
func (ctrl *NeighborhoodController) CreateNeighborhood(c *gin.Context) {
	var req models.AddNeighborhoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	neighborhood := ctrl.neighborhoodService.Create(req)

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Neighborhood created successfully",
		Data:    neighborhood,
	})
}

// DeleteNeighborhood godoc
// @Summary Remove a neighborhood fee entry
// @Description Removes the entry by id. Already-placed orders keep their fee snapshot.
// @Tags Admin - Neighborhoods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Neighborhood ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/neighborhoods/{id} [delete]
func (ctrl *NeighborhoodController) DeleteNeighborhood(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.neighborhoodService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Neighborhood not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Neighborhood deleted successfully",
		Data:    gin.H{"id": id},
	})
}
