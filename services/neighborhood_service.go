package services

import (
	"strings"

	"litoral-shop/models"
	"litoral-shop/repositories"

	"github.com/google/uuid"
)

type NeighborhoodService struct {
	neighborhoodRepo *repositories.NeighborhoodRepository
}

func NewNeighborhoodService(neighborhoodRepo *repositories.NeighborhoodRepository) *NeighborhoodService {
	return &NeighborhoodService{neighborhoodRepo: neighborhoodRepo}
}

func (s *NeighborhoodService) GetAll() []models.Neighborhood {
	return s.neighborhoodRepo.FindAll()
}

// Create adds a neighborhood fee entry. Fee sanity is the caller's
// concern at this layer.
func (s *NeighborhoodService) Create(req models.AddNeighborhoodRequest) models.Neighborhood {
	neighborhood := models.Neighborhood{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(req.Name),
		Fee:  req.Fee,
	}
	s.neighborhoodRepo.Create(neighborhood)
	return neighborhood
}

func (s *NeighborhoodService) Delete(id string) error {
	return s.neighborhoodRepo.Delete(id)
}
