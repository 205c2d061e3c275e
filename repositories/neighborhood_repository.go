package repositories

import (
	"litoral-shop/models"
)

type NeighborhoodRepository struct {
	store *Store
}

func NewNeighborhoodRepository(store *Store) *NeighborhoodRepository {
	return &NeighborhoodRepository{store: store}
}

func (r *NeighborhoodRepository) FindAll() []models.Neighborhood {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	neighborhoods := make([]models.Neighborhood, len(r.store.neighborhoods))
	copy(neighborhoods, r.store.neighborhoods)
	return neighborhoods
}

func (r *NeighborhoodRepository) FindByID(id string) (models.Neighborhood, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, n := range r.store.neighborhoods {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Neighborhood{}, ErrNotFound
}

func (r *NeighborhoodRepository) Create(neighborhood models.Neighborhood) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.neighborhoods = append(r.store.neighborhoods, neighborhood)
	r.store.saveNeighborhoods()
}

func (r *NeighborhoodRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, n := range r.store.neighborhoods {
		if n.ID == id {
			r.store.neighborhoods = append(r.store.neighborhoods[:i], r.store.neighborhoods[i+1:]...)
			r.store.saveNeighborhoods()
			return nil
		}
	}
	return ErrNotFound
}

func (r *NeighborhoodRepository) Count() int {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.neighborhoods)
}
