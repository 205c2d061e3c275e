package repositories

import (
	"litoral-shop/models"
)

// OrderRepository owns the process-wide order list. Orders are prepended
// so listings read most-recent-first and are never deleted.
type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Insert(order models.Order) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.orders = append([]models.Order{order}, r.store.orders...)
}

// FindAll returns a copy of the order list, newest first, optionally
// filtered by status.
func (r *OrderRepository) FindAll(status models.OrderStatus) []models.Order {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	orders := make([]models.Order, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		if status != "" && o.Status != status {
			continue
		}
		orders = append(orders, o)
	}
	return orders
}

func (r *OrderRepository) FindByID(id string) (models.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, o := range r.store.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (r *OrderRepository) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.orders {
		if r.store.orders[i].ID == id {
			r.store.orders[i].Status = status
			return r.store.orders[i], nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (r *OrderRepository) MarkPrinted(id string) (models.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.orders {
		if r.store.orders[i].ID == id {
			r.store.orders[i].IsPrinted = true
			return r.store.orders[i], nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (r *OrderRepository) CountByStatus(status models.OrderStatus) int {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	count := 0
	for _, o := range r.store.orders {
		if o.Status == status {
			count++
		}
	}
	return count
}
