package repositories

import (
	"time"

	"litoral-shop/models"

	"github.com/google/uuid"
)

// CartRepository tracks in-progress checkout carts by id. Carts are
// memory-only: each one belongs to a single checkout session and is
// discarded after submission.
type CartRepository struct {
	store *Store
}

func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) Create() models.Cart {
	cart := &models.Cart{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.carts[cart.ID] = cart
	return *cart
}

func (r *CartRepository) Find(id string) (models.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart, ok := r.store.carts[id]
	if !ok {
		return models.Cart{}, ErrNotFound
	}
	return snapshotCart(cart), nil
}

func (r *CartRepository) AddItem(id string, product models.Product, qty int, note string) (models.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart, ok := r.store.carts[id]
	if !ok {
		return models.Cart{}, ErrNotFound
	}
	cart.Add(product, qty, note)
	return snapshotCart(cart), nil
}

func (r *CartRepository) AdjustItem(id, productID string, delta int, note string) (models.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart, ok := r.store.carts[id]
	if !ok {
		return models.Cart{}, ErrNotFound
	}
	cart.Adjust(productID, delta, note)
	return snapshotCart(cart), nil
}

func (r *CartRepository) Clear(id string) (models.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart, ok := r.store.carts[id]
	if !ok {
		return models.Cart{}, ErrNotFound
	}
	cart.Clear()
	return snapshotCart(cart), nil
}

// Discard drops the cart after its order was placed.
func (r *CartRepository) Discard(id string) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.carts, id)
}

// snapshotCart copies the cart so callers never hold a live reference into
// store state.
func snapshotCart(cart *models.Cart) models.Cart {
	out := models.Cart{
		ID:        cart.ID,
		CreatedAt: cart.CreatedAt,
	}
	if len(cart.Lines) > 0 {
		out.Lines = make([]models.CartLine, len(cart.Lines))
		copy(out.Lines, cart.Lines)
	}
	return out
}
