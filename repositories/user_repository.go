package repositories

import (
	"strings"

	"litoral-shop/models"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) FindAll() []models.User {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := make([]models.User, len(r.store.users))
	copy(users, r.store.users)
	return users
}

func (r *UserRepository) FindByID(id string) (models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// FindByUsername matches the trimmed input case-insensitively against the
// roster and returns the first hit.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	normalized := strings.TrimSpace(username)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Username, normalized) {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (r *UserRepository) Create(user models.User) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users = append(r.store.users, user)
	r.store.saveUsers()
}

// Delete removes a roster account by id. The root administrator is exempt:
// the roster is left untouched and the caller gets a signal to surface.
func (r *UserRepository) Delete(id string) error {
	if id == models.RootAdminID {
		return ErrRootAdminProtected
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, u := range r.store.users {
		if u.ID == id {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			r.store.saveUsers()
			return nil
		}
	}
	return ErrNotFound
}
