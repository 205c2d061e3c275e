package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"litoral-shop/models"
	"litoral-shop/utils"
)

const (
	usersFile         = "users.json"
	neighborhoodsFile = "neighborhoods.json"
)

// userRecord is the persisted shape of a roster account. The API never
// serializes passwords, so the blob keeps its own struct.
type userRecord struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Password            string    `json:"password"`
	Name                string    `json:"name"`
	CanAccessProduction bool      `json:"can_access_production"`
	CanAccessAdmin      bool      `json:"can_access_admin"`
	CreatedAt           time.Time `json:"created_at"`
}

// Store is the application-state container. Every repository hangs off one
// Store passed by reference; each mutation runs under the store mutex and
// writes its JSON blob before releasing it, so there are never parallel
// writers and persisted state always matches memory.
type Store struct {
	mu sync.Mutex

	dataDir       string
	users         []models.User
	neighborhoods []models.Neighborhood
	orders        []models.Order
	carts         map[string]*models.Cart
}

// NewStore reads the roster and fee blobs once (seeding the built-in
// defaults when a blob is absent) and starts with empty order and cart
// state. Orders live only in memory.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		dataDir: dataDir,
		carts:   make(map[string]*models.Cart),
	}

	if err := s.loadNeighborhoods(); err != nil {
		return nil, err
	}
	if err := s.loadUsers(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) loadNeighborhoods() error {
	path := filepath.Join(s.dataDir, neighborhoodsFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.neighborhoods = defaultNeighborhoods()
		s.saveNeighborhoods()
		log.Println("Neighborhood list seeded with defaults")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", neighborhoodsFile, err)
	}

	if err := json.Unmarshal(data, &s.neighborhoods); err != nil {
		return fmt.Errorf("failed to parse %s: %w", neighborhoodsFile, err)
	}
	return nil
}

func (s *Store) loadUsers() error {
	path := filepath.Join(s.dataDir, usersFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		root, seedErr := seedRootAdmin()
		if seedErr != nil {
			return seedErr
		}
		s.users = []models.User{root}
		s.saveUsers()
		log.Println("User roster seeded with the root administrator")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", usersFile, err)
	}

	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse %s: %w", usersFile, err)
	}

	s.users = make([]models.User, 0, len(records))
	for _, r := range records {
		s.users = append(s.users, models.User{
			ID:                  r.ID,
			Username:            r.Username,
			Password:            r.Password,
			Name:                r.Name,
			CanAccessProduction: r.CanAccessProduction,
			CanAccessAdmin:      r.CanAccessAdmin,
			CreatedAt:           r.CreatedAt,
		})
	}
	return nil
}

// saveNeighborhoods writes the fee blob. Callers hold the store mutex.
// A write failure is logged, not fatal: the in-memory state stays valid.
func (s *Store) saveNeighborhoods() {
	data, err := json.MarshalIndent(s.neighborhoods, "", "  ")
	if err != nil {
		log.Println("Failed to encode neighborhood list:", err)
		return
	}
	if err := os.WriteFile(filepath.Join(s.dataDir, neighborhoodsFile), data, 0644); err != nil {
		log.Println("Failed to persist neighborhood list:", err)
	}
}

// saveUsers writes the roster blob. Callers hold the store mutex.
func (s *Store) saveUsers() {
	records := make([]userRecord, 0, len(s.users))
	for _, u := range s.users {
		records = append(records, userRecord{
			ID:                  u.ID,
			Username:            u.Username,
			Password:            u.Password,
			Name:                u.Name,
			CanAccessProduction: u.CanAccessProduction,
			CanAccessAdmin:      u.CanAccessAdmin,
			CreatedAt:           u.CreatedAt,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Println("Failed to encode user roster:", err)
		return
	}
	if err := os.WriteFile(filepath.Join(s.dataDir, usersFile), data, 0644); err != nil {
		log.Println("Failed to persist user roster:", err)
	}
}

func defaultNeighborhoods() []models.Neighborhood {
	return []models.Neighborhood{
		{ID: "1", Name: "Centro", Fee: 5.00},
		{ID: "2", Name: "Bairro das Flores", Fee: 8.00},
		{ID: "3", Name: "Vila Maritima", Fee: 10.00},
	}
}

func seedRootAdmin() (models.User, error) {
	hash, err := utils.HashPassword("password123")
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash root admin password: %w", err)
	}

	return models.User{
		ID:                  models.RootAdminID,
		Username:            "admin",
		Password:            hash,
		Name:                "Administrador Mestre",
		CanAccessProduction: true,
		CanAccessAdmin:      true,
		CreatedAt:           time.Now(),
	}, nil
}
