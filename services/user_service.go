package services

import (
	"strings"
	"time"

	"litoral-shop/models"
	"litoral-shop/repositories"
	"litoral-shop/utils"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetAllUsers() []models.User {
	return s.userRepo.FindAll()
}

// CreateUser stores the username lowercased and trimmed (uniqueness is by
// convention, not enforced) and hashes the password at rest.
func (s *UserService) CreateUser(req models.CreateUserRequest) (models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:                  uuid.NewString(),
		Username:            strings.ToLower(strings.TrimSpace(req.Username)),
		Password:            hash,
		Name:                req.Name,
		CanAccessProduction: req.CanAccessProduction,
		CanAccessAdmin:      req.CanAccessAdmin,
		CreatedAt:           time.Now(),
	}

	s.userRepo.Create(user)
	return user, nil
}

func (s *UserService) DeleteUser(id string) error {
	return s.userRepo.Delete(id)
}
