package services

import (
	"errors"

	"litoral-shop/models"
	"litoral-shop/repositories"
	"litoral-shop/utils"
)

// ErrInvalidCredentials deliberately does not distinguish an unknown user
// from a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService(userRepo *repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Authenticate matches the trimmed, case-insensitive username against the
// roster and verifies the password against the stored hash. First match
// wins. No lockout, no rate limiting.
func (s *AuthService) Authenticate(username, password string) (models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, password)
	if err != nil || !valid {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and issues the session token carrying both
// capability flags.
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.Authenticate(req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *AuthService) GetProfile(userID string) (models.User, error) {
	return s.userRepo.FindByID(userID)
}
