package utils

import (
	"errors"
	"time"

	"litoral-shop/config"
	"litoral-shop/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session subject plus both capability flags, so the
// middleware can gate the production and admin panels without a roster
// lookup per request.
type Claims struct {
	UserID              string `json:"user_id"`
	Username            string `json:"username"`
	Name                string `json:"name"`
	CanAccessProduction bool   `json:"can_access_production"`
	CanAccessAdmin      bool   `json:"can_access_admin"`
	jwt.RegisteredClaims
}

func GenerateToken(user models.User) (string, error) {
	expiry, err := time.ParseDuration(config.AppConfig.JWTExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}

	claims := Claims{
		UserID:              user.ID,
		Username:            user.Username,
		Name:                user.Name,
		CanAccessProduction: user.CanAccessProduction,
		CanAccessAdmin:      user.CanAccessAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
