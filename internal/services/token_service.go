package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the bearer tokens used by the
// instructor-facing endpoints. Authorization policy itself lives upstream;
// this only proves token authenticity and extracts the subject email.
type TokenService struct {
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewTokenService(jwtSecret string, jwtExpiration time.Duration) *TokenService {
	return &TokenService{
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// GenerateToken creates a signed token for an instructor email.
func (s *TokenService) GenerateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"jti": uuid.New().String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.jwtExpiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks a token's signature and expiry and returns the
// instructor email it was issued for.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	email, _ := claims["sub"].(string)
	if email == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return email, nil
}
