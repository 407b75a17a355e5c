package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by access and refresh tokens.
type Claims struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateAccessToken(userID uuid.UUID, username string, isSuperuser bool) (string, error)
	GenerateRefreshToken(userID uuid.UUID, username string, isSuperuser bool) (string, error)
	ValidateToken(token string) (*Claims, error)
	ValidateRefreshToken(token string) (*Claims, error)
}

type jwtService struct {
	secret        []byte
	refreshSecret []byte
	expiry        time.Duration
	refreshExpiry time.Duration
}

func NewJWTService(secret, refreshSecret string, expiryHours, refreshExpiryHours int) JWTService {
	return &jwtService{
		secret:        []byte(secret),
		refreshSecret: []byte(refreshSecret),
		expiry:        time.Duration(expiryHours) * time.Hour,
		refreshExpiry: time.Duration(refreshExpiryHours) * time.Hour,
	}
}

func (s *jwtService) GenerateAccessToken(userID uuid.UUID, username string, isSuperuser bool) (string, error) {
	return s.generate(userID, username, isSuperuser, s.secret, s.expiry)
}

func (s *jwtService) GenerateRefreshToken(userID uuid.UUID, username string, isSuperuser bool) (string, error) {
	return s.generate(userID, username, isSuperuser, s.refreshSecret, s.refreshExpiry)
}

func (s *jwtService) generate(userID uuid.UUID, username string, isSuperuser bool, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      userID.String(),
		Username:    username,
		IsSuperuser: isSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) ValidateToken(tokenStr string) (*Claims, error) {
	return validate(tokenStr, s.secret)
}

func (s *jwtService) ValidateRefreshToken(tokenStr string) (*Claims, error) {
	return validate(tokenStr, s.refreshSecret)
}

func validate(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
