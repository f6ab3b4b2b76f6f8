package services

import (
	"errors"
	"fmt"
	"time"

	"jalseva-http-service/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Principal roles carried in token claims.
const (
	RoleGrampanchayat = "grampanchayat"
	RolePhed          = "phed"
	RoleConsumer      = "consumer"
)

// tokenTTL is the fixed lifetime of every issued token.
const tokenTTL = time.Hour

// InterfaceJWTService issues and validates access tokens.
type InterfaceJWTService interface {
	GenerateToken(userID uint, role, publicID string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTClaims is the claim set of every issued token. PublicID carries the
// domain-facing identifier of the principal (grampanchayatId, phed_id or
// consumerId).
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	PublicID string `json:"public_id"`
	jwt.RegisteredClaims
}

// JWTService provides HS256-signed tokens.
type JWTService struct {
	secretKey string
	issuer    string
}

// NewJWTService creates a new JWT service.
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "jalseva-http-service",
	}
}

// GenerateToken signs a one-hour token for the given principal.
func (s *JWTService) GenerateToken(userID uint, role, publicID string) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID:   userID,
		Role:     role,
		PublicID: publicID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses the token and checks the signature.
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims validates the token and returns its claim set.
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
