package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the existing production hashes were created
// with, so re-hashing and comparison stay consistent across deployments.
const bcryptCost = 10

// InterfaceCredentialService hashes and verifies login passwords.
type InterfaceCredentialService interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, hash string) bool
}

// CredentialService wraps bcrypt for all principal types.
type CredentialService struct{}

// NewCredentialService creates a new credential service.
func NewCredentialService() InterfaceCredentialService {
	return &CredentialService{}
}

func (s *CredentialService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}
	return string(hashed), nil
}

func (s *CredentialService) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
