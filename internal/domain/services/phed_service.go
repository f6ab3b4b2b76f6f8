package services

import (
	"errors"

	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfacePhedService manages the state-level PHED principal.
type InterfacePhedService interface {
	RegisterPhed(phed *models.Phed) error
	GetPhedByID(id uint) (*models.Phed, error)
	GetPhedByPublicID(phedID string) (*models.Phed, error)
	UpdatePhed(id uint, updates map[string]interface{}) (*models.Phed, error)
	Authenticate(phedID, password string) (*models.Phed, error)
	EnsureDefaultPhed() error
}

// PhedService provides PHED related services.
type PhedService struct {
	DB          *gorm.DB
	Config      *config.Config
	Credentials InterfaceCredentialService
}

// NewPhedService creates a new PHED service.
func NewPhedService(db *gorm.DB, cfg *config.Config, creds InterfaceCredentialService) InterfacePhedService {
	return &PhedService{
		DB:          db,
		Config:      cfg,
		Credentials: creds,
	}
}

// RegisterPhed creates a PHED account. phed_id and phone_no must both be
// unused.
func (s *PhedService) RegisterPhed(phed *models.Phed) error {
	var count int64
	if err := s.DB.Model(&models.Phed{}).
		Where("phed_id = ? OR phone_no = ?", phed.PhedID, phed.PhoneNo).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrPhedExists
	}

	hashed, err := s.Credentials.HashPassword(phed.Password)
	if err != nil {
		return err
	}
	phed.Password = hashed

	return s.DB.Create(phed).Error
}

// GetPhedByID fetches a PHED account by primary key.
func (s *PhedService) GetPhedByID(id uint) (*models.Phed, error) {
	var phed models.Phed
	if err := s.DB.First(&phed, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhedNotFound
		}
		return nil, err
	}
	return &phed, nil
}

// GetPhedByPublicID fetches a PHED account by its public phed_id.
func (s *PhedService) GetPhedByPublicID(phedID string) (*models.Phed, error) {
	var phed models.Phed
	if err := s.DB.Where("phed_id = ?", phedID).First(&phed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhedNotFound
		}
		return nil, err
	}
	return &phed, nil
}

// UpdatePhed applies a partial update to the PHED account. A password in
// the patch is re-hashed before persisting.
func (s *PhedService) UpdatePhed(id uint, updates map[string]interface{}) (*models.Phed, error) {
	phed, err := s.GetPhedByID(id)
	if err != nil {
		return nil, err
	}

	if phoneNo, ok := updates["phone_no"].(string); ok && phoneNo != phed.PhoneNo {
		var count int64
		if err := s.DB.Model(&models.Phed{}).
			Where("phone_no = ? AND id != ?", phoneNo, phed.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrPhedExists
		}
	}

	if password, ok := updates["password"].(string); ok {
		hashed, err := s.Credentials.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.DB.Model(phed).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetPhedByID(id)
}

// Authenticate checks the phed_id and password pair.
func (s *PhedService) Authenticate(phedID, password string) (*models.Phed, error) {
	phed, err := s.GetPhedByPublicID(phedID)
	if err != nil {
		return nil, err
	}
	if !s.Credentials.CheckPassword(password, phed.Password) {
		return nil, ErrInvalidCredentials
	}
	return phed, nil
}

// EnsureDefaultPhed seeds a bootstrap PHED account on first start so the
// state authority can log in before any registration happened.
func (s *PhedService) EnsureDefaultPhed() error {
	var count int64
	if err := s.DB.Model(&models.Phed{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.RegisterPhed(&models.Phed{
		Name:     "PHED Admin",
		PhoneNo:  "9999999999",
		PhedID:   "PHED-001",
		Password: s.Config.DefaultPhedPassword,
	})
}
