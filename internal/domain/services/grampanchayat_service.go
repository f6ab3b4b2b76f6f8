package services

import (
	"errors"

	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"
	"jalseva-http-service/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceGrampanchayatService manages Grampanchayat tenants.
type InterfaceGrampanchayatService interface {
	CreateGrampanchayat(gp *models.Grampanchayat) error
	GetAllGrampanchayats() ([]models.Grampanchayat, error)
	GetGrampanchayatByID(id uint) (*models.Grampanchayat, error)
	GetGrampanchayatByPublicID(grampanchayatID string) (*models.Grampanchayat, error)
	UpdateGrampanchayat(id uint, updates map[string]interface{}) (*models.Grampanchayat, error)
	DeleteGrampanchayat(id uint) error
	Authenticate(grampanchayatID, password string) (*models.Grampanchayat, error)
}

// GrampanchayatService provides Grampanchayat related services. The full
// body list is cached in Redis for a short window, a nil cache disables
// caching.
type GrampanchayatService struct {
	DB          *gorm.DB
	Config      *config.Config
	Credentials InterfaceCredentialService
	Cache       InterfaceRedisService
}

// NewGrampanchayatService creates a new Grampanchayat service.
func NewGrampanchayatService(db *gorm.DB, cfg *config.Config, creds InterfaceCredentialService, cache InterfaceRedisService) InterfaceGrampanchayatService {
	return &GrampanchayatService{
		DB:          db,
		Config:      cfg,
		Credentials: creds,
		Cache:       cache,
	}
}

// CreateGrampanchayat registers a new body. The public grampanchayatId must
// be unique and the plaintext password is replaced with its bcrypt digest.
func (s *GrampanchayatService) CreateGrampanchayat(gp *models.Grampanchayat) error {
	var count int64
	if err := s.DB.Model(&models.Grampanchayat{}).
		Where("grampanchayat_id = ?", gp.GrampanchayatID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrGrampanchayatExists
	}

	hashed, err := s.Credentials.HashPassword(gp.Password)
	if err != nil {
		return err
	}
	gp.Password = hashed
	if gp.Status == 0 {
		gp.Status = 1
	}

	if err := s.DB.Create(gp).Error; err != nil {
		return err
	}
	s.invalidateListCache()
	return nil
}

// GetAllGrampanchayats lists every body.
func (s *GrampanchayatService) GetAllGrampanchayats() ([]models.Grampanchayat, error) {
	if s.Cache != nil {
		var cached []models.Grampanchayat
		if err := s.Cache.Get(cacheKeyGrampanchayats, &cached); err == nil {
			return cached, nil
		}
	}

	var gps []models.Grampanchayat
	if err := s.DB.Find(&gps).Error; err != nil {
		return nil, err
	}

	if s.Cache != nil && len(gps) > 0 {
		if err := s.Cache.Set(cacheKeyGrampanchayats, gps, cacheTTLGrampanchayats); err != nil {
			logger.Warning("Failed to cache grampanchayat list: %v", err)
		}
	}
	return gps, nil
}

// GetGrampanchayatByID fetches a body by primary key.
func (s *GrampanchayatService) GetGrampanchayatByID(id uint) (*models.Grampanchayat, error) {
	var gp models.Grampanchayat
	if err := s.DB.First(&gp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGrampanchayatNotFound
		}
		return nil, err
	}
	return &gp, nil
}

// GetGrampanchayatByPublicID fetches a body by its public grampanchayatId.
func (s *GrampanchayatService) GetGrampanchayatByPublicID(grampanchayatID string) (*models.Grampanchayat, error) {
	var gp models.Grampanchayat
	if err := s.DB.Where("grampanchayat_id = ?", grampanchayatID).First(&gp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGrampanchayatNotFound
		}
		return nil, err
	}
	return &gp, nil
}

// UpdateGrampanchayat applies a partial update. A password in the patch is
// re-hashed before persisting.
func (s *GrampanchayatService) UpdateGrampanchayat(id uint, updates map[string]interface{}) (*models.Grampanchayat, error) {
	gp, err := s.GetGrampanchayatByID(id)
	if err != nil {
		return nil, err
	}

	if publicID, ok := updates["grampanchayat_id"].(string); ok && publicID != gp.GrampanchayatID {
		var count int64
		if err := s.DB.Model(&models.Grampanchayat{}).
			Where("grampanchayat_id = ? AND id != ?", publicID, gp.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrGrampanchayatExists
		}
	}

	if password, ok := updates["password"].(string); ok {
		hashed, err := s.Credentials.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.DB.Model(gp).Updates(updates).Error; err != nil {
		return nil, err
	}
	s.invalidateListCache()
	return s.GetGrampanchayatByID(id)
}

// DeleteGrampanchayat removes a body by primary key.
func (s *GrampanchayatService) DeleteGrampanchayat(id uint) error {
	result := s.DB.Delete(&models.Grampanchayat{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGrampanchayatNotFound
	}
	s.invalidateListCache()
	return nil
}

func (s *GrampanchayatService) invalidateListCache() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(cacheKeyGrampanchayats); err != nil {
		logger.Warning("Failed to invalidate grampanchayat list cache: %v", err)
	}
}

// Authenticate checks the public grampanchayatId and password pair. A
// missing body and a wrong password are reported as distinct errors.
func (s *GrampanchayatService) Authenticate(grampanchayatID, password string) (*models.Grampanchayat, error) {
	gp, err := s.GetGrampanchayatByPublicID(grampanchayatID)
	if err != nil {
		return nil, err
	}
	if !s.Credentials.CheckPassword(password, gp.Password) {
		return nil, ErrInvalidCredentials
	}
	return gp, nil
}
