package services

import (
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// GrampanchayatSummary is the password-free slice of a body embedded in
// cross-tenant listings.
type GrampanchayatSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	VillageName string `json:"villageName"`
}

// AssetDetail is an asset together with its owning body.
type AssetDetail struct {
	models.Asset
	Grampanchayat *GrampanchayatSummary `json:"grampanchayat,omitempty"`
}

// InterfaceAssetService manages infrastructure assets.
type InterfaceAssetService interface {
	CreateAsset(asset *models.Asset) error
	GetAllAssets() ([]AssetDetail, error)
	GetAssetsByGrampanchayat(grampanchayatID uint) ([]models.Asset, error)
}

// AssetService provides asset related services.
type AssetService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAssetService creates a new asset service.
func NewAssetService(db *gorm.DB, cfg *config.Config) InterfaceAssetService {
	return &AssetService{
		DB:     db,
		Config: cfg,
	}
}

// CreateAsset records a purchase for a body. The owning body must exist.
func (s *AssetService) CreateAsset(asset *models.Asset) error {
	var count int64
	if err := s.DB.Model(&models.Grampanchayat{}).
		Where("id = ?", asset.GrampanchayatID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrGrampanchayatNotFound
	}
	return s.DB.Create(asset).Error
}

// GetAllAssets lists every asset across bodies with the owning body
// attached. Assets whose body was deleted keep a nil grampanchayat.
func (s *AssetService) GetAllAssets() ([]AssetDetail, error) {
	var assets []models.Asset
	if err := s.DB.Order("created_at DESC").Find(&assets).Error; err != nil {
		return nil, err
	}

	var bodies []models.Grampanchayat
	if err := s.DB.Find(&bodies).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*GrampanchayatSummary, len(bodies))
	for i := range bodies {
		byID[bodies[i].ID] = &GrampanchayatSummary{
			ID:          bodies[i].ID,
			Name:        bodies[i].Name,
			VillageName: bodies[i].VillageName,
		}
	}

	details := make([]AssetDetail, 0, len(assets))
	for _, asset := range assets {
		details = append(details, AssetDetail{
			Asset:         asset,
			Grampanchayat: byID[asset.GrampanchayatID],
		})
	}
	return details, nil
}

// GetAssetsByGrampanchayat lists the assets of one body.
func (s *AssetService) GetAssetsByGrampanchayat(grampanchayatID uint) ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.DB.Where("grampanchayat_id = ?", grampanchayatID).
		Order("created_at DESC").
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}
