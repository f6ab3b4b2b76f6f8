package services

import (
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InventoryDetail is a purchase record together with its owning body.
type InventoryDetail struct {
	models.Inventory
	Grampanchayat *GrampanchayatSummary `json:"grampanchayat,omitempty"`
}

// InterfaceInventoryService manages inventory purchase records.
type InterfaceInventoryService interface {
	AddInventory(grampanchayatID uint, category, selectedOption string, amountSpent float64, receipt string) (*models.Inventory, error)
	GetInventoriesByGrampanchayat(grampanchayatID uint) ([]models.Inventory, error)
	GetAllInventories() ([]InventoryDetail, error)
}

// InventoryService provides inventory related services.
type InventoryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(db *gorm.DB, cfg *config.Config) InterfaceInventoryService {
	return &InventoryService{
		DB:     db,
		Config: cfg,
	}
}

// AddInventory records a purchase under exactly one category. The selected
// option lands in that category's list, the other two lists stay empty.
func (s *InventoryService) AddInventory(grampanchayatID uint, category, selectedOption string, amountSpent float64, receipt string) (*models.Inventory, error) {
	var count int64
	if err := s.DB.Model(&models.Grampanchayat{}).
		Where("id = ?", grampanchayatID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrGrampanchayatNotFound
	}

	inv := &models.Inventory{
		GrampanchayatID: grampanchayatID,
		Chemical:        []string{},
		Filter:          []string{},
		SpareParts:      []string{},
		AmountSpent:     amountSpent,
		Receipt:         receipt,
	}

	switch category {
	case models.CategoryChemical:
		inv.Chemical = append(inv.Chemical, selectedOption)
	case models.CategoryFilter:
		inv.Filter = append(inv.Filter, selectedOption)
	case models.CategorySpareParts:
		inv.SpareParts = append(inv.SpareParts, selectedOption)
	default:
		return nil, ErrInvalidCategory
	}

	if err := s.DB.Create(inv).Error; err != nil {
		return nil, err
	}
	return inv, nil
}

// GetInventoriesByGrampanchayat lists the purchase records of one body.
func (s *InventoryService) GetInventoriesByGrampanchayat(grampanchayatID uint) ([]models.Inventory, error) {
	var records []models.Inventory
	if err := s.DB.Where("grampanchayat_id = ?", grampanchayatID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetAllInventories lists every purchase record across bodies with the
// owning body attached. Records whose body was deleted keep a nil
// grampanchayat.
func (s *InventoryService) GetAllInventories() ([]InventoryDetail, error) {
	var records []models.Inventory
	if err := s.DB.Order("created_at DESC").Find(&records).Error; err != nil {
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

	details := make([]InventoryDetail, 0, len(records))
	for _, rec := range records {
		details = append(details, InventoryDetail{
			Inventory:     rec,
			Grampanchayat: byID[rec.GrampanchayatID],
		})
	}
	return details, nil
}
