package services

import (
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// AssetSpendRow is one body's asset spend aggregate. Every body appears,
// bodies without assets report zeros.
type AssetSpendRow struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	TotalSpent     float64 `json:"totalSpent"`
	NumberOfAssets int64   `json:"numberOfAssets"`
}

// InventorySpendRow is one body's inventory spend aggregate. NumberOfItems
// counts non-empty category lists across the body's records, so each record
// contributes 0-3. Records whose body no longer exists still aggregate,
// with empty name and village.
type InventorySpendRow struct {
	GrampanchayatID uint    `json:"grampanchayatId"`
	Name            string  `json:"name"`
	VillageName     string  `json:"villageName"`
	TotalSpend      float64 `json:"totalSpend"`
	NumberOfItems   int     `json:"numberOfItems"`
}

// InterfaceReportService computes the derived spend reports. Both reports
// are computed on demand, never cached.
type InterfaceReportService interface {
	AssetSpendByGrampanchayat() ([]AssetSpendRow, error)
	InventorySpendByGrampanchayat() ([]InventorySpendRow, error)
}

// ReportService provides cross-entity aggregations.
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportService creates a new report service.
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
	}
}

// AssetSpendByGrampanchayat sums asset spend per body. The LEFT JOIN keeps
// bodies with zero assets in the result.
func (s *ReportService) AssetSpendByGrampanchayat() ([]AssetSpendRow, error) {
	var rows []AssetSpendRow
	err := s.DB.Raw(`
		SELECT g.id AS id,
		       g.name AS name,
		       COALESCE(SUM(a.amount_spent), 0) AS total_spent,
		       COUNT(a.id) AS number_of_assets
		FROM grampanchayats g
		LEFT JOIN assets a ON a.grampanchayat_id = g.id
		GROUP BY g.id, g.name`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// InventorySpendByGrampanchayat groups inventory records by body. The
// category lists are JSON-serialized columns, so the point counting happens
// here rather than in SQL.
func (s *ReportService) InventorySpendByGrampanchayat() ([]InventorySpendRow, error) {
	var records []models.Inventory
	if err := s.DB.Find(&records).Error; err != nil {
		return nil, err
	}

	var bodies []models.Grampanchayat
	if err := s.DB.Find(&bodies).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Grampanchayat, len(bodies))
	for i := range bodies {
		byID[bodies[i].ID] = &bodies[i]
	}

	grouped := make(map[uint]*InventorySpendRow)
	order := make([]uint, 0)
	for i := range records {
		rec := &records[i]
		row, ok := grouped[rec.GrampanchayatID]
		if !ok {
			row = &InventorySpendRow{GrampanchayatID: rec.GrampanchayatID}
			if body := byID[rec.GrampanchayatID]; body != nil {
				row.Name = body.Name
				row.VillageName = body.VillageName
			}
			grouped[rec.GrampanchayatID] = row
			order = append(order, rec.GrampanchayatID)
		}
		row.TotalSpend += rec.AmountSpent
		row.NumberOfItems += rec.CategoryPoints()
	}

	rows := make([]InventorySpendRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *grouped[id])
	}
	return rows, nil
}
