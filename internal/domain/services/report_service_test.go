package services

import (
	"testing"

	"jalseva-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportFixture(t *testing.T) (*gorm.DB, InterfaceReportService, InterfaceGrampanchayatService) {
	t.Helper()
	db := setupTestDB(t)
	gpSvc := NewGrampanchayatService(db, testConfig(), NewCredentialService(), nil)
	return db, NewReportService(db, testConfig()), gpSvc
}

func TestAssetSpendByGrampanchayat(t *testing.T) {
	db, svc, gpSvc := newReportFixture(t)
	withAssets := seedGrampanchayat(t, gpSvc, "GP-100")
	withoutAssets := seedGrampanchayat(t, gpSvc, "GP-200")

	require.NoError(t, db.Create(&models.Asset{
		GrampanchayatID: withAssets.ID, Description: "Hand pump", AmountSpent: 100, Receipt: "r1",
	}).Error)
	require.NoError(t, db.Create(&models.Asset{
		GrampanchayatID: withAssets.ID, Description: "Pipeline", AmountSpent: 250, Receipt: "r2",
	}).Error)

	rows, err := svc.AssetSpendByGrampanchayat()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[uint]AssetSpendRow{}
	for _, row := range rows {
		byID[row.ID] = row
	}

	assert.Equal(t, float64(350), byID[withAssets.ID].TotalSpent)
	assert.Equal(t, int64(2), byID[withAssets.ID].NumberOfAssets)

	// bodies with no assets still appear, zeroed
	assert.Equal(t, float64(0), byID[withoutAssets.ID].TotalSpent)
	assert.Equal(t, int64(0), byID[withoutAssets.ID].NumberOfAssets)
}

func TestInventorySpendByGrampanchayat(t *testing.T) {
	db, svc, gpSvc := newReportFixture(t)
	gp := seedGrampanchayat(t, gpSvc, "GP-100")
	invSvc := NewInventoryService(db, testConfig())

	_, err := invSvc.AddInventory(gp.ID, models.CategoryChemical, "Biocide", 500, "r1")
	require.NoError(t, err)

	rows, err := svc.InventorySpendByGrampanchayat()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, gp.ID, rows[0].GrampanchayatID)
	assert.Equal(t, "Rampur Gram Panchayat", rows[0].Name)
	assert.Equal(t, "Rampur", rows[0].VillageName)
	assert.Equal(t, float64(500), rows[0].TotalSpend)
	assert.Equal(t, 1, rows[0].NumberOfItems)
}

func TestInventorySpendSumsPointsAcrossRecords(t *testing.T) {
	db, svc, gpSvc := newReportFixture(t)
	gp := seedGrampanchayat(t, gpSvc, "GP-100")
	invSvc := NewInventoryService(db, testConfig())

	_, err := invSvc.AddInventory(gp.ID, models.CategoryChemical, "Alum", 200, "r1")
	require.NoError(t, err)
	_, err = invSvc.AddInventory(gp.ID, models.CategoryFilter, "Sand filter", 300, "r2")
	require.NoError(t, err)

	rows, err := svc.InventorySpendByGrampanchayat()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(500), rows[0].TotalSpend)
	assert.Equal(t, 2, rows[0].NumberOfItems)
}

func TestInventorySpendToleratesDanglingBody(t *testing.T) {
	db, svc, _ := newReportFixture(t)

	// record pointing at a body that no longer exists
	require.NoError(t, db.Create(&models.Inventory{
		GrampanchayatID: 999,
		Chemical:        []string{"Chlorine"},
		Filter:          []string{},
		SpareParts:      []string{},
		AmountSpent:     150,
		Receipt:         "r1",
	}).Error)

	rows, err := svc.InventorySpendByGrampanchayat()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(999), rows[0].GrampanchayatID)
	assert.Empty(t, rows[0].Name)
	assert.Empty(t, rows[0].VillageName)
	assert.Equal(t, float64(150), rows[0].TotalSpend)
	assert.Equal(t, 1, rows[0].NumberOfItems)
}
