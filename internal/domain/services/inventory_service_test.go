package services

import (
	"testing"

	"jalseva-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddInventorySingleCategory(t *testing.T) {
	db := setupTestDB(t)
	gpSvc := NewGrampanchayatService(db, testConfig(), NewCredentialService(), nil)
	gp := seedGrampanchayat(t, gpSvc, "GP-100")
	svc := NewInventoryService(db, testConfig())

	inv, err := svc.AddInventory(gp.ID, models.CategoryFilter, "Carbon filter", 1200, "receipt.jpg")
	require.NoError(t, err)

	assert.Equal(t, []string{"Carbon filter"}, inv.Filter)
	assert.Empty(t, inv.Chemical)
	assert.Empty(t, inv.SpareParts)

	records, err := svc.GetInventoriesByGrampanchayat(gp.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Carbon filter"}, records[0].Filter)
}

func TestAddInventoryRejectsUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	gpSvc := NewGrampanchayatService(db, testConfig(), NewCredentialService(), nil)
	gp := seedGrampanchayat(t, gpSvc, "GP-100")
	svc := NewInventoryService(db, testConfig())

	_, err := svc.AddInventory(gp.ID, "tools", "Wrench", 50, "r")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestAddInventoryRequiresExistingBody(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t), testConfig())

	_, err := svc.AddInventory(999, models.CategoryChemical, "Alum", 50, "r")
	assert.ErrorIs(t, err, ErrGrampanchayatNotFound)
}
