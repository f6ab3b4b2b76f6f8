package services

import (
	"testing"

	"jalseva-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrampanchayatService(t *testing.T) InterfaceGrampanchayatService {
	t.Helper()
	return NewGrampanchayatService(setupTestDB(t), testConfig(), NewCredentialService(), nil)
}

func TestCreateGrampanchayatHashesPassword(t *testing.T) {
	svc := newGrampanchayatService(t)
	gp := seedGrampanchayat(t, svc, "GP-100")

	stored, err := svc.GetGrampanchayatByID(gp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.Equal(t, 1, stored.Status)
}

func TestCreateGrampanchayatDuplicateID(t *testing.T) {
	svc := newGrampanchayatService(t)
	seedGrampanchayat(t, svc, "GP-100")

	err := svc.CreateGrampanchayat(&models.Grampanchayat{
		Name:            "Other",
		GrampanchayatID: "GP-100",
		Address:         "Elsewhere",
		VillageName:     "Sitapur",
		Password:        "pw",
	})
	assert.ErrorIs(t, err, ErrGrampanchayatExists)
}

func TestGetGrampanchayatNotFound(t *testing.T) {
	svc := newGrampanchayatService(t)

	_, err := svc.GetGrampanchayatByID(999)
	assert.ErrorIs(t, err, ErrGrampanchayatNotFound)

	_, err = svc.GetGrampanchayatByPublicID("GP-missing")
	assert.ErrorIs(t, err, ErrGrampanchayatNotFound)
}

func TestUpdateGrampanchayatRehashesPassword(t *testing.T) {
	svc := newGrampanchayatService(t)
	creds := NewCredentialService()
	gp := seedGrampanchayat(t, svc, "GP-100")

	updated, err := svc.UpdateGrampanchayat(gp.ID, map[string]interface{}{
		"village_name": "Sitapur",
		"password":     "newpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sitapur", updated.VillageName)
	assert.True(t, creds.CheckPassword("newpass", updated.Password))

	_, err = svc.Authenticate("GP-100", "newpass")
	assert.NoError(t, err)
}

func TestDeleteGrampanchayat(t *testing.T) {
	svc := newGrampanchayatService(t)
	gp := seedGrampanchayat(t, svc, "GP-100")

	require.NoError(t, svc.DeleteGrampanchayat(gp.ID))
	assert.ErrorIs(t, svc.DeleteGrampanchayat(gp.ID), ErrGrampanchayatNotFound)
}

func TestAuthenticateGrampanchayat(t *testing.T) {
	svc := newGrampanchayatService(t)
	seedGrampanchayat(t, svc, "GP-100")

	gp, err := svc.Authenticate("GP-100", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "GP-100", gp.GrampanchayatID)

	_, err = svc.Authenticate("GP-100", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("GP-missing", "secret123")
	assert.ErrorIs(t, err, ErrGrampanchayatNotFound)
}

func TestGetAllGrampanchayats(t *testing.T) {
	svc := newGrampanchayatService(t)
	seedGrampanchayat(t, svc, "GP-100")
	seedGrampanchayat(t, svc, "GP-200")

	gps, err := svc.GetAllGrampanchayats()
	require.NoError(t, err)
	assert.Len(t, gps, 2)
}
