package services

import (
	"testing"

	"jalseva-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserComplaintFixture(t *testing.T) (*gorm.DB, InterfaceUserComplaintService) {
	t.Helper()
	db := setupTestDB(t)
	return db, NewUserComplaintService(db, testConfig())
}

func TestCreateUserComplaintAssignsIDAndStatus(t *testing.T) {
	_, svc := newUserComplaintFixture(t)

	complaint := &models.UserComplaint{
		UserID:           1,
		ComplaintDetails: "No water supply since Monday",
		GrampanchayatID:  10,
	}
	require.NoError(t, svc.CreateUserComplaint(complaint))

	assert.Regexp(t, `^comp-user-\d{6}$`, complaint.ComplaintID)
	assert.Equal(t, models.ComplaintStatusPending, complaint.Status)
}

func TestUpdateStatusOwnership(t *testing.T) {
	_, svc := newUserComplaintFixture(t)

	complaint := &models.UserComplaint{
		UserID:           1,
		ComplaintDetails: "Leaking pipeline near school",
		GrampanchayatID:  10,
	}
	require.NoError(t, svc.CreateUserComplaint(complaint))

	// foreign body is rejected
	_, err := svc.UpdateStatus(complaint.ComplaintID, 11, models.ComplaintStatusResolved)
	assert.ErrorIs(t, err, ErrNotComplaintOwner)

	// owning body succeeds
	updated, err := svc.UpdateStatus(complaint.ComplaintID, 10, models.ComplaintStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusResolved, updated.Status)
}

func TestUpdateStatusValidation(t *testing.T) {
	_, svc := newUserComplaintFixture(t)

	_, err := svc.UpdateStatus("comp-user-000001", 10, "Done")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus("comp-user-000001", 10, models.ComplaintStatusClosed)
	assert.ErrorIs(t, err, ErrComplaintNotFound)
}

func TestGetUserComplaintsFilters(t *testing.T) {
	_, svc := newUserComplaintFixture(t)

	for _, c := range []models.UserComplaint{
		{UserID: 1, ComplaintDetails: "a", GrampanchayatID: 10},
		{UserID: 1, ComplaintDetails: "b", GrampanchayatID: 10},
		{UserID: 2, ComplaintDetails: "c", GrampanchayatID: 11},
	} {
		complaint := c
		require.NoError(t, svc.CreateUserComplaint(&complaint))
	}

	byUser, err := svc.GetUserComplaintsByConsumer(1)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byBody, err := svc.GetUserComplaintsByGrampanchayat(11)
	require.NoError(t, err)
	assert.Len(t, byBody, 1)
}
