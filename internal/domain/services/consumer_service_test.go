package services

import (
	"testing"

	"jalseva-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newConsumerFixture(t *testing.T) (*gorm.DB, InterfaceConsumerService, *models.Grampanchayat) {
	t.Helper()
	db := setupTestDB(t)
	creds := NewCredentialService()
	gpSvc := NewGrampanchayatService(db, testConfig(), creds, nil)
	gp := seedGrampanchayat(t, gpSvc, "GP-100")
	return db, NewConsumerService(db, testConfig(), creds), gp
}

func seedConsumer(t *testing.T, svc InterfaceConsumerService, gpID uint, mobile, aadhar string) (*models.Consumer, string) {
	t.Helper()
	consumer := &models.Consumer{
		Name:            "Ramesh Kumar",
		Address:         "Ward 4, Rampur",
		NumberAadhar:    aadhar,
		MobileNo:        mobile,
		GrampanchayatID: gpID,
	}
	plain, err := svc.RegisterConsumer(consumer)
	require.NoError(t, err)
	return consumer, plain
}

func TestRegisterConsumerGeneratesCredentials(t *testing.T) {
	_, svc, gp := newConsumerFixture(t)
	consumer, plain := seedConsumer(t, svc, gp.ID, "9876543210", "123456789012")

	assert.Regexp(t, `^CP-\d+$`, consumer.ConsumerID)
	assert.Len(t, plain, 16)
	assert.NotEqual(t, plain, consumer.Password)
	assert.Equal(t, 1, consumer.Status)

	// returned plaintext logs the consumer in
	got, err := svc.Authenticate(consumer.MobileNo, "", plain)
	require.NoError(t, err)
	assert.Equal(t, consumer.ID, got.ID)
}

func TestRegisterConsumerDuplicates(t *testing.T) {
	_, svc, gp := newConsumerFixture(t)
	seedConsumer(t, svc, gp.ID, "9876543210", "123456789012")

	_, err := svc.RegisterConsumer(&models.Consumer{
		Name: "Dup", Address: "x", NumberAadhar: "999999999999",
		MobileNo: "9876543210", GrampanchayatID: gp.ID,
	})
	assert.ErrorIs(t, err, ErrMobileRegistered)

	_, err = svc.RegisterConsumer(&models.Consumer{
		Name: "Dup", Address: "x", NumberAadhar: "123456789012",
		MobileNo: "9000000000", GrampanchayatID: gp.ID,
	})
	assert.ErrorIs(t, err, ErrAadharRegistered)
}

func TestAuthenticateConsumerByEitherIdentifier(t *testing.T) {
	_, svc, gp := newConsumerFixture(t)
	consumer, plain := seedConsumer(t, svc, gp.ID, "9876543210", "123456789012")

	byMobile, err := svc.Authenticate("9876543210", "", plain)
	require.NoError(t, err)
	assert.Equal(t, consumer.ID, byMobile.ID)

	byConsumerID, err := svc.Authenticate("", consumer.ConsumerID, plain)
	require.NoError(t, err)
	assert.Equal(t, consumer.ID, byConsumerID.ID)

	_, err = svc.Authenticate("9876543210", "", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("9111111111", "CP-missing", plain)
	assert.ErrorIs(t, err, ErrConsumerNotFound)
}

func TestUpdateConsumerOwnership(t *testing.T) {
	_, svc, gp := newConsumerFixture(t)
	consumer, _ := seedConsumer(t, svc, gp.ID, "9876543210", "123456789012")

	updated, err := svc.UpdateConsumer(consumer.ID, gp.ID, map[string]interface{}{
		"address": "Ward 7, Rampur",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ward 7, Rampur", updated.Address)

	// another body cannot touch the record
	_, err = svc.UpdateConsumer(consumer.ID, gp.ID+1, map[string]interface{}{
		"address": "hijack",
	})
	assert.ErrorIs(t, err, ErrConsumerNotFound)
}

func TestDeleteConsumerOwnership(t *testing.T) {
	_, svc, gp := newConsumerFixture(t)
	consumer, _ := seedConsumer(t, svc, gp.ID, "9876543210", "123456789012")

	assert.ErrorIs(t, svc.DeleteConsumer(consumer.ID, gp.ID+1), ErrConsumerNotFound)
	require.NoError(t, svc.DeleteConsumer(consumer.ID, gp.ID))

	_, err := svc.GetConsumerByID(consumer.ID)
	assert.ErrorIs(t, err, ErrConsumerNotFound)
}

func TestGetConsumersByGrampanchayat(t *testing.T) {
	_, svc, gp := newConsumerFixture(t)
	seedConsumer(t, svc, gp.ID, "9876543210", "123456789012")
	seedConsumer(t, svc, gp.ID, "9876543211", "123456789013")

	consumers, err := svc.GetConsumersByGrampanchayat(gp.ID)
	require.NoError(t, err)
	assert.Len(t, consumers, 2)

	none, err := svc.GetConsumersByGrampanchayat(gp.ID + 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}
