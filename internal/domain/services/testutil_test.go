package services

import (
	"testing"

	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Grampanchayat{},
		&models.Phed{},
		&models.Consumer{},
		&models.Asset{},
		&models.Inventory{},
		&models.Complaint{},
		&models.UserComplaint{},
		&models.Notification{},
	))
	return db
}

func testConfig() *config.Config {
	return testConfigWithSecret("test-secret")
}

func testConfigWithSecret(secret string) *config.Config {
	return &config.Config{
		JWTSecretKey:        secret,
		DefaultPhedPassword: "phed1234",
	}
}

// seedGrampanchayat creates a body directly through the service so the
// password ends up hashed.
func seedGrampanchayat(t *testing.T, svc InterfaceGrampanchayatService, publicID string) *models.Grampanchayat {
	t.Helper()

	gp := &models.Grampanchayat{
		Name:            "Rampur Gram Panchayat",
		GrampanchayatID: publicID,
		Address:         "Block Road, Rampur",
		VillageName:     "Rampur",
		Password:        "secret123",
	}
	require.NoError(t, svc.CreateGrampanchayat(gp))
	return gp
}
