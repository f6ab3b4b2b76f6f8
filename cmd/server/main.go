// @title           JalSeva HTTP Service API
// @version         1.0
// @description     Rural water supply governance backend for Grampanchayats, PHED oversight and consumers

// @contact.name   API Support

// @host      localhost:5060
// @BasePath  /v1/api

// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        x-auth-token
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"jalseva-http-service/internal/app/routes"
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/domain/services"
	"jalseva-http-service/internal/infrastructure/config"
	"jalseva-http-service/internal/infrastructure/database"
	Logger "jalseva-http-service/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		// environment may already be set by the deployment
		Logger.Warning("Could not load .env file: %v", err)
	} else {
		Logger.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("Failed to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	if cfg.DBMigrationMode == "drop" {
		log.Println("WARNING: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("Drop and recreate failed: %v", err)
		}
	} else {
		log.Println("Running standard migration, only new columns and tables are added")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	ensurePhedExists(db, cfg)

	redisService := services.NewRedisService(cfg)

	r := routes.SetupRouter(db, cfg, redisService)

	printSystemInfo(pool)

	port := cfg.ServerPort
	Logger.Info("Server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds new columns and tables, never drops.
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Grampanchayat{},
		&models.Phed{},
		&models.Consumer{},
		&models.Asset{},
		&models.Inventory{},
		&models.Complaint{},
		&models.UserComplaint{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables wipes every table and rebuilds the schema.
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	if _, err := sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("Failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"grampanchayats", "pheds", "consumers", "assets",
		"inventories", "complaints", "user_complaints", "notifications",
	}
	for _, table := range tables {
		log.Printf("Dropping table: %s", table)
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("Failed to drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// ensurePhedExists seeds the bootstrap authority account on an empty
// database.
func ensurePhedExists(db *gorm.DB, cfg *config.Config) {
	phedService := services.NewPhedService(db, cfg, services.NewCredentialService())
	if err := phedService.EnsureDefaultPhed(); err != nil {
		log.Fatalf("Failed to seed default PHED account: %v", err)
	}
}

func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		log.Printf("Database pool stats: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("Goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
