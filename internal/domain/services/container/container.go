package container

import (
	"sync"

	"jalseva-http-service/internal/domain/services"
	"jalseva-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer wires all services with their dependencies.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// base services
	credentialService services.InterfaceCredentialService
	jwtService        services.InterfaceJWTService
	redisService      services.InterfaceRedisService

	// business services
	grampanchayatService services.InterfaceGrampanchayatService
	phedService          services.InterfacePhedService
	consumerService      services.InterfaceConsumerService
	assetService         services.InterfaceAssetService
	inventoryService     services.InterfaceInventoryService
	complaintService     services.InterfaceComplaintService
	userComplaintService services.InterfaceUserComplaintService
	notificationService  services.InterfaceNotificationService
	reportService        services.InterfaceReportService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container. A nil redisService
// disables caching, which the cached services tolerate.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisService services.InterfaceRedisService) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:           db,
		config:       cfg,
		redisService: redisService,
	}
	container.initializeServices()
	return container
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.credentialService = services.NewCredentialService()
	c.jwtService = services.NewJWTService(c.config)

	c.grampanchayatService = services.NewGrampanchayatService(c.db, c.config, c.credentialService, c.redisService)
	c.phedService = services.NewPhedService(c.db, c.config, c.credentialService)
	c.consumerService = services.NewConsumerService(c.db, c.config, c.credentialService)
	c.assetService = services.NewAssetService(c.db, c.config)
	c.inventoryService = services.NewInventoryService(c.db, c.config)
	c.complaintService = services.NewComplaintService(c.db, c.config)
	c.userComplaintService = services.NewUserComplaintService(c.db, c.config)
	c.notificationService = services.NewNotificationService(c.db, c.config, c.redisService)
	c.reportService = services.NewReportService(c.db, c.config)
}

// GetService returns the named service, or nil for an unknown name.
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "credential":
		return c.credentialService
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "grampanchayat":
		return c.grampanchayatService
	case "phed":
		return c.phedService
	case "consumer":
		return c.consumerService
	case "asset":
		return c.assetService
	case "inventory":
		return c.inventoryService
	case "complaint":
		return c.complaintService
	case "user_complaint":
		return c.userComplaintService
	case "notification":
		return c.notificationService
	case "report":
		return c.reportService
	default:
		return nil
	}
}

// GetDB returns the database handle.
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
