package services

import (
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"
	"jalseva-http-service/pkg/logger"

	"gorm.io/gorm"
)

// NotificationDetail is a notification together with its publishing body.
type NotificationDetail struct {
	models.Notification
	Grampanchayat *GrampanchayatSummary `json:"grampanchayat,omitempty"`
}

// InterfaceNotificationService manages public announcements.
type InterfaceNotificationService interface {
	CreateNotification(notification *models.Notification) error
	GetAllNotifications() ([]NotificationDetail, error)
	GetNotificationsByGrampanchayat(grampanchayatID uint) ([]models.Notification, error)
}

// NotificationService provides announcement services. The public feed is
// cached in Redis for a short window, a nil cache disables caching.
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceRedisService
}

// NewNotificationService creates a new notification service.
func NewNotificationService(db *gorm.DB, cfg *config.Config, cache InterfaceRedisService) InterfaceNotificationService {
	return &NotificationService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// CreateNotification publishes an announcement for a body and invalidates
// the cached feed.
func (s *NotificationService) CreateNotification(notification *models.Notification) error {
	var count int64
	if err := s.DB.Model(&models.Grampanchayat{}).
		Where("id = ?", notification.GrampanchayatID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrGrampanchayatNotFound
	}

	if err := s.DB.Create(notification).Error; err != nil {
		return err
	}

	if s.Cache != nil {
		if err := s.Cache.Delete(cacheKeyNotifications); err != nil {
			logger.Warning("Failed to invalidate notification cache: %v", err)
		}
	}
	return nil
}

// GetAllNotifications returns the public feed, newest first, with the
// publishing body attached.
func (s *NotificationService) GetAllNotifications() ([]NotificationDetail, error) {
	if s.Cache != nil {
		var cached []NotificationDetail
		if err := s.Cache.Get(cacheKeyNotifications, &cached); err == nil {
			return cached, nil
		}
	}

	var notifications []models.Notification
	if err := s.DB.Order("created_at DESC").Find(&notifications).Error; err != nil {
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

	details := make([]NotificationDetail, 0, len(notifications))
	for _, n := range notifications {
		details = append(details, NotificationDetail{
			Notification:  n,
			Grampanchayat: byID[n.GrampanchayatID],
		})
	}

	if s.Cache != nil && len(details) > 0 {
		if err := s.Cache.Set(cacheKeyNotifications, details, cacheTTLNotifications); err != nil {
			logger.Warning("Failed to cache notification feed: %v", err)
		}
	}
	return details, nil
}

// GetNotificationsByGrampanchayat lists one body's announcements, newest
// first.
func (s *NotificationService) GetNotificationsByGrampanchayat(grampanchayatID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.DB.Where("grampanchayat_id = ?", grampanchayatID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
