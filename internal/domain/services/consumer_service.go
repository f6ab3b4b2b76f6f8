package services

import (
	"errors"

	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceConsumerService manages consumers of a Grampanchayat.
type InterfaceConsumerService interface {
	RegisterConsumer(consumer *models.Consumer) (plainPassword string, err error)
	GetConsumerByID(id uint) (*models.Consumer, error)
	GetConsumersByGrampanchayat(grampanchayatID uint) ([]models.Consumer, error)
	UpdateConsumer(id uint, grampanchayatID uint, updates map[string]interface{}) (*models.Consumer, error)
	DeleteConsumer(id uint, grampanchayatID uint) error
	Authenticate(mobileNo, consumerID, password string) (*models.Consumer, error)
}

// ConsumerService provides consumer related services.
type ConsumerService struct {
	DB          *gorm.DB
	Config      *config.Config
	Credentials InterfaceCredentialService
}

// NewConsumerService creates a new consumer service.
func NewConsumerService(db *gorm.DB, cfg *config.Config, creds InterfaceCredentialService) InterfaceConsumerService {
	return &ConsumerService{
		DB:          db,
		Config:      cfg,
		Credentials: creds,
	}
}

// RegisterConsumer creates a consumer under a body and returns the generated
// plaintext password. The caller shows the password once, only the digest
// is stored.
func (s *ConsumerService) RegisterConsumer(consumer *models.Consumer) (string, error) {
	var count int64
	if err := s.DB.Model(&models.Consumer{}).
		Where("mobile_no = ?", consumer.MobileNo).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrMobileRegistered
	}

	if err := s.DB.Model(&models.Consumer{}).
		Where("number_aadhar = ?", consumer.NumberAadhar).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrAadharRegistered
	}

	plain := models.NewConsumerPassword()
	hashed, err := s.Credentials.HashPassword(plain)
	if err != nil {
		return "", err
	}
	consumer.Password = hashed
	consumer.ConsumerID = models.NewConsumerID()
	if consumer.Status == 0 {
		consumer.Status = 1
	}

	if err := s.DB.Create(consumer).Error; err != nil {
		return "", err
	}
	return plain, nil
}

// GetConsumerByID fetches a consumer by primary key.
func (s *ConsumerService) GetConsumerByID(id uint) (*models.Consumer, error) {
	var consumer models.Consumer
	if err := s.DB.First(&consumer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsumerNotFound
		}
		return nil, err
	}
	return &consumer, nil
}

// GetConsumersByGrampanchayat lists the consumers of one body.
func (s *ConsumerService) GetConsumersByGrampanchayat(grampanchayatID uint) ([]models.Consumer, error) {
	var consumers []models.Consumer
	if err := s.DB.Where("grampanchayat_id = ?", grampanchayatID).Find(&consumers).Error; err != nil {
		return nil, err
	}
	return consumers, nil
}

// UpdateConsumer applies a partial update. The consumer must belong to the
// calling body.
func (s *ConsumerService) UpdateConsumer(id uint, grampanchayatID uint, updates map[string]interface{}) (*models.Consumer, error) {
	consumer, err := s.GetConsumerByID(id)
	if err != nil {
		return nil, err
	}
	if consumer.GrampanchayatID != grampanchayatID {
		return nil, ErrConsumerNotFound
	}

	if mobileNo, ok := updates["mobile_no"].(string); ok && mobileNo != consumer.MobileNo {
		var count int64
		if err := s.DB.Model(&models.Consumer{}).
			Where("mobile_no = ? AND id != ?", mobileNo, consumer.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrMobileRegistered
		}
	}

	if password, ok := updates["password"].(string); ok {
		hashed, err := s.Credentials.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.DB.Model(consumer).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetConsumerByID(id)
}

// DeleteConsumer removes a consumer owned by the calling body.
func (s *ConsumerService) DeleteConsumer(id uint, grampanchayatID uint) error {
	result := s.DB.Where("id = ? AND grampanchayat_id = ?", id, grampanchayatID).
		Delete(&models.Consumer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConsumerNotFound
	}
	return nil
}

// Authenticate logs a consumer in. The caller may identify by mobile number
// or by the public consumerId, either one matching is enough.
func (s *ConsumerService) Authenticate(mobileNo, consumerID, password string) (*models.Consumer, error) {
	var consumer models.Consumer
	if err := s.DB.Where("mobile_no = ? OR consumer_id = ?", mobileNo, consumerID).
		First(&consumer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsumerNotFound
		}
		return nil, err
	}
	if !s.Credentials.CheckPassword(password, consumer.Password) {
		return nil, ErrInvalidCredentials
	}
	return &consumer, nil
}
