package services

import (
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceComplaintService manages complaints raised by bodies towards the
// state authority.
type InterfaceComplaintService interface {
	CreateComplaint(complaint *models.Complaint) error
	GetAllComplaints() ([]models.Complaint, error)
	GetComplaintsByGrampanchayat(grampanchayatID uint) ([]models.Complaint, error)
}

// ComplaintService provides body-level complaint services.
type ComplaintService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(db *gorm.DB, cfg *config.Config) InterfaceComplaintService {
	return &ComplaintService{
		DB:     db,
		Config: cfg,
	}
}

// CreateComplaint files a complaint for a body. A public complaint number
// is assigned here.
func (s *ComplaintService) CreateComplaint(complaint *models.Complaint) error {
	var count int64
	if err := s.DB.Model(&models.Grampanchayat{}).
		Where("id = ?", complaint.GrampanchayatID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrGrampanchayatNotFound
	}

	complaint.ComplainNo = models.NewComplainNo()
	return s.DB.Create(complaint).Error
}

// GetAllComplaints lists every complaint across bodies, newest first.
func (s *ComplaintService) GetAllComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetComplaintsByGrampanchayat lists the complaints of one body, newest
// first.
func (s *ComplaintService) GetComplaintsByGrampanchayat(grampanchayatID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Where("grampanchayat_id = ?", grampanchayatID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}
