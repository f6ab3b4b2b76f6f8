package services

import (
	"errors"

	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ConsumerSummary is the password-free slice of a consumer embedded in
// complaint listings.
type ConsumerSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	MobileNo string `json:"mobileNo"`
}

// UserComplaintDetail is a consumer complaint together with the raising
// consumer and the owning body.
type UserComplaintDetail struct {
	models.UserComplaint
	User          *ConsumerSummary      `json:"user,omitempty"`
	Grampanchayat *GrampanchayatSummary `json:"grampanchayat,omitempty"`
}

// InterfaceUserComplaintService manages complaints raised by consumers.
type InterfaceUserComplaintService interface {
	CreateUserComplaint(complaint *models.UserComplaint) error
	GetAllUserComplaints() ([]UserComplaintDetail, error)
	GetUserComplaintsByConsumer(userID uint) ([]models.UserComplaint, error)
	GetUserComplaintsByGrampanchayat(grampanchayatID uint) ([]models.UserComplaint, error)
	UpdateStatus(complaintID string, grampanchayatID uint, status string) (*models.UserComplaint, error)
}

// UserComplaintService provides consumer complaint services.
type UserComplaintService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserComplaintService creates a new consumer complaint service.
func NewUserComplaintService(db *gorm.DB, cfg *config.Config) InterfaceUserComplaintService {
	return &UserComplaintService{
		DB:     db,
		Config: cfg,
	}
}

// CreateUserComplaint files a complaint on behalf of a consumer. The record
// is tagged with the consumer's body and a public complaintId, and starts
// in Pending.
func (s *UserComplaintService) CreateUserComplaint(complaint *models.UserComplaint) error {
	complaint.ComplaintID = models.NewUserComplaintID()
	complaint.Status = models.ComplaintStatusPending
	return s.DB.Create(complaint).Error
}

// GetAllUserComplaints lists every consumer complaint, newest first, with
// the raising consumer and owning body attached. Dangling references keep
// nil summaries.
func (s *UserComplaintService) GetAllUserComplaints() ([]UserComplaintDetail, error) {
	var complaints []models.UserComplaint
	if err := s.DB.Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}

	var consumers []models.Consumer
	if err := s.DB.Find(&consumers).Error; err != nil {
		return nil, err
	}
	consumerByID := make(map[uint]*ConsumerSummary, len(consumers))
	for i := range consumers {
		consumerByID[consumers[i].ID] = &ConsumerSummary{
			ID:       consumers[i].ID,
			Name:     consumers[i].Name,
			MobileNo: consumers[i].MobileNo,
		}
	}

	var bodies []models.Grampanchayat
	if err := s.DB.Find(&bodies).Error; err != nil {
		return nil, err
	}
	bodyByID := make(map[uint]*GrampanchayatSummary, len(bodies))
	for i := range bodies {
		bodyByID[bodies[i].ID] = &GrampanchayatSummary{
			ID:          bodies[i].ID,
			Name:        bodies[i].Name,
			VillageName: bodies[i].VillageName,
		}
	}

	details := make([]UserComplaintDetail, 0, len(complaints))
	for _, complaint := range complaints {
		details = append(details, UserComplaintDetail{
			UserComplaint: complaint,
			User:          consumerByID[complaint.UserID],
			Grampanchayat: bodyByID[complaint.GrampanchayatID],
		})
	}
	return details, nil
}

// GetUserComplaintsByConsumer lists one consumer's complaints, newest first.
func (s *UserComplaintService) GetUserComplaintsByConsumer(userID uint) ([]models.UserComplaint, error) {
	var complaints []models.UserComplaint
	if err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetUserComplaintsByGrampanchayat lists the consumer complaints filed under
// one body, newest first.
func (s *UserComplaintService) GetUserComplaintsByGrampanchayat(grampanchayatID uint) ([]models.UserComplaint, error) {
	var complaints []models.UserComplaint
	if err := s.DB.Where("grampanchayat_id = ?", grampanchayatID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// UpdateStatus moves a complaint to a new status. Only the body the
// complaint was filed under may change it.
func (s *UserComplaintService) UpdateStatus(complaintID string, grampanchayatID uint, status string) (*models.UserComplaint, error) {
	if !models.IsValidComplaintStatus(status) {
		return nil, ErrInvalidStatus
	}

	var complaint models.UserComplaint
	if err := s.DB.Where("complaint_id = ?", complaintID).First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	if complaint.GrampanchayatID != grampanchayatID {
		return nil, ErrNotComplaintOwner
	}

	if err := s.DB.Model(&complaint).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}
