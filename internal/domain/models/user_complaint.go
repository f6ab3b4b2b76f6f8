package models

import "time"

// UserComplaint status values. Only the consumer's owning Grampanchayat may
// move a complaint between them.
const (
	ComplaintStatusPending    = "Pending"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
	ComplaintStatusClosed     = "Closed"
)

// ValidComplaintStatuses lists the accepted status values in display order.
var ValidComplaintStatuses = []string{
	ComplaintStatusPending,
	ComplaintStatusInProgress,
	ComplaintStatusResolved,
	ComplaintStatusClosed,
}

// IsValidComplaintStatus reports whether s is an accepted status value.
func IsValidComplaintStatus(s string) bool {
	for _, v := range ValidComplaintStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// UserComplaint is raised by a Consumer and belongs to the Consumer's
// Grampanchayat.
type UserComplaint struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"index;not null" json:"userId"`
	ComplaintID      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"complaintId"`
	ComplaintDetails string    `gorm:"type:varchar(500);not null" json:"complaintDetails"`
	Status           string    `gorm:"type:varchar(20);default:Pending" json:"status"`
	GrampanchayatID  uint      `gorm:"index;not null" json:"grampanchayatId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
