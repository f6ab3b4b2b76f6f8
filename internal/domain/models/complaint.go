package models

import "time"

// Complaint is raised by a Grampanchayat towards the state authority.
type Complaint struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ComplainNo      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"complainNo"`
	Description     string    `gorm:"type:varchar(500);not null" json:"description"`
	Status          int       `gorm:"default:0" json:"status"`
	Purpose         string    `gorm:"type:varchar(255);not null" json:"purpose"`
	GrampanchayatID uint      `gorm:"index;not null" json:"grampanchayatId"`
	CreatedAt       time.Time `json:"createdAt"`
}
