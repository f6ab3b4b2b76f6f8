package models

import "time"

// Grampanchayat is a local self-government tenant. It owns consumers,
// assets, inventory records, complaints and notifications.
type Grampanchayat struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	GrampanchayatID string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"grampanchayatId"`
	Address         string    `gorm:"type:varchar(255);not null" json:"address"`
	VillageName     string    `gorm:"type:varchar(100);not null" json:"villageName"`
	Password        string    `gorm:"type:varchar(100);not null" json:"-"` // bcrypt digest, never serialized
	Status          int       `gorm:"default:1" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relations
	Consumers      []Consumer      `gorm:"foreignKey:GrampanchayatID;references:ID" json:"consumers,omitempty"`
	Assets         []Asset         `gorm:"foreignKey:GrampanchayatID;references:ID" json:"assets,omitempty"`
	Inventories    []Inventory     `gorm:"foreignKey:GrampanchayatID;references:ID" json:"inventories,omitempty"`
	Complaints     []Complaint     `gorm:"foreignKey:GrampanchayatID;references:ID" json:"complaints,omitempty"`
	Notifications  []Notification  `gorm:"foreignKey:GrampanchayatID;references:ID" json:"notifications,omitempty"`
	UserComplaints []UserComplaint `gorm:"foreignKey:GrampanchayatID;references:ID" json:"userComplaints,omitempty"`
}
