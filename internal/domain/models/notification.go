package models

import "time"

// Notification is a public announcement published by a Grampanchayat.
type Notification struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(150);not null" json:"title"`
	Message         string    `gorm:"type:varchar(1000);not null" json:"message"`
	GrampanchayatID uint      `gorm:"index;not null" json:"grampanchayatId"`
	CreatedAt       time.Time `json:"createdAt"`
}
