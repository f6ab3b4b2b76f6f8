package models

import "time"

// Asset is an infrastructure purchase owned by a Grampanchayat. Assets are
// immutable after creation: there is no update or delete route.
type Asset struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	GrampanchayatID uint      `gorm:"index;not null" json:"grampanchayatId"`
	Description     string    `gorm:"type:varchar(255);not null" json:"description"`
	AmountSpent     float64   `gorm:"not null" json:"amount_spent"`
	Receipt         string    `gorm:"type:varchar(255);not null" json:"receipt"` // opaque file URL or path
	CreatedAt       time.Time `json:"createdAt"`
}
