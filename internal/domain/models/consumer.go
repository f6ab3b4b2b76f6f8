package models

import "time"

// Consumer is an end citizen registered under exactly one Grampanchayat.
// The generated password is handed out once at registration and only the
// bcrypt digest is stored.
type Consumer struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Address         string    `gorm:"type:varchar(255);not null" json:"address"`
	NumberAadhar    string    `gorm:"type:varchar(12);not null;uniqueIndex" json:"number_aadhar"`
	MobileNo        string    `gorm:"type:varchar(10);not null;uniqueIndex" json:"mobileNo"`
	ConsumerID      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"consumerId"`
	Password        string    `gorm:"type:varchar(100);not null" json:"-"`
	Status          int       `gorm:"default:1" json:"status"`
	GrampanchayatID uint      `gorm:"index;not null" json:"grampanchayatId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
