package models

// Phed is the state-level oversight principal. It is independent of any
// Grampanchayat.
type Phed struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	PhoneNo  string `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone_no"`
	PhedID   string `gorm:"type:varchar(50);not null;uniqueIndex" json:"phed_id"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
}
