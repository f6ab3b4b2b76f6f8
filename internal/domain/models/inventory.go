package models

import "time"

// Inventory is a single purchase record tagged to exactly one category at
// creation time: the chosen category list gets one item appended and the
// other two stay empty.
type Inventory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	GrampanchayatID uint      `gorm:"index;not null" json:"grampanchayatId"`
	Chemical        []string  `gorm:"serializer:json" json:"chemical"`
	Filter          []string  `gorm:"serializer:json" json:"filter"`
	SpareParts      []string  `gorm:"serializer:json" json:"spareParts"`
	AmountSpent     float64   `gorm:"not null" json:"amount_spent"`
	Receipt         string    `gorm:"type:varchar(255);not null" json:"receipt"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Inventory categories accepted by the add route.
const (
	CategoryChemical   = "chemical"
	CategoryFilter     = "filter"
	CategorySpareParts = "spareParts"
)

// CategoryPoints counts the category lists of the record that hold at least
// one item, so a single record contributes 0-3 points to the inventory
// spend report.
func (i *Inventory) CategoryPoints() int {
	points := 0
	if len(i.Chemical) > 0 {
		points++
	}
	if len(i.Filter) > 0 {
		points++
	}
	if len(i.SpareParts) > 0 {
		points++
	}
	return points
}
