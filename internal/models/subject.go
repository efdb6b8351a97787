package models

// Subject represents a course; credits weight its results in GPA aggregation.
type Subject struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Code    string `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Credits int    `gorm:"not null" json:"credits"`
}
