package models

// Teacher represents a staff member who enters results.
type Teacher struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Email      string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Department string `gorm:"size:255;not null" json:"department"`
	Password   string `gorm:"size:255;not null" json:"-"`
}
