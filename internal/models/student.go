package models

// Student represents a learner whose results are tracked.
type Student struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	StudentID string `gorm:"column:student_id;size:32;uniqueIndex;not null" json:"studentId"`
	Password  string `gorm:"size:255;not null" json:"-"`
}
