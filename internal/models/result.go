package models

// Result records a letter grade a teacher entered for a student in a subject.
// Points is always derived server-side from the grade; client-supplied values
// are ignored.
type Result struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	StudentID    uint    `gorm:"index;not null" json:"studentId"`
	SubjectID    uint    `gorm:"index;not null" json:"subjectId"`
	Grade        string  `gorm:"size:4;not null" json:"grade"`
	Points       float64 `gorm:"not null" json:"points"`
	Semester     int     `gorm:"not null" json:"semester"`
	AcademicYear string  `gorm:"size:16;not null" json:"academicYear"`
	TeacherID    uint    `gorm:"index;not null" json:"teacherId"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}
