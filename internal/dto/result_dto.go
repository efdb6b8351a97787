package dto

// CreateResultRequest is the payload for entering a new result. Points is
// accepted for wire compatibility with older clients but is always recomputed
// from the grade server-side.
type CreateResultRequest struct {
	StudentID    uint    `json:"studentId" validate:"required"`
	SubjectID    uint    `json:"subjectId" validate:"required"`
	Grade        string  `json:"grade" validate:"required"`
	Points       float64 `json:"points"`
	Semester     int     `json:"semester" validate:"required,gt=0"`
	AcademicYear string  `json:"academicYear" validate:"required"`
	TeacherID    uint    `json:"teacherId" validate:"required"`
}

// UpdateResultRequest merges supplied fields into an existing result. Nil
// fields are left untouched; a grade change recomputes points.
type UpdateResultRequest struct {
	StudentID    *uint   `json:"studentId"`
	SubjectID    *uint   `json:"subjectId"`
	Grade        *string `json:"grade"`
	Semester     *int    `json:"semester" validate:"omitempty,gt=0"`
	AcademicYear *string `json:"academicYear"`
	TeacherID    *uint   `json:"teacherId"`
}
