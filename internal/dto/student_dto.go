package dto

import (
	"github.com/campusgrid/results-api/internal/gpa"
	"github.com/campusgrid/results-api/internal/models"
)

// StudentWithResults pairs a student with their results, each enriched with
// its subject only.
type StudentWithResults struct {
	models.Student
	Results []models.Result `json:"results"`
}

// StudentSummary is the GPA dashboard payload for a single student, computed
// from the student's current results at request time.
type StudentSummary struct {
	StudentID   uint                  `json:"studentId"`
	CGPA        gpa.Summary           `json:"cgpa"`
	Semesters   []gpa.SemesterSummary `json:"semesters"`
	ResultCount int                   `json:"resultCount"`
}
