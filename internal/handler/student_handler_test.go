package handler_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campusgrid/results-api/internal/models"
)

func TestStudentHandlerListAndGet(t *testing.T) {
	app, db := setupApp(t)
	student, _, _ := seedBaseEntities(t, db)

	resp := doJSON(t, app, "GET", "/api/students", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list struct {
		Success bool             `json:"success"`
		Data    []models.Student `json:"data"`
	}
	decodeResponse(t, resp, &list)
	require.Len(t, list.Data, 1)

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/students/%d", student.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var single struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	decodeResponse(t, resp, &single)
	require.Equal(t, student.Email, single.Data["email"])
	require.NotContains(t, single.Data, "password")

	resp = doJSON(t, app, "GET", "/api/students/999", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/students/abc", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStudentHandlerResultsAndComposite(t *testing.T) {
	app, db := setupApp(t)
	student, teacher, subject := seedBaseEntities(t, db)
	result := models.Result{StudentID: student.ID, SubjectID: subject.ID, Grade: "A", Points: 4.00, Semester: 1, AcademicYear: "2023-2024", TeacherID: teacher.ID}
	require.NoError(t, db.Create(&result).Error)

	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/students/%d/results", student.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var results resultListEnvelope
	decodeResponse(t, resp, &results)
	require.Len(t, results.Data, 1)
	require.NotNil(t, results.Data[0].Subject)

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/students/%d/with-results", student.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var composite struct {
		Success bool `json:"success"`
		Data    struct {
			models.Student
			Results []models.Result `json:"results"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &composite)
	require.Equal(t, student.Email, composite.Data.Email)
	require.Len(t, composite.Data.Results, 1)
	require.NotNil(t, composite.Data.Results[0].Subject)
	require.Nil(t, composite.Data.Results[0].Teacher)

	resp = doJSON(t, app, "GET", "/api/students/999/results", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/students/999/with-results", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStudentHandlerSummary(t *testing.T) {
	app, db := setupApp(t)
	student, teacher, math := seedBaseEntities(t, db)
	physics := models.Subject{Name: "Physics", Code: "PHYS101", Credits: 4}
	require.NoError(t, db.Create(&physics).Error)

	results := []models.Result{
		{StudentID: student.ID, SubjectID: math.ID, Grade: "A", Points: 4.00, Semester: 1, AcademicYear: "2023-2024", TeacherID: teacher.ID},
		{StudentID: student.ID, SubjectID: physics.ID, Grade: "B", Points: 3.00, Semester: 2, AcademicYear: "2023-2024", TeacherID: teacher.ID},
	}
	for i := range results {
		require.NoError(t, db.Create(&results[i]).Error)
	}

	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/students/%d/summary", student.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			StudentID uint `json:"studentId"`
			CGPA      struct {
				GPA          float64 `json:"gpa"`
				TotalCredits int     `json:"totalCredits"`
			} `json:"cgpa"`
			Semesters   []map[string]interface{} `json:"semesters"`
			ResultCount int                      `json:"resultCount"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, student.ID, body.Data.StudentID)
	// (4.00*3 + 3.00*4) / 7 = 3.43 after rounding
	require.Equal(t, 3.43, body.Data.CGPA.GPA)
	require.Equal(t, 7, body.Data.CGPA.TotalCredits)
	require.Len(t, body.Data.Semesters, 2)
	require.Equal(t, 2, body.Data.ResultCount)

	resp = doJSON(t, app, "GET", "/api/students/999/summary", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
