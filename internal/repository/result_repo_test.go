package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campusgrid/results-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Student{}, &models.Teacher{}, &models.Subject{}, &models.Result{}))
	return db
}

func seedEntities(t *testing.T, db *gorm.DB) (students []models.Student, teachers []models.Teacher, subjects []models.Subject) {
	t.Helper()

	students = []models.Student{
		{Name: "John Doe", Email: "john.doe@student.edu", StudentID: "STU001", Password: "password123"},
		{Name: "Jane Smith", Email: "jane.smith@student.edu", StudentID: "STU002", Password: "password123"},
	}
	for i := range students {
		require.NoError(t, db.Create(&students[i]).Error)
	}

	teachers = []models.Teacher{
		{Name: "Dr. Smith", Email: "dr.smith@university.edu", Department: "Mathematics", Password: "teacher123"},
		{Name: "Dr. Johnson", Email: "dr.johnson@university.edu", Department: "Physics", Password: "teacher123"},
	}
	for i := range teachers {
		require.NoError(t, db.Create(&teachers[i]).Error)
	}

	subjects = []models.Subject{
		{Name: "Mathematics", Code: "MATH101", Credits: 3},
		{Name: "Physics", Code: "PHYS101", Credits: 4},
	}
	for i := range subjects {
		require.NoError(t, db.Create(&subjects[i]).Error)
	}

	return students, teachers, subjects
}

func TestResultRepositorySearchFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)
	students, teachers, subjects := seedEntities(t, db)

	results := []models.Result{
		{StudentID: students[0].ID, SubjectID: subjects[0].ID, Grade: "A", Points: 4.00, Semester: 1, AcademicYear: "2023-2024", TeacherID: teachers[0].ID},
		{StudentID: students[0].ID, SubjectID: subjects[1].ID, Grade: "A-", Points: 3.70, Semester: 1, AcademicYear: "2023-2024", TeacherID: teachers[1].ID},
		{StudentID: students[1].ID, SubjectID: subjects[0].ID, Grade: "B", Points: 3.00, Semester: 2, AcademicYear: "2023-2024", TeacherID: teachers[0].ID},
	}
	for i := range results {
		require.NoError(t, db.Create(&results[i]).Error)
	}

	ctx := context.Background()

	all, err := repo.Search(ctx, ResultFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.NotNil(t, all[0].Student)
	require.NotNil(t, all[0].Subject)
	require.NotNil(t, all[0].Teacher)
	require.Equal(t, "MATH101", all[0].Subject.Code)

	byStudent, err := repo.Search(ctx, ResultFilter{StudentID: &students[0].ID})
	require.NoError(t, err)
	require.Len(t, byStudent, 2)
	for _, result := range byStudent {
		require.Equal(t, students[0].ID, result.StudentID)
	}

	semester := 1
	intersection, err := repo.Search(ctx, ResultFilter{StudentID: &students[0].ID, Semester: &semester, TeacherID: &teachers[1].ID})
	require.NoError(t, err)
	require.Len(t, intersection, 1)
	require.Equal(t, "A-", intersection[0].Grade)

	missing := uint(999)
	none, err := repo.Search(ctx, ResultFilter{SubjectID: &missing})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestResultRepositorySearchExcludesOrphans(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)
	students, teachers, subjects := seedEntities(t, db)

	kept := models.Result{StudentID: students[0].ID, SubjectID: subjects[0].ID, Grade: "A", Points: 4.00, Semester: 1, AcademicYear: "2023-2024", TeacherID: teachers[0].ID}
	orphaned := models.Result{StudentID: students[1].ID, SubjectID: subjects[1].ID, Grade: "B", Points: 3.00, Semester: 1, AcademicYear: "2023-2024", TeacherID: teachers[0].ID}
	require.NoError(t, db.Create(&kept).Error)
	require.NoError(t, db.Create(&orphaned).Error)

	require.NoError(t, db.Delete(&models.Subject{}, subjects[1].ID).Error)

	results, err := repo.Search(context.Background(), ResultFilter{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, kept.ID, results[0].ID)
}

func TestResultRepositoryListByStudentEnrichesSubjectOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)
	students, teachers, subjects := seedEntities(t, db)

	result := models.Result{StudentID: students[0].ID, SubjectID: subjects[1].ID, Grade: "B+", Points: 3.30, Semester: 2, AcademicYear: "2023-2024", TeacherID: teachers[1].ID}
	require.NoError(t, db.Create(&result).Error)

	results, err := repo.ListByStudent(context.Background(), students[0].ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Subject)
	require.Equal(t, "PHYS101", results[0].Subject.Code)
	require.Nil(t, results[0].Student)
	require.Nil(t, results[0].Teacher)

	empty, err := repo.ListByStudent(context.Background(), students[1].ID)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestResultRepositoryDeleteReportsRemoval(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)
	students, teachers, subjects := seedEntities(t, db)

	result := models.Result{StudentID: students[0].ID, SubjectID: subjects[0].ID, Grade: "C", Points: 2.00, Semester: 1, AcademicYear: "2023-2024", TeacherID: teachers[0].ID}
	require.NoError(t, db.Create(&result).Error)

	ctx := context.Background()

	removed, err := repo.Delete(ctx, result.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = repo.Delete(ctx, result.ID)
	require.NoError(t, err)
	require.False(t, removed)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestStudentRepositoryLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)
	students, _, _ := seedEntities(t, db)

	ctx := context.Background()

	byEmail, err := repo.GetByEmail(ctx, "jane.smith@student.edu")
	require.NoError(t, err)
	require.Equal(t, students[1].ID, byEmail.ID)

	byCode, err := repo.GetByStudentID(ctx, "STU001")
	require.NoError(t, err)
	require.Equal(t, students[0].ID, byCode.ID)

	_, err = repo.GetByEmail(ctx, "nobody@student.edu")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestSubjectRepositoryLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectRepository(db)
	_, _, subjects := seedEntities(t, db)

	ctx := context.Background()

	byCode, err := repo.GetByCode(ctx, "PHYS101")
	require.NoError(t, err)
	require.Equal(t, subjects[1].ID, byCode.ID)
	require.Equal(t, 4, byCode.Credits)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	_, err = repo.GetByID(ctx, 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
