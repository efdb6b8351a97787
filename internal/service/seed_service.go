package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campusgrid/results-api/internal/gpa"
	"github.com/campusgrid/results-api/internal/models"
	"github.com/campusgrid/results-api/internal/repository"
)

// ErrSeedDisabled indicates seeding is switched off by configuration.
var ErrSeedDisabled = errors.New("seeding is disabled")

// SeedService loads the sample dataset used by local runs and demos.
type SeedService interface {
	EnsureSampleData(ctx context.Context) error
}

type seedService struct {
	students repository.StudentRepository
	teachers repository.TeacherRepository
	subjects repository.SubjectRepository
	results  repository.ResultRepository
	enabled  bool
	logger   zerolog.Logger
}

// NewSeedService constructs the sample data seeder.
func NewSeedService(students repository.StudentRepository, teachers repository.TeacherRepository, subjects repository.SubjectRepository, results repository.ResultRepository, enabled bool, logger zerolog.Logger) SeedService {
	return &seedService{
		students: students,
		teachers: teachers,
		subjects: subjects,
		results:  results,
		enabled:  enabled,
		logger:   logger.With().Str("component", "seed_service").Logger(),
	}
}

// EnsureSampleData inserts the demo dataset once. A non-empty student table
// means a previous run (or real data) is present, and the seeder backs off.
func (s *seedService) EnsureSampleData(ctx context.Context) error {
	if !s.enabled {
		return ErrSeedDisabled
	}

	count, err := s.students.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug().Int64("students", count).Msg("sample data skipped, database not empty")
		return nil
	}

	students := []models.Student{
		{Name: "John Doe", Email: "john.doe@student.edu", StudentID: "STU001", Password: "password123"},
		{Name: "Jane Smith", Email: "jane.smith@student.edu", StudentID: "STU002", Password: "password123"},
		{Name: "Bob Johnson", Email: "bob.johnson@student.edu", StudentID: "STU003", Password: "password123"},
	}
	for i := range students {
		if err := s.students.Create(ctx, &students[i]); err != nil {
			return err
		}
	}

	teachers := []models.Teacher{
		{Name: "Dr. Smith", Email: "dr.smith@university.edu", Department: "Mathematics", Password: "teacher123"},
		{Name: "Dr. Johnson", Email: "dr.johnson@university.edu", Department: "Physics", Password: "teacher123"},
	}
	for i := range teachers {
		if err := s.teachers.Create(ctx, &teachers[i]); err != nil {
			return err
		}
	}

	subjects := []models.Subject{
		{Name: "Mathematics", Code: "MATH101", Credits: 3},
		{Name: "Physics", Code: "PHYS101", Credits: 4},
		{Name: "Chemistry", Code: "CHEM101", Credits: 3},
		{Name: "Biology", Code: "BIOL101", Credits: 3},
		{Name: "English", Code: "ENG101", Credits: 2},
		{Name: "Computer Science", Code: "CS101", Credits: 4},
	}
	for i := range subjects {
		if err := s.subjects.Create(ctx, &subjects[i]); err != nil {
			return err
		}
	}

	type sample struct {
		student  int
		subject  int
		grade    string
		semester int
		teacher  int
	}
	samples := []sample{
		{0, 0, "A", 1, 0},
		{0, 1, "A-", 1, 1},
		{0, 2, "B+", 1, 0},
		{0, 3, "B", 2, 1},
		{1, 0, "A", 1, 0},
		{1, 1, "B+", 1, 1},
		{2, 0, "B", 1, 0},
	}
	for _, entry := range samples {
		result := models.Result{
			StudentID:    students[entry.student].ID,
			SubjectID:    subjects[entry.subject].ID,
			Grade:        entry.grade,
			Points:       gpa.PointsFor(entry.grade),
			Semester:     entry.semester,
			AcademicYear: "2023-2024",
			TeacherID:    teachers[entry.teacher].ID,
		}
		if err := s.results.Create(ctx, &result); err != nil {
			return err
		}
	}

	s.logger.Info().
		Int("students", len(students)).
		Int("subjects", len(subjects)).
		Int("results", len(samples)).
		Msg("sample data seeded")

	return nil
}
