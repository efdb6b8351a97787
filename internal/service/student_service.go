package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campusgrid/results-api/internal/dto"
	"github.com/campusgrid/results-api/internal/models"
	"github.com/campusgrid/results-api/internal/repository"
)

// ErrStudentNotFound indicates the student id does not resolve.
var ErrStudentNotFound = errors.New("student not found")

// StudentService exposes read operations over students and their results.
type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id uint) (models.Student, error)
	Results(ctx context.Context, id uint) ([]models.Result, error)
	WithResults(ctx context.Context, id uint) (dto.StudentWithResults, error)
}

type studentService struct {
	students repository.StudentRepository
	results  repository.ResultRepository
	logger   zerolog.Logger
}

// NewStudentService constructs the student read service.
func NewStudentService(students repository.StudentRepository, results repository.ResultRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		students: students,
		results:  results,
		logger:   logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.students.List(ctx)
}

func (s *studentService) Get(ctx context.Context, id uint) (models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return models.Student{}, studentLookupError(err)
	}

	return student, nil
}

func studentLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStudentNotFound
	}
	return err
}

// Results returns the student's results fully enriched, or ErrStudentNotFound
// when the student id does not resolve.
func (s *studentService) Results(ctx context.Context, id uint) ([]models.Result, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	return s.results.Search(ctx, repository.ResultFilter{StudentID: &id})
}

func (s *studentService) WithResults(ctx context.Context, id uint) (dto.StudentWithResults, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return dto.StudentWithResults{}, err
	}

	results, err := s.results.ListByStudent(ctx, id)
	if err != nil {
		return dto.StudentWithResults{}, err
	}

	return dto.StudentWithResults{Student: student, Results: results}, nil
}
