package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusgrid/results-api/internal/models"
	"github.com/campusgrid/results-api/internal/repository"
)

// ErrSubjectNotFound indicates the subject id does not resolve.
var ErrSubjectNotFound = errors.New("subject not found")

// SubjectService exposes read operations over subjects.
type SubjectService interface {
	List(ctx context.Context) ([]models.Subject, error)
	Get(ctx context.Context, id uint) (models.Subject, error)
}

type subjectService struct {
	subjects repository.SubjectRepository
}

// NewSubjectService constructs the subject read service.
func NewSubjectService(subjects repository.SubjectRepository) SubjectService {
	return &subjectService{subjects: subjects}
}

func (s *subjectService) List(ctx context.Context) ([]models.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *subjectService) Get(ctx context.Context, id uint) (models.Subject, error) {
	subject, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Subject{}, ErrSubjectNotFound
		}
		return models.Subject{}, err
	}

	return subject, nil
}
