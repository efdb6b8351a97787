package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusgrid/results-api/internal/models"
)

// SubjectRepository provides access to subject records.
type SubjectRepository interface {
	GetByID(ctx context.Context, id uint) (models.Subject, error)
	GetByCode(ctx context.Context, code string) (models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
	List(ctx context.Context) ([]models.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository constructs a subject repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) GetByID(ctx context.Context, id uint) (models.Subject, error) {
	var subject models.Subject
	if err := r.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (r *subjectRepository) GetByCode(ctx context.Context, code string) (models.Subject, error) {
	var subject models.Subject
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&subject).Error; err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) List(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := r.db.WithContext(ctx).Order("id").Find(&subjects).Error; err != nil {
		return nil, err
	}

	return subjects, nil
}
