package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusgrid/results-api/internal/models"
)

// ResultFilter narrows result queries. Nil fields impose no constraint; all
// present fields must match.
type ResultFilter struct {
	StudentID *uint
	SubjectID *uint
	Semester  *int
	TeacherID *uint
}

// ResultRepository defines data operations for results. Reads that enrich a
// result resolve its student, subject, and teacher against current table
// state on every query; results left dangling by a deleted reference are
// excluded from enriched listings.
type ResultRepository interface {
	GetByID(ctx context.Context, id uint) (models.Result, error)
	Create(ctx context.Context, result *models.Result) error
	Update(ctx context.Context, result *models.Result) error
	Delete(ctx context.Context, id uint) (bool, error)
	Search(ctx context.Context, filter ResultFilter) ([]models.Result, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Result, error)
	Count(ctx context.Context) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository instantiates the repository.
func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) enrichedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Result{}).
		Preload("Student").
		Preload("Subject").
		Preload("Teacher")
}

func (r *resultRepository) GetByID(ctx context.Context, id uint) (models.Result, error) {
	var result models.Result
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return models.Result{}, err
	}

	return result, nil
}

func (r *resultRepository) Create(ctx context.Context, result *models.Result) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *resultRepository) Update(ctx context.Context, result *models.Result) error {
	return r.db.WithContext(ctx).Save(result).Error
}

func (r *resultRepository) Delete(ctx context.Context, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Result{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected > 0, nil
}

func (r *resultRepository) Search(ctx context.Context, filter ResultFilter) ([]models.Result, error) {
	query := r.enrichedQuery(ctx)

	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}

	if filter.SubjectID != nil {
		query = query.Where("subject_id = ?", *filter.SubjectID)
	}

	if filter.Semester != nil {
		query = query.Where("semester = ?", *filter.Semester)
	}

	if filter.TeacherID != nil {
		query = query.Where("teacher_id = ?", *filter.TeacherID)
	}

	var results []models.Result
	if err := query.Order("id").Find(&results).Error; err != nil {
		return nil, err
	}

	enriched := make([]models.Result, 0, len(results))
	for _, result := range results {
		if result.Student == nil || result.Subject == nil || result.Teacher == nil {
			continue
		}
		enriched = append(enriched, result)
	}

	return enriched, nil
}

func (r *resultRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Result, error) {
	var results []models.Result
	err := r.db.WithContext(ctx).Model(&models.Result{}).
		Preload("Subject").
		Where("student_id = ?", studentID).
		Order("id").
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	enriched := make([]models.Result, 0, len(results))
	for _, result := range results {
		if result.Subject == nil {
			continue
		}
		enriched = append(enriched, result)
	}

	return enriched, nil
}

func (r *resultRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Result{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
