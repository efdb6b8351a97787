package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/campusgrid/results-api/internal/dto"
	"github.com/campusgrid/results-api/internal/gpa"
	"github.com/campusgrid/results-api/internal/models"
	"github.com/campusgrid/results-api/internal/repository"
)

// ErrResultNotFound indicates the result id does not resolve.
var ErrResultNotFound = errors.New("result not found")

// ErrUnknownReference indicates a result points at a student, subject, or
// teacher that does not exist.
var ErrUnknownReference = errors.New("referenced entity not found")

// SummaryInvalidator drops cached summary state for a student after their
// results change. The result service only knows the contract, not the cache.
type SummaryInvalidator interface {
	Invalidate(ctx context.Context, studentID uint)
}

// ResultService encapsulates result entry workflows for teachers.
type ResultService interface {
	Create(ctx context.Context, req dto.CreateResultRequest) (models.Result, error)
	Update(ctx context.Context, id uint, req dto.UpdateResultRequest) (models.Result, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, filter repository.ResultFilter) ([]models.Result, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]models.Result, error)
}

type resultService struct {
	results   repository.ResultRepository
	students  repository.StudentRepository
	subjects  repository.SubjectRepository
	teachers  repository.TeacherRepository
	validator *validator.Validate
	summaries SummaryInvalidator
	logger    zerolog.Logger
}

// NewResultService constructs the result entry service.
func NewResultService(results repository.ResultRepository, students repository.StudentRepository, subjects repository.SubjectRepository, teachers repository.TeacherRepository, validator *validator.Validate, summaries SummaryInvalidator, logger zerolog.Logger) ResultService {
	return &resultService{
		results:   results,
		students:  students,
		subjects:  subjects,
		teachers:  teachers,
		validator: validator,
		summaries: summaries,
		logger:    logger.With().Str("component", "result_service").Logger(),
	}
}

func (s *resultService) Create(ctx context.Context, req dto.CreateResultRequest) (models.Result, error) {
	tracer := otel.Tracer("github.com/campusgrid/results-api/internal/service/result")
	ctx, span := tracer.Start(ctx, "result.create")
	span.SetAttributes(
		attribute.Int64("result.student_id", int64(req.StudentID)),
		attribute.Int64("result.subject_id", int64(req.SubjectID)),
	)
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return models.Result{}, err
	}

	if err := s.checkReferences(ctx, &req.StudentID, &req.SubjectID, &req.TeacherID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reference_check_failed")
		return models.Result{}, err
	}

	result := models.Result{
		StudentID:    req.StudentID,
		SubjectID:    req.SubjectID,
		Grade:        req.Grade,
		Points:       gpa.PointsFor(req.Grade),
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		TeacherID:    req.TeacherID,
	}

	if err := s.results.Create(ctx, &result); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "result_insert_failed")
		return models.Result{}, err
	}

	s.invalidate(ctx, result.StudentID)
	span.SetAttributes(attribute.Int64("result.id", int64(result.ID)))
	s.logger.Info().Uint("result_id", result.ID).Uint("student_id", result.StudentID).Str("grade", result.Grade).Msg("result created")

	return result, nil
}

func (s *resultService) Update(ctx context.Context, id uint, req dto.UpdateResultRequest) (models.Result, error) {
	tracer := otel.Tracer("github.com/campusgrid/results-api/internal/service/result")
	ctx, span := tracer.Start(ctx, "result.update")
	span.SetAttributes(attribute.Int64("result.id", int64(id)))
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return models.Result{}, err
	}

	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "result_not_found")
			return models.Result{}, ErrResultNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "result_lookup_failed")
		return models.Result{}, err
	}

	if err := s.checkReferences(ctx, req.StudentID, req.SubjectID, req.TeacherID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reference_check_failed")
		return models.Result{}, err
	}

	previousStudentID := result.StudentID

	if req.StudentID != nil {
		result.StudentID = *req.StudentID
	}
	if req.SubjectID != nil {
		result.SubjectID = *req.SubjectID
	}
	if req.Grade != nil {
		result.Grade = *req.Grade
		result.Points = gpa.PointsFor(*req.Grade)
	}
	if req.Semester != nil {
		result.Semester = *req.Semester
	}
	if req.AcademicYear != nil {
		result.AcademicYear = *req.AcademicYear
	}
	if req.TeacherID != nil {
		result.TeacherID = *req.TeacherID
	}

	if err := s.results.Update(ctx, &result); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "result_update_failed")
		return models.Result{}, err
	}

	s.invalidate(ctx, previousStudentID)
	if result.StudentID != previousStudentID {
		s.invalidate(ctx, result.StudentID)
	}
	s.logger.Info().Uint("result_id", result.ID).Str("grade", result.Grade).Msg("result updated")

	return result, nil
}

func (s *resultService) Delete(ctx context.Context, id uint) error {
	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResultNotFound
		}
		return err
	}

	removed, err := s.results.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrResultNotFound
	}

	s.invalidate(ctx, result.StudentID)
	s.logger.Info().Uint("result_id", id).Msg("result deleted")

	return nil
}

func (s *resultService) Search(ctx context.Context, filter repository.ResultFilter) ([]models.Result, error) {
	return s.results.Search(ctx, filter)
}

func (s *resultService) ListByTeacher(ctx context.Context, teacherID uint) ([]models.Result, error) {
	return s.results.Search(ctx, repository.ResultFilter{TeacherID: &teacherID})
}

// checkReferences verifies the supplied foreign keys resolve. Nil ids are
// skipped so the same check serves both create and partial update.
func (s *resultService) checkReferences(ctx context.Context, studentID, subjectID, teacherID *uint) error {
	if studentID != nil {
		if _, err := s.students.GetByID(ctx, *studentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: student %d", ErrUnknownReference, *studentID)
			}
			return err
		}
	}

	if subjectID != nil {
		if _, err := s.subjects.GetByID(ctx, *subjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: subject %d", ErrUnknownReference, *subjectID)
			}
			return err
		}
	}

	if teacherID != nil {
		if _, err := s.teachers.GetByID(ctx, *teacherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: teacher %d", ErrUnknownReference, *teacherID)
			}
			return err
		}
	}

	return nil
}

func (s *resultService) invalidate(ctx context.Context, studentID uint) {
	if s.summaries != nil {
		s.summaries.Invalidate(ctx, studentID)
	}
}
