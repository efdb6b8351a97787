package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusgrid/results-api/internal/dto"
	"github.com/campusgrid/results-api/internal/gpa"
	"github.com/campusgrid/results-api/internal/models"
	"github.com/campusgrid/results-api/internal/repository"
)

// SummaryService produces per-student GPA dashboards. Computed summaries are
// cached; result mutations invalidate the affected student's entry so reads
// never observe a stale grade. The TTL is only a backstop for cache entries
// orphaned by a crash between write and invalidation.
type SummaryService interface {
	StudentSummary(ctx context.Context, studentID uint) (dto.StudentSummary, error)
	Invalidate(ctx context.Context, studentID uint)
}

type summaryService struct {
	students repository.StudentRepository
	results  repository.ResultRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewSummaryService builds the GPA summary aggregator. A nil cache disables
// caching without changing observable behavior.
func NewSummaryService(students repository.StudentRepository, results repository.ResultRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) SummaryService {
	return &summaryService{
		students: students,
		results:  results,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "summary_service").Logger(),
	}
}

func summaryCacheKey(studentID uint) string {
	return fmt.Sprintf("summary:student:%d", studentID)
}

func (s *summaryService) StudentSummary(ctx context.Context, studentID uint) (dto.StudentSummary, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return dto.StudentSummary{}, studentLookupError(err)
	}

	cacheKey := summaryCacheKey(studentID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var summary dto.StudentSummary
			if unmarshalErr := json.Unmarshal([]byte(cached), &summary); unmarshalErr == nil {
				s.logger.Debug().Uint("student_id", studentID).Msg("summary cache hit")
				return summary, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read summary cache")
		}
	}

	results, err := s.results.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.StudentSummary{}, err
	}

	entries := summaryEntries(results)
	summary := dto.StudentSummary{
		StudentID:   studentID,
		CGPA:        gpa.CalculateCumulative(entries),
		Semesters:   gpa.SemesterBreakdown(entries),
		ResultCount: len(results),
	}

	if s.cache != nil {
		payload, err := json.Marshal(summary)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store summary cache")
			}
		}
	}

	return summary, nil
}

func (s *summaryService) Invalidate(ctx context.Context, studentID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, summaryCacheKey(studentID)).Err(); err != nil {
		s.logger.Warn().Err(err).Uint("student_id", studentID).Msg("failed to invalidate summary cache")
	}
}

func summaryEntries(results []models.Result) []gpa.Entry {
	entries := make([]gpa.Entry, 0, len(results))
	for _, result := range results {
		if result.Subject == nil {
			continue
		}
		entries = append(entries, gpa.Entry{
			Points:   result.Points,
			Credits:  result.Subject.Credits,
			Semester: result.Semester,
		})
	}
	return entries
}
