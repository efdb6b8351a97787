package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusgrid/results-api/internal/service"
	"github.com/campusgrid/results-api/internal/utils"
)

// StudentHandler exposes student read endpoints, including the per-student
// result listings and the GPA summary dashboard.
type StudentHandler struct {
	students  service.StudentService
	summaries service.SummaryService
	logger    zerolog.Logger
}

// NewStudentHandler creates a new handler instance.
func NewStudentHandler(students service.StudentService, summaries service.SummaryService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		students:  students,
		summaries: summaries,
		logger:    logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches the student endpoints.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Get("/:id", h.get)
	router.Get("/:id/results", h.results)
	router.Get("/:id/with-results", h.withResults)
	router.Get("/:id/summary", h.summary)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	students, err := h.students.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list students")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list students")
	}

	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *StudentHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid student id")
	}

	student, err := h.students.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", id).Msg("failed to load student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load student")
	}

	return utils.SendSuccess(c, "student retrieved", student)
}

func (h *StudentHandler) results(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid student id")
	}

	results, err := h.students.Results(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", id).Msg("failed to load student results")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load student results")
	}

	return utils.SendSuccess(c, "results retrieved", results)
}

func (h *StudentHandler) withResults(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid student id")
	}

	student, err := h.students.WithResults(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", id).Msg("failed to load student with results")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load student with results")
	}

	return utils.SendSuccess(c, "student retrieved", student)
}

func (h *StudentHandler) summary(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid student id")
	}

	summary, err := h.summaries.StudentSummary(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("student_id", id).Msg("failed to load summary")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load summary")
	}

	return utils.SendSuccess(c, "summary retrieved", summary)
}
