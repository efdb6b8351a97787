package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusgrid/results-api/internal/dto"
	"github.com/campusgrid/results-api/internal/repository"
	"github.com/campusgrid/results-api/internal/service"
	"github.com/campusgrid/results-api/internal/utils"
)

// ResultHandler exposes result search and the teacher entry workflow.
type ResultHandler struct {
	service service.ResultService
	logger  zerolog.Logger
}

// NewResultHandler creates a new handler instance.
func NewResultHandler(service service.ResultService, logger zerolog.Logger) *ResultHandler {
	return &ResultHandler{
		service: service,
		logger:  logger.With().Str("component", "result_handler").Logger(),
	}
}

// Register attaches the result endpoints. Mutations pass through the supplied
// write limiter when one is provided.
func (h *ResultHandler) Register(router fiber.Router, writeLimiter fiber.Handler) {
	if writeLimiter == nil {
		writeLimiter = func(c *fiber.Ctx) error { return c.Next() }
	}

	router.Get("/", h.search)
	router.Get("/teacher/:teacherId", h.byTeacher)
	router.Post("/", writeLimiter, h.create)
	router.Put("/:id", writeLimiter, h.update)
	router.Delete("/:id", writeLimiter, h.remove)
}

func (h *ResultHandler) search(c *fiber.Ctx) error {
	var filter repository.ResultFilter
	var err error

	if filter.StudentID, err = parseUintQuery(c, "studentId"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid studentId filter")
	}
	if filter.SubjectID, err = parseUintQuery(c, "subjectId"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid subjectId filter")
	}
	if filter.Semester, err = parseIntQuery(c, "semester"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid semester filter")
	}
	if filter.TeacherID, err = parseUintQuery(c, "teacherId"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid teacherId filter")
	}

	results, err := h.service.Search(c.Context(), filter)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("result search failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "result search failed")
	}

	return utils.SendSuccess(c, "results retrieved", results)
}

func (h *ResultHandler) byTeacher(c *fiber.Ctx) error {
	teacherID, err := parseIDParam(c, "teacherId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid teacher id")
	}

	results, err := h.service.ListByTeacher(c.Context(), teacherID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("teacher_id", teacherID).Msg("failed to list teacher results")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list teacher results")
	}

	return utils.SendSuccess(c, "results retrieved", results)
}

func (h *ResultHandler) create(c *fiber.Ctx) error {
	var req dto.CreateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid result data")
	}

	result, err := h.service.Create(c.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err), errors.Is(err, service.ErrUnknownReference):
			return utils.SendError(c, fiber.StatusBadRequest, "invalid result data")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create result")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create result")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "result created", result)
}

func (h *ResultHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid result id")
	}

	var req dto.UpdateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid update data")
	}

	result, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResultNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "result not found")
		case isValidationError(err), errors.Is(err, service.ErrUnknownReference):
			return utils.SendError(c, fiber.StatusBadRequest, "invalid update data")
		default:
			requestLogger(h.logger, c).Error().Err(err).Uint("result_id", id).Msg("failed to update result")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update result")
		}
	}

	return utils.SendSuccess(c, "result updated", result)
}

func (h *ResultHandler) remove(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid result id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "result not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("result_id", id).Msg("failed to delete result")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete result")
	}

	return utils.SendSuccess(c, "result deleted successfully", nil)
}
