package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type consultationApplicationService interface {
	Submit(ctx context.Context, input services.SubmitConsultationInput) (*services.SubmitOutcome, error)
	List(ctx context.Context, filter services.ConsultationFilter) ([]models.ConsultationRequest, error)
	Get(ctx context.Context, id int64) (*models.ConsultationRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.ConsultationRequest, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.ConsultationStats, error)
}

type ConsultationHandler struct {
	service consultationApplicationService
}

func NewConsultationHandler(service consultationApplicationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

type submitConsultationRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	PreferredDate string `json:"preferred_date" validate:"required"`
	PreferredTime string `json:"preferred_time" validate:"required"`
	FitnessGoals  string `json:"fitness_goals"`
}

// Submit is the public intake endpoint. Once input validation passes
// the user always gets a confirmation; which tier accepted the request
// is a telemetry concern, not a user-facing one.
func (h *ConsultationHandler) Submit(c *fiber.Ctx) error {
	var req submitConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	outcome, err := h.service.Submit(c.Context(), services.SubmitConsultationInput{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		FitnessGoals:  req.FitnessGoals,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid consultation request"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit consultation request"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Consultation request received",
		"id":      outcome.ID,
	})
}

func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	requests, err := h.service.List(c.Context(), services.ConsultationFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list consultation requests"})
	}
	return c.JSON(fiber.Map{"consultations": requests})
}

func (h *ConsultationHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid consultation id"})
	}

	request, err := h.service.Get(c.Context(), id)
	if err != nil {
		return mapConsultationError(c, err)
	}
	return c.JSON(fiber.Map{"consultation": request})
}

type updateConsultationStatusRequest struct {
	Status string `json:"status"`
}

func (h *ConsultationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid consultation id"})
	}

	var req updateConsultationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	request, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return mapConsultationError(c, err)
	}
	return c.JSON(fiber.Map{"consultation": request})
}

func (h *ConsultationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid consultation id"})
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return mapConsultationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ConsultationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute consultation stats"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func mapConsultationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Consultation request not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process consultation request"})
	}
}

func parseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
