package handlers

import (
	"errors"

	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type QuestionHandler struct {
	service *services.QuestionService
	invalid faqCacheInvalidator
}

func NewQuestionHandler(service *services.QuestionService, invalid faqCacheInvalidator) *QuestionHandler {
	return &QuestionHandler{service: service, invalid: invalid}
}

type submitQuestionRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Question string `json:"question" validate:"required,min=10"`
	Category string `json:"category"`
}

// Submit takes a question from the public "Ask a question" form.
func (h *QuestionHandler) Submit(c *fiber.Ctx) error {
	var req submitQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	question, err := h.service.Submit(c.Context(), services.SubmitQuestionInput{
		Name:     req.Name,
		Email:    req.Email,
		Question: req.Question,
		Category: req.Category,
	})
	if err != nil {
		return mapQuestionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Question received",
		"question": question,
	})
}

func (h *QuestionHandler) List(c *fiber.Ctx) error {
	questions, err := h.service.List(c.Context(), services.QuestionFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
	})
	if err != nil {
		return mapQuestionError(c, err)
	}
	return c.JSON(fiber.Map{"questions": questions})
}

func (h *QuestionHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	question, err := h.service.Get(c.Context(), id)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return c.JSON(fiber.Map{"question": question})
}

type answerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

func (h *QuestionHandler) Answer(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	question, err := h.service.Answer(c.Context(), id, req.Answer)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return c.JSON(fiber.Map{"question": question})
}

type questionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *QuestionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	var req questionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	question, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return c.JSON(fiber.Map{"question": question})
}

// Promote publishes an answered question as a FAQ entry.
func (h *QuestionHandler) Promote(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	faq, err := h.service.Promote(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Question must be answered before promoting"})
		}
		return mapQuestionError(c, err)
	}

	if h.invalid != nil {
		h.invalid.InvalidateFAQs(c.Context())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"faq": faq})
}

func (h *QuestionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return mapQuestionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *QuestionHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return mapQuestionError(c, err)
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func mapQuestionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question data"})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown question status"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process question request"})
	}
}
