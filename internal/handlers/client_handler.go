package handlers

import (
	"errors"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type ClientHandler struct {
	service *services.ClientService
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type clientRequest struct {
	Name         string  `json:"name" validate:"required"`
	PlanType     string  `json:"plan_type"`
	BillingCycle string  `json:"billing_cycle" validate:"required"`
	Cost         float64 `json:"cost" validate:"gte=0"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Status       string  `json:"status" validate:"required"`
	AutoRenew    bool    `json:"auto_renew"`
}

func (r clientRequest) toInput() (services.ClientInput, error) {
	input := services.ClientInput{
		Name:         r.Name,
		PlanType:     r.PlanType,
		BillingCycle: r.BillingCycle,
		Cost:         r.Cost,
		Status:       r.Status,
		AutoRenew:    r.AutoRenew,
	}
	if r.StartDate != "" {
		start, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return input, err
		}
		input.StartDate = start
	}
	if r.EndDate != "" {
		end, err := time.Parse("2006-01-02", r.EndDate)
		if err != nil {
			return input, err
		}
		input.EndDate = end
	}
	return input, nil
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.service.List(c.Context(), services.ClientFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		return mapClientError(c, err)
	}
	return c.JSON(fiber.Map{"clients": clients})
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client id"})
	}

	client, err := h.service.Get(c.Context(), id)
	if err != nil {
		return mapClientError(c, err)
	}
	return c.JSON(fiber.Map{"client": client})
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dates must be YYYY-MM-DD"})
	}

	client, err := h.service.Create(c.Context(), input)
	if err != nil {
		return mapClientError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"client": client})
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client id"})
	}

	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dates must be YYYY-MM-DD"})
	}

	client, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return mapClientError(c, err)
	}
	return c.JSON(fiber.Map{"client": client})
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client id"})
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return mapClientError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ClientHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return mapClientError(c, err)
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func mapClientError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client data"})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown subscription status"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process client request"})
	}
}
