package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/repository"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type availableServiceSource interface {
	GetAvailable(ctx context.Context) ([]models.Service, error)
}

type serviceCacheInvalidator interface {
	InvalidateServices(ctx context.Context)
}

// CatalogHandler manages the training services offered on the site.
type CatalogHandler struct {
	repo    *repository.ServiceRepository
	public  availableServiceSource
	invalid serviceCacheInvalidator
}

func NewCatalogHandler(repo *repository.ServiceRepository, public availableServiceSource, invalid serviceCacheInvalidator) *CatalogHandler {
	return &CatalogHandler{repo: repo, public: public, invalid: invalid}
}

type serviceView struct {
	models.Service
	PriceLabel    string `json:"price_label"`
	DurationLabel string `json:"duration_label"`
}

// toView renders the optional fields the way the site shows them:
// missing price reads "Free", missing duration "Flexible".
func toView(service models.Service) serviceView {
	view := serviceView{Service: service, PriceLabel: "Free", DurationLabel: "Flexible"}
	if service.Price != nil {
		view.PriceLabel = utils.FormatCurrency(*service.Price)
	}
	if service.DurationMinutes != nil {
		view.DurationLabel = utils.FormatDuration(*service.DurationMinutes)
	}
	return view
}

func (h *CatalogHandler) PublicList(c *fiber.Ctx) error {
	catalog, err := h.public.GetAvailable(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list services"})
	}

	views := make([]serviceView, 0, len(catalog))
	for _, service := range catalog {
		views = append(views, toView(service))
	}
	return c.JSON(fiber.Map{"services": views})
}

func (h *CatalogHandler) List(c *fiber.Ctx) error {
	catalog, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list services"})
	}

	search := c.Query("search")
	status := c.Query("status")
	category := c.Query("category")
	filtered := make([]models.Service, 0, len(catalog))
	for _, service := range catalog {
		if status != "" && service.Status != status {
			continue
		}
		if category != "" && service.Category != category {
			continue
		}
		if !services.MatchesQuery(search, service.Name, service.Description, service.Category) {
			continue
		}
		filtered = append(filtered, service)
	}
	return c.JSON(fiber.Map{"services": filtered})
}

func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service id"})
	}

	service, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"service": service})
}

type serviceRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	Category        string   `json:"category"`
	Status          string   `json:"status"`
}

func (r serviceRequest) validateRequired() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if !utils.IsValidStatus("service", r.Status) {
		return "status must be available or unavailable"
	}
	if r.Price != nil && *r.Price < 0 {
		return "price must not be negative"
	}
	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		return "duration_minutes must be greater than 0"
	}
	return ""
}

func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := req.validateRequired(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	service := &models.Service{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
		Status:          req.Status,
	}
	if err := h.repo.Create(c.Context(), service); err != nil {
		return mapCatalogError(c, err)
	}

	h.invalidate(c)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"service": service})
}

func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service id"})
	}

	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := req.validateRequired(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	service := &models.Service{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
		Status:          req.Status,
	}
	if err := h.repo.Update(c.Context(), service); err != nil {
		return mapCatalogError(c, err)
	}

	h.invalidate(c)
	return c.JSON(fiber.Map{"service": service})
}

func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service id"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		return mapCatalogError(c, err)
	}

	h.invalidate(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CatalogHandler) Stats(c *fiber.Ctx) error {
	catalog, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute service stats"})
	}

	stats := models.ServiceStats{Total: len(catalog)}
	for _, service := range catalog {
		switch service.Status {
		case "available":
			stats.Available++
		case "unavailable":
			stats.Unavailable++
		}
		if service.Price == nil {
			stats.Free++
		}
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func (h *CatalogHandler) invalidate(c *fiber.Ctx) {
	if h.invalid != nil {
		h.invalid.InvalidateServices(c.Context())
	}
}

func mapCatalogError(c *fiber.Ctx, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process service request"})
}
