package handlers

import (
	"context"
	"errors"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type productApplicationService interface {
	Create(ctx context.Context, input services.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id int64, input services.ProductInput) (*models.Product, error)
	List(ctx context.Context, filter services.ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.ProductStats, error)
	ImportFromURL(rawURL string) (*services.ProductInput, error)
}

type ProductHandler struct {
	service productApplicationService
}

func NewProductHandler(service productApplicationService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	Price               float64  `json:"price"`
	OriginalPrice       *float64 `json:"original_price"`
	Platform            string   `json:"platform"`
	URL                 string   `json:"url"`
	Rating              float64  `json:"rating"`
	RecommendationScore int      `json:"recommendation_score"`
	Status              string   `json:"status"`
}

func (r productRequest) toInput() services.ProductInput {
	return services.ProductInput{
		Name:                r.Name,
		Category:            r.Category,
		Price:               r.Price,
		OriginalPrice:       r.OriginalPrice,
		Platform:            r.Platform,
		URL:                 r.URL,
		Rating:              r.Rating,
		RecommendationScore: r.RecommendationScore,
		Status:              r.Status,
	}
}

// PublicList serves the marketing products page: active products only.
func (h *ProductHandler) PublicList(c *fiber.Ctx) error {
	products, err := h.service.List(c.Context(), services.ProductFilter{Status: "active"})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list products"})
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.service.List(c.Context(), services.ProductFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list products"})
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	product, err := h.service.Get(c.Context(), id)
	if err != nil {
		return mapProductError(c, err)
	}
	return c.JSON(fiber.Map{"product": product})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	product, err := h.service.Create(c.Context(), req.toInput())
	if err != nil {
		return mapProductError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product": product})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	product, err := h.service.Update(c.Context(), id, req.toInput())
	if err != nil {
		return mapProductError(c, err)
	}
	return c.JSON(fiber.Map{"product": product})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return mapProductError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute product stats"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}

type importProductRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Import pre-fills a product form from a listing URL. The lookup is a
// canned catalog, not a live fetch.
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	var req importProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	draft, err := h.service.ImportFromURL(req.URL)
	if err != nil {
		return mapProductError(c, err)
	}
	return c.JSON(fiber.Map{"draft": draft})
}

func mapProductError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process product request"})
	}
}
