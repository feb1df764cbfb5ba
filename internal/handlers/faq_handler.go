package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/repository"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// activeFAQSource is either the repository or its redis read-through
// wrapper, depending on deployment config.
type activeFAQSource interface {
	GetActive(ctx context.Context, category string) ([]models.FAQ, error)
}

type faqCacheInvalidator interface {
	InvalidateFAQs(ctx context.Context)
}

type FAQHandler struct {
	repo    *repository.FAQRepository
	public  activeFAQSource
	invalid faqCacheInvalidator
}

// NewFAQHandler takes the repository, the public read source and an
// optional cache invalidator (nil when redis is off).
func NewFAQHandler(repo *repository.FAQRepository, public activeFAQSource, invalid faqCacheInvalidator) *FAQHandler {
	return &FAQHandler{repo: repo, public: public, invalid: invalid}
}

// PublicList returns active FAQs, optionally for one category.
func (h *FAQHandler) PublicList(c *fiber.Ctx) error {
	faqs, err := h.public.GetActive(c.Context(), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list FAQs"})
	}
	return c.JSON(fiber.Map{"faqs": faqs})
}

func (h *FAQHandler) List(c *fiber.Ctx) error {
	faqs, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list FAQs"})
	}

	search := c.Query("search")
	category := c.Query("category")
	filtered := make([]models.FAQ, 0, len(faqs))
	for _, faq := range faqs {
		if category != "" && faq.Category != category {
			continue
		}
		if !services.MatchesQuery(search, faq.Question, faq.Answer) {
			continue
		}
		filtered = append(filtered, faq)
	}
	return c.JSON(fiber.Map{"faqs": filtered})
}

func (h *FAQHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid FAQ id"})
	}

	faq, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return mapFAQError(c, err)
	}
	return c.JSON(fiber.Map{"faq": faq})
}

type faqRequest struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

func (r faqRequest) validateRequired() string {
	if strings.TrimSpace(r.Question) == "" {
		return "question is required"
	}
	if strings.TrimSpace(r.Answer) == "" {
		return "answer is required"
	}
	return ""
}

func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var req faqRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := req.validateRequired(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	faq := &models.FAQ{
		Question:     strings.TrimSpace(req.Question),
		Answer:       strings.TrimSpace(req.Answer),
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := h.repo.Create(c.Context(), faq); err != nil {
		return mapFAQError(c, err)
	}

	h.invalidate(c)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"faq": faq})
}

func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid FAQ id"})
	}

	var req faqRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := req.validateRequired(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	faq := &models.FAQ{
		ID:           id,
		Question:     strings.TrimSpace(req.Question),
		Answer:       strings.TrimSpace(req.Answer),
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
	if err := h.repo.Update(c.Context(), faq); err != nil {
		return mapFAQError(c, err)
	}

	h.invalidate(c)
	return c.JSON(fiber.Map{"faq": faq})
}

func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid FAQ id"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		return mapFAQError(c, err)
	}

	h.invalidate(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FAQHandler) Stats(c *fiber.Ctx) error {
	faqs, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute FAQ stats"})
	}

	stats := models.FAQStats{Total: len(faqs)}
	categories := make(map[string]struct{})
	for _, faq := range faqs {
		if faq.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
		if faq.Category != "" {
			categories[faq.Category] = struct{}{}
		}
	}
	stats.Categories = len(categories)

	return c.JSON(fiber.Map{"stats": stats})
}

func (h *FAQHandler) invalidate(c *fiber.Ctx) {
	if h.invalid != nil {
		h.invalid.InvalidateFAQs(c.Context())
	}
}

func mapFAQError(c *fiber.Ctx, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "FAQ not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process FAQ request"})
}
