package handlers

import (
	"context"
	"errors"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type blogApplicationService interface {
	Create(ctx context.Context, input services.BlogPostInput) (*models.BlogPost, error)
	Update(ctx context.Context, id int64, input services.BlogPostInput) (*models.BlogPost, error)
	List(ctx context.Context, filter services.BlogFilter) ([]models.BlogPost, error)
	Get(ctx context.Context, id int64) (*models.BlogPost, error)
	Delete(ctx context.Context, id int64) error
	PublicList(ctx context.Context) ([]models.BlogPost, error)
	PublicGet(ctx context.Context, slug string) (*models.BlogPostDetail, error)
	Stats(ctx context.Context) (*models.BlogStats, error)
}

type BlogHandler struct {
	service blogApplicationService
}

func NewBlogHandler(service blogApplicationService) *BlogHandler {
	return &BlogHandler{service: service}
}

type blogPostRequest struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Content  string   `json:"content"`
	Excerpt  string   `json:"excerpt"`
	Status   string   `json:"status"`
	Tags     []string `json:"tags"`
	AuthorID *int64   `json:"author_id"`
}

func (r blogPostRequest) toInput() services.BlogPostInput {
	return services.BlogPostInput{
		Title:    r.Title,
		Slug:     r.Slug,
		Content:  r.Content,
		Excerpt:  r.Excerpt,
		Status:   r.Status,
		Tags:     r.Tags,
		AuthorID: r.AuthorID,
	}
}

func (h *BlogHandler) PublicList(c *fiber.Ctx) error {
	posts, err := h.service.PublicList(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list posts"})
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (h *BlogHandler) PublicGet(c *fiber.Ctx) error {
	detail, err := h.service.PublicGet(c.Context(), c.Params("slug"))
	if err != nil {
		return mapBlogError(c, err)
	}
	return c.JSON(fiber.Map{"post": detail})
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	posts, err := h.service.List(c.Context(), services.BlogFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list posts"})
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	post, err := h.service.Get(c.Context(), id)
	if err != nil {
		return mapBlogError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req blogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	post, err := h.service.Create(c.Context(), req.toInput())
	if err != nil {
		return mapBlogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	var req blogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	post, err := h.service.Update(c.Context(), id, req.toInput())
	if err != nil {
		return mapBlogError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return mapBlogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BlogHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute blog stats"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func mapBlogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process post request"})
	}
}
