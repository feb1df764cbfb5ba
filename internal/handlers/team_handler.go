package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/repository"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type TeamHandler struct {
	repo *repository.TeamMemberRepository
}

func NewTeamHandler(repo *repository.TeamMemberRepository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

// PublicList shows only active coaches on the site.
func (h *TeamHandler) PublicList(c *fiber.Ctx) error {
	members, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list team members"})
	}

	active := make([]models.TeamMember, 0, len(members))
	for _, member := range members {
		if member.Status == "active" {
			active = append(active, member)
		}
	}
	return c.JSON(fiber.Map{"team": active})
}

func (h *TeamHandler) List(c *fiber.Ctx) error {
	members, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list team members"})
	}

	search := c.Query("search")
	status := c.Query("status")
	filtered := make([]models.TeamMember, 0, len(members))
	for _, member := range members {
		if status != "" && member.Status != status {
			continue
		}
		if !services.MatchesQuery(search, member.Name, member.Position, member.Email) {
			continue
		}
		filtered = append(filtered, member)
	}
	return c.JSON(fiber.Map{"team": filtered})
}

func (h *TeamHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid team member id"})
	}

	member, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return mapTeamError(c, err)
	}
	return c.JSON(fiber.Map{"member": member})
}

type teamMemberRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	JoinDate string `json:"join_date"`
	Bio      string `json:"bio"`
}

func (r teamMemberRequest) toModel() (*models.TeamMember, string) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, "name is required"
	}
	if r.Email != "" && !utils.IsValidEmail(r.Email) {
		return nil, "email is not valid"
	}
	if r.Phone != "" && !utils.IsValidPhone(r.Phone) {
		return nil, "phone is not valid"
	}
	if !utils.IsValidStatus("team", r.Status) {
		return nil, "status must be active, inactive or on_leave"
	}

	joined := time.Now()
	if r.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", r.JoinDate)
		if err != nil {
			return nil, "join_date must be YYYY-MM-DD"
		}
		joined = parsed
	}
	return &models.TeamMember{
		Name:     strings.TrimSpace(r.Name),
		Position: r.Position,
		Email:    r.Email,
		Phone:    r.Phone,
		Status:   r.Status,
		JoinDate: joined,
		Bio:      r.Bio,
	}, ""
}

func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var req teamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	member, msg := req.toModel()
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	if err := h.repo.Create(c.Context(), member); err != nil {
		return mapTeamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"member": member})
}

func (h *TeamHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid team member id"})
	}

	var req teamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	member, msg := req.toModel()
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	member.ID = id
	if err := h.repo.Update(c.Context(), member); err != nil {
		return mapTeamError(c, err)
	}
	return c.JSON(fiber.Map{"member": member})
}

func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid team member id"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		return mapTeamError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TeamHandler) Stats(c *fiber.Ctx) error {
	members, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute team stats"})
	}

	stats := models.TeamStats{Total: len(members)}
	for _, member := range members {
		switch member.Status {
		case "active":
			stats.Active++
		case "inactive":
			stats.Inactive++
		case "on_leave":
			stats.OnLeave++
		}
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func mapTeamError(c *fiber.Ctx, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process team request"})
}
