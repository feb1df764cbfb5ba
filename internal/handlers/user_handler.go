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
	"github.com/jackc/pgx/v5/pgconn"
)

type UserHandler struct {
	repo *repository.UserRepository
}

func NewUserHandler(repo *repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list users"})
	}

	search := c.Query("search")
	status := c.Query("status")
	filtered := make([]models.User, 0, len(users))
	for _, user := range users {
		if status != "" && user.Status != status {
			continue
		}
		if !services.MatchesQuery(search, user.Name, user.Email, user.Phone) {
			continue
		}
		filtered = append(filtered, user)
	}
	return c.JSON(fiber.Map{"users": filtered})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	user, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

type createUserRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Plan         string `json:"plan"`
	FitnessGoals string `json:"fitness_goals"`
	Status       string `json:"status"`
	Role         string `json:"role"`
	Password     string `json:"password" validate:"required,min=8"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	status := req.Status
	if status == "" {
		status = "active"
	}
	if status != "active" && status != "inactive" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be active or inactive"})
	}
	role := req.Role
	if role == "" {
		role = "staff"
	}
	if role != "admin" && role != "staff" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "role must be admin or staff"})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Plan:         req.Plan,
		FitnessGoals: req.FitnessGoals,
		Status:       status,
		Role:         role,
		PasswordHash: hash,
	}
	if err := h.repo.Create(c.Context(), user); err != nil {
		return mapUserError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

type updateUserRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Plan         string `json:"plan"`
	FitnessGoals string `json:"fitness_goals"`
	Status       string `json:"status"`
	Role         string `json:"role"`
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	if req.Status != "active" && req.Status != "inactive" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be active or inactive"})
	}
	if req.Role != "admin" && req.Role != "staff" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "role must be admin or staff"})
	}

	user := &models.User{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Plan:         req.Plan,
		FitnessGoals: req.FitnessGoals,
		Status:       req.Status,
		Role:         req.Role,
	}
	if err := h.repo.Update(c.Context(), user); err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to change password"})
	}
	if err := h.repo.UpdatePassword(c.Context(), id, hash); err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	// Deleting yourself would orphan the session mid-flight.
	if actorID, actorErr := parseActorID(c); actorErr == nil && actorID == id {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot delete your own account"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) Stats(c *fiber.Ctx) error {
	users, err := h.repo.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute user stats"})
	}

	now := time.Now()
	stats := models.UserStats{Total: len(users)}
	for _, user := range users {
		switch user.Status {
		case "active":
			stats.Active++
		case "inactive":
			stats.Inactive++
		}
		if services.WithinLastWeek(user.CreatedAt, now) {
			stats.ThisWeek++
		}
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func mapUserError(c *fiber.Ctx, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == "23505":
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already in use"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process user request"})
	}
}
