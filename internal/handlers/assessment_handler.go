package handlers

import (
	"context"
	"errors"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	statusws "github.com/Frajuan18/Gym-sub000/internal/websocket"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type assessmentApplicationService interface {
	Submit(ctx context.Context, input services.SubmitAssessmentInput) (*models.Assessment, error)
	GetStatus(ctx context.Context, publicID string) (string, error)
	GetResults(ctx context.Context, publicID string) (*models.AssessmentDetail, error)
	List(ctx context.Context, filter services.AssessmentFilter) ([]models.Assessment, error)
	Get(ctx context.Context, id int64) (*models.AssessmentDetail, error)
	AddResponse(ctx context.Context, assessmentID int64, sectionName, responseText string) (*models.AssessmentResponse, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Assessment, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.AssessmentStats, error)
}

// statusStreamWatcher polls an assessment while a stream is open and
// reports transitions plus the final results-ready moment.
type statusStreamWatcher interface {
	Watch(ctx context.Context, publicID string, onStatus func(status string), onReady func(status string))
}

type AssessmentHandler struct {
	service assessmentApplicationService
	hub     *statusws.Hub
	watcher statusStreamWatcher
}

func NewAssessmentHandler(service assessmentApplicationService, hub *statusws.Hub, watcher statusStreamWatcher) *AssessmentHandler {
	return &AssessmentHandler{service: service, hub: hub, watcher: watcher}
}

type submitAssessmentRequest struct {
	FullName string  `json:"full_name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required"`
	Age      int     `json:"age" validate:"gt=0"`
	HeightCM float64 `json:"height_cm" validate:"gt=0"`
	WeightKG float64 `json:"weight_kg" validate:"gt=0"`
	Goals    string  `json:"goals"`
}

func (h *AssessmentHandler) Submit(c *fiber.Ctx) error {
	var req submitAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	assessment, err := h.service.Submit(c.Context(), services.SubmitAssessmentInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Age:      req.Age,
		HeightCM: req.HeightCM,
		WeightKG: req.WeightKG,
		Goals:    req.Goals,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"assessment": assessment})
}

// GetStatus is the endpoint the status page polls every 30 seconds.
func (h *AssessmentHandler) GetStatus(c *fiber.Ctx) error {
	publicID := c.Params("public_id")
	status, err := h.service.GetStatus(c.Context(), publicID)
	if err != nil {
		return mapAssessmentError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": status,
		"label":  utils.GetStatusLabel("assessment", status),
		"color":  utils.GetStatusColor("assessment", status),
	})
}

func (h *AssessmentHandler) GetResults(c *fiber.Ctx) error {
	detail, err := h.service.GetResults(c.Context(), c.Params("public_id"))
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return c.JSON(fiber.Map{"assessment": detail})
}

// StreamStatus upgrades the connection and subscribes it to status
// broadcasts for one assessment. While the stream is open a watcher
// polls the stored status, so subscribers hear about transitions made
// by other instances too; duplicate observations are not re-broadcast.
func (h *AssessmentHandler) StreamStatus(conn *websocket.Conn) {
	publicID := conn.Params("public_id")
	client := statusws.NewClient(h.hub, conn, publicID)
	h.hub.Register(client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if h.watcher != nil {
		go func() {
			var last string
			h.watcher.Watch(ctx, publicID,
				func(status string) {
					if status != last {
						last = status
						h.hub.BroadcastStatus(publicID, status)
					}
				},
				func(status string) {
					h.hub.BroadcastReady(publicID, status)
				},
			)
		}()
	}

	go client.WritePump()
	client.ReadPump()
}

func (h *AssessmentHandler) List(c *fiber.Ctx) error {
	assessments, err := h.service.List(c.Context(), services.AssessmentFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list assessments"})
	}
	return c.JSON(fiber.Map{"assessments": assessments})
}

func (h *AssessmentHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assessment id"})
	}

	detail, err := h.service.Get(c.Context(), id)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return c.JSON(fiber.Map{"assessment": detail})
}

type addResponseRequest struct {
	SectionName  string `json:"section_name" validate:"required"`
	ResponseText string `json:"response_text" validate:"required"`
}

func (h *AssessmentHandler) AddResponse(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assessment id"})
	}

	var req addResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validationMessage(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	response, err := h.service.AddResponse(c.Context(), id, req.SectionName, req.ResponseText)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"response": response})
}

type updateAssessmentStatusRequest struct {
	Status string `json:"status"`
}

func (h *AssessmentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assessment id"})
	}

	var req updateAssessmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	assessment, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return c.JSON(fiber.Map{"assessment": assessment})
}

func (h *AssessmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assessment id"})
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return mapAssessmentError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AssessmentHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute assessment stats"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func mapAssessmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotReady):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Assessment has not been reviewed yet"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assessment not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process assessment request"})
	}
}
