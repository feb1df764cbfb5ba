package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type stubConsultationService struct {
	submitResult *services.SubmitOutcome
	submitErr    error
	lastInput    services.SubmitConsultationInput
	listResult   []models.ConsultationRequest
	getResult    *models.ConsultationRequest
	getErr       error
	statusResult *models.ConsultationRequest
	statusErr    error
	statsResult  *models.ConsultationStats
	lastFilter   services.ConsultationFilter
	lastStatus   string
}

func (s *stubConsultationService) Submit(_ context.Context, input services.SubmitConsultationInput) (*services.SubmitOutcome, error) {
	s.lastInput = input
	return s.submitResult, s.submitErr
}

func (s *stubConsultationService) List(_ context.Context, filter services.ConsultationFilter) ([]models.ConsultationRequest, error) {
	s.lastFilter = filter
	return s.listResult, nil
}

func (s *stubConsultationService) Get(_ context.Context, _ int64) (*models.ConsultationRequest, error) {
	return s.getResult, s.getErr
}

func (s *stubConsultationService) UpdateStatus(_ context.Context, _ int64, status string) (*models.ConsultationRequest, error) {
	s.lastStatus = status
	return s.statusResult, s.statusErr
}

func (s *stubConsultationService) Delete(_ context.Context, _ int64) error { return nil }

func (s *stubConsultationService) Stats(_ context.Context) (*models.ConsultationStats, error) {
	return s.statsResult, nil
}

func newConsultationApp(service *stubConsultationService) *fiber.App {
	handler := NewConsultationHandler(service)
	app := fiber.New()
	app.Post("/api/consultations", handler.Submit)
	app.Get("/api/admin/consultations", handler.List)
	app.Put("/api/admin/consultations/:id/status", handler.UpdateStatus)
	return app
}

func TestSubmitConsultationReturnsCreated(t *testing.T) {
	service := &stubConsultationService{
		submitResult: &services.SubmitOutcome{Tier: services.TierAuthoritative, ID: "42"},
	}
	app := newConsultationApp(service)

	body := `{
		"full_name": "Jordan Lee",
		"email": "jordan@example.com",
		"phone": "+1 555 123 4567",
		"preferred_date": "2025-06-10",
		"preferred_time": "09:30"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/consultations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var payload struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.ID != "42" {
		t.Fatalf("id = %q, want 42", payload.ID)
	}
	if payload.Message != "Consultation request received" {
		t.Fatalf("message = %q", payload.Message)
	}
	if service.lastInput.FullName != "Jordan Lee" {
		t.Fatalf("input not forwarded: %+v", service.lastInput)
	}
}

func TestSubmitConsultationValidatesBody(t *testing.T) {
	service := &stubConsultationService{}
	app := newConsultationApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/consultations", strings.NewReader(`{"full_name": "X"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestConsultationListForwardsFilters(t *testing.T) {
	service := &stubConsultationService{listResult: []models.ConsultationRequest{{ID: 1}}}
	app := newConsultationApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/consultations?search=jordan&status=pending", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if service.lastFilter.Search != "jordan" || service.lastFilter.Status != "pending" {
		t.Fatalf("filter not forwarded: %+v", service.lastFilter)
	}
}

func TestUpdateConsultationStatusMapsErrors(t *testing.T) {
	service := &stubConsultationService{statusErr: services.ErrInvalidStatus}
	app := newConsultationApp(service)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/consultations/3/status", strings.NewReader(`{"status": "snoozed"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	service.statusErr = pgx.ErrNoRows
	req = httptest.NewRequest(http.MethodPut, "/api/admin/consultations/3/status", strings.NewReader(`{"status": "contacted"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
