package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type stubAssessmentAppService struct {
	status     string
	statusErr  error
	results    *models.AssessmentDetail
	resultsErr error
	lastPublic string
}

func (s *stubAssessmentAppService) Submit(_ context.Context, _ services.SubmitAssessmentInput) (*models.Assessment, error) {
	return nil, nil
}

func (s *stubAssessmentAppService) GetStatus(_ context.Context, publicID string) (string, error) {
	s.lastPublic = publicID
	return s.status, s.statusErr
}

func (s *stubAssessmentAppService) GetResults(_ context.Context, publicID string) (*models.AssessmentDetail, error) {
	s.lastPublic = publicID
	return s.results, s.resultsErr
}

func (s *stubAssessmentAppService) List(_ context.Context, _ services.AssessmentFilter) ([]models.Assessment, error) {
	return nil, nil
}

func (s *stubAssessmentAppService) Get(_ context.Context, _ int64) (*models.AssessmentDetail, error) {
	return nil, nil
}

func (s *stubAssessmentAppService) AddResponse(_ context.Context, _ int64, _, _ string) (*models.AssessmentResponse, error) {
	return nil, nil
}

func (s *stubAssessmentAppService) UpdateStatus(_ context.Context, _ int64, _ string) (*models.Assessment, error) {
	return nil, nil
}

func (s *stubAssessmentAppService) Delete(_ context.Context, _ int64) error { return nil }

func (s *stubAssessmentAppService) Stats(_ context.Context) (*models.AssessmentStats, error) {
	return nil, nil
}

func newAssessmentApp(service *stubAssessmentAppService) *fiber.App {
	handler := NewAssessmentHandler(service, nil, nil)
	app := fiber.New()
	app.Get("/api/assessments/:public_id/status", handler.GetStatus)
	app.Get("/api/assessments/:public_id/results", handler.GetResults)
	return app
}

func TestGetStatusIncludesLabelAndColor(t *testing.T) {
	service := &stubAssessmentAppService{status: "reviewed"}
	app := newAssessmentApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/assessments/abc-123/status", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Status string `json:"status"`
		Label  string `json:"label"`
		Color  string `json:"color"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Status != "reviewed" || payload.Label != "Reviewed" || payload.Color == "" {
		t.Fatalf("payload = %+v", payload)
	}
	if service.lastPublic != "abc-123" {
		t.Fatalf("public id = %q", service.lastPublic)
	}
}

func TestGetStatusUnknownAssessment(t *testing.T) {
	service := &stubAssessmentAppService{statusErr: pgx.ErrNoRows}
	app := newAssessmentApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/assessments/ghost/status", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetResultsBeforeReviewConflicts(t *testing.T) {
	service := &stubAssessmentAppService{resultsErr: services.ErrNotReady}
	app := newAssessmentApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/assessments/abc-123/results", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}
