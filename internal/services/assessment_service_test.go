package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type stubAssessmentStore struct {
	byID       map[int64]*models.Assessment
	byPublicID map[string]*models.Assessment
	responses  map[int64][]models.AssessmentResponse
	created    []*models.Assessment
}

func newStubAssessmentStore() *stubAssessmentStore {
	return &stubAssessmentStore{
		byID:       map[int64]*models.Assessment{},
		byPublicID: map[string]*models.Assessment{},
		responses:  map[int64][]models.AssessmentResponse{},
	}
}

func (s *stubAssessmentStore) add(assessment *models.Assessment) {
	s.byID[assessment.ID] = assessment
	s.byPublicID[assessment.PublicID] = assessment
}

func (s *stubAssessmentStore) Create(_ context.Context, assessment *models.Assessment) error {
	assessment.ID = int64(len(s.created) + 1)
	assessment.Status = "pending"
	s.created = append(s.created, assessment)
	s.add(assessment)
	return nil
}

func (s *stubAssessmentStore) GetAll(_ context.Context) ([]models.Assessment, error) {
	all := make([]models.Assessment, 0, len(s.byID))
	for _, a := range s.byID {
		all = append(all, *a)
	}
	return all, nil
}

func (s *stubAssessmentStore) GetByID(_ context.Context, id int64) (*models.Assessment, error) {
	assessment, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *assessment
	return &copied, nil
}

func (s *stubAssessmentStore) GetByPublicID(_ context.Context, publicID string) (*models.Assessment, error) {
	assessment, ok := s.byPublicID[publicID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *assessment
	return &copied, nil
}

func (s *stubAssessmentStore) UpdateStatus(_ context.Context, id int64, status string) (*models.Assessment, error) {
	assessment, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	assessment.Status = status
	copied := *assessment
	return &copied, nil
}

func (s *stubAssessmentStore) UpdateStatusIfCurrent(_ context.Context, id int64, currentStatus, nextStatus string) (*models.Assessment, error) {
	assessment, ok := s.byID[id]
	if !ok || assessment.Status != currentStatus {
		return nil, pgx.ErrNoRows
	}
	assessment.Status = nextStatus
	copied := *assessment
	return &copied, nil
}

func (s *stubAssessmentStore) Delete(_ context.Context, id int64) error {
	assessment, ok := s.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(s.byID, id)
	delete(s.byPublicID, assessment.PublicID)
	return nil
}

func (s *stubAssessmentStore) CreateResponse(_ context.Context, response *models.AssessmentResponse) error {
	response.ID = int64(len(s.responses[response.AssessmentID]) + 1)
	s.responses[response.AssessmentID] = append(s.responses[response.AssessmentID], *response)
	return nil
}

func (s *stubAssessmentStore) ListResponses(_ context.Context, assessmentID int64) ([]models.AssessmentResponse, error) {
	return s.responses[assessmentID], nil
}

type stubBroadcaster struct {
	events []string
}

func (s *stubBroadcaster) BroadcastStatus(publicID, status string) {
	s.events = append(s.events, publicID+":"+status)
}

func TestSubmitAssignsPublicID(t *testing.T) {
	store := newStubAssessmentStore()
	service := NewAssessmentService(store, nil)

	assessment, err := service.Submit(context.Background(), SubmitAssessmentInput{
		FullName: "Sam Rivera",
		Email:    "sam@example.com",
		Phone:    "+1 555 867 5309",
		Age:      31,
		HeightCM: 178,
		WeightKG: 82,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if assessment.PublicID == "" {
		t.Fatal("expected a public id")
	}
	if assessment.Status != "pending" {
		t.Fatalf("status = %q, want pending", assessment.Status)
	}
}

func TestGetResultsHiddenWhilePending(t *testing.T) {
	store := newStubAssessmentStore()
	store.add(&models.Assessment{ID: 1, PublicID: "pub-1", Status: "pending"})
	service := NewAssessmentService(store, nil)

	if _, err := service.GetResults(context.Background(), "pub-1"); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
}

func TestGetResultsVisibleOnceReviewed(t *testing.T) {
	store := newStubAssessmentStore()
	store.add(&models.Assessment{ID: 1, PublicID: "pub-1", Status: "reviewed"})
	store.responses[1] = []models.AssessmentResponse{
		{ID: 1, AssessmentID: 1, SectionName: "Training", ResponseText: "Start with 3 sessions."},
	}
	service := NewAssessmentService(store, nil)

	detail, err := service.GetResults(context.Background(), "pub-1")
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if len(detail.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(detail.Responses))
	}
}

func TestFirstResponseFlipsPendingToReviewed(t *testing.T) {
	store := newStubAssessmentStore()
	store.add(&models.Assessment{ID: 5, PublicID: "pub-5", Status: "pending"})
	broadcaster := &stubBroadcaster{}
	service := NewAssessmentService(store, broadcaster)

	if _, err := service.AddResponse(context.Background(), 5, "Nutrition", "Eat more protein."); err != nil {
		t.Fatalf("AddResponse: %v", err)
	}
	if store.byID[5].Status != "reviewed" {
		t.Fatalf("status = %q, want reviewed", store.byID[5].Status)
	}
	if len(broadcaster.events) != 1 || broadcaster.events[0] != "pub-5:reviewed" {
		t.Fatalf("expected one reviewed broadcast, got %v", broadcaster.events)
	}

	if _, err := service.AddResponse(context.Background(), 5, "Training", "Lift twice a week."); err != nil {
		t.Fatalf("second AddResponse: %v", err)
	}
	if store.byID[5].Status != "reviewed" {
		t.Fatalf("later responses must not change status, got %q", store.byID[5].Status)
	}
	if len(broadcaster.events) != 1 {
		t.Fatalf("no extra broadcast expected, got %v", broadcaster.events)
	}
}

func TestUpdateStatusBroadcasts(t *testing.T) {
	store := newStubAssessmentStore()
	store.add(&models.Assessment{ID: 2, PublicID: "pub-2", Status: "reviewed"})
	broadcaster := &stubBroadcaster{}
	service := NewAssessmentService(store, broadcaster)

	if _, err := service.UpdateStatus(context.Background(), 2, "contacted"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if len(broadcaster.events) != 1 || broadcaster.events[0] != "pub-2:contacted" {
		t.Fatalf("expected contacted broadcast, got %v", broadcaster.events)
	}

	if _, err := service.UpdateStatus(context.Background(), 2, "lost"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestAssessmentStatsCountsEveryStatus(t *testing.T) {
	store := newStubAssessmentStore()
	store.add(&models.Assessment{ID: 1, PublicID: "pub-1", Status: "pending"})
	store.add(&models.Assessment{ID: 2, PublicID: "pub-2", Status: "reviewed"})
	store.add(&models.Assessment{ID: 3, PublicID: "pub-3", Status: "contacted"})
	store.add(&models.Assessment{ID: 4, PublicID: "pub-4", Status: "scheduled"})
	store.add(&models.Assessment{ID: 5, PublicID: "pub-5", Status: "completed"})
	store.add(&models.Assessment{ID: 6, PublicID: "pub-6", Status: "completed"})
	service := NewAssessmentService(store, nil)

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 6 {
		t.Fatalf("total = %d, want 6", stats.Total)
	}
	if stats.Pending != 1 || stats.Reviewed != 1 || stats.Contacted != 1 ||
		stats.Scheduled != 1 || stats.Completed != 2 {
		t.Fatalf("unexpected status counts: %+v", stats)
	}
	if counted := stats.Pending + stats.Reviewed + stats.Contacted + stats.Scheduled + stats.Completed; counted != stats.Total {
		t.Fatalf("status counters cover %d of %d assessments", counted, stats.Total)
	}
}
