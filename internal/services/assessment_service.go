package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/logger"
	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type assessmentStore interface {
	Create(ctx context.Context, assessment *models.Assessment) error
	GetAll(ctx context.Context) ([]models.Assessment, error)
	GetByID(ctx context.Context, id int64) (*models.Assessment, error)
	GetByPublicID(ctx context.Context, publicID string) (*models.Assessment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Assessment, error)
	UpdateStatusIfCurrent(ctx context.Context, id int64, currentStatus, nextStatus string) (*models.Assessment, error)
	Delete(ctx context.Context, id int64) error
	CreateResponse(ctx context.Context, response *models.AssessmentResponse) error
	ListResponses(ctx context.Context, assessmentID int64) ([]models.AssessmentResponse, error)
}

// statusBroadcaster pushes observed status transitions to websocket
// subscribers. May be nil in tests.
type statusBroadcaster interface {
	BroadcastStatus(publicID, status string)
}

type AssessmentService struct {
	store       assessmentStore
	broadcaster statusBroadcaster
}

func NewAssessmentService(store assessmentStore, broadcaster statusBroadcaster) *AssessmentService {
	return &AssessmentService{store: store, broadcaster: broadcaster}
}

type SubmitAssessmentInput struct {
	FullName string
	Email    string
	Phone    string
	Age      int
	HeightCM float64
	WeightKG float64
	Goals    string
}

func (s *AssessmentService) Submit(ctx context.Context, input SubmitAssessmentInput) (*models.Assessment, error) {
	if strings.TrimSpace(input.FullName) == "" || input.Age <= 0 ||
		input.HeightCM <= 0 || input.WeightKG <= 0 {
		return nil, ErrInvalidInput
	}
	if !utils.IsValidEmail(input.Email) || !utils.IsValidPhone(input.Phone) {
		return nil, ErrInvalidInput
	}

	assessment := &models.Assessment{
		PublicID: uuid.NewString(),
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:    strings.TrimSpace(input.Phone),
		Age:      input.Age,
		HeightCM: input.HeightCM,
		WeightKG: input.WeightKG,
		Goals:    input.Goals,
	}
	if err := s.store.Create(ctx, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *AssessmentService) GetStatus(ctx context.Context, publicID string) (string, error) {
	assessment, err := s.store.GetByPublicID(ctx, publicID)
	if err != nil {
		return "", err
	}
	return assessment.Status, nil
}

// GetResults returns the assessment and its responses. Results stay
// hidden while the assessment is still pending review.
func (s *AssessmentService) GetResults(ctx context.Context, publicID string) (*models.AssessmentDetail, error) {
	assessment, err := s.store.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if assessment.Status == "pending" {
		return nil, ErrNotReady
	}

	responses, err := s.store.ListResponses(ctx, assessment.ID)
	if err != nil {
		return nil, err
	}
	return &models.AssessmentDetail{Assessment: *assessment, Responses: responses}, nil
}

type AssessmentFilter struct {
	Search string
	Status string
}

func (s *AssessmentService) List(ctx context.Context, filter AssessmentFilter) ([]models.Assessment, error) {
	assessments, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Assessment, 0, len(assessments))
	for _, assessment := range assessments {
		if filter.Status != "" && assessment.Status != filter.Status {
			continue
		}
		if !MatchesQuery(filter.Search, assessment.FullName, assessment.Email, assessment.Phone, assessment.Goals) {
			continue
		}
		filtered = append(filtered, assessment)
	}
	return filtered, nil
}

func (s *AssessmentService) Get(ctx context.Context, id int64) (*models.AssessmentDetail, error) {
	assessment, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	responses, err := s.store.ListResponses(ctx, assessment.ID)
	if err != nil {
		return nil, err
	}
	return &models.AssessmentDetail{Assessment: *assessment, Responses: responses}, nil
}

// AddResponse records an admin response section. The first response
// flips a pending assessment to reviewed; later responses leave the
// status alone.
func (s *AssessmentService) AddResponse(ctx context.Context, assessmentID int64, sectionName, responseText string) (*models.AssessmentResponse, error) {
	if strings.TrimSpace(sectionName) == "" || strings.TrimSpace(responseText) == "" {
		return nil, ErrInvalidInput
	}

	response := &models.AssessmentResponse{
		AssessmentID: assessmentID,
		SectionName:  strings.TrimSpace(sectionName),
		ResponseText: responseText,
	}
	if err := s.store.CreateResponse(ctx, response); err != nil {
		return nil, err
	}

	flipped, err := s.store.UpdateStatusIfCurrent(ctx, assessmentID, "pending", "reviewed")
	switch {
	case err == nil:
		s.broadcast(flipped.PublicID, flipped.Status)
	case errors.Is(err, pgx.ErrNoRows):
		// Already past pending; nothing to flip.
	default:
		logger.Log.Error("failed to flip assessment to reviewed",
			zap.Int64("assessment_id", assessmentID),
			zap.Error(err),
		)
	}

	return response, nil
}

func (s *AssessmentService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Assessment, error) {
	if !utils.IsValidStatus("assessment", status) {
		return nil, ErrInvalidStatus
	}
	assessment, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.broadcast(assessment.PublicID, assessment.Status)
	return assessment, nil
}

func (s *AssessmentService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *AssessmentService) Stats(ctx context.Context) (*models.AssessmentStats, error) {
	assessments, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &models.AssessmentStats{Total: len(assessments)}
	for _, assessment := range assessments {
		switch assessment.Status {
		case "pending":
			stats.Pending++
		case "reviewed":
			stats.Reviewed++
		case "contacted":
			stats.Contacted++
		case "scheduled":
			stats.Scheduled++
		case "completed":
			stats.Completed++
		}
		if WithinLastWeek(assessment.CreatedAt, now) {
			stats.ThisWeek++
		}
	}
	return stats, nil
}

func (s *AssessmentService) broadcast(publicID, status string) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastStatus(publicID, status)
	}
}
