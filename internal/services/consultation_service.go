package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/logger"
	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/spool"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// DeliveryTier tags which write path accepted a consultation request.
// The end user sees a uniform confirmation; telemetry must not.
type DeliveryTier string

const (
	TierAuthoritative DeliveryTier = "authoritative"
	TierDegraded      DeliveryTier = "degraded"
	TierLocal         DeliveryTier = "local"
)

type SubmitConsultationInput struct {
	FullName      string
	Email         string
	Phone         string
	PreferredDate string
	PreferredTime string
	FitnessGoals  string
}

type SubmitOutcome struct {
	Tier    DeliveryTier                `json:"tier"`
	ID      string                      `json:"id,omitempty"`
	Request *models.ConsultationRequest `json:"request,omitempty"`
}

type consultationStore interface {
	Create(ctx context.Context, request *models.ConsultationRequest) error
	GetAll(ctx context.Context) ([]models.ConsultationRequest, error)
	GetByID(ctx context.Context, id int64) (*models.ConsultationRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.ConsultationRequest, error)
	Delete(ctx context.Context, id int64) error
}

// directExecutor is the low-level escape hatch for the degraded tier:
// a bare INSERT on the pool, bypassing the repository.
type directExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type localSpool interface {
	Append(record spool.Record) (string, error)
}

// IntakeNotifier is exported so wiring code can pass a nil interface
// value when ops email is not configured.
type IntakeNotifier interface {
	NotifyDegradedIntake(ctx context.Context, tier string, record spool.Record)
}

type ConsultationService struct {
	store    consultationStore
	executor directExecutor
	spool    localSpool
	notifier IntakeNotifier
}

// NewConsultationService builds the intake service. notifier may be
// nil when ops email is not configured.
func NewConsultationService(
	store consultationStore,
	executor directExecutor,
	localStore localSpool,
	notifier IntakeNotifier,
) *ConsultationService {
	return &ConsultationService{
		store:    store,
		executor: executor,
		spool:    localStore,
		notifier: notifier,
	}
}

func (s *ConsultationService) validate(input SubmitConsultationInput) error {
	if strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.PreferredDate) == "" ||
		strings.TrimSpace(input.PreferredTime) == "" {
		return ErrInvalidInput
	}
	if !utils.IsValidEmail(input.Email) || !utils.IsValidPhone(input.Phone) {
		return ErrInvalidInput
	}
	return nil
}

// Submit runs the ordered fallback chain: repository create, then a
// direct insert on the pool, then the on-disk spool. Each tier is only
// attempted when the previous one failed, and the caller gets a
// success outcome as long as any tier accepted the request.
func (s *ConsultationService) Submit(ctx context.Context, input SubmitConsultationInput) (*SubmitOutcome, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	sinks := []struct {
		tier    DeliveryTier
		deliver func(context.Context, SubmitConsultationInput) (*SubmitOutcome, error)
	}{
		{TierAuthoritative, s.deliverAuthoritative},
		{TierDegraded, s.deliverDegraded},
		{TierLocal, s.deliverLocal},
	}

	var lastErr error
	for _, sink := range sinks {
		outcome, err := sink.deliver(ctx, input)
		if err != nil {
			logger.Log.Warn("consultation intake tier failed",
				zap.String("tier", string(sink.tier)),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		logger.Log.Info("consultation request accepted",
			zap.String("tier", string(outcome.Tier)),
			zap.String("id", outcome.ID),
		)
		if outcome.Tier != TierAuthoritative && s.notifier != nil {
			s.notifier.NotifyDegradedIntake(ctx, string(outcome.Tier), spoolRecord(input))
		}
		return outcome, nil
	}

	return nil, lastErr
}

func (s *ConsultationService) deliverAuthoritative(ctx context.Context, input SubmitConsultationInput) (*SubmitOutcome, error) {
	request := &models.ConsultationRequest{
		FullName:      strings.TrimSpace(input.FullName),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:         strings.TrimSpace(input.Phone),
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		FitnessGoals:  input.FitnessGoals,
	}
	if err := s.store.Create(ctx, request); err != nil {
		return nil, err
	}
	return &SubmitOutcome{
		Tier:    TierAuthoritative,
		ID:      strconv.FormatInt(request.ID, 10),
		Request: request,
	}, nil
}

func (s *ConsultationService) deliverDegraded(ctx context.Context, input SubmitConsultationInput) (*SubmitOutcome, error) {
	query := `
		INSERT INTO consultation_requests (full_name, email, phone, preferred_date, preferred_time, fitness_goals, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending')
	`
	_, err := s.executor.Exec(
		ctx,
		query,
		strings.TrimSpace(input.FullName),
		strings.ToLower(strings.TrimSpace(input.Email)),
		strings.TrimSpace(input.Phone),
		input.PreferredDate,
		input.PreferredTime,
		input.FitnessGoals,
	)
	if err != nil {
		return nil, err
	}
	// The row exists but no id comes back on this path.
	return &SubmitOutcome{Tier: TierDegraded}, nil
}

func (s *ConsultationService) deliverLocal(_ context.Context, input SubmitConsultationInput) (*SubmitOutcome, error) {
	id, err := s.spool.Append(spoolRecord(input))
	if err != nil {
		return nil, err
	}
	return &SubmitOutcome{Tier: TierLocal, ID: id}, nil
}

func spoolRecord(input SubmitConsultationInput) spool.Record {
	return spool.Record{
		FullName:      strings.TrimSpace(input.FullName),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:         strings.TrimSpace(input.Phone),
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		FitnessGoals:  input.FitnessGoals,
		SubmittedAt:   time.Now().UTC(),
	}
}

type ConsultationFilter struct {
	Search string
	Status string
}

// List fetches the full table and filters in memory, matching the
// admin screen contract.
func (s *ConsultationService) List(ctx context.Context, filter ConsultationFilter) ([]models.ConsultationRequest, error) {
	requests, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.ConsultationRequest, 0, len(requests))
	for _, request := range requests {
		if filter.Status != "" && request.Status != filter.Status {
			continue
		}
		if !MatchesQuery(filter.Search, request.FullName, request.Email, request.Phone) {
			continue
		}
		filtered = append(filtered, request)
	}
	return filtered, nil
}

func (s *ConsultationService) Get(ctx context.Context, id int64) (*models.ConsultationRequest, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ConsultationService) UpdateStatus(ctx context.Context, id int64, status string) (*models.ConsultationRequest, error) {
	if !utils.IsValidStatus("consultation", status) {
		return nil, ErrInvalidStatus
	}
	return s.store.UpdateStatus(ctx, id, status)
}

func (s *ConsultationService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *ConsultationService) Stats(ctx context.Context) (*models.ConsultationStats, error) {
	requests, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &models.ConsultationStats{Total: len(requests)}
	for _, request := range requests {
		switch request.Status {
		case "pending":
			stats.Pending++
		case "contacted":
			stats.Contacted++
		case "scheduled":
			stats.Scheduled++
		case "completed":
			stats.Completed++
		case "cancelled":
			stats.Cancelled++
		}
		if WithinLastWeek(request.CreatedAt, now) {
			stats.ThisWeek++
		}
	}
	return stats, nil
}
