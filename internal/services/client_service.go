package services

import (
	"context"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/logger"
	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
	"go.uber.org/zap"
)

type clientStore interface {
	Create(ctx context.Context, client *models.SubscribedClient) error
	GetAll(ctx context.Context) ([]models.SubscribedClient, error)
	GetByID(ctx context.Context, id int64) (*models.SubscribedClient, error)
	Update(ctx context.Context, client *models.SubscribedClient) error
	Delete(ctx context.Context, id int64) error
	ExpireOverdue(ctx context.Context) (int64, error)
}

type ClientService struct {
	store clientStore
}

func NewClientService(store clientStore) *ClientService {
	return &ClientService{store: store}
}

var validBillingCycles = map[string]struct{}{
	"monthly":   {},
	"quarterly": {},
	"yearly":    {},
}

type ClientInput struct {
	Name         string
	PlanType     string
	BillingCycle string
	Cost         float64
	StartDate    time.Time
	EndDate      time.Time
	Status       string
	AutoRenew    bool
}

func (s *ClientService) build(input ClientInput) (*models.SubscribedClient, error) {
	if input.Name == "" || input.Cost < 0 {
		return nil, ErrInvalidInput
	}
	if _, ok := validBillingCycles[input.BillingCycle]; !ok {
		return nil, ErrInvalidInput
	}
	if !utils.IsValidStatus("subscription", input.Status) {
		return nil, ErrInvalidStatus
	}
	if !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidInput
	}
	return &models.SubscribedClient{
		Name:         input.Name,
		PlanType:     input.PlanType,
		BillingCycle: input.BillingCycle,
		Cost:         input.Cost,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Status:       input.Status,
		AutoRenew:    input.AutoRenew,
	}, nil
}

func (s *ClientService) Create(ctx context.Context, input ClientInput) (*models.SubscribedClient, error) {
	client, err := s.build(input)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id int64, input ClientInput) (*models.SubscribedClient, error) {
	client, err := s.build(input)
	if err != nil {
		return nil, err
	}
	client.ID = id
	if err := s.store.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

type ClientFilter struct {
	Search string
	Status string
}

func (s *ClientService) List(ctx context.Context, filter ClientFilter) ([]models.SubscribedClient, error) {
	clients, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.SubscribedClient, 0, len(clients))
	for _, client := range clients {
		if filter.Status != "" && client.Status != filter.Status {
			continue
		}
		if !MatchesQuery(filter.Search, client.Name, client.PlanType) {
			continue
		}
		filtered = append(filtered, client)
	}
	return filtered, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*models.SubscribedClient, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// Stats sums revenue naively from subscription costs; each active
// subscription's cost feeds the revenue figure for its billing cycle.
func (s *ClientService) Stats(ctx context.Context) (*models.ClientStats, error) {
	clients, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.ClientStats{Total: len(clients)}
	for _, client := range clients {
		switch client.Status {
		case "active":
			stats.Active++
		case "pending":
			stats.Pending++
		case "expired":
			stats.Expired++
		case "cancelled":
			stats.Cancelled++
		}
		if client.Status == "active" {
			switch client.BillingCycle {
			case "monthly":
				stats.MonthlyRevenue += client.Cost
			case "quarterly":
				stats.QuarterlyRevenue += client.Cost
			case "yearly":
				stats.YearlyRevenue += client.Cost
			}
		}
	}
	return stats, nil
}

// StartSubscriptionSweeper expires overdue subscriptions once at
// startup and then every hour until ctx is cancelled.
func (s *ClientService) StartSubscriptionSweeper(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *ClientService) sweep(ctx context.Context) {
	expired, err := s.store.ExpireOverdue(ctx)
	if err != nil {
		logger.Log.Error("subscription sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		logger.Log.Info("expired overdue subscriptions", zap.Int64("count", expired))
	}
}
