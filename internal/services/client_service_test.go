package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/models"
)

type stubClientStore struct {
	all     []models.SubscribedClient
	expired int64
}

func (s *stubClientStore) Create(_ context.Context, client *models.SubscribedClient) error {
	client.ID = int64(len(s.all) + 1)
	s.all = append(s.all, *client)
	return nil
}

func (s *stubClientStore) GetAll(_ context.Context) ([]models.SubscribedClient, error) {
	return s.all, nil
}

func (s *stubClientStore) GetByID(_ context.Context, _ int64) (*models.SubscribedClient, error) {
	return nil, errors.New("not implemented")
}

func (s *stubClientStore) Update(_ context.Context, _ *models.SubscribedClient) error { return nil }
func (s *stubClientStore) Delete(_ context.Context, _ int64) error                    { return nil }

func (s *stubClientStore) ExpireOverdue(_ context.Context) (int64, error) {
	return s.expired, nil
}

func TestClientStatsSplitsRevenueByBillingCycle(t *testing.T) {
	store := &stubClientStore{all: []models.SubscribedClient{
		{Status: "active", BillingCycle: "monthly", Cost: 49.99},
		{Status: "active", BillingCycle: "quarterly", Cost: 99.99},
		{Status: "active", BillingCycle: "yearly", Cost: 499.00},
		{Status: "expired", BillingCycle: "monthly", Cost: 49.99},
		{Status: "pending", BillingCycle: "quarterly", Cost: 119.99},
		{Status: "pending", BillingCycle: "yearly", Cost: 399.00},
		{Status: "cancelled", BillingCycle: "monthly", Cost: 29.99},
	}}
	service := NewClientService(store)

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 7 || stats.Active != 3 || stats.Pending != 2 || stats.Expired != 1 || stats.Cancelled != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if math.Abs(stats.MonthlyRevenue-49.99) > 1e-9 {
		t.Fatalf("monthly revenue = %v, want 49.99", stats.MonthlyRevenue)
	}
	if math.Abs(stats.QuarterlyRevenue-99.99) > 1e-9 {
		t.Fatalf("quarterly revenue = %v, want 99.99", stats.QuarterlyRevenue)
	}
	if math.Abs(stats.YearlyRevenue-499.00) > 1e-9 {
		t.Fatalf("yearly revenue = %v, want 499.00", stats.YearlyRevenue)
	}
}

func TestClientCreateValidation(t *testing.T) {
	service := NewClientService(&stubClientStore{})
	base := ClientInput{
		Name:         "Morgan",
		PlanType:     "premium",
		BillingCycle: "monthly",
		Cost:         49.99,
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:       "active",
	}

	if _, err := service.Create(context.Background(), base); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	noName := base
	noName.Name = ""
	if _, err := service.Create(context.Background(), noName); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing name: got %v", err)
	}

	badCycle := base
	badCycle.BillingCycle = "weekly"
	if _, err := service.Create(context.Background(), badCycle); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad cycle: got %v", err)
	}

	badStatus := base
	badStatus.Status = "trial"
	if _, err := service.Create(context.Background(), badStatus); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("bad status: got %v", err)
	}

	backwards := base
	backwards.EndDate = base.StartDate.AddDate(0, -1, 0)
	if _, err := service.Create(context.Background(), backwards); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("end before start: got %v", err)
	}
}

func TestClientListFilters(t *testing.T) {
	store := &stubClientStore{all: []models.SubscribedClient{
		{ID: 1, Name: "Morgan Park", PlanType: "premium", Status: "active"},
		{ID: 2, Name: "Casey Wu", PlanType: "basic", Status: "expired"},
		{ID: 3, Name: "Morgan Field", PlanType: "basic", Status: "active"},
	}}
	service := NewClientService(store)

	got, err := service.List(context.Background(), ClientFilter{Search: "morgan", Status: "active"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}

	byPlan, err := service.List(context.Background(), ClientFilter{Search: "basic"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byPlan) != 2 {
		t.Fatalf("expected plan_type to be searchable, got %d matches", len(byPlan))
	}
}
