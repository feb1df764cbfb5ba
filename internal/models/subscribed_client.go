package models

import "time"

type SubscribedClient struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PlanType     string    `json:"plan_type"`
	BillingCycle string    `json:"billing_cycle"`
	Cost         float64   `json:"cost"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	AutoRenew    bool      `json:"auto_renew"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClientStats aggregates the subscription book. Each revenue figure
// is the naive sum of costs of active subscriptions on that cycle.
type ClientStats struct {
	Total            int     `json:"total"`
	Active           int     `json:"active"`
	Pending          int     `json:"pending"`
	Expired          int     `json:"expired"`
	Cancelled        int     `json:"cancelled"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	QuarterlyRevenue float64 `json:"quarterly_revenue"`
	YearlyRevenue    float64 `json:"yearly_revenue"`
}
