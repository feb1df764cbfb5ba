package repository

import (
	"context"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type ClientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, name, plan_type, billing_cycle, cost, start_date, end_date, status, auto_renew, created_at, updated_at`

func scanClient(row pgx.Row, client *models.SubscribedClient) error {
	return row.Scan(
		&client.ID,
		&client.Name,
		&client.PlanType,
		&client.BillingCycle,
		&client.Cost,
		&client.StartDate,
		&client.EndDate,
		&client.Status,
		&client.AutoRenew,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
}

func (r *ClientRepository) Create(ctx context.Context, client *models.SubscribedClient) error {
	query := `
		INSERT INTO subscribed_clients (name, plan_type, billing_cycle, cost, start_date, end_date, status, auto_renew)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		client.Name,
		client.PlanType,
		client.BillingCycle,
		client.Cost,
		client.StartDate,
		client.EndDate,
		client.Status,
		client.AutoRenew,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
}

func (r *ClientRepository) GetAll(ctx context.Context) ([]models.SubscribedClient, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM subscribed_clients
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]models.SubscribedClient, 0)
	for rows.Next() {
		var client models.SubscribedClient
		if err := scanClient(rows, &client); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*models.SubscribedClient, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM subscribed_clients
		WHERE id = $1
	`
	var client models.SubscribedClient
	if err := scanClient(r.db.QueryRow(ctx, query, id), &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *models.SubscribedClient) error {
	query := `
		UPDATE subscribed_clients
		SET name = $2, plan_type = $3, billing_cycle = $4, cost = $5, start_date = $6, end_date = $7,
		    status = $8, auto_renew = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		client.ID,
		client.Name,
		client.PlanType,
		client.BillingCycle,
		client.Cost,
		client.StartDate,
		client.EndDate,
		client.Status,
		client.AutoRenew,
	).Scan(&client.UpdatedAt)
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subscribed_clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ExpireOverdue marks active subscriptions whose end date has passed as
// expired. Auto-renewing subscriptions are left alone.
func (r *ClientRepository) ExpireOverdue(ctx context.Context) (int64, error) {
	query := `
		UPDATE subscribed_clients
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'active' AND auto_renew = FALSE AND end_date < NOW()
	`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
