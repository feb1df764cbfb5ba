package repository

import (
	"context"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type ServiceRepository struct {
	db DBTX
}

func NewServiceRepository(db DBTX) *ServiceRepository {
	return &ServiceRepository{db: db}
}

const serviceColumns = `id, name, description, price, duration_minutes, category, status, created_at, updated_at`

func scanService(row pgx.Row, service *models.Service) error {
	return row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.DurationMinutes,
		&service.Category,
		&service.Status,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
}

func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	query := `
		INSERT INTO services (name, description, price, duration_minutes, category, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		service.Name,
		service.Description,
		service.Price,
		service.DurationMinutes,
		service.Category,
		service.Status,
	).Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt)
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]models.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		var service models.Service
		if err := scanService(rows, &service); err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) GetAvailable(ctx context.Context) ([]models.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE status = 'available'
		ORDER BY category ASC, name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		var service models.Service
		if err := scanService(rows, &service); err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE id = $1
	`
	var service models.Service
	if err := scanService(r.db.QueryRow(ctx, query, id), &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, price = $4, duration_minutes = $5, category = $6, status = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		service.ID,
		service.Name,
		service.Description,
		service.Price,
		service.DurationMinutes,
		service.Category,
		service.Status,
	).Scan(&service.UpdatedAt)
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
