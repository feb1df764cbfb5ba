package repository

import (
	"context"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type ConsultationRepository struct {
	db DBTX
}

func NewConsultationRepository(db DBTX) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

const consultationColumns = `id, full_name, email, phone, preferred_date, preferred_time, fitness_goals, status, created_at, updated_at`

func scanConsultation(row pgx.Row, request *models.ConsultationRequest) error {
	return row.Scan(
		&request.ID,
		&request.FullName,
		&request.Email,
		&request.Phone,
		&request.PreferredDate,
		&request.PreferredTime,
		&request.FitnessGoals,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
}

func (r *ConsultationRepository) Create(ctx context.Context, request *models.ConsultationRequest) error {
	query := `
		INSERT INTO consultation_requests (full_name, email, phone, preferred_date, preferred_time, fitness_goals, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending')
		RETURNING id, status, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		request.FullName,
		request.Email,
		request.Phone,
		request.PreferredDate,
		request.PreferredTime,
		request.FitnessGoals,
	).Scan(&request.ID, &request.Status, &request.CreatedAt, &request.UpdatedAt)
}

func (r *ConsultationRepository) GetAll(ctx context.Context) ([]models.ConsultationRequest, error) {
	query := `
		SELECT ` + consultationColumns + `
		FROM consultation_requests
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.ConsultationRequest, 0)
	for rows.Next() {
		var request models.ConsultationRequest
		if err := scanConsultation(rows, &request); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *ConsultationRepository) GetByID(ctx context.Context, id int64) (*models.ConsultationRequest, error) {
	query := `
		SELECT ` + consultationColumns + `
		FROM consultation_requests
		WHERE id = $1
	`
	var request models.ConsultationRequest
	if err := scanConsultation(r.db.QueryRow(ctx, query, id), &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *ConsultationRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.ConsultationRequest, error) {
	query := `
		UPDATE consultation_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + consultationColumns + `
	`
	var request models.ConsultationRequest
	if err := scanConsultation(r.db.QueryRow(ctx, query, id, status), &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *ConsultationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM consultation_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
