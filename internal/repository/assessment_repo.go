package repository

import (
	"context"

	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/jackc/pgx/v5"
)

type AssessmentRepository struct {
	db DBTX
}

func NewAssessmentRepository(db DBTX) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

const assessmentColumns = `id, public_id, full_name, email, phone, age, height_cm, weight_kg, goals, status, created_at, updated_at`

func scanAssessment(row pgx.Row, assessment *models.Assessment) error {
	return row.Scan(
		&assessment.ID,
		&assessment.PublicID,
		&assessment.FullName,
		&assessment.Email,
		&assessment.Phone,
		&assessment.Age,
		&assessment.HeightCM,
		&assessment.WeightKG,
		&assessment.Goals,
		&assessment.Status,
		&assessment.CreatedAt,
		&assessment.UpdatedAt,
	)
}

func (r *AssessmentRepository) Create(ctx context.Context, assessment *models.Assessment) error {
	query := `
		INSERT INTO assessments (public_id, full_name, email, phone, age, height_cm, weight_kg, goals, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending')
		RETURNING id, status, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		assessment.PublicID,
		assessment.FullName,
		assessment.Email,
		assessment.Phone,
		assessment.Age,
		assessment.HeightCM,
		assessment.WeightKG,
		assessment.Goals,
	).Scan(&assessment.ID, &assessment.Status, &assessment.CreatedAt, &assessment.UpdatedAt)
}

func (r *AssessmentRepository) GetAll(ctx context.Context) ([]models.Assessment, error) {
	query := `
		SELECT ` + assessmentColumns + `
		FROM assessments
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assessments := make([]models.Assessment, 0)
	for rows.Next() {
		var assessment models.Assessment
		if err := scanAssessment(rows, &assessment); err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}
	return assessments, rows.Err()
}

func (r *AssessmentRepository) GetByID(ctx context.Context, id int64) (*models.Assessment, error) {
	query := `
		SELECT ` + assessmentColumns + `
		FROM assessments
		WHERE id = $1
	`
	var assessment models.Assessment
	if err := scanAssessment(r.db.QueryRow(ctx, query, id), &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *AssessmentRepository) GetByPublicID(ctx context.Context, publicID string) (*models.Assessment, error) {
	query := `
		SELECT ` + assessmentColumns + `
		FROM assessments
		WHERE public_id = $1
	`
	var assessment models.Assessment
	if err := scanAssessment(r.db.QueryRow(ctx, query, publicID), &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *AssessmentRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Assessment, error) {
	query := `
		UPDATE assessments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + assessmentColumns + `
	`
	var assessment models.Assessment
	if err := scanAssessment(r.db.QueryRow(ctx, query, id, status), &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

// UpdateStatusIfCurrent transitions only when the stored status still
// matches, so the pending→reviewed flip cannot clobber a later state.
func (r *AssessmentRepository) UpdateStatusIfCurrent(ctx context.Context, id int64, currentStatus, nextStatus string) (*models.Assessment, error) {
	query := `
		UPDATE assessments
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + assessmentColumns + `
	`
	var assessment models.Assessment
	if err := scanAssessment(r.db.QueryRow(ctx, query, id, currentStatus, nextStatus), &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *AssessmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *AssessmentRepository) CreateResponse(ctx context.Context, response *models.AssessmentResponse) error {
	query := `
		INSERT INTO assessment_responses (assessment_id, section_name, response_text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		response.AssessmentID,
		response.SectionName,
		response.ResponseText,
	).Scan(&response.ID, &response.CreatedAt)
}

func (r *AssessmentRepository) ListResponses(ctx context.Context, assessmentID int64) ([]models.AssessmentResponse, error) {
	query := `
		SELECT id, assessment_id, section_name, response_text, created_at
		FROM assessment_responses
		WHERE assessment_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]models.AssessmentResponse, 0)
	for rows.Next() {
		var response models.AssessmentResponse
		if err := rows.Scan(
			&response.ID,
			&response.AssessmentID,
			&response.SectionName,
			&response.ResponseText,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, rows.Err()
}
